package scanner

import (
	"context"
	"errors"
	"fmt"

	"github.com/SatoKentaNayoro/aleo-wallet-test/internal/aleo/model"
	"github.com/SatoKentaNayoro/aleo-wallet-test/pkg/safe"
)

// RangeKind tells which combination of bounds a RangeSpec was built from.
type RangeKind int

const (
	// RangeExplicit scans [start, end].
	RangeExplicit RangeKind = iota + 1
	// RangeOpen scans [start, latest].
	RangeOpen
	// RangeBounded scans [0, end].
	RangeBounded
	// RangeTrailing scans the last N blocks up to latest.
	RangeTrailing
)

func (k RangeKind) String() string {
	switch k {
	case RangeExplicit:
		return "explicit"
	case RangeOpen:
		return "open"
	case RangeBounded:
		return "bounded"
	case RangeTrailing:
		return "trailing"
	default:
		return "unknown"
	}
}

// RangeSpec is a validated scan window request. The zero value is invalid.
type RangeSpec struct {
	kind  RangeKind
	start uint32
	end   uint32
	last  uint32
}

// Explicit requests [start, end]; end must be greater than start.
func Explicit(start, end uint32) (RangeSpec, error) {
	if end <= start {
		return RangeSpec{}, fmt.Errorf("%w: start = %d, end = %d", model.ErrInvalidRange, start, end)
	}
	return RangeSpec{kind: RangeExplicit, start: start, end: end}, nil
}

// Open requests every block from start up to the latest height.
func Open(start uint32) RangeSpec {
	return RangeSpec{kind: RangeOpen, start: start}
}

// Bounded requests every block from genesis up to end.
func Bounded(end uint32) RangeSpec {
	return RangeSpec{kind: RangeBounded, end: end}
}

// Trailing requests the last blocks up to the latest height.
func Trailing(last uint32) RangeSpec {
	return RangeSpec{kind: RangeTrailing, last: last}
}

// NewRangeSpec builds a RangeSpec from independently optional bounds.
func NewRangeSpec(start, end, last *uint32) (RangeSpec, error) {
	switch {
	case last != nil && (start != nil || end != nil):
		return RangeSpec{}, model.ErrConflictingRange
	case last != nil:
		return Trailing(*last), nil
	case start != nil && end != nil:
		return Explicit(*start, *end)
	case start != nil:
		return Open(*start), nil
	case end != nil:
		return Bounded(*end), nil
	default:
		return RangeSpec{}, model.ErrMissingRange
	}
}

// Kind returns the variant of the spec.
func (s RangeSpec) Kind() RangeKind {
	return s.kind
}

// Resolve turns the spec into a concrete inclusive range, querying the chain
// height when the spec depends on it.
func (s RangeSpec) Resolve(ctx context.Context, heights HeightSource) (model.ScanRange, error) {
	switch s.kind {
	case RangeExplicit:
		return model.ScanRange{Start: s.start, End: s.end}, nil
	case RangeBounded:
		return model.ScanRange{Start: 0, End: s.end}, nil
	case RangeOpen:
		latest, err := latestHeight(ctx, heights)
		if err != nil {
			return model.ScanRange{}, err
		}
		if s.start > latest {
			return model.ScanRange{}, fmt.Errorf("%w: start %d is above latest height %d", model.ErrInvalidRange, s.start, latest)
		}
		return model.ScanRange{Start: s.start, End: latest}, nil
	case RangeTrailing:
		latest, err := latestHeight(ctx, heights)
		if err != nil {
			return model.ScanRange{}, err
		}
		return model.ScanRange{Start: safe.SaturatingSub(latest, s.last), End: latest}, nil
	default:
		return model.ScanRange{}, model.ErrMissingRange
	}
}

func latestHeight(ctx context.Context, heights HeightSource) (uint32, error) {
	latest, err := heights.LatestHeight(ctx)
	if err == nil {
		return latest, nil
	}
	if errors.Is(err, model.ErrHeightQueryFailed) {
		return 0, err
	}
	return 0, fmt.Errorf("%w: %w", model.ErrHeightQueryFailed, err)
}
