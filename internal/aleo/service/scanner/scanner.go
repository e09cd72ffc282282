// Package scanner discovers and decrypts the records a view key owns within a
// block range.
package scanner

import (
	"context"
	"errors"
	"time"

	"github.com/SatoKentaNayoro/aleo-wallet-test/internal/aleo/account"
	"github.com/SatoKentaNayoro/aleo-wallet-test/internal/aleo/model"
	"go.uber.org/zap"
)

// Option configures a Service.
type Option func(*Service)

// WithSpentCheckPolicy sets how failed spent-status queries are handled.
func WithSpentCheckPolicy(p SpentCheckPolicy) Option {
	return func(s *Service) {
		s.filter.policy = p
	}
}

// WithRecordWriter persists every record of a successful scan.
func WithRecordWriter(w RecordWriter) Option {
	return func(s *Service) {
		s.writer = w
	}
}

// WithDecodeWorkers sets how many blocks of a page are decoded at once.
func WithDecodeWorkers(n int) Option {
	return func(s *Service) {
		if n > 0 {
			s.fetcher.workers = n
		}
	}
}

// WithPageSize overrides the number of blocks requested per page.
func WithPageSize(n uint32) Option {
	return func(s *Service) {
		if n > 0 && n <= pageSize {
			s.fetcher.pageSize = n
		}
	}
}

type Service struct {
	network model.Network
	node    NodeClient
	cipher  RecordCipher
	metrics ScannerMetrics
	fetcher *blockFetcher
	filter  *recordFilter
	writer  RecordWriter
	logger  *zap.Logger
}

func NewService(
	node NodeClient,
	decoder BlockDecoder,
	cipher RecordCipher,
	metrics ScannerMetrics,
	network model.Network,
	logger *zap.Logger,
	opts ...Option,
) (*Service, error) {
	if metrics == nil {
		return nil, errors.New("scanner metrics is required")
	}
	if node == nil || decoder == nil || cipher == nil {
		return nil, errors.New("node client, block decoder and record cipher are required")
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	logger = logger.With(zap.String("network", string(network)))

	s := &Service{
		network: network,
		node:    node,
		cipher:  cipher,
		metrics: metrics,
		fetcher: &blockFetcher{
			node:     node,
			decoder:  decoder,
			metrics:  metrics,
			pageSize: pageSize,
			workers:  decodeWorkers,
			logger:   logger.Named("blockFetcher"),
		},
		filter: &recordFilter{
			node:    node,
			cipher:  cipher,
			metrics: metrics,
			policy:  SpentCheckLenient,
			network: network,
			logger:  logger.Named("recordFilter"),
		},
		logger: logger,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// Scan returns the owned records of acct within spec, in block order then
// record order. A scan that finds nothing fails with model.ErrNoRecordsFound.
func (s *Service) Scan(ctx context.Context, acct model.Account, spec RangeSpec) (records []model.OwnedRecord, err error) {
	started := time.Now()
	defer func() {
		s.observeScan(err, started)
	}()

	xCoordinate, err := s.cipher.AddressXCoordinate(ctx, acct.ViewKey)
	if err != nil {
		s.logger.Error("derive address x-coordinate failed", zap.Error(err))
		return nil, err
	}

	r, err := spec.Resolve(ctx, s.node)
	if err != nil {
		s.logger.Error("resolve range failed", zap.Stringer("kind", spec.Kind()), zap.Error(err))
		return nil, err
	}

	logger := s.logger.With(
		zap.Uint32("start", r.Start),
		zap.Uint32("end", r.End),
		zap.Stringer("spend_key", acct.SpendKeyStatus),
	)
	logger.Info("scanning records", zap.Uint64("blocks", r.Len()))

	err = s.fetcher.Each(ctx, r, func(ctx context.Context, blocks []model.Block) error {
		for _, b := range blocks {
			owned, err := s.filter.Filter(ctx, acct, xCoordinate, b)
			if err != nil {
				return err
			}
			records = append(records, owned...)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if len(records) == 0 {
		logger.Info("no records found")
		return nil, model.ErrNoRecordsFound
	}
	logger.Info("scan finished", zap.Int("records", len(records)), zap.Duration("elapsed", time.Since(started)))

	s.persist(ctx, acct.ViewKey, records)
	return records, nil
}

func (s *Service) persist(ctx context.Context, vk model.ViewKey, records []model.OwnedRecord) {
	if s.writer == nil {
		return
	}
	fingerprint := account.Fingerprint(vk)
	for _, r := range records {
		r.ViewKeyFingerprint = fingerprint
		if err := s.writer.WriteRecord(ctx, r); err != nil {
			s.logger.Warn("persist owned record failed", zap.String("commitment", r.Commitment), zap.Error(err))
			return
		}
	}
}

func (s *Service) observeScan(err error, started time.Time) {
	if errors.Is(err, model.ErrNoRecordsFound) {
		err = nil
	}
	s.metrics.ObserveScan(err, started)
}
