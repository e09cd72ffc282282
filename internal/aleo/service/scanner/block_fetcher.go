package scanner

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/SatoKentaNayoro/aleo-wallet-test/internal/aleo/model"
	"github.com/SatoKentaNayoro/aleo-wallet-test/pkg/safe"
	"github.com/SatoKentaNayoro/aleo-wallet-test/pkg/workerpool"
	"go.uber.org/zap"
)

type blockFetcher struct {
	node     NodeClient
	decoder  BlockDecoder
	metrics  ScannerMetrics
	pageSize uint32
	workers  int
	logger   *zap.Logger
}

type rawBlock struct {
	raw    json.RawMessage
	height uint32
}

// Each walks r in pages of at most pageSize blocks, calling fn for every page
// in height order. A page is fully handled before the next one is requested.
func (f *blockFetcher) Each(ctx context.Context, r model.ScanRange, fn func(ctx context.Context, blocks []model.Block) error) error {
	if r.End < r.Start {
		return fmt.Errorf("%w: start = %d, end = %d", model.ErrInvalidRange, r.Start, r.End)
	}

	last := uint64(r.End)
	for cursor := uint64(r.Start); cursor <= last; {
		if err := ctx.Err(); err != nil {
			return err
		}

		num := min(uint64(f.pageSize), last-cursor+1)
		start := uint32(cursor)
		end := safe.SaturatingAdd(start, uint32(num))

		started := time.Now()
		blocks, err := f.fetchPage(ctx, start, end)
		if err == nil {
			err = fn(ctx, blocks)
		}
		f.metrics.ObservePage(err, len(blocks), started)
		if err != nil {
			f.logger.Error("page failed", zap.Uint32("start", start), zap.Uint32("end", end), zap.Error(err))
			return err
		}
		f.logger.Debug("page scanned", zap.Uint32("start", start), zap.Uint32("end", end), zap.Int("blocks", len(blocks)))

		cursor += num
	}
	return nil
}

// fetchPage requests [start, end) and decodes the blocks of the response on
// up to workers goroutines, keeping response order.
func (f *blockFetcher) fetchPage(ctx context.Context, start, end uint32) ([]model.Block, error) {
	raws, err := f.node.Blocks(ctx, start, end)
	if err != nil {
		if errors.Is(err, model.ErrBlockFetchFailed) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %w", model.ErrBlockFetchFailed, err)
	}

	items := make([]rawBlock, 0, len(raws))
	for i, raw := range raws {
		items = append(items, rawBlock{raw: raw, height: safe.SaturatingAdd(start, uint32(i))})
	}
	blocks, err := workerpool.Map(ctx, f.workers, items, func(ctx context.Context, rb rawBlock) (model.Block, error) {
		return f.decoder.Decode(ctx, rb.raw, rb.height)
	})
	if err != nil {
		return nil, fmt.Errorf("%w: page [%d, %d): %w", model.ErrBlockFetchFailed, start, end, err)
	}
	return blocks, nil
}
