package scanner

import (
	"context"

	"github.com/SatoKentaNayoro/aleo-wallet-test/internal/aleo/model"
	"github.com/SatoKentaNayoro/aleo-wallet-test/pkg/batcher"
	"go.uber.org/zap"
)

type recordWriter struct {
	repo          ClickhouseRepository
	logger        *zap.Logger
	recordBatcher *batcher.Batcher[model.OwnedRecord]
}

// NewRecordWriter buffers owned records and inserts them into repo in batches.
func NewRecordWriter(repo ClickhouseRepository, logger *zap.Logger) RecordWriter {
	return newRecordWriter(repo, logger)
}

func newRecordWriter(repo ClickhouseRepository, logger *zap.Logger) *recordWriter {
	w := &recordWriter{
		repo:   repo,
		logger: logger,
	}

	w.recordBatcher = batcher.New[model.OwnedRecord](
		logger.Named("recordBatcher"),
		w.flush,
		recordBatcherCapacity,
		recordBatcherFlushInterval,
		recordBatcherRPS,
	)
	return w
}

func (w *recordWriter) Start(ctx context.Context) {
	w.recordBatcher.Start(ctx)
}

func (w *recordWriter) Stop() error {
	return w.recordBatcher.Stop()
}

func (w *recordWriter) WriteRecord(ctx context.Context, r model.OwnedRecord) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	return w.recordBatcher.Add(ctx, r)
}

func (w *recordWriter) flush(ctx context.Context, records []model.OwnedRecord) error {
	if err := w.repo.InsertOwnedRecords(ctx, records); err != nil {
		return err
	}
	w.logger.Debug("InsertOwnedRecords", zap.Int("count", len(records)))
	return nil
}
