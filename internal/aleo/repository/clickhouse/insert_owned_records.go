package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/SatoKentaNayoro/aleo-wallet-test/internal/aleo/model"
)

const insertOwnedRecordsQuery = `
INSERT INTO aleo_owned_records (
	network,
	view_key_fingerprint,
	block_height,
	commitment,
	plaintext,
	scanned_at
) VALUES`

// InsertOwnedRecords stores decrypted records found by a scan.
func (r *Repository) InsertOwnedRecords(ctx context.Context, records []model.OwnedRecord) error {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("insert_owned_records", firstNetwork(records), err, start)
	}()

	if len(records) == 0 {
		return nil
	}

	batch, err := r.conn.PrepareBatch(ctx, insertOwnedRecordsQuery)
	if err != nil {
		return fmt.Errorf("prepare owned records batch: %w", err)
	}

	scannedAt := time.Now().UTC()
	for _, rec := range records {
		if err = batch.Append(
			string(rec.Network),
			rec.ViewKeyFingerprint,
			rec.BlockHeight,
			rec.Commitment,
			string(rec.Plaintext),
			scannedAt,
		); err != nil {
			return fmt.Errorf("append owned record: %w", err)
		}
	}

	if err = batch.Send(); err != nil {
		return fmt.Errorf("insert owned records: %w", err)
	}
	return nil
}

func firstNetwork(records []model.OwnedRecord) model.Network {
	if len(records) == 0 {
		return ""
	}
	return records[0].Network
}
