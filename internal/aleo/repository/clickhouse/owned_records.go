package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/SatoKentaNayoro/aleo-wallet-test/internal/aleo/model"
)

const ownedRecordsQuery = `
SELECT
	block_height,
	commitment,
	argMax(plaintext, scanned_at)
FROM aleo_owned_records
WHERE network = ? AND view_key_fingerprint = ?
GROUP BY block_height, commitment
ORDER BY block_height, commitment`

// OwnedRecords returns every record stored for a view key fingerprint, in block order.
func (r *Repository) OwnedRecords(ctx context.Context, network model.Network, fingerprint string) (records []model.OwnedRecord, err error) {
	start := time.Now()
	defer func() {
		r.metrics.Observe("owned_records", network, err, start)
	}()

	rows, err := r.conn.Query(ctx, ownedRecordsQuery, string(network), fingerprint)
	if err != nil {
		return nil, fmt.Errorf("query owned records: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	for rows.Next() {
		var (
			height     uint32
			commitment string
			plaintext  string
		)
		if err = rows.Scan(&height, &commitment, &plaintext); err != nil {
			return nil, fmt.Errorf("scan owned record: %w", err)
		}
		records = append(records, model.OwnedRecord{
			Network:            network,
			BlockHeight:        height,
			Commitment:         commitment,
			Plaintext:          model.PlaintextRecord(plaintext),
			ViewKeyFingerprint: fingerprint,
		})
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate owned records: %w", err)
	}
	return records, nil
}
