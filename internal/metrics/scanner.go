// Package metrics exposes application metrics collectors.
package metrics

import (
	"time"

	"github.com/SatoKentaNayoro/aleo-wallet-test/internal/aleo/model"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Record outcomes reported by the record filter.
const (
	RecordSkipped   = "skipped"
	RecordSpent     = "spent"
	RecordDecrypted = "decrypted"
	// RecordAssumedUnspent counts records kept because the spent check could not be answered.
	RecordAssumedUnspent = "assumed_unspent"
)

var (
	scannerScansTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "aleo_wallet",
		Subsystem: "scanner",
		Name:      "scans_total",
		Help:      "Count of record scans.",
	}, []string{"network", "status"})

	scannerScanDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "aleo_wallet",
		Subsystem: "scanner",
		Name:      "scan_duration_seconds",
		Help:      "Duration of a whole record scan.",
		Buckets:   []float64{.1, .5, 1, 2.5, 5, 10, 30, 60, 120, 300, 600},
	}, []string{"network", "status"})

	scannerPagesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "aleo_wallet",
		Subsystem: "scanner",
		Name:      "pages_total",
		Help:      "Count of fetched block pages.",
	}, []string{"network", "status"})

	scannerPageDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "aleo_wallet",
		Subsystem: "scanner",
		Name:      "page_duration_seconds",
		Help:      "Duration of fetching and filtering one block page.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"network", "status"})

	scannerBlocksTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "aleo_wallet",
		Subsystem: "scanner",
		Name:      "blocks_total",
		Help:      "Count of scanned blocks.",
	}, []string{"network"})

	scannerRecordsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "aleo_wallet",
		Subsystem: "scanner",
		Name:      "records_total",
		Help:      "Count of inspected ciphertext records by outcome.",
	}, []string{"network", "outcome"})
)

// Scanner tracks metrics for the record scanner pipeline.
type Scanner struct {
	network model.Network
}

// NewScanner constructs a Scanner collector.
func NewScanner(network model.Network) *Scanner {
	if network == "" {
		network = "unknown"
	}
	return &Scanner{network: network}
}

// ObserveScan records the outcome of a full scan.
func (m Scanner) ObserveScan(err error, started time.Time) {
	status := statusOf(err)
	scannerScansTotal.WithLabelValues(string(m.network), status).Inc()
	scannerScanDuration.WithLabelValues(string(m.network), status).Observe(time.Since(started).Seconds())
}

// ObservePage records fetching and filtering of one page of blocks.
func (m Scanner) ObservePage(err error, blocks int, started time.Time) {
	status := statusOf(err)
	scannerPagesTotal.WithLabelValues(string(m.network), status).Inc()
	scannerPageDuration.WithLabelValues(string(m.network), status).Observe(time.Since(started).Seconds())
	if blocks > 0 {
		scannerBlocksTotal.WithLabelValues(string(m.network)).Add(float64(blocks))
	}
}

// ObserveRecord records the outcome of one owned or skipped ciphertext record.
func (m Scanner) ObserveRecord(outcome string) {
	scannerRecordsTotal.WithLabelValues(string(m.network), outcome).Inc()
}
