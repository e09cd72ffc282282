package metrics

import (
	"time"

	"github.com/SatoKentaNayoro/aleo-wallet-test/internal/aleo/model"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	transferBuildTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "aleo_wallet",
		Subsystem: "transfer",
		Name:      "build_total",
		Help:      "Count of transfer transaction builds.",
	}, []string{"network", "status"})

	transferBuildDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "aleo_wallet",
		Subsystem: "transfer",
		Name:      "build_duration_seconds",
		Help:      "Duration of building and proving a transfer transaction.",
		Buckets:   []float64{1, 5, 10, 30, 60, 120, 300, 600, 1200},
	}, []string{"network", "status"})

	transferBroadcastTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "aleo_wallet",
		Subsystem: "transfer",
		Name:      "broadcast_total",
		Help:      "Count of transaction broadcasts.",
	}, []string{"network", "status"})

	transferBroadcastDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "aleo_wallet",
		Subsystem: "transfer",
		Name:      "broadcast_duration_seconds",
		Help:      "Duration of broadcasting a transaction.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"network", "status"})
)

// Transfer tracks metrics for building and broadcasting transfers.
type Transfer struct {
	network model.Network
}

// NewTransfer constructs a Transfer collector.
func NewTransfer(network model.Network) *Transfer {
	if network == "" {
		network = "unknown"
	}
	return &Transfer{network: network}
}

// ObserveBuild records a transaction build outcome and duration.
func (m Transfer) ObserveBuild(err error, started time.Time) {
	status := statusOf(err)
	transferBuildTotal.WithLabelValues(string(m.network), status).Inc()
	transferBuildDuration.WithLabelValues(string(m.network), status).Observe(time.Since(started).Seconds())
}

// ObserveBroadcast records a broadcast outcome and duration.
func (m Transfer) ObserveBroadcast(err error, started time.Time) {
	status := statusOf(err)
	transferBroadcastTotal.WithLabelValues(string(m.network), status).Inc()
	transferBroadcastDuration.WithLabelValues(string(m.network), status).Observe(time.Since(started).Seconds())
}
