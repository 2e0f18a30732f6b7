package keeper

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// DecryptMetrics holds all Prometheus metrics for the decrypt module
type DecryptMetrics struct {
	RequestsSubmitted prometheus.Counter
	RequestsCompleted prometheus.Counter
	RequestsFailed    *prometheus.CounterVec
	RefundsProcessed  *prometheus.CounterVec
	TimeoutsForced    prometheus.Counter
	CallbackFaults    prometheus.Counter
	FeesWithdrawn     prometheus.Counter
	PendingRequests   prometheus.Gauge
}

var (
	decryptMetricsOnce sync.Once
	decryptMetrics     *DecryptMetrics
)

// NewDecryptMetrics creates and registers decrypt metrics (singleton pattern)
func NewDecryptMetrics() *DecryptMetrics {
	decryptMetricsOnce.Do(func() {
		decryptMetrics = &DecryptMetrics{
			RequestsSubmitted: promauto.NewCounter(prometheus.CounterOpts{
				Name: "veil_decrypt_requests_submitted_total",
				Help: "Total number of decryption requests submitted",
			}),
			RequestsCompleted: promauto.NewCounter(prometheus.CounterOpts{
				Name: "veil_decrypt_requests_completed_total",
				Help: "Total number of requests completed successfully",
			}),
			RequestsFailed: promauto.NewCounterVec(prometheus.CounterOpts{
				Name: "veil_decrypt_requests_failed_total",
				Help: "Total number of requests that failed, by reason",
			}, []string{"reason"}),
			RefundsProcessed: promauto.NewCounterVec(prometheus.CounterOpts{
				Name: "veil_decrypt_refunds_processed_total",
				Help: "Total number of refunds processed, by path (push/pull)",
			}, []string{"path"}),
			TimeoutsForced: promauto.NewCounter(prometheus.CounterOpts{
				Name: "veil_decrypt_timeouts_forced_total",
				Help: "Total number of forced timeout activations",
			}),
			CallbackFaults: promauto.NewCounter(prometheus.CounterOpts{
				Name: "veil_decrypt_callback_faults_total",
				Help: "Total number of callback panics recovered",
			}),
			FeesWithdrawn: promauto.NewCounter(prometheus.CounterOpts{
				Name: "veil_decrypt_fees_withdrawn_total",
				Help: "Total number of executor fee withdrawals",
			}),
			PendingRequests: promauto.NewGauge(prometheus.GaugeOpts{
				Name: "veil_decrypt_pending_requests",
				Help: "Number of requests currently pending",
			}),
		}
	})
	return decryptMetrics
}
