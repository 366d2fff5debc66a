package keeper

import (
	"sync"

	"github.com/cosmos/cosmos-sdk/telemetry"
	"github.com/hashicorp/go-metrics"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/ratesync-network/ratesync/x/ratesync/types"
)

// RatesyncMetrics holds all Prometheus metrics for the ratesync module
type RatesyncMetrics struct {
	RateSubmissions *prometheus.CounterVec
	RateRejections  *prometheus.CounterVec
	AnomalyDetected *prometheus.CounterVec
	LatestRate      *prometheus.GaugeVec
	RateDeviation   *prometheus.GaugeVec
	HistoryLength   *prometheus.GaugeVec
	ConfigUpdates   *prometheus.CounterVec
}

var (
	ratesyncMetricsOnce sync.Once
	ratesyncMetrics     *RatesyncMetrics
)

// NewRatesyncMetrics creates and registers ratesync metrics (singleton pattern)
func NewRatesyncMetrics() *RatesyncMetrics {
	ratesyncMetricsOnce.Do(func() {
		ratesyncMetrics = &RatesyncMetrics{
			RateSubmissions: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Namespace: "ratesync",
					Subsystem: "registry",
					Name:      "rate_submissions_total",
					Help:      "Total redemption rate submissions by denom",
				},
				[]string{"denom"},
			),
			RateRejections: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Namespace: "ratesync",
					Subsystem: "registry",
					Name:      "rate_rejections_total",
					Help:      "Redemption rate submissions rejected by reason",
				},
				[]string{"reason"},
			),
			AnomalyDetected: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Namespace: "ratesync",
					Subsystem: "registry",
					Name:      "anomalies_detected_total",
					Help:      "Redemption rates deviating from the moving average",
				},
				[]string{"denom", "policy"},
			),
			LatestRate: promauto.NewGaugeVec(
				prometheus.GaugeOpts{
					Namespace: "ratesync",
					Subsystem: "registry",
					Name:      "latest_redemption_rate",
					Help:      "Most recent redemption rate by denom",
				},
				[]string{"denom"},
			),
			RateDeviation: promauto.NewGaugeVec(
				prometheus.GaugeOpts{
					Namespace: "ratesync",
					Subsystem: "registry",
					Name:      "rate_deviation",
					Help:      "Absolute deviation of the last submission from the moving average",
				},
				[]string{"denom"},
			),
			HistoryLength: promauto.NewGaugeVec(
				prometheus.GaugeOpts{
					Namespace: "ratesync",
					Subsystem: "registry",
					Name:      "history_length",
					Help:      "Number of stored observations by denom",
				},
				[]string{"denom"},
			),
			ConfigUpdates: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Namespace: "ratesync",
					Subsystem: "registry",
					Name:      "config_updates_total",
					Help:      "Configuration changes by action",
				},
				[]string{"action"},
			),
		}
	})
	return ratesyncMetrics
}

// emitRejectionTelemetry counts a refused submission in the node telemetry sink.
func emitRejectionTelemetry(denom, reason string) {
	telemetry.IncrCounterWithLabels(
		[]string{types.ModuleName, "rate_rejected"},
		1,
		[]metrics.Label{
			telemetry.NewLabel("denom", denom),
			telemetry.NewLabel("reason", reason),
		},
	)
}
