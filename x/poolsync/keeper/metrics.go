package keeper

import (
	"strconv"
	"sync"

	"github.com/cosmos/cosmos-sdk/telemetry"
	"github.com/hashicorp/go-metrics"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/ratesync-network/ratesync/x/poolsync/types"
)

// PoolsyncMetrics holds all Prometheus metrics for the poolsync module
type PoolsyncMetrics struct {
	PoolsRegistered       prometheus.Gauge
	ScalingFactorUpdates  *prometheus.CounterVec
	ScalingFactorFailures *prometheus.CounterVec
	RateScalingFactor     *prometheus.GaugeVec
}

var (
	poolsyncMetricsOnce sync.Once
	poolsyncMetrics     *PoolsyncMetrics
)

// NewPoolsyncMetrics creates and registers poolsync metrics (singleton pattern)
func NewPoolsyncMetrics() *PoolsyncMetrics {
	poolsyncMetricsOnce.Do(func() {
		poolsyncMetrics = &PoolsyncMetrics{
			PoolsRegistered: promauto.NewGauge(
				prometheus.GaugeOpts{
					Namespace: "ratesync",
					Subsystem: "poolsync",
					Name:      "pools_registered",
					Help:      "Number of pools tracking a redemption rate",
				},
			),
			ScalingFactorUpdates: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Namespace: "ratesync",
					Subsystem: "poolsync",
					Name:      "scaling_factor_updates_total",
					Help:      "Scaling factor updates by pool and source",
				},
				[]string{"pool_id", "source"},
			),
			ScalingFactorFailures: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Namespace: "ratesync",
					Subsystem: "poolsync",
					Name:      "scaling_factor_failures_total",
					Help:      "Failed scaling factor updates by reason",
				},
				[]string{"reason"},
			),
			RateScalingFactor: promauto.NewGaugeVec(
				prometheus.GaugeOpts{
					Namespace: "ratesync",
					Subsystem: "poolsync",
					Name:      "rate_scaling_factor",
					Help:      "Scaling factor derived from the redemption rate by pool",
				},
				[]string{"pool_id"},
			),
		}
	})
	return poolsyncMetrics
}

func emitScalingFailureTelemetry(poolID uint64, stage string) {
	telemetry.IncrCounterWithLabels(
		[]string{types.ModuleName, "scaling_factor_failed"},
		1,
		[]metrics.Label{
			telemetry.NewLabel("pool_id", strconv.FormatUint(poolID, 10)),
			telemetry.NewLabel("stage", stage),
		},
	)
}
