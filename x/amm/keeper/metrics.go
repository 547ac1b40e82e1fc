package keeper

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the Prometheus metrics for the AMM module.
type Metrics struct {
	Swaps             *prometheus.CounterVec
	LiquidityAdds     *prometheus.CounterVec
	LiquidityRemovals *prometheus.CounterVec
	PoolsTotal        prometheus.Gauge
}

var (
	ammMetricsOnce sync.Once
	ammMetrics     *Metrics
)

// NewMetrics creates and registers AMM metrics (singleton pattern)
func NewMetrics() *Metrics {
	ammMetricsOnce.Do(func() {
		ammMetrics = &Metrics{
			Swaps: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Namespace: "helix",
					Subsystem: "amm",
					Name:      "swaps_total",
					Help:      "Total number of swaps executed",
				},
				[]string{"token_in", "token_out"},
			),
			LiquidityAdds: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Namespace: "helix",
					Subsystem: "amm",
					Name:      "liquidity_adds_total",
					Help:      "Total number of liquidity deposits",
				},
				[]string{"pair"},
			),
			LiquidityRemovals: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Namespace: "helix",
					Subsystem: "amm",
					Name:      "liquidity_removals_total",
					Help:      "Total number of liquidity withdrawals",
				},
				[]string{"pair"},
			),
			PoolsTotal: promauto.NewGauge(
				prometheus.GaugeOpts{
					Namespace: "helix",
					Subsystem: "amm",
					Name:      "pools_total",
					Help:      "Number of pools holding liquidity",
				},
			),
		}
	})
	return ammMetrics
}
