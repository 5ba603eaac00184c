// Package metrics provides Prometheus metrics for the quote engine.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// TicksTotal 按 tick 计数，含无单 tick。
	TicksTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "qe_ticks_total",
		Help: "Number of tick states evaluated",
	})

	// OrdersEmitted counts quote instructions emitted per symbol.
	OrdersEmitted = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "qe_orders_emitted_total",
		Help: "Number of quote instructions emitted",
	}, []string{"symbol"})

	// StrategyErrors counts per-symbol strategy evaluation failures.
	StrategyErrors = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "qe_strategy_errors_total",
		Help: "Number of per-symbol strategy evaluation failures",
	}, []string{"symbol"})

	// BasketPremium 记录篮子策略最近一次观察到的溢价。
	BasketPremium = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Name: "qe_basket_premium",
		Help: "Last observed composite premium over synthetic fair value",
	}, []string{"symbol"})
)

// StartMetricsServer 启动 Prometheus 指标服务器。
func StartMetricsServer(addr string) {
	http.Handle("/metrics", promhttp.Handler())
	go func() {
		_ = http.ListenAndServe(addr, nil)
	}()
}
