package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "zenflow"

// Metrics 持有进度服务的 Prometheus 指标，使用独立 registry
// 所有方法对 nil 接收者安全，测试中可以直接传 nil
type Metrics struct {
	registry   *prometheus.Registry
	energyLogs *prometheus.CounterVec
	snapshots  prometheus.Counter
	streakDays prometheus.Histogram
	logCount   prometheus.Histogram
}

// New 创建并注册全部指标
func New() *Metrics {
	registry := prometheus.NewRegistry()
	energyLogs := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "energy_logs_total",
		Help:      "Energy logs appended, labelled by the period of day they were logged in.",
	}, []string{"period"})
	snapshots := prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "snapshots_total",
		Help:      "Progress snapshots computed.",
	})
	streakDays := prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "snapshot_streak_days",
		Help:      "Current streak observed when a snapshot is computed.",
		Buckets:   []float64{0, 1, 2, 3, 5, 7, 14, 30, 60, 90},
	})
	logCount := prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "snapshot_log_count",
		Help:      "History length fed into a snapshot computation.",
		Buckets:   prometheus.ExponentialBuckets(1, 2, 10),
	})
	registry.MustRegister(energyLogs, snapshots, streakDays, logCount)

	return &Metrics{
		registry:   registry,
		energyLogs: energyLogs,
		snapshots:  snapshots,
		streakDays: streakDays,
		logCount:   logCount,
	}
}

// RecordEnergyLog 记录一次打卡，period 为空时记为 unknown
func (m *Metrics) RecordEnergyLog(period string) {
	if m == nil {
		return
	}
	if period == "" {
		period = "unknown"
	}
	m.energyLogs.WithLabelValues(period).Inc()
}

// RecordSnapshot 记录一次快照计算
func (m *Metrics) RecordSnapshot(logCount, streak int) {
	if m == nil {
		return
	}
	m.snapshots.Inc()
	m.streakDays.Observe(float64(streak))
	m.logCount.Observe(float64(logCount))
}

// Registry 暴露底层 registry
func (m *Metrics) Registry() *prometheus.Registry {
	if m == nil {
		return nil
	}
	return m.registry
}

// Handler 返回 /metrics 的 exposition handler
func (m *Metrics) Handler() http.Handler {
	if m == nil {
		return http.NotFoundHandler()
	}
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
