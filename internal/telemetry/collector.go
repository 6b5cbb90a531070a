// Package telemetry provides internal Prometheus metrics collection.
// This package is internal and should not be imported by external projects.
package telemetry

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"go.uber.org/zap"

	"github.com/BaSui01/poseval/evaluation"
)

// =============================================================================
// 📊 评估指标收集器
// =============================================================================

// Collector 评估运行指标收集器
type Collector struct {
	// 评估运行指标
	runsTotal        prometheus.Counter
	runDuration      prometheus.Histogram
	samplesProcessed prometheus.Counter

	// 每个指标键的最新取值
	metricValues *prometheus.GaugeVec

	logger *zap.Logger
}

// NewCollector 创建评估指标收集器。reg 为 nil 时注册到默认注册表。
func NewCollector(namespace string, reg prometheus.Registerer, logger *zap.Logger) *Collector {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	factory := promauto.With(reg)

	c := &Collector{
		logger: logger.With(zap.String("component", "telemetry")),
	}

	c.runsTotal = factory.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "evaluation_runs_total",
		Help:      "Total number of completed evaluation runs",
	})

	c.runDuration = factory.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "evaluation_run_duration_seconds",
		Help:      "Evaluation run duration in seconds",
		Buckets:   prometheus.DefBuckets,
	})

	c.samplesProcessed = factory.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "evaluation_samples_processed_total",
		Help:      "Total number of samples processed by evaluation runs",
	})

	c.metricValues = factory.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "evaluation_metric_value",
		Help:      "Latest value of each evaluation metric key",
	}, []string{"dataset", "key"})

	return c
}

// ObserveReport implements evaluation.Observer.
func (c *Collector) ObserveReport(report *evaluation.Report) {
	c.runsTotal.Inc()
	c.runDuration.Observe(report.Duration.Seconds())
	c.samplesProcessed.Add(float64(report.SampleCount))
	for key, v := range report.Metrics {
		c.metricValues.WithLabelValues(report.Dataset, key).Set(v)
	}
	c.logger.Debug("report observed",
		zap.String("report_id", report.ID),
		zap.Int("metrics", len(report.Metrics)))
}
