package evaluation

import (
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/BaSui01/poseval/metrics"
	"github.com/BaSui01/poseval/types"
)

// Report is the outcome of one evaluation run: the merged metric values
// plus bookkeeping about the run itself.
type Report struct {
	ID            string                   `json:"id"`
	Dataset       string                   `json:"dataset"`
	SampleCount   int                      `json:"sample_count"`
	InstanceCount int                      `json:"instance_count"`
	Metrics       map[string]float64       `json:"metrics"`
	StartTime     time.Time                `json:"start_time"`
	EndTime       time.Time                `json:"end_time"`
	Duration      time.Duration            `json:"duration"`
	MetricTimes   map[string]time.Duration `json:"metric_times,omitempty"`
}

// Observer receives the finished report, e.g. to export it to Prometheus.
type Observer interface {
	ObserveReport(report *Report)
}

// Runner drives a set of metrics through one evaluation pass. It is not
// safe for concurrent Process calls and, like the metrics it owns, is
// single-use: discard it after Evaluate.
type Runner struct {
	meta      *types.DatasetMeta
	metricSet []metrics.Metric
	observers []Observer
	logger    *zap.Logger

	samples   int
	instances int
	started   time.Time
}

// NewRunner creates a runner over the given metrics. The dataset metadata
// is propagated to every metric; a nil logger falls back to zap.NewNop().
func NewRunner(meta *types.DatasetMeta, logger *zap.Logger, ms ...metrics.Metric) *Runner {
	if logger == nil {
		logger = zap.NewNop()
	}
	r := &Runner{meta: meta, logger: logger}
	for _, m := range ms {
		r.Register(m)
	}
	return r
}

// Register adds a metric to the suite and hands it the dataset metadata.
func (r *Runner) Register(m metrics.Metric) {
	m.SetDatasetMeta(r.meta)
	r.metricSet = append(r.metricSet, m)
}

// AddObserver registers an observer notified after every Evaluate.
func (r *Runner) AddObserver(o Observer) {
	r.observers = append(r.observers, o)
}

// Process feeds one batch to every registered metric. The first metric
// error aborts the run and is returned to the caller; there is no partial
// recovery.
func (r *Runner) Process(batch []types.Sample) error {
	if r.started.IsZero() {
		r.started = time.Now()
	}
	for _, m := range r.metricSet {
		if err := m.Process(batch); err != nil {
			r.logger.Error("metric process failed",
				zap.String("metric", m.Name()),
				zap.Error(err))
			return err
		}
	}
	r.samples += len(batch)
	for i := range batch {
		r.instances += len(batch[i].GroundTruth.Keypoints)
	}
	r.logger.Debug("batch processed",
		zap.Int("batch_size", len(batch)),
		zap.Int("total_samples", r.samples))
	return nil
}

// Evaluate reduces every metric over all processed instances and merges
// the per-metric key/value maps into one report.
func (r *Runner) Evaluate() (*Report, error) {
	report := &Report{
		ID:          uuid.NewString(),
		SampleCount: r.samples,
		StartTime:   r.started,
		Metrics:     make(map[string]float64),
		MetricTimes: make(map[string]time.Duration),
	}
	report.InstanceCount = r.instances
	if r.meta != nil {
		report.Dataset = r.meta.Name
	}
	if report.StartTime.IsZero() {
		report.StartTime = time.Now()
	}

	for _, m := range r.metricSet {
		begin := time.Now()
		values, err := m.Evaluate(r.instances)
		if err != nil {
			r.logger.Error("metric evaluate failed",
				zap.String("metric", m.Name()),
				zap.Error(err))
			return nil, err
		}
		report.MetricTimes[m.Name()] += time.Since(begin)
		for key, v := range values {
			if _, exists := report.Metrics[key]; exists {
				return nil, types.NewErrorf(types.ErrInvalidConfig,
					"duplicate metric key %q produced by %s", key, m.Name())
			}
			report.Metrics[key] = v
		}
		r.logger.Debug("metric evaluated",
			zap.String("metric", m.Name()),
			zap.Int("keys", len(values)))
	}

	report.EndTime = time.Now()
	report.Duration = report.EndTime.Sub(report.StartTime)

	for _, o := range r.observers {
		o.ObserveReport(report)
	}
	r.logger.Info("evaluation finished",
		zap.String("report_id", report.ID),
		zap.String("dataset", report.Dataset),
		zap.Int("samples", report.SampleCount),
		zap.Int("metrics", len(report.Metrics)),
		zap.Duration("duration", report.Duration))
	return report, nil
}
