// =============================================================================
// Package poseval — One-Line Evaluation Entry
// =============================================================================
// Provides a convenience entry point for running a full evaluation with
// minimal boilerplate. Delegates to evaluation.Runner internally.
//
// Usage:
//
//	import "github.com/BaSui01/poseval"
//
//	report, err := poseval.Evaluate(samples, poseval.WithEPE())
//	report, err := poseval.Evaluate(samples,
//		poseval.WithMeta(meta),
//		poseval.WithPCK(0.05, "bbox"),
//		poseval.WithAUC(30, 25),
//	)
//
// =============================================================================
package poseval

import (
	"go.uber.org/zap"

	"github.com/BaSui01/poseval/evaluation"
	"github.com/BaSui01/poseval/metrics"
	"github.com/BaSui01/poseval/types"
)

// Option configures the evaluation built by Evaluate.
type Option func(*options) error

type options struct {
	meta      *types.DatasetMeta
	metrics   []metrics.Metric
	observers []evaluation.Observer
	logger    *zap.Logger
	batchSize int
}

// WithMeta sets the dataset metadata shared by all metrics.
func WithMeta(meta *types.DatasetMeta) Option {
	return func(o *options) error {
		o.meta = meta
		return nil
	}
}

// WithMetric registers a pre-built metric.
func WithMetric(m metrics.Metric) Option {
	return func(o *options) error {
		o.metrics = append(o.metrics, m)
		return nil
	}
}

// WithPCK registers a PCK metric with the given threshold and norm items.
func WithPCK(thr float64, normItems ...string) Option {
	return func(o *options) error {
		m, err := metrics.NewPCKAccuracy(thr, normItems...)
		if err != nil {
			return err
		}
		o.metrics = append(o.metrics, m)
		return nil
	}
}

// WithAUC registers an AUC metric with the given norm factor and
// threshold sample count.
func WithAUC(normFactor float64, numThrs int) Option {
	return func(o *options) error {
		m, err := metrics.NewAUC(normFactor, numThrs)
		if err != nil {
			return err
		}
		o.metrics = append(o.metrics, m)
		return nil
	}
}

// WithEPE registers an EPE metric.
func WithEPE() Option {
	return func(o *options) error {
		o.metrics = append(o.metrics, metrics.NewEPE())
		return nil
	}
}

// WithNME registers an NME metric with the given configuration.
func WithNME(cfg metrics.NMEConfig) Option {
	return func(o *options) error {
		m, err := metrics.NewNME(cfg)
		if err != nil {
			return err
		}
		o.metrics = append(o.metrics, m)
		return nil
	}
}

// WithObserver registers a report observer, e.g. a telemetry collector.
func WithObserver(obs evaluation.Observer) Option {
	return func(o *options) error {
		o.observers = append(o.observers, obs)
		return nil
	}
}

// WithLogger sets a custom zap logger. Defaults to zap.NewNop().
func WithLogger(logger *zap.Logger) Option {
	return func(o *options) error {
		o.logger = logger
		return nil
	}
}

// WithBatchSize sets how many samples are fed per Process call.
// Zero or negative feeds all samples in a single batch.
func WithBatchSize(size int) Option {
	return func(o *options) error {
		o.batchSize = size
		return nil
	}
}

// Evaluate runs the configured metrics over the samples and returns the
// report. At minimum one metric must be registered via WithMetric,
// WithPCK, WithAUC, WithEPE, or WithNME.
func Evaluate(samples []types.Sample, opts ...Option) (*evaluation.Report, error) {
	o := &options{}
	for _, opt := range opts {
		if err := opt(o); err != nil {
			return nil, err
		}
	}

	if len(o.metrics) == 0 {
		return nil, types.NewError(types.ErrInvalidConfig,
			"at least one metric is required: use WithPCK, WithAUC, WithEPE, or WithNME")
	}

	runner := evaluation.NewRunner(o.meta, o.logger, o.metrics...)
	for _, obs := range o.observers {
		runner.AddObserver(obs)
	}

	size := o.batchSize
	if size <= 0 {
		size = len(samples)
	}
	for start := 0; start < len(samples); start += size {
		end := start + size
		if end > len(samples) {
			end = len(samples)
		}
		if err := runner.Process(samples[start:end]); err != nil {
			return nil, err
		}
	}

	return runner.Evaluate()
}
