package metrics

import (
	"fmt"

	"github.com/BaSui01/poseval/types"
)

// AUC computes the area under the PCK-over-threshold curve: the threshold
// sweeps linearly over [0, 1) in numThrs steps and the per-step accuracies
// are averaged. Distances are normalized by a fixed scalar factor.
type AUC struct {
	normFactor float64
	numThrs    int
	acc        accumulator
	meta       *types.DatasetMeta
}

// NewAUC creates an AUC calculator. normFactor is the scalar distance
// divisor (same unit as the keypoint coordinates) and numThrs the number
// of threshold samples.
func NewAUC(normFactor float64, numThrs int) (*AUC, error) {
	if normFactor <= 0 {
		return nil, types.NewErrorf(types.ErrInvalidConfig,
			"norm_factor should be positive, got %v", normFactor).WithMetric("auc")
	}
	if numThrs < 1 {
		return nil, types.NewErrorf(types.ErrInvalidConfig,
			"num_thrs should be at least 1, got %d", numThrs).WithMetric("auc")
	}
	return &AUC{normFactor: normFactor, numThrs: numThrs}, nil
}

// Name implements Metric.
func (m *AUC) Name() string { return "auc" }

// SetDatasetMeta implements Metric.
func (m *AUC) SetDatasetMeta(meta *types.DatasetMeta) { m.meta = meta }

// Process implements Metric.
func (m *AUC) Process(batch []types.Sample) error {
	if err := validateBatch(batch); err != nil {
		return err
	}
	for i := range batch {
		s := &batch[i]
		norms := make([]norm2, len(s.GroundTruth.Keypoints))
		for j := range norms {
			norms[j] = scalarNorm(m.normFactor)
		}
		m.acc.append(calcDistances(s.Prediction.Keypoints, s.GroundTruth.Keypoints,
			s.GroundTruth.Visible, norms))
	}
	return nil
}

// Evaluate implements Metric. The single output key is auc/@<numThrs>thrs.
func (m *AUC) Evaluate(size int) (map[string]float64, error) {
	rows := m.acc.take(size)
	auc, ok := keypointAUC(rows, m.numThrs)
	if !ok {
		return nil, types.NewError(types.ErrNoVisibleKeypoints,
			"no visible keypoints were accumulated").WithMetric("auc")
	}
	return map[string]float64{
		fmt.Sprintf("auc/@%dthrs", m.numThrs): auc,
	}, nil
}
