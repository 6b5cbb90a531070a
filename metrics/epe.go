package metrics

import (
	"github.com/BaSui01/poseval/types"
)

// EPE computes the end-point error: the mean raw Euclidean distance over
// all visible keypoints across all instances. No normalization is applied.
type EPE struct {
	acc  accumulator
	meta *types.DatasetMeta
}

// NewEPE creates an EPE calculator.
func NewEPE() *EPE { return &EPE{} }

// Name implements Metric.
func (m *EPE) Name() string { return "epe" }

// SetDatasetMeta implements Metric.
func (m *EPE) SetDatasetMeta(meta *types.DatasetMeta) { m.meta = meta }

// Process implements Metric.
func (m *EPE) Process(batch []types.Sample) error {
	if err := validateBatch(batch); err != nil {
		return err
	}
	for i := range batch {
		s := &batch[i]
		norms := make([]norm2, len(s.GroundTruth.Keypoints))
		for j := range norms {
			norms[j] = scalarNorm(1)
		}
		m.acc.append(calcDistances(s.Prediction.Keypoints, s.GroundTruth.Keypoints,
			s.GroundTruth.Visible, norms))
	}
	return nil
}

// Evaluate implements Metric. The single output key is epe/epe. When not a
// single visible keypoint was accumulated the mean is undefined; rather
// than silently reporting 0 this returns a NO_VISIBLE_KEYPOINTS error.
func (m *EPE) Evaluate(size int) (map[string]float64, error) {
	rows := m.acc.take(size)
	mean, ok := pooledMean(rows)
	if !ok {
		return nil, types.NewError(types.ErrNoVisibleKeypoints,
			"no visible keypoints were accumulated").WithMetric("epe")
	}
	return map[string]float64{"epe/epe": mean}, nil
}
