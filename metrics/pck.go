package metrics

import (
	"fmt"

	"github.com/BaSui01/poseval/types"
)

// Normalization items accepted by PCKAccuracy.
const (
	NormItemBBox  = "bbox"
	NormItemHead  = "head"
	NormItemTorso = "torso"
)

// PCKAccuracy computes PCK (Percentage of Correct Keypoints) and its
// variants: PCKh when normalized by head size, tPCK when normalized by
// torso size. A predicted keypoint is correct when its ground-truth
// distance, divided by the normalization size, does not exceed the
// threshold.
//
// With torso normalization and body-part grouping available in the dataset
// metadata, Evaluate additionally reports per-body-part accuracies and
// their mean.
type PCKAccuracy struct {
	thr       float64
	normItems []string
	meta      *types.DatasetMeta
	acc       map[string]*accumulator
}

// NewPCKAccuracy creates a PCK calculator with the given threshold
// (normalized distance, must be positive) and normalization items. With no
// items, "bbox" is assumed.
func NewPCKAccuracy(thr float64, normItems ...string) (*PCKAccuracy, error) {
	if thr <= 0 {
		return nil, types.NewErrorf(types.ErrInvalidConfig,
			"thr should be a positive normalized distance, got %v", thr).WithMetric("pck")
	}
	if len(normItems) == 0 {
		normItems = []string{NormItemBBox}
	}
	acc := make(map[string]*accumulator, len(normItems))
	for _, item := range normItems {
		switch item {
		case NormItemBBox, NormItemHead, NormItemTorso:
		default:
			return nil, types.NewErrorf(types.ErrInvalidConfig,
				"invalid norm_item %q. Should be one of 'bbox', 'head', 'torso'",
				item).WithMetric("pck")
		}
		acc[item] = &accumulator{}
	}
	return &PCKAccuracy{thr: thr, normItems: normItems, acc: acc}, nil
}

// Name implements Metric.
func (m *PCKAccuracy) Name() string { return "pck" }

// SetDatasetMeta implements Metric.
func (m *PCKAccuracy) SetDatasetMeta(meta *types.DatasetMeta) { m.meta = meta }

// Process implements Metric. It records, for every requested normalization
// item, the normalized per-keypoint distances of each instance in the
// batch. Failed validation leaves the accumulator untouched.
func (m *PCKAccuracy) Process(batch []types.Sample) error {
	if err := validateBatch(batch); err != nil {
		return err
	}
	staged := make(map[string][][]float64, len(m.normItems))
	for i := range batch {
		s := &batch[i]
		for _, item := range m.normItems {
			norms, err := m.normSizes(item, &s.GroundTruth)
			if err != nil {
				return err
			}
			rows := calcDistances(s.Prediction.Keypoints, s.GroundTruth.Keypoints,
				s.GroundTruth.Visible, norms)
			staged[item] = append(staged[item], rows...)
		}
	}
	for item, rows := range staged {
		m.acc[item].append(rows)
	}
	return nil
}

func (m *PCKAccuracy) normSizes(item string, gt *types.GroundTruth) ([]norm2, error) {
	n := len(gt.Keypoints)
	norms := make([]norm2, n)
	switch item {
	case NormItemBBox:
		if len(gt.BBoxes) != n {
			return nil, types.NewErrorf(types.ErrMissingField,
				"the ground truth data do not have bboxes for all %d instances", n).WithMetric("pck")
		}
		for i, b := range gt.BBoxes {
			norms[i] = scalarNorm(b.LongestSide())
		}
	case NormItemHead:
		if len(gt.HeadSize) != n {
			return nil, types.NewErrorf(types.ErrMissingField,
				"the ground truth data do not have head_size for all %d instances", n).WithMetric("pck")
		}
		for i, h := range gt.HeadSize {
			norms[i] = scalarNorm(h)
		}
	case NormItemTorso:
		pair := m.meta.TorsoPair()
		for i, kpts := range gt.Keypoints {
			if pair[0] < 0 || pair[1] < 0 || pair[0] >= len(kpts) || pair[1] >= len(kpts) {
				return nil, types.NewErrorf(types.ErrIndexOutOfRange,
					"the dataset does not contain the torso keypoint pair [%d, %d] (%d keypoints)",
					pair[0], pair[1], len(kpts)).WithMetric("pck")
			}
			norms[i] = scalarNorm(kpts[pair[0]].DistanceTo(kpts[pair[1]]))
		}
	}
	return norms, nil
}

// Evaluate implements Metric. Keys follow pck/<label>@thr-<thr>, where the
// label is empty for bbox normalization, PCKh for head normalization, and
// the body-part name (plus Mean) for grouped torso normalization. Torso
// normalization without grouping metadata reports a single tPCK entry.
func (m *PCKAccuracy) Evaluate(size int) (map[string]float64, error) {
	out := make(map[string]float64)
	thr := formatThreshold(m.thr)
	for _, item := range m.normItems {
		rows := m.acc[item].take(size)
		perChannel, avg, ok := pckAccuracy(rows, m.thr)
		if !ok {
			return nil, types.NewError(types.ErrNoVisibleKeypoints,
				"no visible keypoints were accumulated").WithMetric("pck")
		}
		switch item {
		case NormItemBBox:
			out[fmt.Sprintf("pck/@thr-%s", thr)] = avg
		case NormItemHead:
			out[fmt.Sprintf("pck/PCKh@thr-%s", thr)] = avg
		case NormItemTorso:
			if m.meta == nil || len(m.meta.BodyParts) == 0 {
				out[fmt.Sprintf("pck/tPCK@thr-%s", thr)] = avg
				continue
			}
			if err := m.groupedAccuracy(out, perChannel, thr); err != nil {
				return nil, err
			}
		}
	}
	return out, nil
}

// groupedAccuracy reports one accuracy per body part (mean over the
// part's keypoint channels) plus the mean over all reported parts.
func (m *PCKAccuracy) groupedAccuracy(out map[string]float64, perChannel []float64, thr string) error {
	var meanSum float64
	var meanCount int
	for _, part := range m.meta.BodyParts {
		var sum float64
		var count int
		for _, k := range part.Indices {
			if k < 0 || k >= len(perChannel) {
				return types.NewErrorf(types.ErrIndexOutOfRange,
					"body part %q refers to keypoint %d, dataset has %d keypoints",
					part.Label, k, len(perChannel)).WithMetric("pck")
			}
			if perChannel[k] == invalidDistance {
				continue
			}
			sum += perChannel[k]
			count++
		}
		if count == 0 {
			continue
		}
		acc := sum / float64(count)
		out[fmt.Sprintf("pck/%s@thr-%s", part.Label, thr)] = acc
		meanSum += acc
		meanCount++
	}
	if meanCount > 0 {
		out[fmt.Sprintf("pck/Mean@thr-%s", thr)] = meanSum / float64(meanCount)
	}
	return nil
}
