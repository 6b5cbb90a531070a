package types

// GroundTruth holds the annotated instances of a single image: keypoint
// coordinates, per-keypoint visibility, and the normalization fields that
// metrics may consume. Keypoints and Visible are indexed
// [instance][keypoint]; the per-instance slices (BBoxes, HeadSize, Fields
// values) are indexed by instance.
type GroundTruth struct {
	Keypoints [][]Point `json:"keypoints"`
	Visible   [][]bool  `json:"keypoints_visible"`

	// BBoxes are per-instance bounding boxes, required when a metric
	// normalizes by bbox size.
	BBoxes []BBox `json:"bboxes,omitempty"`

	// HeadSize is the per-instance head size, required for PCKh.
	HeadSize []float64 `json:"head_size,omitempty"`

	// Fields carries arbitrary named per-instance normalization scalars
	// (e.g. "box_size"), consumed by NME in use_norm_item mode.
	Fields map[string][]float64 `json:"fields,omitempty"`
}

// Field returns the named per-instance normalization values.
func (g *GroundTruth) Field(name string) ([]float64, bool) {
	v, ok := g.Fields[name]
	return v, ok
}

// Prediction holds the predicted keypoint coordinates of a single image,
// indexed [instance][keypoint] to mirror GroundTruth.Keypoints.
type Prediction struct {
	Keypoints [][]Point `json:"keypoints"`
}

// Sample pairs one ground-truth image with its prediction. Metrics process
// batches of samples.
type Sample struct {
	GroundTruth GroundTruth `json:"gt_instances"`
	Prediction  Prediction  `json:"pred_instances"`
}

// Validate checks the shape invariants shared by every metric: prediction
// and ground truth must agree on instance and keypoint counts, and the
// visibility mask must mirror the keypoint layout.
func (s *Sample) Validate() error {
	gt, pred := s.GroundTruth.Keypoints, s.Prediction.Keypoints
	if len(gt) != len(pred) {
		return NewErrorf(ErrShapeMismatch,
			"instance count mismatch: ground truth has %d, prediction has %d",
			len(gt), len(pred))
	}
	if len(s.GroundTruth.Visible) != len(gt) {
		return NewErrorf(ErrShapeMismatch,
			"visibility mask has %d instances, ground truth has %d",
			len(s.GroundTruth.Visible), len(gt))
	}
	for i := range gt {
		if len(gt[i]) != len(pred[i]) {
			return NewErrorf(ErrShapeMismatch,
				"keypoint count mismatch at instance %d: ground truth has %d, prediction has %d",
				i, len(gt[i]), len(pred[i]))
		}
		if len(s.GroundTruth.Visible[i]) != len(gt[i]) {
			return NewErrorf(ErrShapeMismatch,
				"visibility mask at instance %d has %d keypoints, ground truth has %d",
				i, len(s.GroundTruth.Visible[i]), len(gt[i]))
		}
	}
	return nil
}
