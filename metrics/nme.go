package metrics

import (
	"fmt"

	"github.com/BaSui01/poseval/types"
)

// Normalization modes accepted by NME.
const (
	// NormModeNormItem divides errors by a named per-instance field
	// stored on the ground truth (e.g. "box_size").
	NormModeNormItem = "use_norm_item"

	// NormModeKeypointDistance divides errors by the ground-truth
	// distance between a designated keypoint pair (e.g. interocular).
	NormModeKeypointDistance = "keypoint_distance"
)

// DefaultKeypointIndices maps dataset names to the conventional keypoint
// pair used for keypoint-distance normalization when no explicit pair is
// configured. Entries can be overridden per evaluation through
// DatasetMeta.NMEDefaultIndices or NMEConfig.DefaultIndices.
var DefaultKeypointIndices = map[string][2]int{
	// horse10: nose and eye
	"horse10": {0, 1},
	// 300w and coco_wholebody_face: right-most and left-most eye corners
	"300w":                {36, 45},
	"coco_wholebody_face": {36, 45},
	// cofw: right-most and left-most eye corners
	"cofw": {8, 9},
	// aflw: left-most and right-most eye corners
	"aflw": {7, 11},
}

// NMEConfig configures an NME calculator.
type NMEConfig struct {
	// NormMode selects the normalization source; one of NormModeNormItem
	// or NormModeKeypointDistance.
	NormMode string

	// NormItem names the ground-truth field holding the per-instance
	// normalization factor. Required in use_norm_item mode.
	NormItem string

	// KeypointIndices is the keypoint pair whose ground-truth distance
	// normalizes errors in keypoint_distance mode. When empty the pair is
	// looked up from the dataset's default-indices table at Evaluate.
	KeypointIndices []int

	// DefaultIndices optionally replaces the package-level
	// DefaultKeypointIndices table for this calculator.
	DefaultIndices map[string][2]int
}

// NME computes the normalized mean error: the mean over visible keypoints
// of the Euclidean prediction error divided by a per-instance
// normalization factor.
type NME struct {
	cfg  NMEConfig
	meta *types.DatasetMeta

	acc accumulator
	// gtRows retains the per-instance ground-truth keypoints in
	// keypoint_distance mode; the normalizing pair may only be resolved
	// at Evaluate time.
	gtRows [][]types.Point
}

// NewNME creates an NME calculator.
func NewNME(cfg NMEConfig) (*NME, error) {
	switch cfg.NormMode {
	case NormModeNormItem:
		if cfg.NormItem == "" {
			return nil, types.NewError(types.ErrInvalidConfig,
				"`norm_mode` is set to `\"use_norm_item\"`, please specify the `norm_item`").WithMetric("nme")
		}
	case NormModeKeypointDistance:
	default:
		return nil, types.NewErrorf(types.ErrInvalidConfig,
			"`norm_mode` should be 'use_norm_item' or 'keypoint_distance', got %q",
			cfg.NormMode).WithMetric("nme")
	}
	return &NME{cfg: cfg}, nil
}

// Name implements Metric.
func (m *NME) Name() string { return "nme" }

// SetDatasetMeta implements Metric.
func (m *NME) SetDatasetMeta(meta *types.DatasetMeta) { m.meta = meta }

// Process implements Metric. In use_norm_item mode the normalization field
// must be present on every ground-truth instance; in keypoint_distance
// mode raw distances are accumulated together with the ground-truth
// keypoints for later normalization.
func (m *NME) Process(batch []types.Sample) error {
	if err := validateBatch(batch); err != nil {
		return err
	}
	switch m.cfg.NormMode {
	case NormModeNormItem:
		return m.processNormItem(batch)
	default:
		return m.processKeypointDistance(batch)
	}
}

func (m *NME) processNormItem(batch []types.Sample) error {
	staged := make([][]float64, 0, len(batch))
	for i := range batch {
		s := &batch[i]
		factors, ok := s.GroundTruth.Field(m.cfg.NormItem)
		if !ok || len(factors) != len(s.GroundTruth.Keypoints) {
			return types.NewErrorf(types.ErrMissingField,
				"the ground truth data info do not have the expected normalized factor %q",
				m.cfg.NormItem).WithMetric("nme")
		}
		norms := make([]norm2, len(factors))
		for j, f := range factors {
			norms[j] = scalarNorm(f)
		}
		staged = append(staged, calcDistances(s.Prediction.Keypoints,
			s.GroundTruth.Keypoints, s.GroundTruth.Visible, norms)...)
	}
	m.acc.append(staged)
	return nil
}

func (m *NME) processKeypointDistance(batch []types.Sample) error {
	for i := range batch {
		s := &batch[i]
		norms := make([]norm2, len(s.GroundTruth.Keypoints))
		for j := range norms {
			norms[j] = scalarNorm(1)
		}
		m.acc.append(calcDistances(s.Prediction.Keypoints,
			s.GroundTruth.Keypoints, s.GroundTruth.Visible, norms))
		m.gtRows = append(m.gtRows, s.GroundTruth.Keypoints...)
	}
	return nil
}

// Evaluate implements Metric. The output key is nme/@<norm_item> in
// use_norm_item mode and nme/@[i, j] in keypoint_distance mode.
func (m *NME) Evaluate(size int) (map[string]float64, error) {
	rows := m.acc.take(size)
	var key string
	switch m.cfg.NormMode {
	case NormModeNormItem:
		key = fmt.Sprintf("nme/@%s", m.cfg.NormItem)
	default:
		pair, err := m.resolveIndices(rows)
		if err != nil {
			return nil, err
		}
		gtRows := m.gtRows
		m.gtRows = nil
		if size > 0 && size < len(gtRows) {
			gtRows = gtRows[:size]
		}
		for i := range rows {
			if pair[0] >= len(gtRows[i]) || pair[1] >= len(gtRows[i]) {
				return nil, types.NewErrorf(types.ErrIndexOutOfRange,
					"instance %d has %d keypoints, the normalization pair [%d, %d] is out of range",
					i, len(gtRows[i]), pair[0], pair[1]).WithMetric("nme")
			}
			d := gtRows[i][pair[0]].DistanceTo(gtRows[i][pair[1]])
			for k := range rows[i] {
				if rows[i][k] == invalidDistance {
					continue
				}
				if d <= 0 {
					rows[i][k] = invalidDistance
					continue
				}
				rows[i][k] /= d
			}
		}
		key = fmt.Sprintf("nme/@[%d, %d]", pair[0], pair[1])
	}
	mean, ok := pooledMean(rows)
	if !ok {
		return nil, types.NewError(types.ErrNoVisibleKeypoints,
			"no visible keypoints were accumulated").WithMetric("nme")
	}
	return map[string]float64{key: mean}, nil
}

// resolveIndices determines the normalizing keypoint pair: the explicitly
// configured indices, or the dataset's entry in the default-indices table.
func (m *NME) resolveIndices(rows [][]float64) ([2]int, error) {
	var pair [2]int
	switch {
	case len(m.cfg.KeypointIndices) > 0:
		if len(m.cfg.KeypointIndices) != 2 {
			return pair, types.NewErrorf(types.ErrInvalidConfig,
				"the keypoint indices used for normalization should be a pair, got %d",
				len(m.cfg.KeypointIndices)).WithMetric("nme")
		}
		pair = [2]int{m.cfg.KeypointIndices[0], m.cfg.KeypointIndices[1]}
	default:
		if m.meta == nil {
			return pair, types.NewError(types.ErrMissingMeta,
				"dataset meta is required to resolve default keypoint indices").WithMetric("nme")
		}
		var ok bool
		if pair, ok = m.meta.NMEDefaultIndices[m.meta.Name]; !ok {
			table := m.cfg.DefaultIndices
			if table == nil {
				table = DefaultKeypointIndices
			}
			if pair, ok = table[m.meta.Name]; !ok {
				return pair, types.NewErrorf(types.ErrUnknownDataset,
					"can not find the keypoint_indices in the default-indices table for dataset %q, please specify `keypoint_indices` explicitly",
					m.meta.Name).WithMetric("nme")
			}
		}
	}
	numKeypoints := 0
	if m.meta != nil && m.meta.NumKeypoints > 0 {
		numKeypoints = m.meta.NumKeypoints
	} else if len(rows) > 0 {
		numKeypoints = len(rows[0])
	}
	for _, k := range pair {
		if k < 0 || (numKeypoints > 0 && k >= numKeypoints) {
			return pair, types.NewErrorf(types.ErrIndexOutOfRange,
				"the dataset does not contain the required keypoint index %d (%d keypoints)",
				k, numKeypoints).WithMetric("nme")
		}
	}
	return pair, nil
}
