package types

// BodyPart groups keypoint indices under a display label (e.g. "Head",
// "Sho"). Ordered lists of body parts drive the grouped tPCK breakdown.
type BodyPart struct {
	Label   string `json:"label" yaml:"label"`
	Indices []int  `json:"indices" yaml:"indices"`
}

// DatasetMeta describes the dataset an evaluation runs against. It is
// supplied externally (usually from a config file) and consumed read-only
// by metrics.
type DatasetMeta struct {
	// Name identifies the dataset (e.g. "jhmdb", "horse10").
	Name string `json:"name" yaml:"name"`

	// NumKeypoints is the keypoint cardinality of the dataset skeleton.
	NumKeypoints int `json:"num_keypoints" yaml:"num_keypoints"`

	// KeypointNames are optional display names, indexed by keypoint.
	KeypointNames []string `json:"keypoint_names,omitempty" yaml:"keypoint_names,omitempty"`

	// BodyParts is the optional ordered grouping used for per-body-part
	// PCK reporting under torso normalization.
	BodyParts []BodyPart `json:"body_parts,omitempty" yaml:"body_parts,omitempty"`

	// TorsoIndices designates the keypoint pair whose ground-truth
	// distance defines the torso size. Nil selects the conventional
	// pair (4, 5).
	TorsoIndices *[2]int `json:"torso_indices,omitempty" yaml:"torso_indices,omitempty"`

	// FlipPairs lists horizontally mirrored keypoint index pairs.
	FlipPairs [][2]int `json:"flip_pairs,omitempty" yaml:"flip_pairs,omitempty"`

	// NMEDefaultIndices maps dataset names to the default keypoint pair
	// used by NME keypoint_distance normalization when no explicit pair
	// is configured.
	NMEDefaultIndices map[string][2]int `json:"nme_default_indices,omitempty" yaml:"nme_default_indices,omitempty"`
}

// TorsoPair returns the torso keypoint pair, falling back to (4, 5).
func (m *DatasetMeta) TorsoPair() [2]int {
	if m != nil && m.TorsoIndices != nil {
		return *m.TorsoIndices
	}
	return [2]int{4, 5}
}
