package metrics

import (
	"strconv"

	"github.com/BaSui01/poseval/types"
)

// Metric is the two-phase evaluation protocol shared by all keypoint
// metrics: Process accumulates per-instance results batch by batch,
// Evaluate reduces the accumulated results into named scalar metrics.
//
// A Metric instance is single-use: Evaluate consumes the accumulator and
// the instance should be discarded afterwards. Concurrent Process calls on
// the same instance require external locking.
type Metric interface {
	// Name returns the metric family name (e.g. "pck", "auc").
	Name() string

	// SetDatasetMeta supplies the dataset metadata. Must be called before
	// metrics that consume grouping or default-index information are
	// evaluated.
	SetDatasetMeta(meta *types.DatasetMeta)

	// Process accumulates one batch of ground-truth/prediction pairs.
	Process(batch []types.Sample) error

	// Evaluate reduces the accumulated results over the first size
	// processed instances (all of them when size <= 0 or exceeds the
	// accumulated count) into a map from metric key to scalar value.
	Evaluate(size int) (map[string]float64, error)
}

// accumulator is the process-lifetime buffer shared by the calculators:
// one distance row and one validity row per processed instance. Rows are
// appended by Process and consumed destructively by Evaluate.
type accumulator struct {
	dists [][]float64
}

func (a *accumulator) append(rows [][]float64) {
	a.dists = append(a.dists, rows...)
}

// take returns the first size rows and resets the accumulator. size <= 0
// selects every accumulated row.
func (a *accumulator) take(size int) [][]float64 {
	rows := a.dists
	a.dists = nil
	if size > 0 && size < len(rows) {
		rows = rows[:size]
	}
	return rows
}

func (a *accumulator) len() int { return len(a.dists) }

// formatThreshold renders a threshold the way it appears in metric keys,
// with no trailing zeros (0.5 -> "0.5", 0.05 -> "0.05").
func formatThreshold(thr float64) string {
	return strconv.FormatFloat(thr, 'g', -1, 64)
}

func validateBatch(batch []types.Sample) error {
	for i := range batch {
		if err := batch[i].Validate(); err != nil {
			return err
		}
	}
	return nil
}
