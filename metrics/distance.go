package metrics

import (
	"github.com/BaSui01/poseval/types"
)

// invalidDistance marks keypoints excluded from every aggregate: invisible
// in the ground truth, or belonging to an instance with a nonpositive
// normalization factor.
const invalidDistance = -1

// norm2 is a per-axis normalization factor (x divisor, y divisor).
type norm2 [2]float64

// scalarNorm returns a norm2 that divides both axes by s.
func scalarNorm(s float64) norm2 { return norm2{s, s} }

// calcDistances computes the per-keypoint normalized Euclidean distances
// for one image: rows are instances, columns keypoints. Invisible
// keypoints get invalidDistance; an instance whose normalization factor is
// nonpositive on either axis is excluded entirely. Each coordinate delta
// is divided by the matching axis of the instance's normalization factor
// before taking the norm.
func calcDistances(pred, gt [][]types.Point, visible [][]bool, norms []norm2) [][]float64 {
	rows := make([][]float64, len(gt))
	for i := range gt {
		row := make([]float64, len(gt[i]))
		nx, ny := norms[i][0], norms[i][1]
		for k := range gt[i] {
			if !visible[i][k] || nx <= 0 || ny <= 0 {
				row[k] = invalidDistance
				continue
			}
			dx := (pred[i][k].X - gt[i][k].X) / nx
			dy := (pred[i][k].Y - gt[i][k].Y) / ny
			row[k] = types.Point{X: dx, Y: dy}.DistanceTo(types.Point{})
		}
		rows[i] = row
	}
	return rows
}

// pckAccuracy computes the per-keypoint-channel accuracy under a distance
// threshold (a keypoint is correct when its normalized distance does not
// exceed the threshold), plus the average over channels that have at least
// one valid instance. Channels with no valid instances report
// invalidDistance and are excluded from the average. ok is false when no
// channel has a valid instance.
func pckAccuracy(dists [][]float64, thr float64) (perChannel []float64, avg float64, ok bool) {
	if len(dists) == 0 {
		return nil, 0, false
	}
	numChannels := len(dists[0])
	perChannel = make([]float64, numChannels)
	var sum float64
	var counted int
	for k := 0; k < numChannels; k++ {
		var correct, valid int
		for i := range dists {
			d := dists[i][k]
			if d == invalidDistance {
				continue
			}
			valid++
			if d <= thr {
				correct++
			}
		}
		if valid == 0 {
			perChannel[k] = invalidDistance
			continue
		}
		perChannel[k] = float64(correct) / float64(valid)
		sum += perChannel[k]
		counted++
	}
	if counted == 0 {
		return perChannel, 0, false
	}
	return perChannel, sum / float64(counted), true
}

// keypointAUC sweeps the threshold over i/numThrs for i in [0, numThrs)
// and returns the mean PCK accuracy across the sweep.
func keypointAUC(dists [][]float64, numThrs int) (float64, bool) {
	var sum float64
	for i := 0; i < numThrs; i++ {
		thr := float64(i) / float64(numThrs)
		_, avg, ok := pckAccuracy(dists, thr)
		if !ok {
			return 0, false
		}
		sum += avg
	}
	return sum / float64(numThrs), true
}

// pooledMean returns the mean over every valid entry of the distance
// matrix, pooling instances and keypoints together.
func pooledMean(dists [][]float64) (float64, bool) {
	var sum float64
	var valid int
	for i := range dists {
		for _, d := range dists[i] {
			if d == invalidDistance {
				continue
			}
			sum += d
			valid++
		}
	}
	if valid == 0 {
		return 0, false
	}
	return sum / float64(valid), true
}
