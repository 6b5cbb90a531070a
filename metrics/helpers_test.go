package metrics

import (
	"github.com/BaSui01/poseval/types"
)

// exactBatch builds numSamples single-instance samples with predictions
// identical to the ground truth. Sample i places keypoint i at
// (0.5*i, 0.5*i), marks keypoint (2*i) % numSamples invisible, and carries
// a bbox and head size derived from i (zero-sized for i == 0).
func exactBatch(numSamples, numKeypoints int) []types.Sample {
	batch := make([]types.Sample, 0, numSamples)
	for i := 0; i < numSamples; i++ {
		kpts := make([]types.Point, numKeypoints)
		if i < numKeypoints {
			kpts[i] = types.Point{X: 0.5 * float64(i), Y: 0.5 * float64(i)}
		}
		visible := make([]bool, numKeypoints)
		for k := range visible {
			visible[k] = true
		}
		visible[(2*i)%numSamples] = false

		side := 20 * float64(i)
		batch = append(batch, types.Sample{
			GroundTruth: types.GroundTruth{
				Keypoints: [][]types.Point{kpts},
				Visible:   [][]bool{visible},
				BBoxes:    []types.BBox{{X1: 0, Y1: 0, X2: side, Y2: side / 2}},
				HeadSize:  []float64{10 * float64(i)},
			},
			Prediction: types.Prediction{
				Keypoints: [][]types.Point{append([]types.Point(nil), kpts...)},
			},
		})
	}
	return batch
}

// fiveKeypointSample reproduces the per-channel output/target layout with
// distances [4, 8, 1, 10*sqrt(2), 20] and the third keypoint invisible.
func fiveKeypointSample() types.Sample {
	target := []types.Point{
		{X: 10, Y: 0},
		{X: 10, Y: 10},
		{X: 0, Y: -1},
		{X: 30, Y: 30},
		{X: 0, Y: 10},
	}
	output := []types.Point{
		{X: 10, Y: 4},
		{X: 10, Y: 18},
		{X: 0, Y: 0},
		{X: 40, Y: 40},
		{X: 20, Y: 10},
	}
	return types.Sample{
		GroundTruth: types.GroundTruth{
			Keypoints: [][]types.Point{target},
			Visible:   [][]bool{{true, true, false, true, true}},
		},
		Prediction: types.Prediction{
			Keypoints: [][]types.Point{output},
		},
	}
}

// jhmdbMeta returns a dataset meta with the seven-part body grouping used
// by grouped tPCK reporting over a 15-keypoint skeleton.
func jhmdbMeta() *types.DatasetMeta {
	torso := [2]int{4, 5}
	return &types.DatasetMeta{
		Name:         "jhmdb",
		NumKeypoints: 15,
		TorsoIndices: &torso,
		BodyParts: []types.BodyPart{
			{Label: "Head", Indices: []int{2}},
			{Label: "Sho", Indices: []int{3, 4}},
			{Label: "Elb", Indices: []int{7, 8}},
			{Label: "Wri", Indices: []int{11, 12}},
			{Label: "Hip", Indices: []int{5, 6}},
			{Label: "Knee", Indices: []int{9, 10}},
			{Label: "Ank", Indices: []int{13, 14}},
		},
	}
}
