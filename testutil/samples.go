// =============================================================================
// 🧪 关键点样本生成辅助
// =============================================================================
// 提供评估指标测试所需的确定性样本批
//
// 使用方法:
//
//	batch := testutil.ExactSamples(8, 15)
//	batch := testutil.PerturbedSamples(1, []float64{4, 8, 1, 14.14, 20})
//
// =============================================================================
package testutil

import (
	"math"

	"github.com/BaSui01/poseval/types"
)

// ExactSamples 构造 numSamples 个单实例样本，预测与真值一致。
// 第 i 个样本把关键点 i 放在 (i, 2i)，其余为原点；所有关键点可见；
// 附带 20x10 的 bbox、头部尺寸 10 和 box_size 归一化字段。
func ExactSamples(numSamples, numKeypoints int) []types.Sample {
	batch := make([]types.Sample, 0, numSamples)
	for i := 0; i < numSamples; i++ {
		kpts := make([]types.Point, numKeypoints)
		visible := make([]bool, numKeypoints)
		for k := range kpts {
			visible[k] = true
		}
		if i < numKeypoints {
			kpts[i] = types.Point{X: float64(i), Y: float64(2 * i)}
		}
		batch = append(batch, types.Sample{
			GroundTruth: types.GroundTruth{
				Keypoints: [][]types.Point{kpts},
				Visible:   [][]bool{visible},
				BBoxes:    []types.BBox{{X2: 20, Y2: 10}},
				HeadSize:  []float64{10},
				Fields:    map[string][]float64{"box_size": {15}},
			},
			Prediction: types.Prediction{
				Keypoints: [][]types.Point{append([]types.Point(nil), kpts...)},
			},
		})
	}
	return batch
}

// PerturbedSamples 构造 numSamples 个单实例样本，第 k 个关键点的预测
// 沿对角线偏移，使其与真值的欧氏距离恰为 dists[k]。
func PerturbedSamples(numSamples int, dists []float64) []types.Sample {
	batch := make([]types.Sample, 0, numSamples)
	for i := 0; i < numSamples; i++ {
		kpts := make([]types.Point, len(dists))
		preds := make([]types.Point, len(dists))
		visible := make([]bool, len(dists))
		for k, d := range dists {
			kpts[k] = types.Point{X: float64(10 * k), Y: float64(10 * k)}
			offset := d / math.Sqrt2
			preds[k] = types.Point{X: kpts[k].X + offset, Y: kpts[k].Y + offset}
			visible[k] = true
		}
		batch = append(batch, types.Sample{
			GroundTruth: types.GroundTruth{
				Keypoints: [][]types.Point{kpts},
				Visible:   [][]bool{visible},
				BBoxes:    []types.BBox{{X2: 20, Y2: 10}},
				HeadSize:  []float64{10},
				Fields:    map[string][]float64{"box_size": {15}},
			},
			Prediction: types.Prediction{Keypoints: [][]types.Point{preds}},
		})
	}
	return batch
}

// JHMDBMeta 返回带七个身体部位分组的 15 关键点数据集元信息。
func JHMDBMeta() *types.DatasetMeta {
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

// Horse10Meta 返回 22 关键点、NME 默认对为 (0, 1) 的数据集元信息。
func Horse10Meta() *types.DatasetMeta {
	return &types.DatasetMeta{
		Name:              "horse10",
		NumKeypoints:      22,
		NMEDefaultIndices: map[string][2]int{"horse10": {0, 1}},
	}
}
