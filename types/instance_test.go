package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func makeSample(instances, keypoints int) Sample {
	gtKpts := make([][]Point, instances)
	predKpts := make([][]Point, instances)
	visible := make([][]bool, instances)
	for i := range gtKpts {
		gtKpts[i] = make([]Point, keypoints)
		predKpts[i] = make([]Point, keypoints)
		visible[i] = make([]bool, keypoints)
		for k := range visible[i] {
			visible[i][k] = true
		}
	}
	return Sample{
		GroundTruth: GroundTruth{Keypoints: gtKpts, Visible: visible},
		Prediction:  Prediction{Keypoints: predKpts},
	}
}

func TestSampleValidate(t *testing.T) {
	t.Run("well-formed sample passes", func(t *testing.T) {
		s := makeSample(2, 5)
		assert.NoError(t, s.Validate())
	})

	t.Run("instance count mismatch", func(t *testing.T) {
		s := makeSample(2, 5)
		s.Prediction.Keypoints = s.Prediction.Keypoints[:1]
		err := s.Validate()
		require.Error(t, err)
		assert.True(t, IsErrorCode(err, ErrShapeMismatch))
	})

	t.Run("keypoint count mismatch", func(t *testing.T) {
		s := makeSample(2, 5)
		s.Prediction.Keypoints[1] = s.Prediction.Keypoints[1][:4]
		err := s.Validate()
		require.Error(t, err)
		assert.True(t, IsErrorCode(err, ErrShapeMismatch))
	})

	t.Run("visibility shape mismatch", func(t *testing.T) {
		s := makeSample(2, 5)
		s.GroundTruth.Visible[0] = s.GroundTruth.Visible[0][:3]
		err := s.Validate()
		require.Error(t, err)
		assert.True(t, IsErrorCode(err, ErrShapeMismatch))
	})
}

func TestBBoxLongestSide(t *testing.T) {
	b := BBox{X1: 0, Y1: 0, X2: 30, Y2: 40}
	assert.Equal(t, 40.0, b.LongestSide())
	assert.Equal(t, 30.0, b.Width())
	assert.Equal(t, 40.0, b.Height())
}

func TestPointDistanceTo(t *testing.T) {
	p := Point{X: 0, Y: 0}
	q := Point{X: 3, Y: 4}
	assert.InDelta(t, 5.0, p.DistanceTo(q), 1e-12)
}

func TestDatasetMetaTorsoPair(t *testing.T) {
	var m *DatasetMeta
	assert.Equal(t, [2]int{4, 5}, m.TorsoPair())

	pair := [2]int{3, 7}
	m = &DatasetMeta{TorsoIndices: &pair}
	assert.Equal(t, pair, m.TorsoPair())
}
