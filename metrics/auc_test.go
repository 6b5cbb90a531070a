package metrics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BaSui01/poseval/types"
)

func TestNewAUC_InvalidConfig(t *testing.T) {
	_, err := NewAUC(0, 4)
	require.Error(t, err)
	assert.True(t, types.IsErrorCode(err, types.ErrInvalidConfig))

	_, err = NewAUC(20, 0)
	require.Error(t, err)
	assert.True(t, types.IsErrorCode(err, types.ErrInvalidConfig))
}

func TestAUC_Evaluate(t *testing.T) {
	m, err := NewAUC(20, 4)
	require.NoError(t, err)
	require.NoError(t, m.Process([]types.Sample{fiveKeypointSample()}))

	got, err := m.Evaluate(1)
	require.NoError(t, err)
	assert.Equal(t, map[string]float64{"auc/@4thrs": 0.375}, got)
}

func TestAUC_ExactPredictions(t *testing.T) {
	m, err := NewAUC(20, 20)
	require.NoError(t, err)
	require.NoError(t, m.Process(exactBatch(4, 5)))

	got, err := m.Evaluate(4)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, got["auc/@20thrs"], 1e-12)
}

func TestAUC_NoVisibleKeypoints(t *testing.T) {
	s := fiveKeypointSample()
	for k := range s.GroundTruth.Visible[0] {
		s.GroundTruth.Visible[0][k] = false
	}
	m, err := NewAUC(20, 4)
	require.NoError(t, err)
	require.NoError(t, m.Process([]types.Sample{s}))
	_, err = m.Evaluate(1)
	require.Error(t, err)
	assert.True(t, types.IsErrorCode(err, types.ErrNoVisibleKeypoints))
}
