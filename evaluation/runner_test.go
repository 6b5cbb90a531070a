package evaluation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/BaSui01/poseval/metrics"
	"github.com/BaSui01/poseval/testutil"
	"github.com/BaSui01/poseval/types"
)

type captureObserver struct {
	reports []*Report
}

func (c *captureObserver) ObserveReport(r *Report) { c.reports = append(c.reports, r) }

func TestRunner_EvaluateMergesMetrics(t *testing.T) {
	pck, err := metrics.NewPCKAccuracy(0.5, "bbox")
	require.NoError(t, err)
	auc, err := metrics.NewAUC(20, 4)
	require.NoError(t, err)

	r := NewRunner(&types.DatasetMeta{Name: "coco", NumKeypoints: 5},
		zap.NewNop(), pck, auc, metrics.NewEPE())

	obs := &captureObserver{}
	r.AddObserver(obs)

	require.NoError(t, r.Process(testutil.ExactSamples(1, 5)))
	require.NoError(t, r.Process(testutil.ExactSamples(1, 5)))

	report, err := r.Evaluate()
	require.NoError(t, err)

	assert.NotEmpty(t, report.ID)
	assert.Equal(t, "coco", report.Dataset)
	assert.Equal(t, 2, report.SampleCount)
	assert.Equal(t, 2, report.InstanceCount)
	assert.Equal(t, 1.0, report.Metrics["pck/@thr-0.5"])
	assert.Equal(t, 1.0, report.Metrics["auc/@4thrs"])
	assert.Equal(t, 0.0, report.Metrics["epe/epe"])
	assert.False(t, report.EndTime.Before(report.StartTime))

	require.Len(t, obs.reports, 1)
	assert.Equal(t, report, obs.reports[0])
}

func TestRunner_PropagatesProcessError(t *testing.T) {
	pck, err := metrics.NewPCKAccuracy(0.5, "bbox")
	require.NoError(t, err)
	r := NewRunner(nil, nil, pck)

	batch := testutil.ExactSamples(1, 5)
	batch[0].GroundTruth.BBoxes = nil
	err = r.Process(batch)
	require.Error(t, err)
	assert.True(t, types.IsErrorCode(err, types.ErrMissingField))
}

func TestRunner_PropagatesEvaluateError(t *testing.T) {
	r := NewRunner(nil, nil, metrics.NewEPE())
	_, err := r.Evaluate()
	require.Error(t, err)
	assert.True(t, types.IsErrorCode(err, types.ErrNoVisibleKeypoints))
}

func TestRunner_DuplicateKeysRejected(t *testing.T) {
	a, err := metrics.NewAUC(20, 4)
	require.NoError(t, err)
	b, err := metrics.NewAUC(20, 4)
	require.NoError(t, err)
	r := NewRunner(nil, nil, a, b)

	require.NoError(t, r.Process(testutil.ExactSamples(1, 5)))
	_, err = r.Evaluate()
	require.Error(t, err)
	assert.True(t, types.IsErrorCode(err, types.ErrInvalidConfig))
}
