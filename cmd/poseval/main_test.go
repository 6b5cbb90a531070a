package main

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BaSui01/poseval/testutil"
	"github.com/BaSui01/poseval/types"
)

func TestSplitBatches(t *testing.T) {
	samples := testutil.ExactSamples(7, 5)

	t.Run("single batch when size is zero", func(t *testing.T) {
		batches := splitBatches(samples, 0)
		require.Len(t, batches, 1)
		assert.Len(t, batches[0], 7)
	})

	t.Run("even split with remainder", func(t *testing.T) {
		batches := splitBatches(samples, 3)
		require.Len(t, batches, 3)
		assert.Len(t, batches[0], 3)
		assert.Len(t, batches[1], 3)
		assert.Len(t, batches[2], 1)
	})

	t.Run("size larger than input", func(t *testing.T) {
		batches := splitBatches(samples, 100)
		require.Len(t, batches, 1)
		assert.Len(t, batches[0], 7)
	})

	t.Run("empty input", func(t *testing.T) {
		assert.Nil(t, splitBatches(nil, 3))
	})
}

func TestLoadSamples(t *testing.T) {
	dir := t.TempDir()

	t.Run("round trip", func(t *testing.T) {
		samples := testutil.ExactSamples(2, 5)
		data, err := json.Marshal(samples)
		require.NoError(t, err)

		path := filepath.Join(dir, "samples.json")
		require.NoError(t, os.WriteFile(path, data, 0o644))

		loaded, err := loadSamples(path)
		require.NoError(t, err)
		require.Len(t, loaded, 2)
		assert.Equal(t, samples[0].GroundTruth.Keypoints, loaded[0].GroundTruth.Keypoints)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := loadSamples(filepath.Join(dir, "nope.json"))
		assert.Error(t, err)
	})

	t.Run("malformed json", func(t *testing.T) {
		path := filepath.Join(dir, "bad.json")
		require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))
		_, err := loadSamples(path)
		assert.Error(t, err)
	})

	t.Run("shape mismatch rejected", func(t *testing.T) {
		samples := testutil.ExactSamples(1, 5)
		samples[0].Prediction.Keypoints[0] = samples[0].Prediction.Keypoints[0][:3]
		data, err := json.Marshal(samples)
		require.NoError(t, err)

		path := filepath.Join(dir, "mismatch.json")
		require.NoError(t, os.WriteFile(path, data, 0o644))

		_, err = loadSamples(path)
		require.Error(t, err)
		assert.True(t, types.IsErrorCode(err, types.ErrShapeMismatch))
	})
}
