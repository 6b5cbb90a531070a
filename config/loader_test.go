package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BaSui01/poseval/types"
)

const suiteYAML = `
dataset:
  name: jhmdb
  num_keypoints: 15
  torso_indices: [4, 5]
  body_parts:
    - label: Head
      indices: [2]
    - label: Sho
      indices: [3, 4]
metrics:
  - type: pck
    thr: 0.05
    norm_items: [bbox, torso]
  - type: auc
    norm_factor: 20
    num_thrs: 4
  - type: epe
  - type: nme
    norm_mode: use_norm_item
    norm_item: box_size
`

func TestParse_FullSuite(t *testing.T) {
	cfg, err := Parse([]byte(suiteYAML))
	require.NoError(t, err)

	assert.Equal(t, "jhmdb", cfg.Dataset.Name)
	assert.Equal(t, 15, cfg.Dataset.NumKeypoints)
	require.Len(t, cfg.Metrics, 4)

	meta := cfg.BuildMeta()
	assert.Equal(t, [2]int{4, 5}, meta.TorsoPair())
	require.Len(t, meta.BodyParts, 2)
	assert.Equal(t, "Sho", meta.BodyParts[1].Label)

	ms, err := cfg.BuildMetrics()
	require.NoError(t, err)
	require.Len(t, ms, 4)
	assert.Equal(t, "pck", ms[0].Name())
	assert.Equal(t, "auc", ms[1].Name())
	assert.Equal(t, "epe", ms[2].Name())
	assert.Equal(t, "nme", ms[3].Name())
}

func TestParse_InvalidConfigs(t *testing.T) {
	t.Run("unknown metric type", func(t *testing.T) {
		_, err := Parse([]byte("metrics:\n  - type: bogus\n"))
		require.Error(t, err)
		assert.True(t, types.IsErrorCode(err, types.ErrInvalidConfig))
	})

	t.Run("bad torso pair", func(t *testing.T) {
		_, err := Parse([]byte("dataset:\n  torso_indices: [1, 2, 3]\nmetrics:\n  - type: epe\n"))
		require.Error(t, err)
		assert.True(t, types.IsErrorCode(err, types.ErrInvalidConfig))
	})

	t.Run("negative torso index", func(t *testing.T) {
		_, err := Parse([]byte("dataset:\n  torso_indices: [-1, 1]\nmetrics:\n  - type: epe\n"))
		require.Error(t, err)
		assert.True(t, types.IsErrorCode(err, types.ErrInvalidConfig))
	})

	t.Run("invalid metric parameters surface from constructor", func(t *testing.T) {
		cfg, err := Parse([]byte("metrics:\n  - type: pck\n    norm_items: [invalid]\n"))
		require.NoError(t, err)
		_, err = cfg.BuildMetrics()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "Should be one of 'bbox', 'head', 'torso'")
	})

	t.Run("malformed yaml", func(t *testing.T) {
		_, err := Parse([]byte("metrics: ["))
		require.Error(t, err)
	})
}

func TestLoader_Load(t *testing.T) {
	t.Run("from file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "suite.yaml")
		require.NoError(t, os.WriteFile(path, []byte(suiteYAML), 0o644))

		cfg, err := NewLoader().WithConfigPath(path).Load()
		require.NoError(t, err)
		assert.Equal(t, "jhmdb", cfg.Dataset.Name)
	})

	t.Run("missing file falls back to defaults", func(t *testing.T) {
		cfg, err := NewLoader().WithConfigPath("/does/not/exist.yaml").Load()
		require.NoError(t, err)
		require.Len(t, cfg.Metrics, 1)
		assert.Equal(t, "epe", cfg.Metrics[0].Type)
	})

	t.Run("custom validator rejects", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "suite.yaml")
		require.NoError(t, os.WriteFile(path, []byte(suiteYAML), 0o644))

		_, err := NewLoader().
			WithConfigPath(path).
			WithValidator(func(c *SuiteConfig) error {
				return types.NewError(types.ErrInvalidConfig, "rejected")
			}).
			Load()
		require.Error(t, err)
	})
}

func TestBuildRunner(t *testing.T) {
	cfg, err := Parse([]byte(suiteYAML))
	require.NoError(t, err)
	runner, err := cfg.BuildRunner(nil)
	require.NoError(t, err)
	assert.NotNil(t, runner)
}

func TestSuiteConfig_Defaults(t *testing.T) {
	cfg, err := Parse([]byte("metrics:\n  - type: pck\n  - type: auc\n"))
	require.NoError(t, err)
	ms, err := cfg.BuildMetrics()
	require.NoError(t, err)
	require.Len(t, ms, 2)
}
