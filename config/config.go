// =============================================================================
// 📦 PoseVal 评估套件配置
// =============================================================================
// 套件文件描述一次评估：数据集元信息 + 要运行的指标列表
//
// 示例:
//
//	dataset:
//	  name: jhmdb
//	  num_keypoints: 15
//	metrics:
//	  - type: pck
//	    thr: 0.05
//	    norm_items: [bbox, torso]
//	  - type: epe
//
// =============================================================================
package config

import (
	"go.uber.org/zap"

	"github.com/BaSui01/poseval/evaluation"
	"github.com/BaSui01/poseval/metrics"
	"github.com/BaSui01/poseval/types"
)

// 指标配置默认值
const (
	// DefaultPCKThr PCK 阈值默认值
	DefaultPCKThr = 0.05
	// DefaultAUCNormFactor AUC 归一化因子默认值
	DefaultAUCNormFactor = 30.0
	// DefaultAUCNumThrs AUC 阈值采样数默认值
	DefaultAUCNumThrs = 25
)

// SuiteConfig 是一次评估的完整配置
type SuiteConfig struct {
	// Dataset 数据集元信息
	Dataset DatasetConfig `yaml:"dataset"`
	// Metrics 指标列表
	Metrics []MetricConfig `yaml:"metrics"`
}

// DatasetConfig 数据集元信息配置
type DatasetConfig struct {
	// 数据集名称
	Name string `yaml:"name"`
	// 关键点数量
	NumKeypoints int `yaml:"num_keypoints"`
	// 关键点名称（可选）
	KeypointNames []string `yaml:"keypoint_names,omitempty"`
	// 身体部位分组（可选，tPCK 分组统计）
	BodyParts []types.BodyPart `yaml:"body_parts,omitempty"`
	// 躯干关键点对（可选）
	TorsoIndices []int `yaml:"torso_indices,omitempty"`
	// 水平翻转关键点对（可选）
	FlipPairs [][]int `yaml:"flip_pairs,omitempty"`
	// NME 默认关键点对表（可选，按数据集名）
	NMEDefaultIndices map[string][]int `yaml:"nme_default_indices,omitempty"`
}

// MetricConfig 单个指标配置
type MetricConfig struct {
	// 指标类型: pck / auc / epe / nme
	Type string `yaml:"type"`

	// Thr PCK 阈值
	Thr float64 `yaml:"thr,omitempty"`
	// NormItems PCK 归一化项: bbox / head / torso
	NormItems []string `yaml:"norm_items,omitempty"`

	// NormFactor AUC 归一化因子
	NormFactor float64 `yaml:"norm_factor,omitempty"`
	// NumThrs AUC 阈值采样数
	NumThrs int `yaml:"num_thrs,omitempty"`

	// NormMode NME 归一化模式: use_norm_item / keypoint_distance
	NormMode string `yaml:"norm_mode,omitempty"`
	// NormItem NME 归一化字段名
	NormItem string `yaml:"norm_item,omitempty"`
	// KeypointIndices NME 归一化关键点对
	KeypointIndices []int `yaml:"keypoint_indices,omitempty"`
}

// DefaultSuiteConfig 返回默认套件：仅 EPE，无数据集元信息。
func DefaultSuiteConfig() *SuiteConfig {
	return &SuiteConfig{
		Metrics: []MetricConfig{{Type: "epe"}},
	}
}

// Validate 校验套件配置。
func (c *SuiteConfig) Validate() error {
	if len(c.Metrics) == 0 {
		return types.NewError(types.ErrInvalidConfig, "suite has no metrics")
	}
	if len(c.Dataset.TorsoIndices) != 0 && len(c.Dataset.TorsoIndices) != 2 {
		return types.NewErrorf(types.ErrInvalidConfig,
			"torso_indices should be a pair, got %d entries", len(c.Dataset.TorsoIndices))
	}
	for _, k := range c.Dataset.TorsoIndices {
		if k < 0 {
			return types.NewErrorf(types.ErrInvalidConfig,
				"torso_indices should be nonnegative, got %d", k)
		}
	}
	for name, pair := range c.Dataset.NMEDefaultIndices {
		if len(pair) != 2 {
			return types.NewErrorf(types.ErrInvalidConfig,
				"nme_default_indices[%s] should be a pair, got %d entries", name, len(pair))
		}
	}
	for i, m := range c.Metrics {
		switch m.Type {
		case "pck", "auc", "epe", "nme":
		default:
			return types.NewErrorf(types.ErrInvalidConfig,
				"metric %d has unknown type %q, expected one of pck, auc, epe, nme", i, m.Type)
		}
	}
	return nil
}

// BuildMeta 将数据集配置转换为 types.DatasetMeta。
func (c *SuiteConfig) BuildMeta() *types.DatasetMeta {
	d := c.Dataset
	meta := &types.DatasetMeta{
		Name:          d.Name,
		NumKeypoints:  d.NumKeypoints,
		KeypointNames: d.KeypointNames,
		BodyParts:     d.BodyParts,
	}
	if len(d.TorsoIndices) == 2 {
		pair := [2]int{d.TorsoIndices[0], d.TorsoIndices[1]}
		meta.TorsoIndices = &pair
	}
	for _, fp := range d.FlipPairs {
		if len(fp) == 2 {
			meta.FlipPairs = append(meta.FlipPairs, [2]int{fp[0], fp[1]})
		}
	}
	if len(d.NMEDefaultIndices) > 0 {
		meta.NMEDefaultIndices = make(map[string][2]int, len(d.NMEDefaultIndices))
		for name, pair := range d.NMEDefaultIndices {
			meta.NMEDefaultIndices[name] = [2]int{pair[0], pair[1]}
		}
	}
	return meta
}

// BuildMetrics 根据配置构建指标实例。
func (c *SuiteConfig) BuildMetrics() ([]metrics.Metric, error) {
	built := make([]metrics.Metric, 0, len(c.Metrics))
	for _, m := range c.Metrics {
		switch m.Type {
		case "pck":
			thr := m.Thr
			if thr == 0 {
				thr = DefaultPCKThr
			}
			pck, err := metrics.NewPCKAccuracy(thr, m.NormItems...)
			if err != nil {
				return nil, err
			}
			built = append(built, pck)
		case "auc":
			normFactor := m.NormFactor
			if normFactor == 0 {
				normFactor = DefaultAUCNormFactor
			}
			numThrs := m.NumThrs
			if numThrs == 0 {
				numThrs = DefaultAUCNumThrs
			}
			auc, err := metrics.NewAUC(normFactor, numThrs)
			if err != nil {
				return nil, err
			}
			built = append(built, auc)
		case "epe":
			built = append(built, metrics.NewEPE())
		case "nme":
			nme, err := metrics.NewNME(metrics.NMEConfig{
				NormMode:        m.NormMode,
				NormItem:        m.NormItem,
				KeypointIndices: m.KeypointIndices,
			})
			if err != nil {
				return nil, err
			}
			built = append(built, nme)
		}
	}
	return built, nil
}

// BuildRunner 构建携带数据集元信息与全部指标的评估运行器。
func (c *SuiteConfig) BuildRunner(logger *zap.Logger) (*evaluation.Runner, error) {
	ms, err := c.BuildMetrics()
	if err != nil {
		return nil, err
	}
	return evaluation.NewRunner(c.BuildMeta(), logger, ms...), nil
}
