// Copyright (c) PoseVal Authors.
// Licensed under the MIT License.

/*
Package config 提供评估套件的 YAML 配置加载与构建。

# 概述

config 将一个 YAML 套件文件解析为数据集元信息（types.DatasetMeta）和
指标列表（metrics.Metric），并可直接构建 evaluation.Runner。
加载优先级：默认值 → YAML 文件 → 验证器。

# 核心类型

  - Loader        — 配置加载器（WithConfigPath / WithValidator / Load）
  - SuiteConfig   — 套件配置（dataset + metrics）
  - DatasetConfig — 数据集元信息配置
  - MetricConfig  — 单个指标配置（type: pck / auc / epe / nme）

# 使用方法

	cfg, err := config.NewLoader().
	    WithConfigPath("suite.yaml").
	    Load()
	runner, err := cfg.BuildRunner(logger)
*/
package config
