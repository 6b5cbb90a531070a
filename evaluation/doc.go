// Copyright (c) PoseVal Authors.
// Licensed under the MIT License.

/*
Package evaluation 提供面向完整评估流程的套件运行器。

# 概述

evaluation 将若干 metrics.Metric 组合为一次评估：Process 将每个批次
依次喂给所有指标，Evaluate 归约全部指标并把各自的键值映射合并为一份
带 uuid 标识、耗时统计的评估报告。

# 核心类型

  - Runner   — 指标套件运行器（Register / Process / Evaluate）
  - Report   — 评估报告（指标值、样本数、各指标耗时）
  - Observer — 报告观察者钩子（如 Prometheus 采集器）

# 约定

  - logger 为 nil 时退化为 zap.NewNop()
  - 指标输出键冲突视为配置错误，Evaluate 返回 INVALID_CONFIG
  - Runner 与其持有的指标一样是一次性的，Evaluate 后应整体丢弃
*/
package evaluation
