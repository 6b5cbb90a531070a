// Copyright (c) PoseVal Authors.
// Licensed under the MIT License.

/*
Package testutil 提供测试用的样本生成辅助。

# 概述

testutil 构造 metrics / evaluation 测试所需的关键点样本：精确预测样本、
带受控误差的扰动样本，以及常见数据集形状的元信息 fixture。

# 主要能力

  - ExactSamples     — 预测与真值完全一致的样本批
  - PerturbedSamples — 按给定逐关键点距离扰动预测的样本批
  - JHMDBMeta        — 带身体部位分组的 15 关键点元信息
  - Horse10Meta      — 带 NME 默认关键点对的 22 关键点元信息
*/
package testutil
