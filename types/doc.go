// Copyright (c) PoseVal Authors.
// Licensed under the MIT License.

/*
Package types 提供 PoseVal 评估框架的全局共享类型定义。

# 概述

types 是框架最底层的公共包，不依赖任何内部包，为 metrics、evaluation、
config 等上层模块提供统一的类型契约。所有跨包共享的结构体、枚举和
错误码均定义于此，以避免循环依赖。

# 核心类型

  - Point / BBox        — 2D 关键点坐标与边界框
  - GroundTruth         — 真值实例（关键点、可见性、归一化字段）
  - Prediction          — 预测实例（关键点坐标）
  - Sample              — 一对真值 / 预测，Process 的批处理单元
  - DatasetMeta         — 数据集元信息（关键点数、身体部位分组、NME 默认索引）
  - Error / ErrorCode   — 结构化错误体系（配置、数据完整性、查表错误）

# 主要能力

  - 形状校验：Sample.Validate 统一检查实例数 / 关键点数 / 可见性形状
  - 错误工具链：WrapError / AsError / IsErrorCode
  - 几何工具：Point.DistanceTo、BBox.LongestSide
*/
package types
