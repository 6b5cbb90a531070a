// Copyright (c) PoseVal Authors.
// Licensed under the MIT License.

/*
Package metrics 实现 2D 关键点（姿态）估计的评估指标引擎。

# 概述

metrics 提供四个相关的计算器：PCK / PCKh / tPCK、AUC、EPE 与 NME。
它们共享统一的两阶段协议：Process(batch) 逐批累积每个实例的结果，
Evaluate(size) 将累积结果归约为带命名空间的标量指标映射
（pck/...、auc/...、epe/...、nme/...）。

# 核心类型

  - Metric       — 指标统一接口（Name / SetDatasetMeta / Process / Evaluate）
  - PCKAccuracy  — 按 bbox / head / torso 归一化的正确关键点百分比
  - AUC          — 阈值 0..1 扫描下的准确率曲线下面积
  - EPE          — 端点误差（未归一化的平均欧氏距离）
  - NME          — 归一化平均误差（外部字段或关键点对距离归一化）

# 约定

  - 距离与阈值比较使用不大于（dist <= thr），精确命中计为正确
  - 归一化因子非正的实例被整体屏蔽，不参与任何聚合
  - 同一实例上的并发 Process 调用不安全，由调用方负责加锁
  - Evaluate 破坏性地消费累积缓冲，调用后实例应被丢弃
*/
package metrics
