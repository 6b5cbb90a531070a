// Copyright (c) PoseVal Authors.
// Licensed under the MIT License.

/*
Package main 提供 PoseVal 命令行程序入口。

# 概述

cmd/poseval 是 PoseVal 评估引擎的可执行入口，读取 YAML 套件配置与
JSON 样本文件，按批次喂入评估运行器，最后输出 JSON 评估报告。
程序使用结构化日志（zap），并通过 Prometheus 采集器记录评估指标。

# 主要能力

  - 子命令：run（执行评估）、version、help
  - 套件配置：--config 指定 YAML 文件，缺省时使用默认套件
  - 样本输入：--samples 指定 JSON 文件（[]types.Sample）
  - 批次处理：--batch-size 控制每次 Process 的样本数
  - 报告输出：--output 指定文件，缺省写 stdout
  - 构建注入：Version、BuildTime、GitCommit 通过 ldflags 设置
*/
package main
