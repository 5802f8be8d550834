/*
包 metrics 提供基于 Prometheus 的检索链路指标采集能力，覆盖
检索、分词、向量降级与同义词四个维度。

# 概述

本包通过 Collector 统一注册和记录 Prometheus 指标，使用 promauto
自动注册机制，避免手动管理 Registry。所有指标按 namespace 隔离，
便于 Grafana 等工具进行可视化与告警。

# 核心类型

  - Collector：指标收集器，nil 接收者安全，未挂接时所有记录方法
    直接返回。

# 主要能力

  - 检索指标：调用总数（按状态）、耗时直方图与返回片段数
    （按 hybrid/lexical/listing 模式）、降级阶梯重试计数（按步骤）。
  - 分词指标：粗/细粒度分词耗时、歧义 DFS 触发次数。
  - 向量指标：维度不匹配置零降级计数。
  - 同义词指标：查询命中计数、词表刷新结果计数。
*/
package metrics
