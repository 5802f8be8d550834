package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"go.uber.org/zap"
)

// =============================================================================
// 📊 指标收集器
// =============================================================================

// Collector 指标收集器
type Collector struct {
	// 检索指标
	retrievalsTotal   *prometheus.CounterVec
	retrievalDuration *prometheus.HistogramVec
	retrievalChunks   *prometheus.HistogramVec
	ladderRetries     *prometheus.CounterVec

	// 分词指标
	tokenizeDuration *prometheus.HistogramVec
	dfsRunsTotal     prometheus.Counter

	// 向量降级指标
	vectorMismatches prometheus.Counter

	// 同义词指标
	synonymLookups   *prometheus.CounterVec
	synonymRefreshes *prometheus.CounterVec

	logger *zap.Logger
}

// NewCollector 创建指标收集器
func NewCollector(namespace string, logger *zap.Logger) *Collector {
	if logger == nil {
		logger = zap.NewNop()
	}
	c := &Collector{
		logger: logger.With(zap.String("component", "metrics")),
	}

	// 检索指标
	c.retrievalsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "retrievals_total",
			Help:      "Total number of retrieval calls",
		},
		[]string{"status"},
	)

	c.retrievalDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "retrieval_duration_seconds",
			Help:      "Retrieval call duration in seconds",
			Buckets:   []float64{0.01, 0.05, 0.1, 0.25, 0.5, 1, 2, 5, 10},
		},
		[]string{"mode"}, // mode: hybrid, lexical, listing
	)

	c.retrievalChunks = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "retrieval_chunks",
			Help:      "Number of chunks returned per retrieval",
			Buckets:   []float64{0, 1, 5, 10, 20, 30, 64, 128},
		},
		[]string{"mode"},
	)

	c.ladderRetries = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "degradation_retries_total",
			Help:      "Total number of degradation ladder retries",
		},
		[]string{"step"}, // step: loosen, listing
	)

	// 分词指标
	c.tokenizeDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "tokenize_duration_seconds",
			Help:      "Tokenization duration in seconds",
			Buckets:   []float64{0.0001, 0.001, 0.01, 0.1, 1},
		},
		[]string{"granularity"}, // granularity: coarse, fine
	)

	c.dfsRunsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "tokenizer_dfs_runs_total",
			Help:      "Total number of ambiguity DFS resolutions",
		},
	)

	// 向量降级指标
	c.vectorMismatches = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "vector_dim_mismatches_total",
			Help:      "Total number of zeroed vectors due to dimension mismatch",
		},
	)

	// 同义词指标
	c.synonymLookups = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "synonym_lookups_total",
			Help:      "Total number of synonym lookups",
		},
		[]string{"hit"},
	)

	c.synonymRefreshes = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "synonym_refreshes_total",
			Help:      "Total number of synonym table refresh attempts",
		},
		[]string{"status"},
	)

	logger.Info("metrics collector initialized", zap.String("namespace", namespace))

	return c
}

// =============================================================================
// 🔍 检索指标记录
// =============================================================================

// RecordRetrieval 记录一次检索调用
func (c *Collector) RecordRetrieval(mode, status string, duration time.Duration, chunks int) {
	if c == nil {
		return
	}
	c.retrievalsTotal.WithLabelValues(status).Inc()
	c.retrievalDuration.WithLabelValues(mode).Observe(duration.Seconds())
	c.retrievalChunks.WithLabelValues(mode).Observe(float64(chunks))
}

// RecordLadderRetry 记录一次降级重试
func (c *Collector) RecordLadderRetry(step string) {
	if c == nil {
		return
	}
	c.ladderRetries.WithLabelValues(step).Inc()
}

// RecordVectorMismatch 记录一次维度不匹配降级
func (c *Collector) RecordVectorMismatch() {
	if c == nil {
		return
	}
	c.vectorMismatches.Inc()
}

// =============================================================================
// ✂️ 分词指标记录
// =============================================================================

// RecordTokenize 记录一次分词
func (c *Collector) RecordTokenize(granularity string, duration time.Duration) {
	if c == nil {
		return
	}
	c.tokenizeDuration.WithLabelValues(granularity).Observe(duration.Seconds())
}

// RecordDFSRuns 累计歧义 DFS 次数
func (c *Collector) RecordDFSRuns(n int64) {
	if c == nil || n <= 0 {
		return
	}
	c.dfsRunsTotal.Add(float64(n))
}

// =============================================================================
// 📖 同义词指标记录
// =============================================================================

// RecordSynonymLookup 记录一次同义词查询
func (c *Collector) RecordSynonymLookup(hit bool) {
	if c == nil {
		return
	}
	if hit {
		c.synonymLookups.WithLabelValues("true").Inc()
	} else {
		c.synonymLookups.WithLabelValues("false").Inc()
	}
}

// RecordSynonymRefresh 记录一次同义词表刷新
func (c *Collector) RecordSynonymRefresh(status string) {
	if c == nil {
		return
	}
	c.synonymRefreshes.WithLabelValues(status).Inc()
}
