// =============================================================================
// 📦 QueryFlow 默认配置
// =============================================================================
// 提供所有配置项的合理默认值
// =============================================================================
package config

import "time"

// DefaultConfig 返回默认配置
func DefaultConfig() *Config {
	return &Config{
		Tokenizer: DefaultTokenizerConfig(),
		Synonym:   DefaultSynonymConfig(),
		Redis:     DefaultRedisConfig(),
		Retrieval: DefaultRetrievalConfig(),
		Log:       DefaultLogConfig(),
		Telemetry: DefaultTelemetryConfig(),
	}
}

// DefaultTokenizerConfig 返回默认分词器配置
func DefaultTokenizerConfig() TokenizerConfig {
	return TokenizerConfig{
		DictPath: "etc/huqie.txt",
	}
}

// DefaultSynonymConfig 返回默认同义词配置
func DefaultSynonymConfig() SynonymConfig {
	return SynonymConfig{
		DictPath:        "etc/synonym.json",
		RefreshInterval: time.Hour,
	}
}

// DefaultRedisConfig 返回默认 Redis 配置
func DefaultRedisConfig() RedisConfig {
	return RedisConfig{
		Addr:       "localhost:6379",
		Key:        "queryflow:synonyms",
		MaxRetries: 3,
		PoolSize:   4,
	}
}

// DefaultRetrievalConfig 返回默认检索配置
func DefaultRetrievalConfig() RetrievalConfig {
	return RetrievalConfig{
		PageSize:            30,
		SimilarityThreshold: 0.2,
		VectorWeight:        0.3,
		TopK:                1024,
	}
}

// DefaultLogConfig 返回默认日志配置
func DefaultLogConfig() LogConfig {
	return LogConfig{
		Level:       "info",
		Format:      "json",
		OutputPaths: []string{"stdout"},
	}
}

// DefaultTelemetryConfig 返回默认遥测配置
func DefaultTelemetryConfig() TelemetryConfig {
	return TelemetryConfig{
		Enabled:          false,
		MetricsNamespace: "queryflow",
		ServiceName:      "queryflow",
	}
}
