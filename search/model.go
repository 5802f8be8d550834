package search

import "context"

// =============================================================================
// 🧠 外部模型契约
// =============================================================================

// EmbeddingModel 嵌入模型。
// Encode 必须为每条输入恰好返回一个向量，同一模型维度稳定。
type EmbeddingModel interface {
	Encode(ctx context.Context, texts []string) (vectors [][]float32, tokens int, err error)
	EncodeQueries(ctx context.Context, text string) (vector []float32, tokens int, err error)
}

// RerankModel 外部重排模型，给出查询对每条文档的相似度。
type RerankModel interface {
	Similarity(ctx context.Context, query string, docs []string) ([]float64, error)
}
