// Package search 编排词法+向量融合检索、重排、分页与引用标注。
package search

import (
	"context"

	"github.com/BaSui01/queryflow/query"
)

// =============================================================================
// 💾 文档存储契约
// =============================================================================

// 存储字段名（索引侧 schema 的约定键）。
const (
	FieldChunkID       = "chunk_id"
	FieldDocID         = "doc_id"
	FieldDocName       = "docnm_kwd"
	FieldKBID          = "kb_id"
	FieldImageID       = "image_id"
	FieldContent       = "content_with_weight"
	FieldContentLtks   = "content_ltks"
	FieldContentSmLtks = "content_sm_ltks"
	FieldTitleTks      = "title_tks"
	FieldTitleSmTks    = "title_sm_tks"
	FieldImportantKwd  = "important_kwd"
	FieldQuestionTks   = "question_tks"
	FieldPosition      = "position_int"
	FieldAvailable     = "available_int"
	FieldRemoved       = "removed_kwd"
	FieldPageRank      = "pagerank_fea"
	FieldTagFeatures   = "tag_feas"
	FieldTagKwd        = "tag_kwd"
)

// Chunk 检索片段的规范结构。
// 存储适配层负责把索引文档一次性收敛到这里（含 img_id/image_id 这类别名键）。
type Chunk struct {
	ID           string             `json:"chunk_id"`
	DocID        string             `json:"doc_id"`
	DocName      string             `json:"docnm_kwd"`
	KBID         string             `json:"kb_id"`
	ImageID      string             `json:"image_id"`
	Content      string             `json:"content_with_weight"`
	ContentLtks  string             `json:"content_ltks"`
	TitleTks     string             `json:"title_tks"`
	QuestionTks  string             `json:"question_tks"`
	ImportantKwd []string           `json:"important_kwd"`
	TagKwd       []string           `json:"tag_kwd"`
	Positions    [][]int            `json:"position_int"`
	Available    bool               `json:"available"`
	Removed      bool               `json:"removed"`
	PageRank     float64            `json:"pagerank_fea"`
	TagFeatures  map[string]float64 `json:"tag_feas"`
	Vector       []float32          `json:"-"`
}

// ReconcileImageID 别名键收敛：历史数据里 img_id 与 image_id 混用。
func ReconcileImageID(fields map[string]any) string {
	if v, ok := fields[FieldImageID].(string); ok && v != "" {
		return v
	}
	if v, ok := fields["img_id"].(string); ok {
		return v
	}
	return ""
}

// Filters 存储侧过滤条件。nil 指针表示不过滤该维度。
type Filters struct {
	KBIDs               []string
	DocIDs              []string
	KnowledgeGraphKinds []string
	EntityKeywords      []string
	EdgeKeywords        []string
	Available           *bool
	Removed             *bool
}

// SearchRequest 一次存储查询。
// MatchText/MatchDense 至少其一非空时按相关度排序，否则按 OrderBy。
type SearchRequest struct {
	Fields          []string
	HighlightFields []string
	Filters         Filters
	MatchText       *query.MatchTextExpr
	MatchDense      *query.MatchDenseExpr
	Fusion          *query.FusionExpr
	OrderBy         *query.OrderByExpr
	Offset          int
	Limit           int
	IndexNames      []string
	AggFields       []string
	RankFeature     map[string]float64
}

// Aggregate 聚合桶。
type Aggregate struct {
	Key   string
	Count int64
}

// SearchResult 存储查询结果。len(IDs) == len(Fields)。
// Total 是满足相似度下限的命中总数，与分页无关。
type SearchResult struct {
	Total        int64
	IDs          []string
	QueryVector  []float32
	Fields       map[string]*Chunk
	Highlight    map[string]string
	Aggregations map[string][]Aggregate
	Keywords     []string
}

// DocStore 文档存储契约。
type DocStore interface {
	Search(ctx context.Context, req *SearchRequest) (*SearchResult, error)
}

// SQLExecutor 分析型逃生通道（SUM/AVG/GROUP BY 一类问题直接下推）。
// 不是所有存储都支持，调用方需类型断言。
type SQLExecutor interface {
	SQL(ctx context.Context, stmt string) ([]map[string]any, error)
}
