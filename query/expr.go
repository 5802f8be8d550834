// Package query 把自然语言问题编译为带权全文/向量匹配表达式。
package query

import "fmt"

// WeightedField 查询字段及其固定相对权重。
type WeightedField struct {
	Name  string
	Boost float64
}

// String 渲染为 `field^boost` 形式。
func (f WeightedField) String() string {
	if f.Boost == 1 {
		return f.Name
	}
	return fmt.Sprintf("%s^%g", f.Name, f.Boost)
}

// DefaultQueryFields 全局固定的查询字段权重（标题、关键词、问题、两种粒度正文）。
var DefaultQueryFields = []WeightedField{
	{Name: "title_tks", Boost: 10},
	{Name: "title_sm_tks", Boost: 5},
	{Name: "important_kwd", Boost: 30},
	{Name: "important_tks", Boost: 20},
	{Name: "question_tks", Boost: 20},
	{Name: "content_ltks", Boost: 2},
	{Name: "content_sm_ltks", Boost: 1},
}

// MatchTextExpr 词法匹配表达式。
// MatchingText 是带权布尔/短语查询串（`(term^w "syn"^w) ("a b"~2)^1.5 ...`）。
type MatchTextExpr struct {
	Fields       []WeightedField
	MatchingText string
	TopN         int
	// MinMatch 最小匹配度（0~1 的比例），0 表示不限制。
	MinMatch float64
}

// MatchDenseExpr 稠密向量匹配表达式。
// VectorColumn 由嵌入维度推导（`q_{dim}_vec`）。
type MatchDenseExpr struct {
	VectorColumn    string
	QueryVector     []float32
	Metric          string
	TopN            int
	SimilarityFloor float64
}

// VectorColumnName 由维度推导向量列名。
func VectorColumnName(dim int) string {
	return fmt.Sprintf("q_%d_vec", dim)
}

// FusionExpr 词法与向量结果的融合表达式。
type FusionExpr struct {
	Method        string
	TopN          int
	LexicalWeight float64
	VectorWeight  float64
}

// DefaultFusion 混合模式默认权重：5% 词法 / 95% 向量。
func DefaultFusion(topN int) *FusionExpr {
	return &FusionExpr{
		Method:        "weighted_sum",
		TopN:          topN,
		LexicalWeight: 0.05,
		VectorWeight:  0.95,
	}
}

// OrderBy 排序项。
type OrderBy struct {
	Field string
	Desc  bool
}

// OrderByExpr 排序表达式。
type OrderByExpr struct {
	Items []OrderBy
}

// Asc 追加升序项。
func (o *OrderByExpr) Asc(field string) *OrderByExpr {
	o.Items = append(o.Items, OrderBy{Field: field})
	return o
}

// Desc 追加降序项。
func (o *OrderByExpr) Desc(field string) *OrderByExpr {
	o.Items = append(o.Items, OrderBy{Field: field, Desc: true})
	return o
}
