package search

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"sync"

	"go.uber.org/zap"

	"github.com/BaSui01/queryflow/query"
)

// ====== 内存文档存储（用于测试和小规模应用）======

// MemStore 内存文档存储。
// 实现 kb/doc/可用性/墓碑过滤；图谱类过滤键由图谱索引实现，这里忽略。
type MemStore struct {
	chunks []*Chunk
	byID   map[string]*Chunk
	mu     sync.RWMutex
	logger *zap.Logger
}

// NewMemStore 创建内存文档存储
func NewMemStore(logger *zap.Logger) *MemStore {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &MemStore{
		byID:   make(map[string]*Chunk),
		logger: logger.With(zap.String("component", "memstore")),
	}
}

// AddChunks 添加片段
func (s *MemStore) AddChunks(ctx context.Context, chunks []*Chunk) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, ck := range chunks {
		if ck.ID == "" {
			return fmt.Errorf("chunk has no id")
		}
		if _, ok := s.byID[ck.ID]; ok {
			return fmt.Errorf("chunk %s already exists", ck.ID)
		}
		s.chunks = append(s.chunks, ck)
		s.byID[ck.ID] = ck
	}

	s.logger.Info("chunks added to store",
		zap.Int("count", len(chunks)),
		zap.Int("total", len(s.chunks)))
	return nil
}

// DeleteChunks 删除片段
func (s *MemStore) DeleteChunks(ctx context.Context, ids []string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	idSet := make(map[string]bool, len(ids))
	for _, id := range ids {
		idSet[id] = true
	}
	filtered := s.chunks[:0]
	for _, ck := range s.chunks {
		if idSet[ck.ID] {
			delete(s.byID, ck.ID)
			continue
		}
		filtered = append(filtered, ck)
	}
	deleted := len(s.chunks) - len(filtered)
	s.chunks = filtered

	s.logger.Info("chunks deleted from store",
		zap.Int("deleted", deleted),
		zap.Int("remaining", len(s.chunks)))
	return nil
}

// Count 片段数量
func (s *MemStore) Count(ctx context.Context) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.chunks), nil
}

// matchFilters 过滤判定。空切片/nil 指针表示不过滤。
func matchFilters(ck *Chunk, f Filters) bool {
	if len(f.KBIDs) > 0 && !containsStr(f.KBIDs, ck.KBID) {
		return false
	}
	if len(f.DocIDs) > 0 && !containsStr(f.DocIDs, ck.DocID) {
		return false
	}
	if f.Available != nil && ck.Available != *f.Available {
		return false
	}
	if f.Removed != nil && ck.Removed != *f.Removed {
		return false
	}
	return true
}

func containsStr(xs []string, x string) bool {
	for _, v := range xs {
		if v == x {
			return true
		}
	}
	return false
}

// scored 评分中间结果。
type scored struct {
	ck    *Chunk
	order int
	lex   float64
	dense float64
	score float64
	terms []string // 词法命中词，用于高亮
}

// Search 执行一次查询：过滤 → 词法/向量评分 → 融合 → 排序 → 分页 → 聚合。
func (s *MemStore) Search(ctx context.Context, req *SearchRequest) (*SearchResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	var clauses []exprClause
	if req.MatchText != nil {
		clauses = parseMatchText(req.MatchText.MatchingText)
	}

	var cands []*scored
	for i, ck := range s.chunks {
		if !matchFilters(ck, req.Filters) {
			continue
		}
		sc := &scored{ck: ck, order: i}
		if req.MatchText != nil {
			lex, hits, ratio := scoreLexical(ck, req.MatchText.Fields, clauses)
			if ratio < req.MatchText.MinMatch {
				lex, hits = 0, nil
			}
			sc.lex = lex
			sc.terms = hits
		}
		if req.MatchDense != nil {
			sc.dense = query.CosineSimilarity(req.MatchDense.QueryVector, ck.Vector)
		}
		cands = append(cands, sc)
	}

	// 融合与下限过滤。
	maxLex := 0.0
	for _, sc := range cands {
		if sc.lex > maxLex {
			maxLex = sc.lex
		}
	}
	var kept []*scored
	for _, sc := range cands {
		lex := sc.lex
		if maxLex > 0 {
			lex /= maxLex
		}
		switch {
		case req.Fusion != nil:
			sc.score = lex*req.Fusion.LexicalWeight + sc.dense*req.Fusion.VectorWeight
		case req.MatchDense != nil:
			sc.score = sc.dense
		case req.MatchText != nil:
			sc.score = lex
		}
		if req.MatchText != nil || req.MatchDense != nil {
			if sc.score <= 0 {
				continue
			}
			if req.MatchDense != nil && sc.score < req.MatchDense.SimilarityFloor {
				continue
			}
		}
		kept = append(kept, sc)
	}

	if req.MatchText != nil || req.MatchDense != nil {
		sort.SliceStable(kept, func(i, j int) bool { return kept[i].score > kept[j].score })
	} else if req.OrderBy != nil {
		sortByOrder(kept, req.OrderBy)
	}

	res := &SearchResult{
		Total:        int64(len(kept)),
		Fields:       make(map[string]*Chunk),
		Highlight:    make(map[string]string),
		Aggregations: make(map[string][]Aggregate),
	}
	for _, field := range req.AggFields {
		res.Aggregations[field] = aggregateField(kept, field)
	}

	// 分页。
	offset, limit := req.Offset, req.Limit
	if offset < 0 {
		offset = 0
	}
	if offset > len(kept) {
		offset = len(kept)
	}
	page := kept[offset:]
	if limit > 0 && limit < len(page) {
		page = page[:limit]
	}
	for _, sc := range page {
		cp := *sc.ck
		res.IDs = append(res.IDs, cp.ID)
		res.Fields[cp.ID] = &cp
		if len(req.HighlightFields) > 0 && len(sc.terms) > 0 {
			res.Highlight[cp.ID] = highlight(cp.ContentLtks, sc.terms)
		}
	}
	return res, nil
}

// sortByOrder 无匹配表达式时按显式排序键。
func sortByOrder(kept []*scored, order *query.OrderByExpr) {
	sort.SliceStable(kept, func(i, j int) bool {
		a, b := kept[i].ck, kept[j].ck
		for _, item := range order.Items {
			var cmp int
			switch item.Field {
			case FieldPageRank:
				switch {
				case a.PageRank < b.PageRank:
					cmp = -1
				case a.PageRank > b.PageRank:
					cmp = 1
				}
			case FieldDocID:
				cmp = strings.Compare(a.DocID, b.DocID)
			case FieldDocName:
				cmp = strings.Compare(a.DocName, b.DocName)
			case FieldChunkID:
				cmp = strings.Compare(a.ID, b.ID)
			}
			if cmp == 0 {
				continue
			}
			if item.Desc {
				return cmp > 0
			}
			return cmp < 0
		}
		return kept[i].order < kept[j].order
	})
}

// aggregateField 聚合桶，按计数降序。
func aggregateField(kept []*scored, field string) []Aggregate {
	counts := make(map[string]int64)
	for _, sc := range kept {
		switch field {
		case FieldTagKwd:
			for _, t := range sc.ck.TagKwd {
				counts[t]++
			}
		case FieldDocName:
			counts[sc.ck.DocName]++
		case FieldDocID:
			counts[sc.ck.DocID]++
		case FieldKBID:
			counts[sc.ck.KBID]++
		}
	}
	aggs := make([]Aggregate, 0, len(counts))
	for k, c := range counts {
		aggs = append(aggs, Aggregate{Key: k, Count: c})
	}
	sort.Slice(aggs, func(i, j int) bool {
		if aggs[i].Count != aggs[j].Count {
			return aggs[i].Count > aggs[j].Count
		}
		return aggs[i].Key < aggs[j].Key
	})
	return aggs
}

// highlight 对命中词加 <em> 标记。
func highlight(tks string, terms []string) string {
	hit := make(map[string]bool, len(terms))
	for _, t := range terms {
		hit[t] = true
	}
	fields := strings.Fields(tks)
	for i, f := range fields {
		if hit[f] {
			fields[i] = "<em>" + f + "</em>"
		}
	}
	return strings.Join(fields, " ")
}

// =============================================================================
// 🧾 匹配表达式解析
// =============================================================================

// exprClause 词法子句：单词或短语，带提升权重。
type exprClause struct {
	terms  []string
	phrase bool
	boost  float64
}

// parseMatchText 宽容解析带权布尔/短语查询串。
// 只抽取 (词/短语, 权重) 对，忽略括号结构与 OR/AND 连接词。
func parseMatchText(text string) []exprClause {
	var clauses []exprClause
	rs := []rune(text)
	i := 0
	for i < len(rs) {
		r := rs[i]
		switch {
		case r == ' ' || r == '(' || r == ')' || r == '\t' || r == '\n':
			i++
		case r == '"':
			j := i + 1
			for j < len(rs) && rs[j] != '"' {
				j++
			}
			phrase := string(rs[i+1 : min(j, len(rs))])
			i = j + 1
			// 可选 ~N 邻近度
			if i < len(rs) && rs[i] == '~' {
				i++
				for i < len(rs) && rs[i] >= '0' && rs[i] <= '9' {
					i++
				}
			}
			boost, ni := parseBoost(rs, i)
			i = ni
			terms := strings.Fields(phrase)
			if len(terms) > 0 {
				clauses = append(clauses, exprClause{terms: terms, phrase: len(terms) > 1, boost: boost})
			}
		default:
			j := i
			for j < len(rs) && rs[j] != ' ' && rs[j] != '(' && rs[j] != ')' && rs[j] != '^' && rs[j] != '\t' && rs[j] != '\n' {
				j++
			}
			tok := strings.ReplaceAll(string(rs[i:j]), `\`, "")
			i = j
			boost, ni := parseBoost(rs, i)
			i = ni
			if tok == "" || tok == "OR" || tok == "AND" || tok == "NOT" {
				continue
			}
			clauses = append(clauses, exprClause{terms: []string{tok}, boost: boost})
		}
	}
	return clauses
}

// parseBoost 解析可选的 ^float 后缀，缺省为 1。
func parseBoost(rs []rune, i int) (float64, int) {
	if i >= len(rs) || rs[i] != '^' {
		return 1, i
	}
	j := i + 1
	for j < len(rs) && (rs[j] == '.' || (rs[j] >= '0' && rs[j] <= '9')) {
		j++
	}
	b, err := strconv.ParseFloat(string(rs[i+1:j]), 64)
	if err != nil || b <= 0 {
		b = 1
	}
	return b, j
}

// scoreLexical 词法评分：子句命中取字段权重最高的一处。
// 返回 (得分, 命中词, 单词子句命中率)。
func scoreLexical(ck *Chunk, fields []query.WeightedField, clauses []exprClause) (float64, []string, float64) {
	if len(fields) == 0 {
		fields = query.DefaultQueryFields
	}
	score := 0.0
	var hits []string
	termClauses, termHits := 0, 0
	for _, cl := range clauses {
		if !cl.phrase {
			termClauses++
		}
		best := 0.0
		for _, f := range fields {
			text := chunkFieldText(ck, f.Name)
			if text == "" {
				continue
			}
			if clauseHits(text, cl) && f.Boost > best {
				best = f.Boost
			}
		}
		if best == 0 {
			continue
		}
		score += cl.boost * best
		hits = append(hits, cl.terms...)
		if !cl.phrase {
			termHits++
		}
	}
	ratio := 1.0
	if termClauses > 0 {
		ratio = float64(termHits) / float64(termClauses)
	}
	return score, hits, ratio
}

// clauseHits 子句是否命中字段文本。短语要求连续词序列出现，忽略邻近度。
func clauseHits(text string, cl exprClause) bool {
	if cl.phrase {
		return strings.Contains(" "+text+" ", " "+strings.Join(cl.terms, " ")+" ")
	}
	return strings.Contains(" "+text+" ", " "+cl.terms[0]+" ")
}

// chunkFieldText 字段名到片段文本的映射。粗细粒度共用同一份词串。
func chunkFieldText(ck *Chunk, field string) string {
	switch field {
	case FieldTitleTks, FieldTitleSmTks:
		return ck.TitleTks
	case FieldImportantKwd:
		return strings.Join(ck.ImportantKwd, " ")
	case FieldQuestionTks:
		return ck.QuestionTks
	case FieldContentLtks, FieldContentSmLtks:
		return ck.ContentLtks
	}
	return ""
}
