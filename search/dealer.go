package search

import (
	"context"
	"fmt"
	"math"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/BaSui01/queryflow/internal/metrics"
	"github.com/BaSui01/queryflow/query"
)

// =============================================================================
// 🔍 检索引擎
// =============================================================================

const (
	// rerankWindowBase 重排窗口基数，向上取整到页大小的整数倍。
	rerankWindowBase = 64

	// 降级阶梯：词法最小匹配 0.3 → 0.1，向量相似度下限 → 0.17。
	defaultMinMatch  = 0.3
	loosenedMinMatch = 0.1
	loosenedVecFloor = 0.17

	defaultTopK      = 1024
	defaultPageSize  = 30
	defaultThreshold = 0.2
	defaultVecWeight = 0.3
)

// retrievalFields 检索默认取回的字段。
var retrievalFields = []string{
	FieldChunkID, FieldDocID, FieldDocName, FieldKBID, FieldImageID,
	FieldContent, FieldContentLtks, FieldTitleTks, FieldImportantKwd,
	FieldQuestionTks, FieldPosition, FieldAvailable, FieldPageRank,
	FieldTagFeatures, FieldTagKwd,
}

// Dealer 检索引擎：融合搜索、降级、重排、分页与文档聚合。
type Dealer struct {
	store   DocStore
	qryr    *query.FulltextQueryer
	tok     query.Tokenizer
	metrics *metrics.Collector
	logger  *zap.Logger
	tracer  trace.Tracer
}

// DealerOption 检索引擎可选项
type DealerOption func(*Dealer)

// WithMetrics 挂接指标收集器。
func WithMetrics(c *metrics.Collector) DealerOption {
	return func(d *Dealer) { d.metrics = c }
}

// NewDealer 创建检索引擎。
func NewDealer(store DocStore, qryr *query.FulltextQueryer, tok query.Tokenizer, logger *zap.Logger, opts ...DealerOption) *Dealer {
	if logger == nil {
		logger = zap.NewNop()
	}
	d := &Dealer{
		store:  store,
		qryr:   qryr,
		tok:    tok,
		logger: logger.With(zap.String("component", "dealer")),
		tracer: otel.Tracer("queryflow/search"),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// SearchOptions 低层融合搜索参数。
type SearchOptions struct {
	Question        string
	Filters         Filters
	IndexNames      []string
	Page            int
	Size            int
	TopK            int
	SimilarityFloor float64
	Emb             EmbeddingModel
	Highlight       bool
	RankFeature     map[string]float64
}

// Search 低层入口：编译问题、可选嵌入、发起融合搜索并执行降级阶梯。
// 问题为空时退化为按过滤条件列举。
func (d *Dealer) Search(ctx context.Context, opts *SearchOptions) (*SearchResult, error) {
	if opts.Page < 1 {
		opts.Page = 1
	}
	if opts.Size < 1 {
		opts.Size = defaultPageSize
	}
	if opts.TopK < 1 {
		opts.TopK = defaultTopK
	}

	req := &SearchRequest{
		Fields:      retrievalFields,
		Filters:     opts.Filters,
		Offset:      (opts.Page - 1) * opts.Size,
		Limit:       opts.Size,
		IndexNames:  opts.IndexNames,
		RankFeature: opts.RankFeature,
	}
	if opts.Highlight {
		req.HighlightFields = []string{FieldContentLtks}
	}

	qst := strings.TrimSpace(opts.Question)
	var keywords []string
	if qst != "" {
		req.MatchText, keywords = d.qryr.Question(qst, defaultMinMatch)
	}
	if req.MatchText == nil && qst != "" {
		d.logger.Warn("question compiled to empty expression", zap.String("question", qst))
	}

	var queryVector []float32
	if opts.Emb != nil && qst != "" {
		qv, _, err := opts.Emb.EncodeQueries(ctx, qst)
		if err != nil {
			return nil, fmt.Errorf("encode query: %w", err)
		}
		queryVector = qv
		req.MatchDense = &query.MatchDenseExpr{
			VectorColumn:    query.VectorColumnName(len(qv)),
			QueryVector:     qv,
			Metric:          "cosine",
			TopN:            opts.TopK,
			SimilarityFloor: opts.SimilarityFloor,
		}
		if req.MatchText != nil {
			req.Fusion = query.DefaultFusion(opts.TopK)
		}
	}
	if req.MatchText == nil && req.MatchDense == nil {
		req.OrderBy = (&query.OrderByExpr{}).Desc(FieldPageRank).Asc(FieldDocID)
	}

	res, err := d.fanout(ctx, req)
	if err != nil {
		return nil, err
	}

	if res.Total == 0 {
		if len(opts.Filters.DocIDs) > 0 {
			// 用户圈定了文档，宁可全量列举也不给空结果。
			d.metrics.RecordLadderRetry("listing")
			lreq := &SearchRequest{
				Fields:     retrievalFields,
				Filters:    opts.Filters,
				OrderBy:    (&query.OrderByExpr{}).Asc(FieldDocID),
				Offset:     0,
				Limit:      opts.Size,
				IndexNames: opts.IndexNames,
			}
			res, err = d.fanout(ctx, lreq)
			if err != nil {
				return nil, err
			}
		} else if req.MatchText != nil || req.MatchDense != nil {
			d.metrics.RecordLadderRetry("loosen")
			if req.MatchText != nil {
				req.MatchText.MinMatch = loosenedMinMatch
			}
			if req.MatchDense != nil {
				req.MatchDense.SimilarityFloor = loosenedVecFloor
			}
			res, err = d.fanout(ctx, req)
			if err != nil {
				return nil, err
			}
		}
	}

	res.QueryVector = queryVector
	res.Keywords = expandKeywords(keywords, d.tok)
	d.logger.Debug("search done",
		zap.Int64("total", res.Total),
		zap.Int("hits", len(res.IDs)),
		zap.Int("keywords", len(res.Keywords)))
	return res, nil
}

// expandKeywords 关键词补充细粒度子词，去重保序。
func expandKeywords(keywords []string, tok query.Tokenizer) []string {
	seen := make(map[string]struct{}, len(keywords))
	out := make([]string, 0, len(keywords))
	add := func(k string) {
		k = strings.TrimSpace(k)
		if k == "" {
			return
		}
		if _, ok := seen[k]; ok {
			return
		}
		seen[k] = struct{}{}
		out = append(out, k)
	}
	for _, k := range keywords {
		add(k)
		if tok == nil {
			continue
		}
		for _, kk := range strings.Fields(tok.FineGrainedTokenize(k)) {
			if len([]rune(kk)) < 2 {
				continue
			}
			add(kk)
		}
	}
	return out
}

// fanout 多索引并发查询后合并。单索引直查。
func (d *Dealer) fanout(ctx context.Context, req *SearchRequest) (*SearchResult, error) {
	if len(req.IndexNames) <= 1 {
		res, err := d.store.Search(ctx, req)
		if err != nil {
			return nil, fmt.Errorf("store search: %w", err)
		}
		return res, nil
	}

	results := make([]*SearchResult, len(req.IndexNames))
	g, gctx := errgroup.WithContext(ctx)
	for i, idx := range req.IndexNames {
		sub := *req
		sub.IndexNames = []string{idx}
		g.Go(func() error {
			res, err := d.store.Search(gctx, &sub)
			if err != nil {
				return fmt.Errorf("store search index %s: %w", idx, err)
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return mergeResults(results), nil
}

// mergeResults 合并多索引结果：ID 按索引顺序拼接，聚合桶按键累加。
func mergeResults(results []*SearchResult) *SearchResult {
	merged := &SearchResult{
		Fields:       make(map[string]*Chunk),
		Highlight:    make(map[string]string),
		Aggregations: make(map[string][]Aggregate),
	}
	aggCounts := make(map[string]map[string]int64)
	for _, res := range results {
		if res == nil {
			continue
		}
		merged.Total += res.Total
		merged.IDs = append(merged.IDs, res.IDs...)
		for id, ck := range res.Fields {
			merged.Fields[id] = ck
		}
		for id, hl := range res.Highlight {
			merged.Highlight[id] = hl
		}
		for field, aggs := range res.Aggregations {
			if aggCounts[field] == nil {
				aggCounts[field] = make(map[string]int64)
			}
			for _, a := range aggs {
				aggCounts[field][a.Key] += a.Count
			}
		}
	}
	for field, counts := range aggCounts {
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
		merged.Aggregations[field] = aggs
	}
	return merged
}

// =============================================================================
// 📄 检索编排
// =============================================================================

// RetrievalRequest 检索请求。零值字段取默认：
// 阈值 0.2，向量权重 0.3，topK 1024，页大小 30。
type RetrievalRequest struct {
	Question            string
	Emb                 EmbeddingModel
	IndexNames          []string
	KBIDs               []string
	Page                int
	PageSize            int
	SimilarityThreshold float64
	VectorWeight        float64
	TopK                int
	DocIDs              []string
	Aggs                bool
	Rerank              RerankModel
	Highlight           bool
	RankFeature         map[string]float64

	thresholdSet bool
}

// WithThreshold 显式设定相似度阈值（区分零值与未设置）。
func (r *RetrievalRequest) WithThreshold(t float64) *RetrievalRequest {
	r.SimilarityThreshold = t
	r.thresholdSet = true
	return r
}

// RankedChunk 带混合得分的检索片段（只读投影）。
type RankedChunk struct {
	Chunk
	Similarity       float64 `json:"similarity"`
	TermSimilarity   float64 `json:"term_similarity"`
	VectorSimilarity float64 `json:"vector_similarity"`
	Highlight        string  `json:"highlight,omitempty"`
}

// DocAgg 按文档名聚合的命中计数。
type DocAgg struct {
	DocName string `json:"doc_name"`
	DocID   string `json:"doc_id"`
	Count   int64  `json:"count"`
}

// RetrievalResult 检索结果页。
// Total 统计重排窗口内达到阈值的候选数，不是存储全量命中数。
type RetrievalResult struct {
	Total   int            `json:"total"`
	Chunks  []*RankedChunk `json:"chunks"`
	DocAggs []DocAgg       `json:"doc_aggs"`
}

// rerankWindow 把窗口基数向上取整到页大小整数倍。
func rerankWindow(pageSize int) int {
	if pageSize < 1 {
		return 1
	}
	n := (rerankWindowBase + pageSize - 1) / pageSize
	if n < 1 {
		n = 1
	}
	return n * pageSize
}

// Retrieval 面向调用方的检索入口。
// 两级分页：存储侧按重排窗口粗分页，内存中按页大小细分页。
func (d *Dealer) Retrieval(ctx context.Context, req *RetrievalRequest) (*RetrievalResult, error) {
	rid := uuid.NewString()
	ctx, span := d.tracer.Start(ctx, "dealer.retrieval",
		trace.WithAttributes(
			attribute.String("request_id", rid),
			attribute.Int("kb_count", len(req.KBIDs)),
		))
	defer span.End()
	start := time.Now()

	ranks := &RetrievalResult{Chunks: []*RankedChunk{}}
	qst := strings.TrimSpace(req.Question)
	if qst == "" {
		return ranks, nil
	}

	page := req.Page
	if page < 1 {
		page = 1
	}
	pageSize := req.PageSize
	if pageSize < 1 {
		pageSize = defaultPageSize
	}
	threshold := req.SimilarityThreshold
	if threshold == 0 && !req.thresholdSet {
		threshold = defaultThreshold
	}
	vecWeight := req.VectorWeight
	if vecWeight == 0 {
		vecWeight = defaultVecWeight
	}
	mode := "lexical"
	if req.Emb != nil {
		mode = "hybrid"
	}
	if len(req.DocIDs) > 0 {
		// 圈定文档的调用方要的是广度而不是严格过滤。
		threshold = 0
		pageSize = defaultPageSize
		mode = "listing"
	}

	window := rerankWindow(pageSize)
	storePage := int(math.Ceil(float64(pageSize*page) / float64(window)))

	filters := Filters{
		KBIDs:     req.KBIDs,
		DocIDs:    req.DocIDs,
		Available: boolPtr(true),
	}
	sres, err := d.Search(ctx, &SearchOptions{
		Question:        qst,
		Filters:         filters,
		IndexNames:      req.IndexNames,
		Page:            storePage,
		Size:            window,
		TopK:            req.TopK,
		SimilarityFloor: threshold,
		Emb:             req.Emb,
		Highlight:       req.Highlight,
		RankFeature:     req.RankFeature,
	})
	if err != nil {
		d.metrics.RecordRetrieval(mode, "error", time.Since(start), 0)
		return nil, err
	}
	if len(sres.IDs) == 0 {
		d.metrics.RecordRetrieval(mode, "empty", time.Since(start), 0)
		return ranks, nil
	}

	var sim, tksim, vtsim []float64
	if req.Rerank != nil {
		sim, tksim, vtsim, err = d.RerankByModel(ctx, req.Rerank, sres, qst, 1-vecWeight, vecWeight, req.RankFeature)
		if err != nil {
			d.metrics.RecordRetrieval(mode, "error", time.Since(start), 0)
			return nil, fmt.Errorf("rerank by model: %w", err)
		}
	} else {
		sim, tksim, vtsim = d.Rerank(sres, 1-vecWeight, vecWeight, req.RankFeature)
	}

	idx := argsortDesc(sim)
	begin := (page-1)*pageSize - (storePage-1)*window
	if begin < 0 {
		begin = 0
	}
	end := begin + pageSize

	docAggs := make(map[string]*DocAgg)
	for pos, i := range idx {
		if sim[i] < threshold {
			break
		}
		ranks.Total++
		id := sres.IDs[i]
		ck := sres.Fields[id]
		if ck == nil {
			continue
		}
		if req.Aggs {
			agg, ok := docAggs[ck.DocName]
			if !ok {
				agg = &DocAgg{DocName: ck.DocName, DocID: ck.DocID}
				docAggs[ck.DocName] = agg
			}
			agg.Count++
		}
		if pos < begin || pos >= end {
			continue
		}
		rc := &RankedChunk{
			Chunk:            *ck,
			Similarity:       sim[i],
			TermSimilarity:   tksim[i],
			VectorSimilarity: vtsim[i],
		}
		if hl, ok := sres.Highlight[id]; ok {
			rc.Highlight = normalizeHighlight(hl, sres.Keywords)
		}
		ranks.Chunks = append(ranks.Chunks, rc)
	}
	if req.Aggs {
		for _, agg := range docAggs {
			ranks.DocAggs = append(ranks.DocAggs, *agg)
		}
		sort.Slice(ranks.DocAggs, func(i, j int) bool {
			if ranks.DocAggs[i].Count != ranks.DocAggs[j].Count {
				return ranks.DocAggs[i].Count > ranks.DocAggs[j].Count
			}
			return ranks.DocAggs[i].DocName < ranks.DocAggs[j].DocName
		})
	}

	span.SetAttributes(attribute.Int("chunks", len(ranks.Chunks)), attribute.Int("total", ranks.Total))
	d.metrics.RecordRetrieval(mode, "ok", time.Since(start), len(ranks.Chunks))
	d.logger.Debug("retrieval done",
		zap.String("request_id", rid),
		zap.Int("total", ranks.Total),
		zap.Int("chunks", len(ranks.Chunks)),
		zap.Duration("elapsed", time.Since(start)))
	return ranks, nil
}

// normalizeHighlight 规整存储侧高亮：去掉非关键词上的标记，补上漏标的关键词。
func normalizeHighlight(hl string, keywords []string) string {
	if hl == "" {
		return ""
	}
	kw := make(map[string]struct{}, len(keywords))
	for _, k := range keywords {
		kw[strings.ToLower(k)] = struct{}{}
	}
	fields := strings.Fields(hl)
	for i, f := range fields {
		plain := strings.TrimSuffix(strings.TrimPrefix(f, "<em>"), "</em>")
		if _, ok := kw[strings.ToLower(plain)]; ok {
			fields[i] = "<em>" + plain + "</em>"
		} else {
			fields[i] = plain
		}
	}
	return strings.Join(fields, " ")
}

// argsortDesc 稳定降序下标排序，同分保留存储顺序。
func argsortDesc(scores []float64) []int {
	idx := make([]int, len(scores))
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(a, b int) bool {
		return scores[idx[a]] > scores[idx[b]]
	})
	return idx
}

func boolPtr(b bool) *bool { return &b }
