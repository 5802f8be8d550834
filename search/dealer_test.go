package search

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/BaSui01/queryflow/query"
	"github.com/BaSui01/queryflow/tokenizer"
)

// --- hand-written mocks ---

// mockEmb 固定查询向量，其余文本给默认向量。
type mockEmb struct {
	queryVec  []float32
	vecs      map[string][]float32
	def       []float32
	encodeErr error
}

func (m *mockEmb) Encode(_ context.Context, texts []string) ([][]float32, int, error) {
	if m.encodeErr != nil {
		return nil, 0, m.encodeErr
	}
	out := make([][]float32, len(texts))
	for i, t := range texts {
		if v, ok := m.vecs[t]; ok {
			out[i] = v
			continue
		}
		out[i] = m.def
	}
	return out, len(texts), nil
}

func (m *mockEmb) EncodeQueries(_ context.Context, _ string) ([]float32, int, error) {
	if m.encodeErr != nil {
		return nil, 0, m.encodeErr
	}
	return m.queryVec, 1, nil
}

// mockRerank 固定相似度序列。
type mockRerank struct{ scores []float64 }

func (m *mockRerank) Similarity(_ context.Context, _ string, docs []string) ([]float64, error) {
	if len(m.scores) != len(docs) {
		return nil, fmt.Errorf("want %d scores, have %d", len(docs), len(m.scores))
	}
	return m.scores, nil
}

// countingStore 统计底层搜索次数。
type countingStore struct {
	DocStore
	calls int
}

func (c *countingStore) Search(ctx context.Context, req *SearchRequest) (*SearchResult, error) {
	c.calls++
	return c.DocStore.Search(ctx, req)
}

func newTestDealer(t *testing.T, store DocStore) *Dealer {
	logger := zaptest.NewLogger(t)
	tok := tokenizer.New(tokenizer.Config{}, logger)
	tw := query.NewDictTermWeighter(tok, tok)
	qryr := query.NewFulltextQueryer(tok, nil, tw, logger)
	return NewDealer(store, qryr, tok, logger)
}

func seedChunks(t *testing.T, store *MemStore, chunks []*Chunk) {
	t.Helper()
	require.NoError(t, store.AddChunks(context.Background(), chunks))
}

func testChunk(id, docID string, content string, vec []float32) *Chunk {
	return &Chunk{
		ID:          id,
		DocID:       docID,
		DocName:     docID + ".pdf",
		KBID:        "kb1",
		Content:     content,
		ContentLtks: content,
		Available:   true,
		Vector:      vec,
	}
}

func TestInterfaces(t *testing.T) {
	var _ DocStore = (*MemStore)(nil)
	var _ EmbeddingModel = (*mockEmb)(nil)
	var _ RerankModel = (*mockRerank)(nil)
}

func TestRerankWindow(t *testing.T) {
	tests := []struct {
		pageSize int
		want     int
	}{
		{pageSize: 30, want: 90},
		{pageSize: 64, want: 64},
		{pageSize: 10, want: 70},
		{pageSize: 1, want: 64},
		{pageSize: 0, want: 1},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, rerankWindow(tt.pageSize), "pageSize=%d", tt.pageSize)
	}
}

func TestArgsortDescStable(t *testing.T) {
	idx := argsortDesc([]float64{0.5, 0.9, 0.5, 0.1})
	assert.Equal(t, []int{1, 0, 2, 3}, idx, "equal scores keep store order")
}

func TestRetrievalEmptyQuestion(t *testing.T) {
	d := newTestDealer(t, NewMemStore(zaptest.NewLogger(t)))
	res, err := d.Retrieval(context.Background(), &RetrievalRequest{Question: "   "})
	require.NoError(t, err)
	assert.Equal(t, 0, res.Total)
	assert.Empty(t, res.Chunks)
}

func TestRetrievalHybridRanking(t *testing.T) {
	store := NewMemStore(zaptest.NewLogger(t))
	seedChunks(t, store, []*Chunk{
		testChunk("c1", "d1", "unrelated material entirely", []float32{0.9, 0.43589}),
		testChunk("c2", "d2", "optic flow", []float32{0.2, 0.9798}),
	})
	d := newTestDealer(t, store)

	res, err := d.Retrieval(context.Background(), &RetrievalRequest{
		Question:     "optical flow",
		Emb:          &mockEmb{queryVec: []float32{1, 0}},
		KBIDs:        []string{"kb1"},
		PageSize:     10,
		VectorWeight: 0.7,
		Aggs:         true,
	})
	require.NoError(t, err)
	require.Len(t, res.Chunks, 2)
	// 余弦 0.9/词重叠 0 的片段胜过余弦 0.2/词重叠 1 的片段
	// (0.7×0.9+0.3×0 = 0.63 > 0.7×0.2+0.3×1 = 0.44)
	assert.Equal(t, "c1", res.Chunks[0].ID)
	assert.Equal(t, "c2", res.Chunks[1].ID)
	assert.InDelta(t, 0.63, res.Chunks[0].Similarity, 0.02)
	assert.InDelta(t, 0.44, res.Chunks[1].Similarity, 0.02)
	assert.Equal(t, 2, res.Total)
	assert.Len(t, res.DocAggs, 2)
}

func TestRetrievalMonotonicityAndPagination(t *testing.T) {
	store := NewMemStore(zaptest.NewLogger(t))
	var chunks []*Chunk
	for i := 0; i < 12; i++ {
		// 余弦相似度随 i 递减
		x := 1 - float32(i)*0.07
		chunks = append(chunks, testChunk(fmt.Sprintf("c%02d", i), "d1",
			"optic flow estimation", []float32{x, 1 - x}))
	}
	seedChunks(t, store, chunks)
	d := newTestDealer(t, store)

	page1, err := d.Retrieval(context.Background(), (&RetrievalRequest{
		Question: "optical flow estimation study",
		Emb:      &mockEmb{queryVec: []float32{1, 0}},
		Page:     1,
		PageSize: 5,
	}).WithThreshold(0))
	require.NoError(t, err)
	assert.LessOrEqual(t, len(page1.Chunks), 5)
	assert.GreaterOrEqual(t, page1.Total, len(page1.Chunks))
	for i := 1; i < len(page1.Chunks); i++ {
		assert.GreaterOrEqual(t, page1.Chunks[i-1].Similarity, page1.Chunks[i].Similarity)
	}

	page2, err := d.Retrieval(context.Background(), (&RetrievalRequest{
		Question: "optical flow estimation study",
		Emb:      &mockEmb{queryVec: []float32{1, 0}},
		Page:     2,
		PageSize: 5,
	}).WithThreshold(0))
	require.NoError(t, err)
	seen := map[string]bool{}
	for _, ck := range page1.Chunks {
		seen[ck.ID] = true
	}
	for _, ck := range page2.Chunks {
		assert.False(t, seen[ck.ID], "pages must not overlap")
		if len(page1.Chunks) > 0 {
			assert.LessOrEqual(t, ck.Similarity, page1.Chunks[len(page1.Chunks)-1].Similarity)
		}
	}
}

func TestRetrievalDocIDsListingFallback(t *testing.T) {
	store := NewMemStore(zaptest.NewLogger(t))
	seedChunks(t, store, []*Chunk{
		testChunk("c1", "d1", "alpha beta", []float32{0, 1}),
		testChunk("c2", "d1", "gamma delta", []float32{0, 1}),
		testChunk("c3", "d1", "epsilon zeta", []float32{0, 1}),
		testChunk("c4", "d2", "other doc", []float32{0, 1}),
	})
	d := newTestDealer(t, store)

	// 查询向量与全部片段正交、词法零命中 → 走纯列举回退
	res, err := d.Retrieval(context.Background(), &RetrievalRequest{
		Question: "nothing matches this at all honestly",
		Emb:      &mockEmb{queryVec: []float32{1, 0}},
		DocIDs:   []string{"d1"},
	})
	require.NoError(t, err)
	assert.Equal(t, 3, res.Total, "total equals chunk count of the scoped document")
	for _, ck := range res.Chunks {
		assert.Equal(t, "d1", ck.DocID)
	}
}

func TestRetrievalLadderBounded(t *testing.T) {
	store := &countingStore{DocStore: NewMemStore(zaptest.NewLogger(t))}
	seedChunks(t, store.DocStore.(*MemStore), []*Chunk{
		testChunk("c1", "d1", "alpha beta", []float32{0, 1}),
	})
	d := newTestDealer(t, store)

	res, err := d.Retrieval(context.Background(), &RetrievalRequest{
		Question: "unsatisfiable nonsense query words",
		Emb:      &mockEmb{queryVec: []float32{1, 0}},
		PageSize: 5,
	})
	require.NoError(t, err)
	assert.NotNil(t, res)
	assert.LessOrEqual(t, store.calls, 3, "degradation ladder is bounded")
}

func TestRetrievalWithRerankModel(t *testing.T) {
	store := NewMemStore(zaptest.NewLogger(t))
	seedChunks(t, store, []*Chunk{
		testChunk("c1", "d1", "optic flow", []float32{1, 0}),
		testChunk("c2", "d2", "optic flow estimation", []float32{0.9, 0.43589}),
	})
	d := newTestDealer(t, store)

	// 模型给 c2 更高分，最终排序应跟随模型
	res, err := d.Retrieval(context.Background(), (&RetrievalRequest{
		Question: "optical flow",
		Emb:      &mockEmb{queryVec: []float32{1, 0}},
		Rerank:   &mockRerank{scores: []float64{0.1, 0.95}},
		PageSize: 10,
	}).WithThreshold(0))
	require.NoError(t, err)
	require.Len(t, res.Chunks, 2)
	assert.Equal(t, "c2", res.Chunks[0].ID)
}

func TestSearchEncodeFailurePropagates(t *testing.T) {
	store := NewMemStore(zaptest.NewLogger(t))
	d := newTestDealer(t, store)
	_, err := d.Retrieval(context.Background(), &RetrievalRequest{
		Question: "any question",
		Emb:      &mockEmb{encodeErr: fmt.Errorf("model down")},
	})
	assert.Error(t, err)
}

func TestNormalizeHighlight(t *testing.T) {
	out := normalizeHighlight("<em>optic</em> <em>of</em> flow one", []string{"optic", "flow"})
	assert.Equal(t, "<em>optic</em> of <em>flow</em> one", out)
	assert.Equal(t, "", normalizeHighlight("", []string{"x"}))
}

func TestMergeResults(t *testing.T) {
	a := &SearchResult{
		Total:  2,
		IDs:    []string{"a1", "a2"},
		Fields: map[string]*Chunk{"a1": {ID: "a1"}, "a2": {ID: "a2"}},
		Aggregations: map[string][]Aggregate{
			FieldTagKwd: {{Key: "x", Count: 2}},
		},
	}
	b := &SearchResult{
		Total:  1,
		IDs:    []string{"b1"},
		Fields: map[string]*Chunk{"b1": {ID: "b1"}},
		Aggregations: map[string][]Aggregate{
			FieldTagKwd: {{Key: "x", Count: 1}, {Key: "y", Count: 3}},
		},
	}
	m := mergeResults([]*SearchResult{a, b})
	assert.Equal(t, int64(3), m.Total)
	assert.Equal(t, []string{"a1", "a2", "b1"}, m.IDs)
	assert.Equal(t, []Aggregate{{Key: "x", Count: 3}, {Key: "y", Count: 3}}, m.Aggregations[FieldTagKwd])
}
