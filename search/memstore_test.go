package search

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/BaSui01/queryflow/query"
)

func TestMemStoreAddDeleteCount(t *testing.T) {
	store := NewMemStore(zaptest.NewLogger(t))
	ctx := context.Background()

	require.NoError(t, store.AddChunks(ctx, []*Chunk{
		testChunk("c1", "d1", "alpha", nil),
		testChunk("c2", "d1", "beta", nil),
	}))
	n, err := store.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	assert.Error(t, store.AddChunks(ctx, []*Chunk{{}}), "chunk without id is rejected")
	assert.Error(t, store.AddChunks(ctx, []*Chunk{testChunk("c1", "d1", "dup", nil)}))

	require.NoError(t, store.DeleteChunks(ctx, []string{"c1"}))
	n, _ = store.Count(ctx)
	assert.Equal(t, 1, n)
}

func TestMemStoreFilters(t *testing.T) {
	store := NewMemStore(zaptest.NewLogger(t))
	ctx := context.Background()
	removed := testChunk("c3", "d2", "gone", nil)
	removed.Removed = true
	unavailable := testChunk("c4", "d2", "hidden", nil)
	unavailable.Available = false
	require.NoError(t, store.AddChunks(ctx, []*Chunk{
		testChunk("c1", "d1", "alpha", nil),
		testChunk("c2", "d2", "beta", nil),
		removed,
		unavailable,
	}))

	res, err := store.Search(ctx, &SearchRequest{
		Filters: Filters{DocIDs: []string{"d2"}, Available: boolPtr(true), Removed: boolPtr(false)},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"c2"}, res.IDs)

	res, err = store.Search(ctx, &SearchRequest{Filters: Filters{KBIDs: []string{"kb1"}}})
	require.NoError(t, err)
	assert.Equal(t, int64(4), res.Total)
}

func TestMemStoreDenseOrdering(t *testing.T) {
	store := NewMemStore(zaptest.NewLogger(t))
	ctx := context.Background()
	require.NoError(t, store.AddChunks(ctx, []*Chunk{
		testChunk("far", "d1", "x", []float32{0, 1}),
		testChunk("near", "d1", "x", []float32{1, 0}),
		testChunk("mid", "d1", "x", []float32{1, 1}),
	}))

	res, err := store.Search(ctx, &SearchRequest{
		MatchDense: &query.MatchDenseExpr{
			QueryVector:     []float32{1, 0},
			Metric:          "cosine",
			TopN:            10,
			SimilarityFloor: 0.1,
		},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"near", "mid"}, res.IDs, "below-floor candidates are dropped")
}

func TestMemStoreLexicalMinMatch(t *testing.T) {
	store := NewMemStore(zaptest.NewLogger(t))
	ctx := context.Background()
	require.NoError(t, store.AddChunks(ctx, []*Chunk{
		testChunk("both", "d1", "optic flow", nil),
		testChunk("one", "d1", "optic lens", nil),
	}))

	res, err := store.Search(ctx, &SearchRequest{
		MatchText: &query.MatchTextExpr{
			Fields:       query.DefaultQueryFields,
			MatchingText: "optic flow",
			MinMatch:     0.9,
		},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"both"}, res.IDs)

	res, err = store.Search(ctx, &SearchRequest{
		MatchText: &query.MatchTextExpr{
			Fields:       query.DefaultQueryFields,
			MatchingText: "optic flow",
			MinMatch:     0.3,
		},
	})
	require.NoError(t, err)
	assert.Len(t, res.IDs, 2)
	assert.Equal(t, "both", res.IDs[0], "double hit outranks single hit")
}

func TestMemStorePhraseMatch(t *testing.T) {
	store := NewMemStore(zaptest.NewLogger(t))
	ctx := context.Background()
	require.NoError(t, store.AddChunks(ctx, []*Chunk{
		testChunk("phrase", "d1", "optic flow estimation", nil),
		testChunk("scattered", "d1", "flow of optic nerves", nil),
	}))

	res, err := store.Search(ctx, &SearchRequest{
		MatchText: &query.MatchTextExpr{
			Fields:       query.DefaultQueryFields,
			MatchingText: `"optic flow"^2`,
		},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"phrase"}, res.IDs, "phrases require the contiguous token sequence")
}

func TestMemStorePaginationAndHighlight(t *testing.T) {
	store := NewMemStore(zaptest.NewLogger(t))
	ctx := context.Background()
	require.NoError(t, store.AddChunks(ctx, []*Chunk{
		testChunk("c1", "d1", "optic flow one", nil),
		testChunk("c2", "d1", "optic flow two", nil),
		testChunk("c3", "d1", "optic flow three", nil),
	}))

	res, err := store.Search(ctx, &SearchRequest{
		HighlightFields: []string{FieldContentLtks},
		MatchText: &query.MatchTextExpr{
			Fields:       query.DefaultQueryFields,
			MatchingText: "optic",
		},
		Offset: 1,
		Limit:  1,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(3), res.Total, "total counts all qualifying hits, not the page")
	require.Len(t, res.IDs, 1)
	assert.Contains(t, res.Highlight[res.IDs[0]], "<em>optic</em>")
}

func TestMemStoreAggregations(t *testing.T) {
	store := NewMemStore(zaptest.NewLogger(t))
	ctx := context.Background()
	a := testChunk("c1", "d1", "x", nil)
	a.TagKwd = []string{"science", "physics"}
	b := testChunk("c2", "d2", "x", nil)
	b.TagKwd = []string{"science"}
	require.NoError(t, store.AddChunks(ctx, []*Chunk{a, b}))

	res, err := store.Search(ctx, &SearchRequest{AggFields: []string{FieldTagKwd, FieldDocName}})
	require.NoError(t, err)
	assert.Equal(t, []Aggregate{{Key: "science", Count: 2}, {Key: "physics", Count: 1}},
		res.Aggregations[FieldTagKwd])
	assert.Len(t, res.Aggregations[FieldDocName], 2)
}

func TestMemStoreOrderBy(t *testing.T) {
	store := NewMemStore(zaptest.NewLogger(t))
	ctx := context.Background()
	hi := testChunk("c1", "d1", "x", nil)
	hi.PageRank = 5
	lo := testChunk("c2", "d2", "x", nil)
	require.NoError(t, store.AddChunks(ctx, []*Chunk{lo, hi}))

	res, err := store.Search(ctx, &SearchRequest{
		OrderBy: (&query.OrderByExpr{}).Desc(FieldPageRank),
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"c1", "c2"}, res.IDs)
}

func TestParseMatchText(t *testing.T) {
	clauses := parseMatchText(`(optic^0.5000 "syn term"^0.1250) "optic flow"~2^1.5 estim\:a`)
	require.Len(t, clauses, 4)
	assert.Equal(t, []string{"optic"}, clauses[0].terms)
	assert.InDelta(t, 0.5, clauses[0].boost, 1e-9)
	assert.True(t, clauses[1].phrase)
	assert.Equal(t, []string{"syn", "term"}, clauses[1].terms)
	assert.True(t, clauses[2].phrase)
	assert.InDelta(t, 1.5, clauses[2].boost, 1e-9)
	assert.Equal(t, []string{"estim:a"}, clauses[3].terms, "escapes are unwrapped")
}

func TestParseMatchTextSkipsConnectives(t *testing.T) {
	clauses := parseMatchText(`(a OR b) AND c`)
	require.Len(t, clauses, 3)
}
