package search

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func TestChunkTokensWeights(t *testing.T) {
	ck := &Chunk{
		ContentLtks:  "body",
		TitleTks:     "title",
		QuestionTks:  "faq",
		ImportantKwd: []string{"kwd"},
	}
	tks := chunkTokens(ck)
	counts := map[string]int{}
	for _, tk := range tks {
		counts[tk]++
	}
	assert.Equal(t, 1, counts["body"])
	assert.Equal(t, 2, counts["title"])
	assert.Equal(t, 5, counts["kwd"])
	assert.Equal(t, 6, counts["faq"])
}

func TestChunkVectorsZeroOnMismatch(t *testing.T) {
	d := newTestDealer(t, NewMemStore(zaptest.NewLogger(t)))
	sres := &SearchResult{
		QueryVector: []float32{1, 0},
		IDs:         []string{"ok", "bad", "none"},
		Fields: map[string]*Chunk{
			"ok":   {ID: "ok", Vector: []float32{0.5, 0.5}},
			"bad":  {ID: "bad", Vector: []float32{1, 2, 3}},
			"none": {ID: "none"},
		},
	}
	vecs := d.chunkVectors(sres)
	require.Len(t, vecs, 3)
	assert.Equal(t, []float32{0.5, 0.5}, vecs[0])
	assert.Equal(t, []float32{0, 0}, vecs[1], "mismatched dimension degrades to zero vector")
	assert.Equal(t, []float32{0, 0}, vecs[2])
}

func TestRankFeatureScoresPagerankOnly(t *testing.T) {
	d := newTestDealer(t, NewMemStore(zaptest.NewLogger(t)))
	sres := &SearchResult{
		IDs: []string{"a", "b"},
		Fields: map[string]*Chunk{
			"a": {ID: "a", PageRank: 2.5},
			"b": {ID: "b"},
		},
	}
	scores := d.rankFeatureScores(nil, sres)
	assert.Equal(t, []float64{2.5, 0}, scores)
}

func TestRankFeatureScoresTagAffinity(t *testing.T) {
	d := newTestDealer(t, NewMemStore(zaptest.NewLogger(t)))
	sres := &SearchResult{
		IDs: []string{"tagged", "plain"},
		Fields: map[string]*Chunk{
			"tagged": {ID: "tagged", PageRank: 0.5, TagFeatures: map[string]float64{"t": 2}},
			"plain":  {ID: "plain", PageRank: 1.5},
		},
	}
	// 查询侧范数不含 pagerank 项：qDenor = 3
	rfea := map[string]float64{"t": 3, FieldPageRank: 100}
	scores := d.rankFeatureScores(rfea, sres)
	require.Len(t, scores, 2)
	// tagged: 6/2/3×10 + 0.5 = 10.5；plain 无标签 → 仅 pagerank
	assert.InDelta(t, 10.5, scores[0], 1e-9)
	assert.InDelta(t, 1.5, scores[1], 1e-9)
}

func TestRerankAddsRankFeature(t *testing.T) {
	d := newTestDealer(t, NewMemStore(zaptest.NewLogger(t)))
	sres := &SearchResult{
		QueryVector: []float32{1, 0},
		IDs:         []string{"a", "b"},
		Fields: map[string]*Chunk{
			"a": {ID: "a", ContentLtks: "alpha", Vector: []float32{1, 0}, PageRank: 0.1},
			"b": {ID: "b", ContentLtks: "beta", Vector: []float32{0, 1}},
		},
		Keywords: []string{"alpha"},
	}
	sim, tksim, vtsim := d.Rerank(sres, 0.3, 0.7, nil)
	require.Len(t, sim, 2)
	assert.InDelta(t, 1.0, vtsim[0], 1e-9)
	assert.InDelta(t, 0.0, vtsim[1], 1e-9)
	assert.Greater(t, tksim[0], tksim[1])
	// pagerank 直接加到混合分上
	assert.InDelta(t, 0.3*tksim[0]+0.7*vtsim[0]+0.1, sim[0], 1e-6)
	assert.InDelta(t, 0.3*tksim[1]+0.7*vtsim[1], sim[1], 1e-6)
}

func TestRerankByModelFormula(t *testing.T) {
	d := newTestDealer(t, NewMemStore(zaptest.NewLogger(t)))
	sres := &SearchResult{
		IDs: []string{"a", "b"},
		Fields: map[string]*Chunk{
			"a": {ID: "a", Content: "alpha doc", ContentLtks: "alpha"},
			"b": {ID: "b", Content: "beta doc", ContentLtks: "beta"},
		},
		Keywords: []string{"alpha"},
	}
	mdl := &mockRerank{scores: []float64{0.2, 0.8}}
	sim, tksim, vtsim, err := d.RerankByModel(context.Background(), mdl, sres, "alpha", 0.5, 0.5, nil)
	require.NoError(t, err)
	assert.Equal(t, []float64{0.2, 0.8}, vtsim)
	for i := range sim {
		assert.InDelta(t, 0.5*tksim[i]+0.5*vtsim[i], sim[i], 1e-9)
	}
	assert.Greater(t, sim[0], sim[1], "full token overlap outweighs the model margin here")
}
