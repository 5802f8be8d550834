package search

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func TestTagFeaturesMath(t *testing.T) {
	aggs := []Aggregate{
		{Key: "science", Count: 10},
		{Key: "physics", Count: 5},
	}
	allTags := map[string]float64{
		"science": 0.01,
		// physics 缺失 → 基准回退到 0.0001
	}
	feas := tagFeatures(aggs, allTags, 3)
	require.Len(t, feas, 2)
	// physics: round(0.1×6/1015/0.0001) = 6；science: round(0.1×11/1015/0.01) = 0
	assert.Equal(t, Aggregate{Key: "physics", Count: 6}, feas[0])
	assert.Equal(t, Aggregate{Key: "science", Count: 0}, feas[1])
}

func TestTagFeaturesTopN(t *testing.T) {
	aggs := []Aggregate{
		{Key: "a", Count: 30},
		{Key: "b", Count: 20},
		{Key: "c", Count: 10},
		{Key: "d", Count: 1},
	}
	feas := tagFeatures(aggs, map[string]float64{}, 2)
	assert.Len(t, feas, 2)
	assert.Equal(t, "a", feas[0].Key)
	assert.Equal(t, "b", feas[1].Key)
}

func TestAllTagsInPortion(t *testing.T) {
	store := NewMemStore(zaptest.NewLogger(t))
	a := testChunk("c1", "d1", "x", nil)
	a.TagKwd = []string{"science", "physics"}
	b := testChunk("c2", "d1", "x", nil)
	b.TagKwd = []string{"science"}
	seedChunks(t, store, []*Chunk{a, b})
	d := newTestDealer(t, store)

	portion, err := d.AllTagsInPortion(context.Background(), nil, []string{"kb1"})
	require.NoError(t, err)
	assert.InDelta(t, 3.0/1003, portion["science"], 1e-9)
	assert.InDelta(t, 2.0/1003, portion["physics"], 1e-9)
}

func TestTagQuery(t *testing.T) {
	store := NewMemStore(zaptest.NewLogger(t))
	ck := testChunk("c1", "d1", "optic flow", nil)
	ck.TagKwd = []string{"deep.learning"}
	seedChunks(t, store, []*Chunk{ck})
	d := newTestDealer(t, store)

	// 全库占比大 → 换算得分为 0 → 权重下限 1，键中的点换成下划线
	tags, err := d.TagQuery(context.Background(), "optical flow", nil, []string{"kb1"},
		map[string]float64{"deep.learning": 0.5}, 3)
	require.NoError(t, err)
	assert.Equal(t, map[string]float64{"deep_learning": 1}, tags)
}

func TestTagQueryEmptyQuestion(t *testing.T) {
	d := newTestDealer(t, NewMemStore(zaptest.NewLogger(t)))
	tags, err := d.TagQuery(context.Background(), "", nil, nil, nil, 3)
	require.NoError(t, err)
	assert.Empty(t, tags)
}

func TestTagContent(t *testing.T) {
	store := NewMemStore(zaptest.NewLogger(t))
	neighbor := testChunk("n1", "d1", "optic flow estim x", nil)
	neighbor.TagKwd = []string{"cv"}
	seedChunks(t, store, []*Chunk{neighbor})
	d := newTestDealer(t, store)

	target := &Chunk{ID: "t1", ContentLtks: "optic flow estim"}
	ok, err := d.TagContent(context.Background(), nil, []string{"kb1"}, target, map[string]float64{}, 3, 30)
	require.NoError(t, err)
	require.True(t, ok)
	// round(0.1×2/1001/0.0001) = 2
	assert.Equal(t, map[string]float64{"cv": 2}, target.TagFeatures)
}

func TestTagContentLongContent(t *testing.T) {
	store := NewMemStore(zaptest.NewLogger(t))
	content := "alpha beta gamma delta epsilon zeta eta theta iota kappa lambda mu"
	neighbor := testChunk("n1", "d1", content, nil)
	neighbor.TagKwd = []string{"greek"}
	seedChunks(t, store, []*Chunk{neighbor})
	d := newTestDealer(t, store)

	// 词袋超过十个词时命中门槛仍可满足，逐词同文的近邻必须命中
	target := &Chunk{ID: "t1", ContentLtks: content}
	ok, err := d.TagContent(context.Background(), nil, []string{"kb1"}, target, map[string]float64{}, 3, 30)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, map[string]float64{"greek": 2}, target.TagFeatures)
}

func TestTagContentNoHits(t *testing.T) {
	d := newTestDealer(t, NewMemStore(zaptest.NewLogger(t)))
	target := &Chunk{ID: "t1", ContentLtks: "optic flow"}
	ok, err := d.TagContent(context.Background(), nil, nil, target, nil, 3, 30)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Nil(t, target.TagFeatures)
}
