package queryflow

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/BaSui01/queryflow/search"
)

type stubEmb struct{ vec []float32 }

func (s *stubEmb) Encode(_ context.Context, texts []string) ([][]float32, int, error) {
	out := make([][]float32, len(texts))
	for i := range out {
		out[i] = s.vec
	}
	return out, len(texts), nil
}

func (s *stubEmb) EncodeQueries(context.Context, string) ([]float32, int, error) {
	return s.vec, 1, nil
}

func TestNewRequiresStore(t *testing.T) {
	_, err := New(nil)
	assert.Error(t, err)
}

func TestEngineEndToEnd(t *testing.T) {
	logger := zaptest.NewLogger(t)
	store := search.NewMemStore(logger)
	require.NoError(t, store.AddChunks(context.Background(), []*search.Chunk{
		{
			ID:          "c1",
			DocID:       "d1",
			DocName:     "d1.pdf",
			KBID:        "kb1",
			Content:     "optic flow estimation",
			ContentLtks: "optic flow estimation",
			Available:   true,
			Vector:      []float32{1, 0},
		},
	}))

	eng, err := New(store, WithLogger(logger))
	require.NoError(t, err)
	require.NotNil(t, eng.Tokenizer)
	require.NotNil(t, eng.Queryer)

	res, err := eng.Retrieval(context.Background(), &search.RetrievalRequest{
		Question: "optical flow",
		Emb:      &stubEmb{vec: []float32{1, 0}},
		KBIDs:    []string{"kb1"},
	})
	require.NoError(t, err)
	require.Equal(t, 1, res.Total)
	assert.Equal(t, "c1", res.Chunks[0].ID)
}
