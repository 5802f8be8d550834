package search

import (
	"context"
	"fmt"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"go.uber.org/zap"
)

func TestProperty_MatchTextParserTotality(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200

	properties := gopter.NewProperties(parameters)

	properties.Property("any input parses without panic into positive-boost clauses", prop.ForAll(
		func(text string) bool {
			for _, cl := range parseMatchText(text) {
				if cl.boost <= 0 {
					return false
				}
				if len(cl.terms) == 0 {
					return false
				}
			}
			return true
		},
		gen.AnyString(),
	))

	properties.TestingRun(t)
}

func TestProperty_SearchPaginationInvariants(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 50

	properties := gopter.NewProperties(parameters)

	properties.Property("page slice never exceeds limit and total is page independent", prop.ForAll(
		func(n int, offset int, limit int) bool {
			store := NewMemStore(zap.NewNop())
			ctx := context.Background()
			var chunks []*Chunk
			for i := 0; i < n; i++ {
				chunks = append(chunks, testChunk(fmt.Sprintf("c%03d", i), "d1", "shared text", nil))
			}
			if len(chunks) > 0 {
				if err := store.AddChunks(ctx, chunks); err != nil {
					return false
				}
			}

			res, err := store.Search(ctx, &SearchRequest{Offset: offset, Limit: limit})
			if err != nil {
				return false
			}
			if res.Total != int64(n) {
				return false
			}
			if limit > 0 && len(res.IDs) > limit {
				return false
			}
			return len(res.IDs) <= n
		},
		gen.IntRange(0, 40),
		gen.IntRange(0, 50),
		gen.IntRange(0, 20),
	))

	properties.TestingRun(t)
}
