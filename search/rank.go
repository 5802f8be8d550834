package search

import (
	"context"
	"math"
	"strings"

	"go.uber.org/zap"
)

// =============================================================================
// 🏅 混合重排
// =============================================================================

// chunkTokens 文档侧加权词袋：正文 ×1、标题 ×2、重要词 ×5、问题词 ×6。
func chunkTokens(ck *Chunk) []string {
	content := strings.Fields(ck.ContentLtks)
	title := strings.Fields(ck.TitleTks)
	question := strings.Fields(ck.QuestionTks)
	tks := make([]string, 0, len(content)+2*len(title)+5*len(ck.ImportantKwd)+6*len(question))
	tks = append(tks, content...)
	for i := 0; i < 2; i++ {
		tks = append(tks, title...)
	}
	for i := 0; i < 5; i++ {
		tks = append(tks, ck.ImportantKwd...)
	}
	for i := 0; i < 6; i++ {
		tks = append(tks, question...)
	}
	return tks
}

// chunkVectors 候选向量集合。维度与查询向量不一致时置零降级，不报错。
func (d *Dealer) chunkVectors(sres *SearchResult) [][]float32 {
	dim := len(sres.QueryVector)
	vecs := make([][]float32, len(sres.IDs))
	for i, id := range sres.IDs {
		ck := sres.Fields[id]
		if ck == nil || len(ck.Vector) != dim {
			if ck != nil && len(ck.Vector) > 0 {
				d.metrics.RecordVectorMismatch()
				d.logger.Warn("vector dimension mismatch, zeroed",
					zap.String("chunk_id", id),
					zap.Int("chunk_dim", len(ck.Vector)),
					zap.Int("query_dim", dim))
			}
			vecs[i] = make([]float32, dim)
			continue
		}
		vecs[i] = ck.Vector
	}
	return vecs
}

// Rerank 本地重排：词重叠 + 余弦的加权混合，再加秩特征项。
func (d *Dealer) Rerank(sres *SearchResult, tkWeight, vtWeight float64, rankFeature map[string]float64) (sim, tksim, vtsim []float64) {
	insTks := make([][]string, len(sres.IDs))
	for i, id := range sres.IDs {
		if ck := sres.Fields[id]; ck != nil {
			insTks[i] = chunkTokens(ck)
		}
	}
	rankFea := d.rankFeatureScores(rankFeature, sres)
	sim, tksim, vtsim = d.qryr.HybridSimilarity(
		sres.QueryVector, d.chunkVectors(sres), sres.Keywords, insTks, tkWeight, vtWeight)
	for i := range sim {
		sim[i] += rankFea[i]
	}
	return sim, tksim, vtsim
}

// RerankByModel 外部模型重排：词法侧（词重叠+秩特征）乘词权，模型相似度乘向量权。
func (d *Dealer) RerankByModel(ctx context.Context, mdl RerankModel, sres *SearchResult, question string, tkWeight, vtWeight float64, rankFeature map[string]float64) (sim, tksim, vtsim []float64, err error) {
	insTks := make([][]string, len(sres.IDs))
	docs := make([]string, len(sres.IDs))
	for i, id := range sres.IDs {
		if ck := sres.Fields[id]; ck != nil {
			insTks[i] = chunkTokens(ck)
			docs[i] = ck.Content
		}
	}
	tksim = d.qryr.TokenSimilarity(sres.Keywords, insTks)
	vtsim, err = mdl.Similarity(ctx, question, docs)
	if err != nil {
		return nil, nil, nil, err
	}
	rankFea := d.rankFeatureScores(rankFeature, sres)
	sim = make([]float64, len(tksim))
	for i := range sim {
		sim[i] = tkWeight*(tksim[i]+rankFea[i]) + vtWeight*vtsim[i]
	}
	return sim, tksim, vtsim, nil
}

// rankFeatureScores 秩特征得分：静态 pagerank 加标签亲和度 ×10。
// 查询侧 L2 范数只算一次且不含 pagerank 项。
func (d *Dealer) rankFeatureScores(queryRfea map[string]float64, sres *SearchResult) []float64 {
	scores := make([]float64, len(sres.IDs))
	pageranks := make([]float64, len(sres.IDs))
	for i, id := range sres.IDs {
		if ck := sres.Fields[id]; ck != nil {
			pageranks[i] = ck.PageRank
		}
	}
	if len(queryRfea) == 0 {
		copy(scores, pageranks)
		return scores
	}

	qDenor := 0.0
	for t, s := range queryRfea {
		if t == FieldPageRank {
			continue
		}
		qDenor += s * s
	}
	qDenor = math.Sqrt(qDenor)

	for i, id := range sres.IDs {
		ck := sres.Fields[id]
		if ck == nil || len(ck.TagFeatures) == 0 || qDenor == 0 {
			scores[i] = pageranks[i]
			continue
		}
		nor, denor := 0.0, 0.0
		for t, sc := range ck.TagFeatures {
			if qs, ok := queryRfea[t]; ok {
				nor += qs * sc
			}
			denor += sc * sc
		}
		if denor == 0 {
			scores[i] = pageranks[i]
			continue
		}
		scores[i] = nor/math.Sqrt(denor)/qDenor*10 + pageranks[i]
	}
	return scores
}
