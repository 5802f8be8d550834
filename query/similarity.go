package query

import "math"

// =============================================================================
// 📐 相似度原语
// =============================================================================

// CosineSimilarity 余弦相似度。维度不一致或零向量时为 0。
func CosineSimilarity(a, b []float32) float64 {
	if len(a) != len(b) || len(a) == 0 {
		return 0
	}
	var dot, na, nb float64
	for i := range a {
		dot += float64(a[i]) * float64(b[i])
		na += float64(a[i]) * float64(a[i])
		nb += float64(b[i]) * float64(b[i])
	}
	if na == 0 || nb == 0 {
		return 0
	}
	return dot / (math.Sqrt(na) * math.Sqrt(nb))
}

// weightMap 把词序列转为权重表。
func (q *FulltextQueryer) weightMap(tks []string) map[string]float64 {
	m := make(map[string]float64, len(tks))
	for _, tw := range q.tw.Weights(tks) {
		m[tw.Token] += tw.Weight
	}
	return m
}

// overlapSimilarity 查询侧权重在文档侧命中的占比。
func overlapSimilarity(qtw, dtw map[string]float64) float64 {
	hit := 1e-9
	total := 1e-9
	for k, v := range qtw {
		total += v
		if _, ok := dtw[k]; ok {
			hit += v
		}
	}
	return hit / total
}

// TokenSimilarity 查询词对每个文档词集的重叠相似度。
func (q *FulltextQueryer) TokenSimilarity(atks []string, btkss [][]string) []float64 {
	qtw := q.weightMap(atks)
	out := make([]float64, len(btkss))
	for i, btks := range btkss {
		out[i] = overlapSimilarity(qtw, q.weightMap(btks))
	}
	return out
}

// HybridSimilarity 词重叠与余弦相似度的加权混合。
// 所有余弦均为 0（如零向量降级）时退化为纯词相似度。
func (q *FulltextQueryer) HybridSimilarity(
	avec []float32,
	bvecs [][]float32,
	atks []string,
	btkss [][]string,
	tkWeight, vtWeight float64,
) (sim, tksim, vtsim []float64) {
	vtsim = make([]float64, len(bvecs))
	vsum := 0.0
	for i, bv := range bvecs {
		vtsim[i] = CosineSimilarity(avec, bv)
		vsum += vtsim[i]
	}
	tksim = q.TokenSimilarity(atks, btkss)
	sim = make([]float64, len(bvecs))
	if vsum == 0 {
		copy(sim, tksim)
		return sim, tksim, vtsim
	}
	for i := range sim {
		sim[i] = vtsim[i]*vtWeight + tksim[i]*tkWeight
	}
	return sim, tksim, vtsim
}
