package search

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"go.uber.org/zap"

	"github.com/BaSui01/queryflow/query"
)

// =============================================================================
// 📎 引用标注
// =============================================================================

const (
	citationThreshold = 0.63
	citationDecay     = 0.8
	citationFloor     = 0.3
	citationMargin    = 0.99
	maxCitations      = 4
	minPieceRunes     = 5
)

// 句边界：CJK 句末标点，或拉丁小写字母后跟句末标点与空白。
var reSentenceEnd = regexp.MustCompile(`([^|][；。？!！\n]|[a-z][.?;!][ \n])`)

// splitSentences 按句边界切分，边界字符归属前句。
func splitSentences(t string) []string {
	locs := reSentenceEnd.FindAllStringIndex(t, -1)
	var out []string
	prev := 0
	for _, lc := range locs {
		out = append(out, t[prev:lc[1]])
		prev = lc[1]
	}
	if prev < len(t) {
		out = append(out, t[prev:])
	}
	return out
}

// splitAnswer 先按围栏代码块切分（代码块保持原子），再逐句切分文本段。
func splitAnswer(answer string) []string {
	parts := strings.Split(answer, "```")
	var pieces []string
	for i, p := range parts {
		if i%2 == 1 {
			pieces = append(pieces, "```"+p+"```")
			continue
		}
		pieces = append(pieces, splitSentences(p)...)
	}
	return pieces
}

// InsertCitations 把答案句映射回支撑片段并插入 ` ##N$$` 标记。
// 每个片段只在首个命中句处引用一次。
func (d *Dealer) InsertCitations(ctx context.Context, answer string, chunks []string, chunkVecs [][]float32, emb EmbeddingModel, tkWeight, vtWeight float64) (string, []int, error) {
	if answer == "" || len(chunks) == 0 {
		return answer, nil, nil
	}

	pieces := splitAnswer(answer)
	var embIdx []int
	var embTexts []string
	for i, p := range pieces {
		if len([]rune(strings.TrimSpace(p))) < minPieceRunes {
			continue
		}
		embIdx = append(embIdx, i)
		embTexts = append(embTexts, p)
	}
	if len(embTexts) == 0 {
		return answer, nil, nil
	}

	ansVecs, _, err := emb.Encode(ctx, embTexts)
	if err != nil {
		return "", nil, fmt.Errorf("encode answer pieces: %w", err)
	}
	if len(ansVecs) != len(embTexts) {
		return "", nil, fmt.Errorf("embedding model returned %d vectors for %d texts", len(ansVecs), len(embTexts))
	}

	dim := 0
	if len(ansVecs) > 0 {
		dim = len(ansVecs[0])
	}
	cvecs := make([][]float32, len(chunkVecs))
	for i, v := range chunkVecs {
		if len(v) != dim {
			d.metrics.RecordVectorMismatch()
			d.logger.Warn("chunk vector dimension mismatch, zeroed",
				zap.Int("chunk", i), zap.Int("chunk_dim", len(v)), zap.Int("answer_dim", dim))
			cvecs[i] = make([]float32, dim)
			continue
		}
		cvecs[i] = v
	}

	chunkTks := make([][]string, len(chunks))
	for i, ck := range chunks {
		chunkTks[i] = strings.Fields(d.tok.Tokenize(query.RmWWW(ck)))
	}

	cites := make(map[int][]int)
	for thr := citationThreshold; thr > citationFloor && len(cites) == 0; thr *= citationDecay {
		for i := range embTexts {
			tks := strings.Fields(d.tok.Tokenize(query.RmWWW(embTexts[i])))
			sim, _, _ := d.qryr.HybridSimilarity(ansVecs[i], cvecs, tks, chunkTks, tkWeight, vtWeight)
			mx := 0.0
			for _, s := range sim {
				if s > mx {
					mx = s
				}
			}
			mx *= citationMargin
			if mx < thr {
				continue
			}
			var picked []int
			for ii, s := range sim {
				if s > mx {
					picked = append(picked, ii)
				}
				if len(picked) >= maxCitations {
					break
				}
			}
			if len(picked) > 0 {
				cites[embIdx[i]] = picked
			}
		}
	}

	var sb strings.Builder
	emitted := make(map[int]struct{})
	var cited []int
	for i, p := range pieces {
		sb.WriteString(p)
		picked, ok := cites[i]
		if !ok {
			continue
		}
		for _, c := range picked {
			if c >= len(chunks) {
				d.logger.DPanic("citation index out of range",
					zap.Int("index", c), zap.Int("chunks", len(chunks)))
				continue
			}
			if _, dup := emitted[c]; dup {
				continue
			}
			emitted[c] = struct{}{}
			cited = append(cited, c)
			fmt.Fprintf(&sb, " ##%d$$", c)
		}
	}
	return sb.String(), cited, nil
}
