package query

import (
	"math"
	"strings"
)

// TermWeight 一个词及其重要度权重。
type TermWeight struct {
	Token  string
	Weight float64
}

// TermWeighter 词权服务接口（可插拔的外部协作方）。
type TermWeighter interface {
	// Weights 给出每个词的归一化重要度权重。
	Weights(tokens []string) []TermWeight

	// Split 把清洗后的文本切成粗粒度查询词。
	Split(text string) []string
}

// FreqProvider 提供词频查询（由分词器词典实现）。
type FreqProvider interface {
	Freq(term string) int
}

// DictTermWeighter 基于词典词频的默认词权实现：
// 低频词权重高（idf 风格），权重按和归一。
type DictTermWeighter struct {
	freq FreqProvider
	tok  Tokenizer
}

// NewDictTermWeighter 创建默认词权实现。
func NewDictTermWeighter(freq FreqProvider, tok Tokenizer) *DictTermWeighter {
	return &DictTermWeighter{freq: freq, tok: tok}
}

// Weights 词频 → idf 风格权重，总和归一为 1。
func (w *DictTermWeighter) Weights(tokens []string) []TermWeight {
	out := make([]TermWeight, 0, len(tokens))
	sum := 0.0
	for _, tk := range tokens {
		if tk == "" {
			continue
		}
		f := 0
		if w.freq != nil {
			f = w.freq.Freq(tk)
		}
		wt := 1.0 / (1.0 + math.Log1p(float64(f)))
		// 多字词略升权：单字/单 token 往往信息量低。
		if len([]rune(tk)) >= 2 {
			wt *= 2
		}
		out = append(out, TermWeight{Token: tk, Weight: wt})
		sum += wt
	}
	if sum > 0 {
		for i := range out {
			out[i].Weight /= sum
		}
	}
	return out
}

// Split 用分词器切出粗粒度查询词。
func (w *DictTermWeighter) Split(text string) []string {
	if w.tok == nil {
		return strings.Fields(text)
	}
	return strings.Fields(w.tok.Tokenize(text))
}
