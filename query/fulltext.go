package query

import (
	"fmt"
	"regexp"
	"strings"

	"go.uber.org/zap"

	"github.com/BaSui01/queryflow/tokenizer"
)

// Tokenizer 查询编译所需的分词能力。
type Tokenizer interface {
	Tokenize(text string) string
	FineGrainedTokenize(tks string) string
}

// SynonymResolver 同义词查询能力。
type SynonymResolver interface {
	Lookup(tk string, topN int) []string
}

// FulltextQueryer 把原始问题编译为带权全文查询表达式与关键词表。
type FulltextQueryer struct {
	tok    Tokenizer
	syn    SynonymResolver
	tw     TermWeighter
	fields []WeightedField
	logger *zap.Logger
}

// NewFulltextQueryer 创建查询编译器。
func NewFulltextQueryer(tok Tokenizer, syn SynonymResolver, tw TermWeighter, logger *zap.Logger) *FulltextQueryer {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &FulltextQueryer{
		tok:    tok,
		syn:    syn,
		tw:     tw,
		fields: DefaultQueryFields,
		logger: logger.With(zap.String("component", "fulltext_queryer")),
	}
}

const (
	maxSplitTerms = 256
	maxKeywords   = 32
	synonymTopN   = 8
)

var (
	rePunct = regexp.MustCompile("[ :|\r\n\t,，。？?/`!！&^%()\\[\\]{}<>]+")

	// 多语停用短语/停用词，问题编译前剥除两次。
	reStopZh = regexp.MustCompile(`是*(什么样的|哪家|一下|那家|请问|啥样|咋样了|什么时候|何时|何地|何人|是否|是不是|多少|哪里|怎么|哪儿|怎么样|如何|哪些|是啥|啥是|啊|吗|呢|吧|咋|什么|有没有|呀|谁|哪位|哪个)是*`)
	reStopWh = regexp.MustCompile(`(^| )(what|who|how|which|where|why)('re|'s)? `)
	reStopEn = regexp.MustCompile(`(^| )('s|'re|is|are|were|was|do|does|did|don't|doesn't|didn't|has|have|be|there|you|me|your|my|mine|just|please|may|i|should|would|wouldn't|will|won't|done|go|for|with|so|the|a|an|by|i'm|it's|he's|she's|they|they're|you're|as|on|in|at|up|out|down|of|to|or|and|if) `)

	rePureLatin  = regexp.MustCompile(`^[a-zA-Z]+$`)
	reQuoteNoise = regexp.MustCompile(`[ \\"'^]`)
	reSingleChar = regexp.MustCompile(`^[a-z0-9]$`)
	reLeadSign   = regexp.MustCompile(`^[+-]`)
	reSpecialTk  = regexp.MustCompile(`^[.^+()-]`)
	reAlnumCode  = regexp.MustCompile(`^[0-9a-z.+#_*-]+$`)
	reFineNoise  = regexp.MustCompile(`[ \\"']+`)
	reEscapeChar = regexp.MustCompile(`([:{}/\[\]\-*"()|+~^])`)
)

// RmWWW 剥除疑问停用短语。剥干净了就退回原文，保证非空输入非空输出。
func RmWWW(txt string) string {
	otxt := txt
	txt = reStopZh.ReplaceAllString(txt, "")
	txt = reStopWh.ReplaceAllString(txt, " ")
	txt = reStopEn.ReplaceAllString(txt, " ")
	if strings.TrimSpace(txt) == "" {
		return otxt
	}
	return txt
}

// subSpecialChar 转义查询语法字符。
func subSpecialChar(s string) string {
	return reEscapeChar.ReplaceAllString(strings.TrimSpace(s), `\$1`)
}

// isChineseText 中文处理路径判定：
// 空白切分后 ≤3 个词，或纯拉丁词占比不足 70%。
func isChineseText(line string) bool {
	arr := strings.Fields(line)
	if len(arr) <= 3 {
		return true
	}
	nonLatin := 0
	for _, t := range arr {
		if !rePureLatin.MatchString(t) {
			nonLatin++
		}
	}
	return float64(nonLatin)/float64(len(arr)) > 0.3
}

// needFineGrained 是否需要细粒度二次切分：长度 ≥3 且不是纯编码样式 token。
func needFineGrained(tk string) bool {
	if len([]rune(tk)) < 3 {
		return false
	}
	return !reAlnumCode.MatchString(tk)
}

// Question 把问题编译为 (匹配表达式, 关键词表)。
// 编译不出任何可用子句时表达式为 nil，关键词表仍尽量返回。
func (q *FulltextQueryer) Question(txt string, minMatch float64) (*MatchTextExpr, []string) {
	txt = strings.TrimSpace(rePunct.ReplaceAllString(
		tokenizer.Tradi2Simp(tokenizer.StrQ2B(strings.ToLower(txt))), " "))
	otxt := txt
	txt = RmWWW(txt)

	if !isChineseText(txt) {
		return q.questionLatin(txt, otxt)
	}
	return q.questionChinese(RmWWW(txt), otxt, minMatch)
}

// questionLatin 非中文路径：词干化 token + 同义词扩展 + 相邻二元短语提升。
func (q *FulltextQueryer) questionLatin(txt, otxt string) (*MatchTextExpr, []string) {
	txt = RmWWW(txt)
	tks := strings.Fields(q.tok.Tokenize(txt))
	keywords := make([]string, 0, len(tks))
	keywords = append(keywords, tks...)

	tksW := q.tw.Weights(tks)
	cleaned := make([]TermWeight, 0, len(tksW))
	for _, tw := range tksW {
		tk := reQuoteNoise.ReplaceAllString(tw.Token, "")
		tk = reSingleChar.ReplaceAllString(tk, "")
		tk = reLeadSign.ReplaceAllString(tk, "")
		tk = strings.TrimSpace(tk)
		if tk == "" {
			continue
		}
		cleaned = append(cleaned, TermWeight{Token: tk, Weight: tw.Weight})
	}
	if len(cleaned) > maxSplitTerms {
		cleaned = cleaned[:maxSplitTerms]
	}

	syns := make([]string, len(cleaned))
	for i, tw := range cleaned {
		var looked []string
		if q.syn != nil {
			looked = q.syn.Lookup(tw.Token, synonymTopN)
		}
		if len(looked) == 0 {
			continue
		}
		syn := strings.Fields(q.tok.Tokenize(strings.Join(looked, " ")))
		keywords = append(keywords, syn...)
		quoted := make([]string, 0, len(syn))
		for _, s := range syn {
			if strings.TrimSpace(s) == "" {
				continue
			}
			quoted = append(quoted, fmt.Sprintf("\"%s\"^%.4f", s, tw.Weight/4))
		}
		syns[i] = strings.Join(quoted, " ")
	}

	var clauses []string
	for i, tw := range cleaned {
		if reSpecialTk.MatchString(tw.Token) {
			continue
		}
		clauses = append(clauses, fmt.Sprintf("(%s^%.4f %s)", tw.Token, tw.Weight, syns[i]))
	}
	for i := 1; i < len(cleaned); i++ {
		left, right := cleaned[i-1].Token, cleaned[i].Token
		if left == "" || right == "" {
			continue
		}
		w := cleaned[i-1].Weight
		if cleaned[i].Weight > w {
			w = cleaned[i].Weight
		}
		clauses = append(clauses, fmt.Sprintf("\"%s %s\"^%.4f", left, right, w*2))
	}
	if len(clauses) == 0 {
		clauses = append(clauses, otxt)
	}
	return &MatchTextExpr{
		Fields:       q.fields,
		MatchingText: strings.Join(clauses, " "),
		TopN:         100,
	}, keywords
}

// questionChinese 中文路径：粗粒度切词，逐词构造
// `(token OR (同义词)^0.2 OR "细粒度"~2^0.5)` 形式的子句。
func (q *FulltextQueryer) questionChinese(txt, otxt string, minMatch float64) (*MatchTextExpr, []string) {
	var clauses []string
	var keywords []string

	terms := q.tw.Split(txt)
	if len(terms) > maxSplitTerms {
		terms = terms[:maxSplitTerms]
	}
	for _, tt := range terms {
		if strings.TrimSpace(tt) == "" {
			continue
		}
		keywords = append(keywords, tt)
		twts := q.tw.Weights([]string{tt})
		var termSyns []string
		if q.syn != nil {
			termSyns = q.syn.Lookup(tt, synonymTopN)
		}
		if len(termSyns) > 0 && len(keywords) < maxKeywords {
			keywords = append(keywords, termSyns...)
		}

		var tms []TermWeight
		for _, tw := range twts {
			tk := tw.Token
			var sm []string
			if needFineGrained(tk) {
				for _, m := range strings.Fields(q.tok.FineGrainedTokenize(tk)) {
					m = reFineNoise.ReplaceAllString(m, "")
					if len([]rune(m)) > 1 {
						sm = append(sm, m)
					}
				}
			}
			if len(keywords) < maxKeywords {
				keywords = append(keywords, reFineNoise.ReplaceAllString(tk, ""))
				keywords = append(keywords, sm...)
			}

			var tkSyns []string
			if q.syn != nil {
				for _, s := range q.syn.Lookup(tk, synonymTopN) {
					if s == "" {
						continue
					}
					fine := q.tok.FineGrainedTokenize(s)
					if fine == "" {
						continue
					}
					tkSyns = append(tkSyns, fine)
				}
			}
			if len(keywords) < maxKeywords {
				keywords = append(keywords, tkSyns...)
			}
			if len(keywords) >= maxKeywords {
				break
			}

			tk = subSpecialChar(tk)
			if strings.Contains(tk, " ") {
				tk = fmt.Sprintf("\"%s\"", tk)
			}
			if len(tkSyns) > 0 {
				quoted := make([]string, 0, len(tkSyns))
				for _, s := range tkSyns {
					if strings.Contains(s, " ") {
						quoted = append(quoted, fmt.Sprintf("\"%s\"", s))
					} else {
						quoted = append(quoted, s)
					}
				}
				tk = fmt.Sprintf("(%s OR (%s)^0.2)", tk, strings.Join(quoted, " "))
			}
			if len(sm) > 0 {
				joined := strings.Join(sm, " ")
				tk = fmt.Sprintf("%s OR \"%s\" OR (\"%s\"~2)^0.5", tk, joined, joined)
			}
			if strings.TrimSpace(tk) != "" {
				tms = append(tms, TermWeight{Token: tk, Weight: tw.Weight})
			}
		}

		parts := make([]string, 0, len(tms))
		for _, t := range tms {
			parts = append(parts, fmt.Sprintf("(%s)^%.4f", t.Token, t.Weight))
		}
		clause := strings.Join(parts, " ")
		if len(twts) > 1 {
			clause += fmt.Sprintf(" (\"%s\"~2)^1.5", q.tok.Tokenize(tt))
		}
		if len(termSyns) > 0 {
			quoted := make([]string, 0, len(termSyns))
			for _, s := range termSyns {
				quoted = append(quoted, fmt.Sprintf("\"%s\"", q.tok.Tokenize(subSpecialChar(s))))
			}
			if clause != "" {
				clause = fmt.Sprintf("(%s)^5 OR (%s)^0.7", clause, strings.Join(quoted, " OR "))
			}
		}
		if clause != "" {
			clauses = append(clauses, clause)
		}
	}

	if len(clauses) == 0 {
		return nil, keywords
	}
	grouped := make([]string, 0, len(clauses))
	for _, c := range clauses {
		grouped = append(grouped, fmt.Sprintf("(%s)", c))
	}
	text := strings.Join(grouped, " OR ")
	if strings.TrimSpace(text) == "" {
		text = otxt
	}
	return &MatchTextExpr{
		Fields:       q.fields,
		MatchingText: text,
		TopN:         100,
		MinMatch:     minMatch,
	}, keywords
}

// Paragraph 从已存分块自身的词权与显式关键词构造重要词袋表达式。
// 用于标签传播检索，不用于用户问题。
func (q *FulltextQueryer) Paragraph(contentTks string, keywords []string, topN int) *MatchTextExpr {
	if topN <= 0 {
		topN = 30
	}
	tksW := q.tw.Weights(strings.Fields(contentTks))
	sortTermWeights(tksW)

	parts := make([]string, 0, len(keywords)+topN)
	for _, k := range keywords {
		parts = append(parts, fmt.Sprintf("\"%s\"", strings.TrimSpace(k)))
	}
	if len(tksW) > topN {
		tksW = tksW[:topN]
	}
	for _, tw := range tksW {
		tk := subSpecialChar(tw.Token)
		if tk == "" {
			continue
		}
		if strings.Contains(tk, " ") {
			tk = fmt.Sprintf("\"%s\"", tk)
		}
		parts = append(parts, fmt.Sprintf("%s^%.4f", tk, tw.Weight))
	}

	// 命中比例随词袋增大放宽，折算成 0~1 的比例后不超过 0.1。
	minMatch := float64(len(parts)) / 10
	if minMatch > 3 {
		minMatch = 3
	}
	if len(parts) > 0 {
		minMatch /= float64(len(parts))
	}
	return &MatchTextExpr{
		Fields:       q.fields,
		MatchingText: strings.Join(parts, " "),
		TopN:         100,
		MinMatch:     minMatch,
	}
}

func sortTermWeights(tws []TermWeight) {
	for i := 1; i < len(tws); i++ {
		for j := i; j > 0 && tws[j].Weight > tws[j-1].Weight; j-- {
			tws[j], tws[j-1] = tws[j-1], tws[j]
		}
	}
}
