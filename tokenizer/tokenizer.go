// Package tokenizer 提供面向检索的中英文混合分词器。
//
// 中文按词典做前向/后向最大匹配，分歧区间用带剪枝的 DFS 在前缀树上
// 搜索最优切分；英文走词干化路径。词典进程内只读，重载时整体原子替换。
package tokenizer

import (
	"sort"
	"strings"
	"sync/atomic"

	"github.com/kljensen/snowball/english"
	"go.uber.org/zap"
)

// maxDFSPaths 分歧区间 DFS 的候选切分上限，防止病态区间组合爆炸。
const maxDFSPaths = 2048

// Config 分词器配置
type Config struct {
	// 词频表路径（`词条 词频 词性` 文本行）
	DictPath string `yaml:"dict_path" json:"dict_path"`

	// 用户词典路径（同格式，可选）
	UserDictPath string `yaml:"user_dict_path" json:"user_dict_path"`
}

// DefaultConfig 返回默认分词器配置
func DefaultConfig() Config {
	return Config{}
}

// Tokenizer 词典分词器。
// 词典快照只读并以原子指针持有，读取方永远看不到半构建状态。
type Tokenizer struct {
	dict    atomic.Pointer[dict]
	logger  *zap.Logger
	dfsRuns atomic.Int64
}

// New 创建分词器并加载词典。词典加载失败只降级、不报错。
func New(cfg Config, logger *zap.Logger) *Tokenizer {
	if logger == nil {
		logger = zap.NewNop()
	}
	t := &Tokenizer{logger: logger}
	d := loadDict(cfg.DictPath, logger)
	if cfg.UserDictPath != "" {
		if u, n, err := loadDictFile(cfg.UserDictPath); err != nil {
			logger.Warn("user dictionary load failed",
				zap.String("path", cfg.UserDictPath),
				zap.Error(err))
		} else {
			u.fwd.walk(func(key string, freq int, tag string) {
				rs := []rune(key)
				d.fwd.insert(rs, freq, tag)
				d.bwd.insert(reverseRunes(rs), freq, tag)
			})
			logger.Info("user dictionary merged", zap.Int("terms", n))
		}
	}
	t.dict.Store(d)
	return t
}

// LoadTerms 在现有快照之上合入词条并原子替换快照。
// 用于测试与运行期追加用户词。
func (t *Tokenizer) LoadTerms(terms []Term) {
	old := t.snapshot()
	d := newDict()
	old.fwd.walk(func(key string, freq int, tag string) {
		rs := []rune(key)
		d.fwd.insert(rs, freq, tag)
		d.bwd.insert(reverseRunes(rs), freq, tag)
	})
	for _, term := range terms {
		d.add(term.Text, term.Freq, term.Tag)
	}
	t.dict.Store(d)
}

// LoadUserDict 运行期合入一份用户词典文件并原子替换快照。
func (t *Tokenizer) LoadUserDict(path string) error {
	u, n, err := loadDictFile(path)
	if err != nil {
		return err
	}
	var terms []Term
	u.fwd.walk(func(key string, freq int, tag string) {
		terms = append(terms, Term{Text: key, Freq: expandFreq(freq), Tag: tag})
	})
	t.LoadTerms(terms)
	t.logger.Info("user dictionary merged", zap.String("path", path), zap.Int("terms", n))
	return nil
}

func (t *Tokenizer) snapshot() *dict {
	return t.dict.Load()
}

// Freq 返回词条的原始量级词频，不在词典中时为 0。
func (t *Tokenizer) Freq(term string) int {
	key := []rune(strings.ToLower(Tradi2Simp(term)))
	f, _, ok := t.snapshot().lookup(key)
	if !ok {
		return 0
	}
	return expandFreq(f)
}

// Tag 返回词条的词性标记，不在词典中时为空串。
func (t *Tokenizer) Tag(term string) string {
	key := []rune(strings.ToLower(Tradi2Simp(term)))
	_, tag, ok := t.snapshot().lookup(key)
	if !ok {
		return ""
	}
	return tag
}

// DFSRuns 返回 DFS 消歧被触发的累计次数（可用于验证无歧义文本不走 DFS）。
func (t *Tokenizer) DFSRuns() int64 {
	return t.dfsRuns.Load()
}

// =============================================================================
// ✂️ 主分词流程
// =============================================================================

// token 一次匹配得到的词及其词典记录。
type token struct {
	text []rune
	freq int
	tag  string
}

// scoreSeq 切分序列打分：常数奖励 / 词数 + 多字词占比 + 词频和。
// 词数越少、词越长、词频越高得分越高。
func scoreSeq(seq []token) float64 {
	const bonus = 30.0
	if len(seq) == 0 {
		return 0
	}
	freqSum := 0
	multi := 0
	for _, tk := range seq {
		freqSum += tk.freq
		if len(tk.text) >= 2 {
			multi++
		}
	}
	return bonus/float64(len(seq)) + float64(multi)/float64(len(seq)) + float64(freqSum)
}

// Tokenize 对文本分词，返回空格连接的词序列。
func (t *Tokenizer) Tokenize(line string) string {
	d := t.snapshot()
	line = normalize(line)
	if strings.TrimSpace(line) == "" {
		return ""
	}

	hasZh := false
	for _, r := range line {
		if isChineseRune(r) {
			hasZh = true
			break
		}
	}
	if !hasZh {
		return strings.Join(stemTokens(strings.Fields(line)), " ")
	}

	var res []string
	for _, rn := range splitByLang(line) {
		if !rn.chinese {
			res = append(res, stemTokens(strings.Fields(string(rn.text)))...)
			continue
		}
		L := rn.text
		if len(L) < 2 || isAllAlpha(L) || isAllDigit(L) {
			res = append(res, string(L))
			continue
		}
		res = append(res, t.reconcile(d, L)...)
	}
	return t.merge(d, strings.Join(res, " "))
}

// stemTokens 英文词干化（非纯字母 token 原样保留）。
func stemTokens(tks []string) []string {
	out := make([]string, 0, len(tks))
	for _, tk := range tks {
		if tk == "" {
			continue
		}
		out = append(out, stemToken(tk))
	}
	return out
}

func stemToken(tk string) string {
	for _, r := range tk {
		if r < 'a' || r > 'z' {
			return tk
		}
	}
	return english.Stem(tk, false)
}

// =============================================================================
// ↔️ 前向 / 后向最大匹配
// =============================================================================

// maxForward 前向最大匹配：从左到右贪心取词典内最长前缀。
func (t *Tokenizer) maxForward(d *dict, rs []rune) ([]token, float64) {
	var res []token
	s := 0
	for s < len(rs) {
		e := s + 1
		for e < len(rs) && d.fwd.hasKeysWithPrefix(rs[s:e]) {
			e++
		}
		for e-1 > s {
			if _, ok := d.fwd.get(rs[s:e]); ok {
				break
			}
			e--
		}
		if n, ok := d.fwd.get(rs[s:e]); ok {
			res = append(res, token{text: rs[s:e], freq: n.freq, tag: n.tag})
		} else {
			res = append(res, token{text: rs[s:e]})
		}
		s = e
	}
	return res, scoreSeq(res)
}

// maxBackward 后向最大匹配：从右到左贪心，用逆序键索引扩展。
func (t *Tokenizer) maxBackward(d *dict, rs []rune) ([]token, float64) {
	var res []token
	s := len(rs) - 1
	for s >= 0 {
		e := s + 1
		for s > 0 && d.bwd.hasKeysWithPrefix(reverseRunes(rs[s:e])) {
			s--
		}
		for s+1 < e {
			if _, ok := d.fwd.get(rs[s:e]); ok {
				break
			}
			s++
		}
		if n, ok := d.fwd.get(rs[s:e]); ok {
			res = append(res, token{text: rs[s:e], freq: n.freq, tag: n.tag})
		} else {
			res = append(res, token{text: rs[s:e]})
		}
		s--
	}
	for l, r := 0, len(res)-1; l < r; l, r = l+1, r-1 {
		res[l], res[r] = res[r], res[l]
	}
	return res, scoreSeq(res)
}

// =============================================================================
// 🔀 分歧消解（DFS）
// =============================================================================

// dfs 枚举与词典一致的全部切分边界。
// pre 是共享的部分切分缓冲，分支间靠回溯复用，只有到达终点时才拷贝一次。
// 返回能推进到的最远位置，用于判断单字回退。
func (t *Tokenizer) dfs(d *dict, rs []rune, s int, pre []token, out *[][]token) int {
	if s >= len(rs) {
		seq := make([]token, len(pre))
		copy(seq, pre)
		*out = append(*out, seq)
		return s
	}

	// 剪枝一：单字有延续而双字没有任何延续时，强制两字步进。
	step := s + 1
	if s+2 <= len(rs) {
		if d.fwd.hasKeysWithPrefix(rs[s:s+1]) && !d.fwd.hasKeysWithPrefix(rs[s:s+2]) {
			step = s + 2
		}
	}
	// 剪枝二：连续三个单字后，若上一字与当前字拼接成词，强制步进，
	// 避免退化区间被切成一串单字。
	if len(pre) > 2 &&
		len(pre[len(pre)-1].text) == 1 &&
		len(pre[len(pre)-2].text) == 1 &&
		len(pre[len(pre)-3].text) == 1 {
		joined := append(append([]rune(nil), pre[len(pre)-1].text...), rs[s])
		if _, _, ok := d.lookup(joined); ok {
			step = s + 2
		}
	}

	res := s
	for e := step; e <= len(rs); e++ {
		if len(*out) >= maxDFSPaths {
			break
		}
		seg := rs[s:e]
		if e > s+1 && !d.fwd.hasKeysWithPrefix(seg) {
			break
		}
		n, ok := d.fwd.get(seg)
		if !ok {
			continue
		}
		if r := t.dfs(d, rs, e, append(pre, token{text: seg, freq: n.freq, tag: n.tag}), out); r > res {
			res = r
		}
	}
	if res > s {
		return res
	}

	// 单字回退：词典外单字记 -12 惩罚频次。
	seg := rs[s : s+1]
	tk := token{text: seg, freq: -12}
	if n, ok := d.fwd.get(seg); ok {
		tk.freq, tk.tag = n.freq, n.tag
	}
	return t.dfs(d, rs, s+1, append(pre, tk), out)
}

// sortCandidates 按切分得分降序。
func sortCandidates(cands [][]token) {
	sort.SliceStable(cands, func(i, j int) bool {
		return scoreSeq(cands[i]) > scoreSeq(cands[j])
	})
}

// dfsResolve 对歧义区间做 DFS 消解，返回最优切分。
func (t *Tokenizer) dfsResolve(d *dict, rs []rune) []string {
	t.dfsRuns.Add(1)
	var cands [][]token
	t.dfs(d, rs, 0, nil, &cands)
	if len(cands) == 0 {
		return []string{string(rs)}
	}
	sortCandidates(cands)
	out := make([]string, 0, len(cands[0]))
	for _, tk := range cands[0] {
		out = append(out, string(tk.text))
	}
	return out
}

// reconcile 锁步对齐前向与后向匹配的结果：
// 公共前缀直接采纳，第一处分歧的覆盖区间交给 DFS 重切，之后继续推进。
func (t *Tokenizer) reconcile(d *dict, rs []rune) []string {
	fwdSeq, _ := t.maxForward(d, rs)
	bwdSeq, _ := t.maxBackward(d, rs)
	tks := make([]string, len(fwdSeq))
	for i, tk := range fwdSeq {
		tks[i] = string(tk.text)
	}
	tks1 := make([]string, len(bwdSeq))
	for i, tk := range bwdSeq {
		tks1[i] = string(tk.text)
	}

	join := func(parts []string) string { return strings.Join(parts, "") }

	var res []string
	same := 0
	for same < len(tks1) && same < len(tks) && tks1[same] == tks[same] {
		same++
	}
	if same > 0 {
		res = append(res, strings.Join(tks[:same], " "))
	}
	fi, fj := same, same // 已消解位置（后向 / 前向）
	i, j := fi+1, fj+1

	for i < len(tks1) && j < len(tks) {
		tk1, tk := join(tks1[fi:i]), join(tks[fj:j])
		if tk1 != tk {
			if len(tk1) > len(tk) {
				j++
			} else {
				i++
			}
			continue
		}
		if tks1[i] != tks[j] {
			i++
			j++
			continue
		}
		// [fj:j) 两侧文本一致但边界不同：交给 DFS。
		res = append(res, strings.Join(t.dfsResolve(d, []rune(tk)), " "))
		same = 1
		for i+same < len(tks1) && j+same < len(tks) && tks1[i+same] == tks[j+same] {
			same++
		}
		res = append(res, strings.Join(tks[j:j+same], " "))
		fi, fj = i+same, j+same
		i, j = fi+1, fj+1
	}
	if fi < len(tks1) && fj < len(tks) {
		// 尾部残留在两侧必然文本一致，同样 DFS 消解。
		res = append(res, strings.Join(t.dfsResolve(d, []rune(join(tks[fj:]))), " "))
	}
	return res
}

// =============================================================================
// 🔗 合并修复
// =============================================================================

// merge 左到右贪心扫描，把最多 4 个相邻 token 重新拼成词典词，
// 修复切分启发造成的过度切分。
func (t *Tokenizer) merge(d *dict, joined string) string {
	tks := strings.Fields(joined)
	var res []string
	for s := 0; s < len(tks); {
		end := s + 1
		for e := s + 2; e <= len(tks) && e <= s+4; e++ {
			cat := strings.Join(tks[s:e], "")
			if needsMergeCheck(cat) && t.dictFreq(d, cat) > 0 {
				end = e
			}
		}
		res = append(res, strings.Join(tks[s:end], ""))
		s = end
	}
	return strings.Join(res, " ")
}

func (t *Tokenizer) dictFreq(d *dict, term string) int {
	f, _, ok := d.lookup([]rune(term))
	if !ok {
		return 0
	}
	return expandFreq(f)
}

// =============================================================================
// 🔬 细粒度分词
// =============================================================================

// FineGrainedTokenize 对已分词结果做二次细切：
// 长的多字词在词典上重新 DFS，取次优切分作为细粒度版本。
func (t *Tokenizer) FineGrainedTokenize(tks string) string {
	d := t.snapshot()
	toks := strings.Fields(tks)
	zh := 0
	for _, tk := range toks {
		if tk != "" && isChineseRune([]rune(tk)[0]) {
			zh++
		}
	}
	if float64(zh) < float64(len(toks))*0.2 {
		var res []string
		for _, tk := range toks {
			res = append(res, strings.Split(tk, "/")...)
		}
		return strings.Join(stemTokens(res), " ")
	}

	var res []string
	for _, tk := range toks {
		rs := []rune(tk)
		if len(rs) < 3 || isAllDigit(rs) {
			res = append(res, tk)
			continue
		}
		var cands [][]token
		if len(rs) > 10 {
			// 超长 token 不值得枚举，原样保留。
			res = append(res, tk)
			continue
		}
		t.dfs(d, rs, 0, nil, &cands)
		if len(cands) < 2 {
			res = append(res, tk)
			continue
		}
		sortCandidates(cands)
		pick := cands[1]
		if len(pick) == len(rs) {
			// 完全退化为单字，保留原词。
			res = append(res, tk)
			continue
		}
		if isAllAlpha(rs) {
			short := false
			for _, p := range pick {
				if len(p.text) < 3 {
					short = true
					break
				}
			}
			if short {
				res = append(res, tk)
				continue
			}
		}
		parts := make([]string, 0, len(pick))
		for _, p := range pick {
			parts = append(parts, string(p.text))
		}
		res = append(res, strings.Join(parts, " "))
	}
	return strings.Join(stemTokens(res), " ")
}
