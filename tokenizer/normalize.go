package tokenizer

import (
	"strings"
	"unicode"
)

// =============================================================================
// 🔤 文本归一化（全角转半角 / 繁转简 / 字符分类）
// =============================================================================
//
// 用显式的字符分类代替正则扫描，避免回溯型正则在长文本上的性能风险。

// isChineseRune 判断是否为中文字符（CJK 统一表意文字区段）。
func isChineseRune(r rune) bool {
	switch {
	case r >= 0x4E00 && r <= 0x9FFF:
		return true
	case r >= 0x3400 && r <= 0x4DBF: // 扩展 A
		return true
	case r >= 0xF900 && r <= 0xFAFF: // 兼容表意文字
		return true
	}
	return false
}

// isWordRune 对应 `\w` 语义：字母、数字、下划线（unicode 感知）。
func isWordRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}

// q2b 全角转半角：U+3000 → 空格，U+FF01..U+FF5E → ASCII。
func q2b(r rune) rune {
	switch {
	case r == 0x3000:
		return ' '
	case r >= 0xFF01 && r <= 0xFF5E:
		return r - 0xFEE0
	}
	return r
}

// StrQ2B 将整串文本做全角转半角。
func StrQ2B(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		b.WriteRune(q2b(r))
	}
	return b.String()
}

// Tradi2Simp 繁体转简体。表外字符原样保留。
func Tradi2Simp(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if sr, ok := trad2simp[r]; ok {
			b.WriteRune(sr)
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// normalize 执行分词前的统一清洗：
// 非 word 字符替换为空格、全角转半角、小写、繁转简。
func normalize(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		r = q2b(r)
		if !isWordRune(r) {
			b.WriteRune(' ')
			continue
		}
		if sr, ok := trad2simp[r]; ok {
			r = sr
		}
		b.WriteRune(unicode.ToLower(r))
	}
	return b.String()
}

// run 是按中/非中文边界切出的一段文本。
type run struct {
	text    []rune
	chinese bool
}

// splitByLang 以中文/非中文字符类边界把文本切成交替的段。
// 两态扫描：状态切换点即段边界。
func splitByLang(s string) []run {
	rs := []rune(s)
	var out []run
	start := 0
	for i := 1; i <= len(rs); i++ {
		if i == len(rs) || isChineseRune(rs[i]) != isChineseRune(rs[start]) {
			out = append(out, run{text: rs[start:i], chinese: isChineseRune(rs[start])})
			start = i
		}
	}
	return out
}

// isAllAlpha 纯 ASCII 字母、点、横线（标识符、域名片段等）。
func isAllAlpha(rs []rune) bool {
	if len(rs) == 0 {
		return false
	}
	for _, r := range rs {
		if (r < 'a' || r > 'z') && r != '.' && r != '-' {
			return false
		}
	}
	return true
}

// isAllDigit 纯数字、点、横线（版本号、日期片段等）。
func isAllDigit(rs []rune) bool {
	if len(rs) == 0 {
		return false
	}
	for _, r := range rs {
		if (r < '0' || r > '9') && r != '.' && r != '-' {
			return false
		}
	}
	return true
}

// isAlnumCode 纯 ASCII 字母数字及常见符号（编码、型号类 token）。
func isAlnumCode(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		ok := (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') ||
			r == '.' || r == '-' || r == '_' || r == ',' || r == '+'
		if !ok {
			return false
		}
	}
	return true
}

// splitCharSet 触发合并检查的字符集合（§merge）。
const splitCharSet = " ,.<>/?;:'[]\\`!@#$%^&*(){}|_+=，。？、；：“”【】~！￥（）—-"

// needsMergeCheck 合并候选判定：包含分隔字符、夹带 ASCII 字母数字段，
// 或整体是 ASCII 编码样式。
func needsMergeCheck(s string) bool {
	if isAlnumCode(s) {
		return true
	}
	for _, r := range s {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			return true
		}
	}
	return strings.ContainsAny(s, splitCharSet)
}
