package tokenizer

// =============================================================================
// 🌲 词典前缀树
// =============================================================================

// trieNode 前缀树节点。children 按 rune 索引。
type trieNode struct {
	children map[rune]*trieNode
	term     bool
	freq     int // log 压缩后的词频
	tag      string
}

// trie 将归一化后的词条映射到 (freq, tag)。
// 构建完成后只读，可被多个 goroutine 并发读取。
type trie struct {
	root *trieNode
	size int
}

func newTrie() *trie {
	return &trie{root: &trieNode{}}
}

// insert 插入词条。重复插入时保留较高词频的记录。
func (t *trie) insert(key []rune, freq int, tag string) {
	n := t.root
	for _, r := range key {
		if n.children == nil {
			n.children = make(map[rune]*trieNode)
		}
		child, ok := n.children[r]
		if !ok {
			child = &trieNode{}
			n.children[r] = child
		}
		n = child
	}
	if n.term && n.freq >= freq {
		if tag != "" && n.tag == "" {
			n.tag = tag
		}
		return
	}
	if !n.term {
		t.size++
	}
	n.term = true
	n.freq = freq
	n.tag = tag
}

// get 返回词条记录，不存在时第二个返回值为 false。
func (t *trie) get(key []rune) (*trieNode, bool) {
	n := t.root
	for _, r := range key {
		child, ok := n.children[r]
		if !ok {
			return nil, false
		}
		n = child
	}
	if !n.term {
		return nil, false
	}
	return n, true
}

// hasKeysWithPrefix 判断是否存在以 key 为前缀的词条（含 key 本身）。
func (t *trie) hasKeysWithPrefix(key []rune) bool {
	n := t.root
	for _, r := range key {
		child, ok := n.children[r]
		if !ok {
			return false
		}
		n = child
	}
	return true
}

// walk 遍历全部词条，用于序列化。
func (t *trie) walk(fn func(key string, freq int, tag string)) {
	var dfs func(n *trieNode, prefix []rune)
	dfs = func(n *trieNode, prefix []rune) {
		if n.term {
			fn(string(prefix), n.freq, n.tag)
		}
		for r, child := range n.children {
			next := make([]rune, len(prefix), len(prefix)+1)
			copy(next, prefix)
			dfs(child, append(next, r))
		}
	}
	dfs(t.root, nil)
}

func reverseRunes(rs []rune) []rune {
	out := make([]rune, len(rs))
	for i, r := range rs {
		out[len(rs)-1-i] = r
	}
	return out
}
