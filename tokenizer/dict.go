package tokenizer

import (
	"bufio"
	"encoding/gob"
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"

	"go.uber.org/zap"
)

// =============================================================================
// 📚 词典加载与快照
// =============================================================================

// denominator 词频 log 压缩的基数。
const denominator = 1000000

// Term 词典中的一个词条（原始词频）。
type Term struct {
	Text string
	Freq int
	Tag  string
}

// dict 一次构建、只读的词典快照。
// 正向树按归一化 key 索引，反向树按逆序 key 索引（后向最大匹配用）。
type dict struct {
	fwd *trie
	bwd *trie
}

func newDict() *dict {
	return &dict{fwd: newTrie(), bwd: newTrie()}
}

// compressFreq 原始词频 → log 压缩值。
func compressFreq(freq int) int {
	if freq <= 0 {
		return 0
	}
	return int(math.Log(float64(freq)/denominator) + 0.5)
}

// expandFreq log 压缩值 → 原始量级词频。
func expandFreq(f int) int {
	return int(math.Exp(float64(f))*denominator + 0.5)
}

// add 插入一个词条。key 为归一化（小写 + 繁转简）后的文本。
func (d *dict) add(text string, freq int, tag string) {
	key := []rune(strings.ToLower(Tradi2Simp(text)))
	if len(key) == 0 {
		return
	}
	f := compressFreq(freq)
	d.fwd.insert(key, f, tag)
	d.bwd.insert(reverseRunes(key), f, tag)
}

// lookup 正向查询。
func (d *dict) lookup(key []rune) (freq int, tag string, ok bool) {
	n, ok := d.fwd.get(key)
	if !ok {
		return 0, "", false
	}
	return n.freq, n.tag, true
}

// dictGobEntry gob 缓存条目。
type dictGobEntry struct {
	Key  string
	Freq int
	Tag  string
}

// loadDictFile 从 `词条 词频 词性` 文本表构建词典。
func loadDictFile(path string) (*dict, int, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, 0, fmt.Errorf("open dictionary: %w", err)
	}
	defer f.Close()

	d := newDict()
	n := 0
	sc := bufio.NewScanner(f)
	sc.Buffer(make([]byte, 0, 1024*1024), 1024*1024)
	for sc.Scan() {
		fields := strings.Fields(sc.Text())
		if len(fields) < 2 {
			continue
		}
		freq, err := strconv.Atoi(fields[1])
		if err != nil || freq <= 0 {
			continue
		}
		tag := ""
		if len(fields) > 2 {
			tag = fields[2]
		}
		d.add(fields[0], freq, tag)
		n++
	}
	if err := sc.Err(); err != nil {
		return nil, 0, fmt.Errorf("scan dictionary: %w", err)
	}
	return d, n, nil
}

// loadDictCache 从 gob 缓存恢复词典。
func loadDictCache(path string) (*dict, int, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, 0, fmt.Errorf("open dictionary cache: %w", err)
	}
	defer f.Close()

	var entries []dictGobEntry
	if err := gob.NewDecoder(bufio.NewReader(f)).Decode(&entries); err != nil {
		return nil, 0, fmt.Errorf("decode dictionary cache: %w", err)
	}
	d := newDict()
	for _, e := range entries {
		key := []rune(e.Key)
		d.fwd.insert(key, e.Freq, e.Tag)
		d.bwd.insert(reverseRunes(key), e.Freq, e.Tag)
	}
	return d, len(entries), nil
}

// saveDictCache 把词典序列化为 gob 缓存，便于下次快速加载。
func saveDictCache(d *dict, path string) error {
	var entries []dictGobEntry
	d.fwd.walk(func(key string, freq int, tag string) {
		entries = append(entries, dictGobEntry{Key: key, Freq: freq, Tag: tag})
	})

	tmp := path + ".tmp"
	f, err := os.Create(tmp)
	if err != nil {
		return fmt.Errorf("create dictionary cache: %w", err)
	}
	w := bufio.NewWriter(f)
	if err := gob.NewEncoder(w).Encode(entries); err != nil {
		f.Close()
		os.Remove(tmp)
		return fmt.Errorf("encode dictionary cache: %w", err)
	}
	if err := w.Flush(); err != nil {
		f.Close()
		os.Remove(tmp)
		return fmt.Errorf("flush dictionary cache: %w", err)
	}
	if err := f.Close(); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("close dictionary cache: %w", err)
	}
	return os.Rename(tmp, path)
}

// loadDict 优先读 gob 缓存（且比文本表新），否则解析文本表并写回缓存。
// 任何失败都降级为空词典（按字切分），只记日志。
func loadDict(path string, logger *zap.Logger) *dict {
	if path == "" {
		return newDict()
	}
	cache := path + ".gob"

	if ci, err := os.Stat(cache); err == nil {
		if si, err := os.Stat(path); err != nil || !si.ModTime().After(ci.ModTime()) {
			if d, n, err := loadDictCache(cache); err == nil {
				logger.Info("dictionary loaded from cache",
					zap.String("path", cache),
					zap.Int("terms", n))
				return d
			} else {
				logger.Warn("dictionary cache unreadable, falling back to text table",
					zap.String("path", cache),
					zap.Error(err))
			}
		}
	}

	d, n, err := loadDictFile(path)
	if err != nil {
		logger.Warn("dictionary load failed, degrading to character-level segmentation",
			zap.String("path", path),
			zap.Error(err))
		return newDict()
	}
	logger.Info("dictionary loaded",
		zap.String("path", path),
		zap.Int("terms", n))

	if err := saveDictCache(d, cache); err != nil {
		logger.Warn("dictionary cache write failed",
			zap.String("path", cache),
			zap.Error(err))
	}
	return d
}
