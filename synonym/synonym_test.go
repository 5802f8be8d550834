package synonym

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func writeTable(t *testing.T, table map[string]any) string {
	t.Helper()
	data, err := json.Marshal(table)
	require.NoError(t, err)
	path := filepath.Join(t.TempDir(), "synonym.json")
	require.NoError(t, os.WriteFile(path, data, 0o644))
	return path
}

func TestParseTable(t *testing.T) {
	data := []byte(`{
		"Fast": "quick",
		"big": ["large", "huge"],
		"  Multi   Word ": "phrase",
		"bad": 42
	}`)
	table, err := ParseTable(data)
	require.NoError(t, err)
	assert.Equal(t, []string{"quick"}, table["fast"])
	assert.Equal(t, []string{"large", "huge"}, table["big"])
	assert.Equal(t, []string{"phrase"}, table["multi word"])
	_, ok := table["bad"]
	assert.False(t, ok, "entries with illegal values are skipped")
}

func TestParseTableInvalidJSON(t *testing.T) {
	_, err := ParseTable([]byte("not json"))
	assert.Error(t, err)
}

func TestLookupStaticTable(t *testing.T) {
	path := writeTable(t, map[string]any{
		"人工智能": []string{"AI", "机器智能", "智能系统", "a", "b", "c", "d", "e", "f", "g"},
	})
	r := New(Config{DictPath: path}, zaptest.NewLogger(t))
	require.Equal(t, 1, r.Size())

	res := r.Lookup("人工智能", 0)
	assert.Len(t, res, 8, "default topN caps the result")
	assert.Equal(t, "AI", res[0])

	assert.Empty(t, r.Lookup("不存在", 8))
}

func TestLookupMissingFileDegradesToEmpty(t *testing.T) {
	r := New(Config{DictPath: "/nonexistent/synonym.json"}, zaptest.NewLogger(t))
	assert.Equal(t, 0, r.Size())
	assert.Empty(t, r.Lookup("任何词", 8))
}

// --- lexical network mock ---

type mockNetwork struct{ lemmas []string }

func (m *mockNetwork) Synonyms(string) []string { return m.lemmas }

func TestLookupLatinUsesNetwork(t *testing.T) {
	r := New(Config{}, zaptest.NewLogger(t),
		WithLexicalNetwork(&mockNetwork{lemmas: []string{"purchase_order", "buy", "Procure", "procure"}}))
	res := r.Lookup("buy", 8)
	assert.Equal(t, []string{"purchase order", "Procure"}, res,
		"underscores become spaces, the input itself and duplicates are excluded")
}

func TestLookupNonLatinSkipsNetwork(t *testing.T) {
	path := writeTable(t, map[string]any{"中文": "汉语"})
	r := New(Config{DictPath: path}, zaptest.NewLogger(t),
		WithLexicalNetwork(&mockNetwork{lemmas: []string{"should-not-appear"}}))
	assert.Equal(t, []string{"汉语"}, r.Lookup("中文", 8))
}

// --- redis hot refresh ---

func setRedisTable(t *testing.T, mr *miniredis.Miniredis, key string, table map[string][]string) {
	t.Helper()
	data, err := json.Marshal(table)
	require.NoError(t, err)
	mr.Set(key, string(data))
}

func TestRedisSourceFetch(t *testing.T) {
	mr := miniredis.RunT(t)
	src, err := NewRedisSource(RedisConfig{Addr: mr.Addr()}, zaptest.NewLogger(t))
	require.NoError(t, err)
	defer src.Close()

	// 键不存在 → (nil, nil)，调用方保留旧表
	table, err := src.Fetch(context.Background())
	require.NoError(t, err)
	assert.Nil(t, table)

	setRedisTable(t, mr, DefaultRedisKey, map[string][]string{"fast": {"quick"}})
	table, err = src.Fetch(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"quick"}, table["fast"])
}

func TestResolverRefreshFromRedis(t *testing.T) {
	mr := miniredis.RunT(t)
	setRedisTable(t, mr, DefaultRedisKey, map[string][]string{"版本": {"一"}})
	src, err := NewRedisSource(RedisConfig{Addr: mr.Addr()}, zaptest.NewLogger(t))
	require.NoError(t, err)
	defer src.Close()

	r := New(Config{RefreshInterval: time.Millisecond}, zaptest.NewLogger(t), WithSource(src))
	// 启动时强制刷新一次
	assert.Equal(t, []string{"一"}, r.Lookup("版本", 8))

	// 来源更新后，查询计数达到阈值且超过节流间隔才在后台换表
	setRedisTable(t, mr, DefaultRedisKey, map[string][]string{"版本": {"二"}})
	time.Sleep(5 * time.Millisecond)
	for i := 0; i < 120; i++ {
		r.Lookup("版本", 8)
	}
	assert.Eventually(t, func() bool {
		res := r.Lookup("版本", 8)
		return len(res) == 1 && res[0] == "二"
	}, time.Second, 2*time.Millisecond)
}

func TestResolverRefreshFailureKeepsTable(t *testing.T) {
	mr := miniredis.RunT(t)
	setRedisTable(t, mr, DefaultRedisKey, map[string][]string{"快": {"迅速"}})
	src, err := NewRedisSource(RedisConfig{Addr: mr.Addr()}, zaptest.NewLogger(t))
	require.NoError(t, err)
	defer src.Close()

	r := New(Config{RefreshInterval: time.Millisecond}, zaptest.NewLogger(t), WithSource(src))
	require.Equal(t, []string{"迅速"}, r.Lookup("快", 8))

	// 来源故障后旧表原样保留
	mr.Close()
	time.Sleep(5 * time.Millisecond)
	for i := 0; i < 120; i++ {
		r.Lookup("快", 8)
	}
	assert.Equal(t, []string{"迅速"}, r.Lookup("快", 8))
}

// slowSource 首次立即返回，之后的拉取挂起到 release 关闭。
type slowSource struct {
	calls   atomic.Int64
	release chan struct{}
}

func (s *slowSource) Fetch(ctx context.Context) (map[string][]string, error) {
	if s.calls.Add(1) == 1 {
		return map[string][]string{"词": {"旧"}}, nil
	}
	select {
	case <-s.release:
	case <-ctx.Done():
	}
	return map[string][]string{"词": {"新"}}, nil
}

func TestLookupDoesNotBlockOnRefresh(t *testing.T) {
	src := &slowSource{release: make(chan struct{})}
	r := New(Config{RefreshInterval: time.Millisecond}, zaptest.NewLogger(t), WithSource(src))
	require.Equal(t, []string{"旧"}, r.Lookup("词", 8))

	// 刷新在途期间查询继续用旧表，不得等待拉取完成
	time.Sleep(5 * time.Millisecond)
	start := time.Now()
	for i := 0; i < 150; i++ {
		assert.Equal(t, []string{"旧"}, r.Lookup("词", 8))
	}
	assert.Less(t, time.Since(start), 500*time.Millisecond)

	close(src.release)
	assert.Eventually(t, func() bool {
		res := r.Lookup("词", 8)
		return len(res) == 1 && res[0] == "新"
	}, time.Second, 2*time.Millisecond)
}
