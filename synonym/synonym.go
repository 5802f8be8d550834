// Package synonym 提供同义词解析：静态 JSON 词表 + 可注入的热更新来源。
//
// 词表进程内只读，刷新时整表原子替换；刷新失败保留旧表，查询永不因
// 刷新而阻塞或报错。
package synonym

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"sync/atomic"
	"time"

	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// refreshMinLookups 距上次刷新至少这么多次查询后才考虑再次刷新。
const refreshMinLookups = 100

// LexicalNetwork 语义词汇网络（WordNet 同类）接口。
// 纯拉丁字母 token 的同义词优先从这里取。
type LexicalNetwork interface {
	// Synonyms 返回词的同义词（词元名，下划线已换为空格）。
	Synonyms(word string) []string
}

// Config 同义词解析器配置
type Config struct {
	// 静态 JSON 词表路径（token → 同义词或同义词数组）
	DictPath string `yaml:"dict_path" json:"dict_path"`

	// 刷新最小间隔
	RefreshInterval time.Duration `yaml:"refresh_interval" json:"refresh_interval"`
}

// DefaultConfig 返回默认配置
func DefaultConfig() Config {
	return Config{RefreshInterval: time.Hour}
}

// Resolver 同义词解析器
type Resolver struct {
	table      atomic.Pointer[map[string][]string]
	source     Source
	network    LexicalNetwork
	limiter    *rate.Limiter
	lookups    atomic.Int64
	refreshing atomic.Bool
	logger     *zap.Logger
}

// Option 配置 Resolver 的可选项。
type Option func(*Resolver)

// WithSource 注入热更新来源（如 RedisSource）。不设置时仅用静态词表。
func WithSource(src Source) Option {
	return func(r *Resolver) { r.source = src }
}

// WithLexicalNetwork 注入英文词汇网络。不设置时英文也走静态词表。
func WithLexicalNetwork(ln LexicalNetwork) Option {
	return func(r *Resolver) { r.network = ln }
}

// New 创建解析器并加载静态词表。词表缺失/损坏只降级为空表。
func New(cfg Config, logger *zap.Logger, opts ...Option) *Resolver {
	if logger == nil {
		logger = zap.NewNop()
	}
	if cfg.RefreshInterval <= 0 {
		cfg.RefreshInterval = time.Hour
	}
	r := &Resolver{
		limiter: rate.NewLimiter(rate.Every(cfg.RefreshInterval), 1),
		logger:  logger.With(zap.String("component", "synonym")),
	}
	for _, opt := range opts {
		opt(r)
	}

	table := map[string][]string{}
	if cfg.DictPath != "" {
		if t, err := loadTable(cfg.DictPath); err != nil {
			r.logger.Warn("synonym table load failed, starting empty",
				zap.String("path", cfg.DictPath),
				zap.Error(err))
		} else {
			table = t
		}
	}
	if len(table) == 0 {
		r.logger.Warn("synonym table is empty")
	}
	r.table.Store(&table)

	if r.source == nil {
		r.logger.Info("realtime synonym refresh disabled, no source configured")
	} else {
		// 启动时同步拉一次，之后的刷新全部转入后台。
		r.refresh(context.Background())
	}
	return r
}

// loadTable 解析 JSON 词表，值可以是字符串或字符串数组。
func loadTable(path string) (map[string][]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read synonym table: %w", err)
	}
	return ParseTable(data)
}

// ParseTable 解析词表字节。键统一小写并压缩空白。
func ParseTable(data []byte) (map[string][]string, error) {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse synonym table: %w", err)
	}
	table := make(map[string][]string, len(raw))
	for k, v := range raw {
		key := normalizeKey(k)
		var one string
		if err := json.Unmarshal(v, &one); err == nil {
			table[key] = []string{one}
			continue
		}
		var many []string
		if err := json.Unmarshal(v, &many); err == nil {
			table[key] = many
			continue
		}
		// 非法值条目跳过，不拖垮整表。
	}
	return table, nil
}

func normalizeKey(s string) string {
	return strings.Join(strings.Fields(strings.ToLower(s)), " ")
}

// Lookup 查询 token 的同义词，至多 topN 个。
// 拉丁字母 token 先问词汇网络；其余查词表。查询本身永不失败。
func (r *Resolver) Lookup(tk string, topN int) []string {
	if topN <= 0 {
		topN = 8
	}
	if isLatin(tk) && r.network != nil {
		seen := map[string]bool{strings.ToLower(tk): true}
		var out []string
		for _, s := range r.network.Synonyms(tk) {
			s = strings.ReplaceAll(s, "_", " ")
			if s == "" || seen[strings.ToLower(s)] {
				continue
			}
			seen[strings.ToLower(s)] = true
			out = append(out, s)
		}
		return out
	}

	r.lookups.Add(1)
	r.maybeRefresh()

	table := *r.table.Load()
	res := table[normalizeKey(tk)]
	if len(res) > topN {
		res = res[:topN]
	}
	return res
}

// maybeRefresh 节流判定：查询计数达到阈值且距上次刷新超过间隔才触发。
// 拉取在后台 goroutine 进行且同时至多一个在途，查询继续使用旧表。
func (r *Resolver) maybeRefresh() {
	if r.source == nil {
		return
	}
	if r.lookups.Load() < refreshMinLookups {
		return
	}
	if !r.limiter.Allow() {
		return
	}
	if !r.refreshing.CompareAndSwap(false, true) {
		return
	}
	r.lookups.Store(0)
	go func() {
		defer r.refreshing.Store(false)
		r.refresh(context.Background())
	}()
}

// refresh 从来源拉取整表并原子替换；失败或来源无数据时保留旧表。
func (r *Resolver) refresh(ctx context.Context) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	table, err := r.source.Fetch(ctx)
	if err != nil {
		r.logger.Warn("synonym refresh failed, keeping previous table", zap.Error(err))
		return
	}
	if table == nil {
		return
	}
	normalized := make(map[string][]string, len(table))
	for k, v := range table {
		normalized[normalizeKey(k)] = v
	}
	r.table.Store(&normalized)
	r.logger.Info("synonym table refreshed", zap.Int("terms", len(normalized)))
}

// Size 返回当前词表条目数。
func (r *Resolver) Size() int {
	return len(*r.table.Load())
}

func isLatin(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < 'a' || r > 'z' {
			return false
		}
	}
	return true
}
