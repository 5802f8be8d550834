package synonym

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// DefaultRedisKey 存放整表 JSON 的默认键。
const DefaultRedisKey = "queryflow:synonyms"

// Source 同义词热更新来源。
// 返回 (nil, nil) 表示来源暂无数据，调用方保留旧表。
type Source interface {
	Fetch(ctx context.Context) (map[string][]string, error)
}

// RedisConfig Redis 来源配置
type RedisConfig struct {
	// Redis 地址
	Addr string `yaml:"addr" json:"addr"`

	// 密码
	Password string `yaml:"password" json:"password"`

	// 数据库编号
	DB int `yaml:"db" json:"db"`

	// 词表所在键
	Key string `yaml:"key" json:"key"`

	// 最大重试次数
	MaxRetries int `yaml:"max_retries" json:"max_retries"`

	// 连接池大小
	PoolSize int `yaml:"pool_size" json:"pool_size"`
}

// DefaultRedisConfig 返回默认 Redis 来源配置
func DefaultRedisConfig() RedisConfig {
	return RedisConfig{
		Addr:       "localhost:6379",
		Key:        DefaultRedisKey,
		MaxRetries: 3,
		PoolSize:   4,
	}
}

// RedisSource 从共享 Redis 读取整表 JSON 的来源。
type RedisSource struct {
	client *redis.Client
	key    string
	logger *zap.Logger
}

// NewRedisSource 创建 Redis 来源并做连通性检查。
func NewRedisSource(cfg RedisConfig, logger *zap.Logger) (*RedisSource, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	if cfg.Key == "" {
		cfg.Key = DefaultRedisKey
	}
	client := redis.NewClient(&redis.Options{
		Addr:       cfg.Addr,
		Password:   cfg.Password,
		DB:         cfg.DB,
		MaxRetries: cfg.MaxRetries,
		PoolSize:   cfg.PoolSize,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("connect to redis: %w", err)
	}

	logger.Info("synonym redis source initialized",
		zap.String("addr", cfg.Addr),
		zap.String("key", cfg.Key))
	return &RedisSource{client: client, key: cfg.Key, logger: logger}, nil
}

// Fetch 读取并解析整表。键不存在时返回 (nil, nil)。
func (s *RedisSource) Fetch(ctx context.Context) (map[string][]string, error) {
	data, err := s.client.Get(ctx, s.key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("fetch synonyms from redis: %w", err)
	}
	table, err := ParseTable(data)
	if err != nil {
		return nil, err
	}
	return table, nil
}

// Close 关闭底层连接。
func (s *RedisSource) Close() error {
	return s.client.Close()
}
