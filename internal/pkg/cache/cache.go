// Package cache 模型结果缓存
//
// 相同提示词的补全结果可以在 TTL 内复用；默认关闭，开启后同一提示词在
// 缓存有效期内不会再次调用模型。
package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"time"

	"promptgen/internal/config"
)

// Store 缓存存储接口
type Store interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string, expiration time.Duration) error
	Close() error
}

// 常用 key 模式
const (
	CompletionCacheKeyPrefix = "promptgen:completion:"
	DefaultCompletionTTL     = 10 * time.Minute
)

// CompletionCacheKey 根据提示词生成缓存 key
func CompletionCacheKey(prompt string) string {
	sum := sha256.Sum256([]byte(prompt))
	return CompletionCacheKeyPrefix + hex.EncodeToString(sum[:])
}

// New 根据配置创建缓存，type 为 none 或空时返回 nil
func New(cfg *config.CacheConfig) (Store, error) {
	ttl := cfg.TTL
	if ttl <= 0 {
		ttl = DefaultCompletionTTL
	}

	switch cfg.Type {
	case "", config.CacheNone:
		return nil, nil
	case config.CacheMemory:
		return NewMemoryCache(ttl), nil
	case config.CacheRedis:
		rc, err := NewRedisCache(&cfg.Redis)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to redis: %w", err)
		}
		return rc, nil
	default:
		return nil, fmt.Errorf("unsupported cache type: %s", cfg.Type)
	}
}
