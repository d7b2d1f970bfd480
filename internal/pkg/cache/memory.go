package cache

import (
	"context"
	"time"

	gocache "github.com/patrickmn/go-cache"
)

// MemoryCache 进程内缓存（单实例部署使用）
type MemoryCache struct {
	store *gocache.Cache
}

// NewMemoryCache 创建进程内缓存，过期条目每隔 2*ttl 清理一次
func NewMemoryCache(ttl time.Duration) *MemoryCache {
	return &MemoryCache{store: gocache.New(ttl, 2*ttl)}
}

// Get 获取缓存
func (c *MemoryCache) Get(_ context.Context, key string) (string, bool, error) {
	v, ok := c.store.Get(key)
	if !ok {
		return "", false, nil
	}
	s, ok := v.(string)
	return s, ok, nil
}

// Set 设置缓存，expiration 为 0 时使用默认 TTL
func (c *MemoryCache) Set(_ context.Context, key, value string, expiration time.Duration) error {
	if expiration <= 0 {
		expiration = gocache.DefaultExpiration
	}
	c.store.Set(key, value, expiration)
	return nil
}

// Close 清空缓存
func (c *MemoryCache) Close() error {
	c.store.Flush()
	return nil
}
