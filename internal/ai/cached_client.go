package ai

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"

	"promptgen/internal/pkg/cache"
)

// CachedClient 为 ChatClient 增加结果缓存
// 缓存读写失败只记录日志，不影响模型调用
type CachedClient struct {
	next  ChatClient
	store cache.Store
	ttl   time.Duration
}

// NewCachedClient 创建带缓存的客户端
func NewCachedClient(next ChatClient, store cache.Store, ttl time.Duration) *CachedClient {
	return &CachedClient{
		next:  next,
		store: store,
		ttl:   ttl,
	}
}

// Generate 命中缓存时直接返回，否则调用模型并写入缓存
func (c *CachedClient) Generate(ctx context.Context, prompt string) (string, error) {
	key := cache.CompletionCacheKey(prompt)

	cached, ok, err := c.store.Get(ctx, key)
	if err != nil {
		log.Warn().Err(err).Str("key", key).Msg("failed to read completion cache")
	} else if ok {
		log.Debug().Str("key", key).Msg("completion cache hit")
		return cached, nil
	}

	text, err := c.next.Generate(ctx, prompt)
	if err != nil {
		return "", err
	}

	if err := c.store.Set(ctx, key, text, c.ttl); err != nil {
		log.Warn().Err(err).Str("key", key).Msg("failed to write completion cache")
	}

	return text, nil
}
