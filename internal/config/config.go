package config

import (
	"errors"
	"fmt"
	"time"
)

// Config 应用配置根结构
type Config struct {
	Server ServerConfig `mapstructure:"server"`
	AI     AIConfig     `mapstructure:"ai"`
	Log    LogConfig    `mapstructure:"log"`
	Cache  CacheConfig  `mapstructure:"cache"`
	CORS   CORSConfig   `mapstructure:"cors"`
}

// ServerConfig HTTP 服务器配置
type ServerConfig struct {
	Host         string        `mapstructure:"host"`
	Port         int           `mapstructure:"port"`
	Mode         string        `mapstructure:"mode"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
}

// AIConfig AI 服务配置
type AIConfig struct {
	Provider string          `mapstructure:"provider"`
	APIKey   string          `mapstructure:"api_key"`
	Model    string          `mapstructure:"model"`
	BaseURL  string          `mapstructure:"base_url"`
	Timeout  time.Duration   `mapstructure:"timeout"` // 单次模型请求超时，0 表示不限制
	Options  AIOptionsConfig `mapstructure:"options"`
	Retry    RetryConfig     `mapstructure:"retry"`
}

// AIOptionsConfig AI 模型参数
type AIOptionsConfig struct {
	Temperature float64 `mapstructure:"temperature"`
	MaxTokens   int     `mapstructure:"max_tokens"`
	TopP        float64 `mapstructure:"top_p"`
}

// RetryConfig 模型调用重试策略
type RetryConfig struct {
	Attempts uint          `mapstructure:"attempts"`  // 总尝试次数，1 表示不重试
	Delay    time.Duration `mapstructure:"delay"`     // 初始间隔
	MaxDelay time.Duration `mapstructure:"max_delay"` // 最大间隔
}

// LogConfig 日志配置 (Zerolog)
type LogConfig struct {
	Level      string `mapstructure:"level"`
	Format     string `mapstructure:"format"`
	Output     string `mapstructure:"output"`
	FilePath   string `mapstructure:"file_path"`
	TimeFormat string `mapstructure:"time_format"`
}

// CacheConfig 模型结果缓存配置
type CacheConfig struct {
	Type  string        `mapstructure:"type"` // none, memory, redis
	TTL   time.Duration `mapstructure:"ttl"`
	Redis RedisConfig   `mapstructure:"redis"`
}

// RedisConfig Redis 配置
type RedisConfig struct {
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// CORSConfig 跨域配置
type CORSConfig struct {
	AllowOrigins []string `mapstructure:"allow_origins"` // 为空时允许所有来源
}

// 缓存类型
const (
	CacheNone   = "none"
	CacheMemory = "memory"
	CacheRedis  = "redis"
)

// Validate 验证配置有效性
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return errors.New("invalid server port")
	}

	validModes := map[string]bool{"debug": true, "release": true, "test": true}
	if !validModes[c.Server.Mode] {
		return errors.New("invalid server mode, must be debug/release/test")
	}

	if c.AI.Retry.Attempts == 0 {
		return errors.New("ai.retry.attempts must be at least 1")
	}

	switch c.Cache.Type {
	case "", CacheNone, CacheMemory:
	case CacheRedis:
		if c.Cache.Redis.Addr == "" {
			return errors.New("cache.redis.addr is required when cache.type is redis")
		}
	default:
		return fmt.Errorf("invalid cache type %q, must be none/memory/redis", c.Cache.Type)
	}

	return nil
}
