package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "promptgen/docs"
	"promptgen/internal/ai"
	"promptgen/internal/config"
	"promptgen/internal/handler"
	promptHandler "promptgen/internal/handler/prompt"
	"promptgen/internal/pkg/cache"
	"promptgen/internal/pkg/metrics"
	"promptgen/internal/server/middleware"
	"promptgen/internal/service"
)

// Server HTTP 服务器
type Server struct {
	cfg       *config.Config
	engine    *gin.Engine
	client    ai.ChatClient
	cache     cache.Store
	cacheType string // 实际生效的缓存类型，初始化失败时为 none
	metrics   *metrics.Metrics
}

// New 根据配置创建服务器实例（模型客户端、缓存、指标）
func New(cfg *config.Config) (*Server, error) {
	var client ai.ChatClient
	if cfg.AI.Provider == ai.ProviderMock {
		log.Warn().Msg("using mock chat model, responses are canned")
		client = ai.NewMockClient(nil)
	} else {
		ec, err := ai.NewClient(context.Background(), &cfg.AI)
		if err != nil {
			return nil, fmt.Errorf("failed to init chat client: %w", err)
		}
		client = ec
		log.Info().Str("provider", cfg.AI.Provider).Str("model", cfg.AI.Model).Msg("initialized chat client")
	}

	// 初始化结果缓存 (可选)
	store, err := cache.New(&cfg.Cache)
	if err != nil {
		log.Warn().Err(err).Str("type", cfg.Cache.Type).Msg("failed to init completion cache, continuing without it")
		store = nil
	}
	if store != nil {
		ttl := cfg.Cache.TTL
		if ttl <= 0 {
			ttl = cache.DefaultCompletionTTL
		}
		client = ai.NewCachedClient(client, store, ttl)
		log.Info().Str("type", cfg.Cache.Type).Dur("ttl", ttl).Msg("completion cache enabled")
	}

	cacheType := config.CacheNone
	if store != nil {
		cacheType = cfg.Cache.Type
	}

	srv := newServer(cfg, client, metrics.Default(), cacheType)
	srv.cache = store
	return srv, nil
}

// NewWithClient 使用已有的 ChatClient 创建服务器 (用于测试)
// client 由调用方组装，缓存类型按 none 上报
func NewWithClient(cfg *config.Config, client ai.ChatClient, m *metrics.Metrics) *Server {
	return newServer(cfg, client, m, config.CacheNone)
}

func newServer(cfg *config.Config, client ai.ChatClient, m *metrics.Metrics, cacheType string) *Server {
	// 设置 Gin 模式
	switch cfg.Server.Mode {
	case "debug":
		gin.SetMode(gin.DebugMode)
	case "test":
		gin.SetMode(gin.TestMode)
	default:
		gin.SetMode(gin.ReleaseMode)
	}

	srv := &Server{
		cfg:       cfg,
		engine:    gin.New(),
		client:    client,
		cacheType: cacheType,
		metrics:   m,
	}

	// 设置路由
	srv.setupRoutes()

	return srv
}

// setupRoutes 设置路由
func (s *Server) setupRoutes() {
	// 全局中间件
	s.engine.Use(middleware.Recovery())
	s.engine.Use(middleware.RequestID())
	s.engine.Use(middleware.Logger("/health", "/ready", "/metrics"))
	s.engine.Use(middleware.CORS(s.cfg.CORS.AllowOrigins))

	// 健康检查
	healthHandler := handler.NewHealthHandler(s.cfg.AI.Provider, s.cacheType)
	s.engine.GET("/health", healthHandler.Health)
	s.engine.GET("/ready", healthHandler.Ready)

	// Prometheus 指标
	s.engine.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Swagger 文档
	s.engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// 提示词生成接口
	promptSvc := service.NewPromptService(s.client, s.metrics)
	promptHandler.NewHandler(promptSvc).RegisterRoutes(s.engine)
}

// Run 启动服务器
func (s *Server) Run(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:         addr,
		Handler:      s.engine,
		ReadTimeout:  s.cfg.Server.ReadTimeout,
		WriteTimeout: s.cfg.Server.WriteTimeout,
	}

	// 启动服务器
	errCh := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	// 等待关闭信号或错误
	select {
	case <-ctx.Done():
		log.Info().Msg("shutting down server...")

		err := srv.Shutdown(context.Background())
		s.Close()
		return err
	case err := <-errCh:
		s.Close()
		return err
	}
}

// Close 释放缓存连接
func (s *Server) Close() {
	if s.cache == nil {
		return
	}
	if err := s.cache.Close(); err != nil {
		log.Error().Err(err).Msg("failed to close completion cache")
	}
	s.cache = nil
}

// Engine 获取 Gin 引擎 (用于测试)
func (s *Server) Engine() *gin.Engine {
	return s.engine
}
