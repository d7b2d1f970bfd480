package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// HealthHandler 健康检查处理器
type HealthHandler struct {
	provider  string
	cacheType string
}

// NewHealthHandler 创建健康检查处理器
func NewHealthHandler(provider, cacheType string) *HealthHandler {
	return &HealthHandler{
		provider:  provider,
		cacheType: cacheType,
	}
}

// Health 健康检查
// @Summary  健康检查
// @Tags     系统
// @Produce  json
// @Router   /health [get]
func (h *HealthHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
	})
}

// Ready 就绪检查，附带当前使用的模型 Provider 和缓存类型
// @Summary  就绪检查
// @Tags     系统
// @Produce  json
// @Router   /ready [get]
func (h *HealthHandler) Ready(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":   "ready",
		"provider": h.provider,
		"cache":    h.cacheType,
	})
}
