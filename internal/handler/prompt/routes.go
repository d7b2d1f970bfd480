package prompt

import "github.com/gin-gonic/gin"

// RegisterRoutes 注册 /api/prompt/generate 下的路由
func (h *Handler) RegisterRoutes(r gin.IRouter) {
	g := r.Group("/api/prompt/generate")
	g.POST("/complete", h.GenerateComplete)
	g.POST("/complete/stream", h.GenerateCompleteStream)
	g.POST("/thinking-points", h.ThinkingPoints)
	g.POST("/system-prompt", h.SystemPrompt)
	g.POST("/optimization-advice", h.OptimizationAdvice)
	g.POST("/apply-optimization", h.ApplyOptimization)
}
