package prompt

import (
	"promptgen/internal/service"
)

// Handler 提示词生成处理器
// 所有 /api/prompt/generate 下的接口都通过这个结构体访问 Service
type Handler struct {
	promptService *service.PromptService
}

// NewHandler 创建提示词生成处理器
func NewHandler(promptService *service.PromptService) *Handler {
	RegisterValidators()
	return &Handler{
		promptService: promptService,
	}
}
