package prompt

import (
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"promptgen/internal/model"
)

// OptimizationAdvice 分析提示词并给出优化建议
// @Summary      获取优化建议
// @Tags         提示词生成
// @Accept       json
// @Produce      json
// @Param        request  body      model.OptimizationAdviceRequest  true  "待分析的提示词"
// @Success      200      {object}  Response{data=[]string}
// @Failure      400      {object}  Response
// @Failure      500      {object}  Response
// @Router       /api/prompt/generate/optimization-advice [post]
func (h *Handler) OptimizationAdvice(c *gin.Context) {
	var req model.OptimizationAdviceRequest
	if !bindJSON(c, &req) {
		return
	}

	log.Info().Str("prompt_type", req.PromptType).Msg("received optimization advice request")

	advice, err := h.promptService.OptimizationAdvice(c.Request.Context(), &req)
	if err != nil {
		fail(c, "生成优化建议", err)
		return
	}

	ok(c, advice)
}
