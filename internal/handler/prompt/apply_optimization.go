package prompt

import (
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"promptgen/internal/model"
)

// ApplyOptimization 将优化建议应用到原始提示词
// @Summary      应用优化建议
// @Tags         提示词生成
// @Accept       json
// @Produce      json
// @Param        request  body      model.ApplyOptimizationRequest  true  "原始提示词和优化建议"
// @Success      200      {object}  Response{data=string}
// @Failure      400      {object}  Response
// @Failure      500      {object}  Response
// @Router       /api/prompt/generate/apply-optimization [post]
func (h *Handler) ApplyOptimization(c *gin.Context) {
	var req model.ApplyOptimizationRequest
	if !bindJSON(c, &req) {
		return
	}

	log.Info().Str("prompt_type", req.PromptType).Int("advice", len(req.Advice)).
		Msg("received apply optimization request")

	text, err := h.promptService.ApplyOptimization(c.Request.Context(), &req)
	if err != nil {
		fail(c, "应用优化建议", err)
		return
	}

	ok(c, text)
}
