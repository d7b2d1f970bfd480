package prompt

import (
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"promptgen/internal/model"
)

// GenerateComplete 一次性生成完整提示词
// @Summary      生成完整提示词
// @Description  分析需求，返回关键意图、初版提示词和最终提示词。模型回答无法解析时返回占位内容
// @Tags         提示词生成
// @Accept       json
// @Produce      json
// @Param        request  body      model.PromptGenerationRequest  true  "生成请求"
// @Success      200      {object}  Response{data=model.PromptGenerationResponse}
// @Failure      400      {object}  Response
// @Failure      500      {object}  Response
// @Router       /api/prompt/generate/complete [post]
func (h *Handler) GenerateComplete(c *gin.Context) {
	var req model.PromptGenerationRequest
	if !bindJSON(c, &req) {
		return
	}

	log.Info().Str("input", req.InputPrompt).Msg("received complete prompt generation request")

	result, err := h.promptService.Generate(c.Request.Context(), &req)
	if err != nil {
		fail(c, "生成提示词", err)
		return
	}

	ok(c, result)
}
