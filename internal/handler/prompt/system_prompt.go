package prompt

import (
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"promptgen/internal/model"
)

// SystemPrompt 根据需求和关键指令点生成系统提示词
// @Summary      生成系统提示词
// @Tags         提示词生成
// @Accept       json
// @Produce      json
// @Param        request  body      model.SystemPromptRequest  true  "需求描述和关键指令点"
// @Success      200      {object}  Response{data=string}
// @Failure      400      {object}  Response
// @Failure      500      {object}  Response
// @Router       /api/prompt/generate/system-prompt [post]
func (h *Handler) SystemPrompt(c *gin.Context) {
	var req model.SystemPromptRequest
	if !bindJSON(c, &req) {
		return
	}

	log.Info().Str("description", req.Description).Int("thinking_points", len(req.ThinkingPoints)).
		Msg("received system prompt request")

	text, err := h.promptService.SystemPrompt(c.Request.Context(), &req)
	if err != nil {
		fail(c, "生成系统提示词", err)
		return
	}

	ok(c, text)
}
