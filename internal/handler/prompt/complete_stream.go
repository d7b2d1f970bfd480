package prompt

import (
	"io"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"promptgen/internal/model"
	httputil "promptgen/internal/pkg/http"
)

// SSE 事件名
const (
	eventMessage = "message"
	eventError   = "error"
	eventDone    = "done"
)

// GenerateCompleteStream 流式生成完整提示词 (SSE)
// 只推送一个 message 或 error 事件，最后总是推送 done 事件
// @Summary      流式生成完整提示词
// @Description  以 SSE 返回生成结果：message 事件携带结果，失败时为 error 事件，最后是 done 事件
// @Tags         提示词生成
// @Accept       json
// @Produce      text/event-stream
// @Param        request  body      model.PromptGenerationRequest  true  "生成请求"
// @Success      200      {object}  model.PromptGenerationResponse
// @Failure      400      {object}  Response
// @Router       /api/prompt/generate/complete/stream [post]
func (h *Handler) GenerateCompleteStream(c *gin.Context) {
	var req model.PromptGenerationRequest
	if !bindJSON(c, &req) {
		return
	}

	log.Info().Str("input", req.InputPrompt).Msg("received streaming prompt generation request")

	// 设置 SSE headers
	c.Header("Content-Type", "text/event-stream")
	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")
	c.Header("X-Accel-Buffering", "no")

	events := h.promptService.GenerateStream(c.Request.Context(), &req)

	c.Stream(func(w io.Writer) bool {
		ev, open := <-events
		if !open {
			c.SSEvent(eventDone, gin.H{})
			return false
		}
		if ev.Err != nil {
			log.Error().Err(ev.Err).Msg("streaming prompt generation failed")
			c.SSEvent(eventError, httputil.NewErrorResponse(
				httputil.CodeGenerationFailed,
				"流式生成提示词失败: "+ev.Err.Error(),
			))
			return true
		}
		c.SSEvent(eventMessage, ev.Result)
		return true
	})
}
