package prompt

import (
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"promptgen/internal/model"
)

// ThinkingPoints 生成系统提示词的关键指令点
// @Summary      获取关键指令点
// @Description  分析需求描述，返回有序的关键指令点列表
// @Tags         提示词生成
// @Accept       json
// @Produce      json
// @Param        request  body      model.ThinkingPointsRequest  true  "需求描述"
// @Success      200      {object}  Response{data=[]string}
// @Failure      400      {object}  Response
// @Failure      500      {object}  Response
// @Router       /api/prompt/generate/thinking-points [post]
func (h *Handler) ThinkingPoints(c *gin.Context) {
	var req model.ThinkingPointsRequest
	if !bindJSON(c, &req) {
		return
	}

	log.Info().Str("description", req.Description).Msg("received thinking points request")

	points, err := h.promptService.ThinkingPoints(c.Request.Context(), &req)
	if err != nil {
		fail(c, "生成关键指令", err)
		return
	}

	ok(c, points)
}
