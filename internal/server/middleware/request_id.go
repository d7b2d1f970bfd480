package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"promptgen/internal/pkg/ctxutil"
)

// RequestIDHeader 请求 ID 的 Header 名
const RequestIDHeader = "X-Request-ID"

// RequestID 请求 ID 中间件
// 优先沿用客户端传入的合法 UUID，否则生成新的；同时写入 gin.Context、
// request context 和响应 Header
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader(RequestIDHeader)
		if _, err := uuid.Parse(requestID); err != nil {
			requestID = uuid.NewString()
		}

		c.Set("request_id", requestID)
		c.Request = c.Request.WithContext(ctxutil.WithRequestID(c.Request.Context(), requestID))
		c.Header(RequestIDHeader, requestID)

		c.Next()
	}
}
