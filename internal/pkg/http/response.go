package http

// 业务错误码（0 表示成功）
const (
	CodeSuccess          = 0
	CodeInvalidRequest   = 40001
	CodeInternalError    = 50000
	CodeGenerationFailed = 50001
)

// Response 统一响应格式（所有API共用）
// 成功和失败使用同一结构，失败时 Data 为空
type Response struct {
	Code    int         `json:"code"`             // 状态码（0表示成功）
	Message string      `json:"message"`          // 响应消息
	Data    interface{} `json:"data"`             // 响应数据
	Detail  string      `json:"detail,omitempty"` // 错误详情（可选）
}

// NewSuccessResponse 创建成功响应
func NewSuccessResponse(message string, data interface{}) *Response {
	return &Response{
		Code:    CodeSuccess,
		Message: message,
		Data:    data,
	}
}

// NewErrorResponse 创建错误响应
func NewErrorResponse(code int, message string, detail ...string) *Response {
	resp := &Response{
		Code:    code,
		Message: message,
	}
	if len(detail) > 0 && detail[0] != "" {
		resp.Detail = detail[0]
	}
	return resp
}
