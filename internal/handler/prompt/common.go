package prompt

import (
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"

	httputil "promptgen/internal/pkg/http"
)

// Response 统一响应类型别名（使用共用的 http.Response）
type Response = httputil.Response

var registerOnce sync.Once

// RegisterValidators 注册请求校验规则（notblank：去除空白后不能为空）
func RegisterValidators() {
	registerOnce.Do(func() {
		if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
			_ = v.RegisterValidation("notblank", validators.NotBlank)
		}
	})
}

// bindJSON 解析请求体，失败时直接写入 400 响应
func bindJSON(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		c.JSON(http.StatusBadRequest, httputil.NewErrorResponse(
			httputil.CodeInvalidRequest,
			"Invalid request body",
			err.Error(),
		))
		return false
	}
	return true
}

// fail 写入生成失败响应，message 形如 "生成提示词失败: <错误信息>"
func fail(c *gin.Context, action string, err error) {
	c.JSON(http.StatusInternalServerError, httputil.NewErrorResponse(
		httputil.CodeGenerationFailed,
		action+"失败: "+err.Error(),
	))
}

// ok 写入成功响应
func ok(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, httputil.NewSuccessResponse("success", data))
}
