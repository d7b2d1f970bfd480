package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	. "github.com/smartystreets/goconvey/convey"

	"promptgen/internal/pkg/ctxutil"
	httputil "promptgen/internal/pkg/http"
)

func newEngine(mw ...gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(mw...)
	return r
}

func TestRequestID(t *testing.T) {
	Convey("RequestID 中间件", t, func() {
		r := newEngine(RequestID())
		var fromCtx string
		r.GET("/x", func(c *gin.Context) {
			fromCtx, _ = ctxutil.GetRequestID(c.Request.Context())
			c.String(http.StatusOK, c.GetString("request_id"))
		})

		Convey("没有传入时生成新的 UUID", func() {
			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/x", nil))

			got := w.Header().Get(RequestIDHeader)
			_, err := uuid.Parse(got)
			So(err, ShouldBeNil)
			So(w.Body.String(), ShouldEqual, got)
			So(fromCtx, ShouldEqual, got)
		})

		Convey("沿用客户端传入的合法 ID", func() {
			reqID := uuid.NewString()
			req := httptest.NewRequest(http.MethodGet, "/x", nil)
			req.Header.Set(RequestIDHeader, reqID)
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			So(w.Header().Get(RequestIDHeader), ShouldEqual, reqID)
		})

		Convey("非法 ID 会被替换", func() {
			req := httptest.NewRequest(http.MethodGet, "/x", nil)
			req.Header.Set(RequestIDHeader, "not-a-uuid")
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			So(w.Header().Get(RequestIDHeader), ShouldNotEqual, "not-a-uuid")
		})
	})
}

func TestRecovery(t *testing.T) {
	Convey("Recovery 把 panic 转换为 500 响应", t, func() {
		r := newEngine(Recovery(), Logger())
		r.GET("/panic", func(c *gin.Context) {
			panic("boom")
		})

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/panic", nil))

		So(w.Code, ShouldEqual, http.StatusInternalServerError)
		var resp httputil.Response
		So(json.Unmarshal(w.Body.Bytes(), &resp), ShouldBeNil)
		So(resp.Code, ShouldEqual, httputil.CodeInternalError)
	})
}

func TestCORS(t *testing.T) {
	Convey("CORS 中间件", t, func() {
		Convey("未配置来源时允许所有来源", func() {
			r := newEngine(CORS(nil))
			r.POST("/x", func(c *gin.Context) { c.Status(http.StatusOK) })

			req := httptest.NewRequest(http.MethodOptions, "/x", nil)
			req.Header.Set("Origin", "http://example.com")
			req.Header.Set("Access-Control-Request-Method", "POST")
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			So(w.Header().Get("Access-Control-Allow-Origin"), ShouldEqual, "*")
		})

		Convey("只允许配置的来源", func() {
			r := newEngine(CORS([]string{"http://allowed.com"}))
			r.GET("/x", func(c *gin.Context) { c.Status(http.StatusOK) })

			req := httptest.NewRequest(http.MethodGet, "/x", nil)
			req.Header.Set("Origin", "http://other.com")
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			So(w.Code, ShouldEqual, http.StatusForbidden)
		})
	})
}
