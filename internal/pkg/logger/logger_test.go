package logger

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	. "github.com/smartystreets/goconvey/convey"

	"promptgen/internal/config"
)

func TestNew(t *testing.T) {
	Convey("New 按配置创建 logger", t, func() {
		defer zerolog.SetGlobalLevel(zerolog.InfoLevel)

		Convey("json 格式带 service 字段", func() {
			var buf bytes.Buffer
			l := New(&config.LogConfig{Level: "debug", Format: "json"}, &buf)
			l.Info().Str("k", "v").Msg("hello")

			So(buf.String(), ShouldContainSubstring, `"service":"promptgen"`)
			So(buf.String(), ShouldContainSubstring, `"message":"hello"`)
			So(zerolog.GlobalLevel(), ShouldEqual, zerolog.DebugLevel)
		})

		Convey("非法级别回退到 info", func() {
			var buf bytes.Buffer
			l := New(&config.LogConfig{Level: "verbose", Format: "json"}, &buf)
			l.Debug().Msg("hidden")

			So(zerolog.GlobalLevel(), ShouldEqual, zerolog.InfoLevel)
			So(buf.Len(), ShouldEqual, 0)
		})
	})
}

func TestOpenOutput(t *testing.T) {
	Convey("openOutput 校验输出配置", t, func() {
		_, err := openOutput(&config.LogConfig{Output: "file"})
		So(err, ShouldNotBeNil)

		_, err = openOutput(&config.LogConfig{Output: "syslog"})
		So(err, ShouldNotBeNil)

		w, err := openOutput(&config.LogConfig{Output: "file", FilePath: filepath.Join(t.TempDir(), "app.log")})
		So(err, ShouldBeNil)
		So(w, ShouldNotBeNil)
	})
}
