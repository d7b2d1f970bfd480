package logger

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"promptgen/internal/config"
)

// Init 初始化全局日志
// 输出: stdout（默认）、stderr、file（需要 file_path）；格式: console 或 json
func Init(cfg *config.LogConfig) error {
	output, err := openOutput(cfg)
	if err != nil {
		return err
	}

	log.Logger = New(cfg, output)
	return nil
}

// New 按配置创建 logger，同时设置全局日志级别和时间格式
func New(cfg *config.LogConfig, output io.Writer) zerolog.Logger {
	// 设置日志级别
	level, err := zerolog.ParseLevel(cfg.Level)
	if err != nil || cfg.Level == "" {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)

	// 设置时间格式
	switch cfg.TimeFormat {
	case "Unix":
		zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	case "UnixMs":
		zerolog.TimeFieldFormat = zerolog.TimeFormatUnixMs
	default:
		zerolog.TimeFieldFormat = time.RFC3339
	}

	// Console 格式 (开发环境友好)
	if cfg.Format == "console" {
		output = zerolog.ConsoleWriter{
			Out:        output,
			TimeFormat: time.RFC3339,
		}
	}

	return zerolog.New(output).With().
		Timestamp().
		Str("service", "promptgen").
		Caller().
		Logger()
}

func openOutput(cfg *config.LogConfig) (io.Writer, error) {
	switch cfg.Output {
	case "", "stdout":
		return os.Stdout, nil
	case "stderr":
		return os.Stderr, nil
	case "file":
		if cfg.FilePath == "" {
			return nil, fmt.Errorf("log.file_path is required when log.output is file")
		}
		file, err := os.OpenFile(cfg.FilePath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, fmt.Errorf("open log file: %w", err)
		}
		return file, nil
	default:
		return nil, fmt.Errorf("unsupported log output: %s", cfg.Output)
	}
}
