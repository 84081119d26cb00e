package logger

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"influencer_match/config"
)

// Logger 全局日志记录器，未初始化时退回默认slog，避免测试中出现空指针
var Logger = slog.Default()

// Init 根据配置初始化slog日志系统
func Init(cfg *config.Config) error {
	// 创建日志目录
	filePath := cfg.Log.FilePath
	if filePath != "" {
		if err := os.MkdirAll(filepath.Dir(filePath), 0755); err != nil {
			return err
		}
	}

	writer, err := buildWriter(cfg.Log.Output, filePath)
	if err != nil {
		return err
	}

	opts := &slog.HandlerOptions{Level: parseLevel(cfg.Log.Level)}

	var handler slog.Handler
	switch strings.ToLower(cfg.Log.Format) {
	case "json":
		handler = slog.NewJSONHandler(writer, opts)
	default:
		handler = slog.NewTextHandler(writer, opts)
	}

	Logger = slog.New(handler)
	slog.SetDefault(Logger)
	return nil
}

// parseLevel 解析日志级别，无法识别时使用info
func parseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// buildWriter 根据输出目标构建writer
func buildWriter(output, filePath string) (io.Writer, error) {
	switch strings.ToLower(output) {
	case "file":
		return openLogFile(filePath)
	case "both":
		file, err := openLogFile(filePath)
		if err != nil {
			return nil, err
		}
		return io.MultiWriter(os.Stdout, file), nil
	default:
		return os.Stdout, nil
	}
}

func openLogFile(filePath string) (*os.File, error) {
	return os.OpenFile(filePath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
}

// Debug 记录调试级别的日志
func Debug(msg string, args ...any) {
	Logger.Debug(msg, args...)
}

// Info 记录信息级别的日志
func Info(msg string, args ...any) {
	Logger.Info(msg, args...)
}

// Warn 记录警告级别的日志
func Warn(msg string, args ...any) {
	Logger.Warn(msg, args...)
}

// Error 记录错误级别的日志
func Error(msg string, args ...any) {
	Logger.Error(msg, args...)
}
