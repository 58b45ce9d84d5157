package logging

import (
	"log/slog"
	"strings"
)

// Level 运行时日志级别
type Level int

const (
	// LevelDebug 调试
	LevelDebug Level = iota
	// LevelInformation 信息
	LevelInformation
	// LevelWarning 警告
	LevelWarning
	// LevelError 错误
	LevelError
	// LevelCritical 严重错误
	LevelCritical
)

// SlogLevelCritical slog 中表示 Critical 的自定义级别
const SlogLevelCritical = slog.LevelError + 4

// String 返回级别的字符串表示
func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "debug"
	case LevelInformation:
		return "information"
	case LevelWarning:
		return "warning"
	case LevelError:
		return "error"
	case LevelCritical:
		return "critical"
	default:
		return "unknown"
	}
}

// slog 返回对应的 slog 级别
func (l Level) slog() slog.Level {
	switch l {
	case LevelDebug:
		return slog.LevelDebug
	case LevelInformation:
		return slog.LevelInfo
	case LevelWarning:
		return slog.LevelWarn
	case LevelError:
		return slog.LevelError
	default:
		return SlogLevelCritical
	}
}

// ParseLevel 解析级别名称，无法识别时返回 false
func ParseLevel(name string) (Level, bool) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "debug":
		return LevelDebug, true
	case "info", "information":
		return LevelInformation, true
	case "warn", "warning":
		return LevelWarning, true
	case "error":
		return LevelError, true
	case "critical", "fatal":
		return LevelCritical, true
	default:
		return LevelInformation, false
	}
}
