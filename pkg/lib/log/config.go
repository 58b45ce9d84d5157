package log

import (
	"log/slog"
	"os"
	"strings"
	"sync/atomic"
)

// 环境变量
const (
	// EnvLogLevel 日志级别，格式: 组件=级别,组件=级别,默认级别
	// 示例: core/federation=debug,core/eventbus=warn,info
	EnvLogLevel = "SHELL_LOG_LEVEL"

	// EnvLogFormat 日志格式 (text 或 json)
	EnvLogFormat = "SHELL_LOG_FORMAT"
)

// Format 日志输出格式
type Format int

const (
	// FormatText 文本格式（默认）
	FormatText Format = iota
	// FormatJSON JSON 格式
	FormatJSON
)

// Config 日志配置
type Config struct {
	// DefaultLevel 默认日志级别
	DefaultLevel slog.Level

	// ComponentLevels 各组件的日志级别
	ComponentLevels map[string]slog.Level

	// Format 输出格式
	Format Format
}

// LevelFor 获取指定组件的日志级别
func (c *Config) LevelFor(component string) slog.Level {
	if level, ok := c.ComponentLevels[component]; ok {
		return level
	}
	return c.DefaultLevel
}

// minLevel 所有配置中最低的级别
func (c *Config) minLevel() slog.Level {
	lowest := c.DefaultLevel
	for _, level := range c.ComponentLevels {
		if level < lowest {
			lowest = level
		}
	}
	return lowest
}

var current atomic.Pointer[Config]

// CurrentConfig 返回当前生效的配置
//
// 首次调用时从环境变量解析。
func CurrentConfig() *Config {
	if cfg := current.Load(); cfg != nil {
		return cfg
	}
	cfg := ConfigFromEnv()
	current.CompareAndSwap(nil, cfg)
	return current.Load()
}

// Configure 使用级别字符串与格式重新配置日志
//
// level 与 SHELL_LOG_LEVEL 格式相同；为空时保留当前默认级别。
func Configure(level, format string) {
	cfg := &Config{
		DefaultLevel:    LevelInfo,
		ComponentLevels: make(map[string]slog.Level),
		Format:          parseFormat(format),
	}
	if level != "" {
		ParseLevelConfig(cfg, level)
	}
	current.Store(cfg)
	SetOutput(os.Stderr)
}

// ConfigFromEnv 从环境变量解析配置
func ConfigFromEnv() *Config {
	cfg := &Config{
		DefaultLevel:    LevelInfo,
		ComponentLevels: make(map[string]slog.Level),
		Format:          parseFormat(os.Getenv(EnvLogFormat)),
	}
	if levelStr := os.Getenv(EnvLogLevel); levelStr != "" {
		ParseLevelConfig(cfg, levelStr)
	}
	return cfg
}

// ParseLevelConfig 解析日志级别配置字符串
//
// 格式: component=level,component=level,defaultLevel
func ParseLevelConfig(cfg *Config, levelStr string) {
	for _, part := range strings.Split(levelStr, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}

		if component, levelName, ok := strings.Cut(part, "="); ok {
			if level, ok := ParseLevel(strings.TrimSpace(levelName)); ok {
				cfg.ComponentLevels[strings.TrimSpace(component)] = level
			}
			continue
		}

		if level, ok := ParseLevel(part); ok {
			cfg.DefaultLevel = level
		}
	}
}

// ParseLevel 解析日志级别名称
func ParseLevel(name string) (slog.Level, bool) {
	switch strings.ToLower(name) {
	case "debug":
		return LevelDebug, true
	case "info", "information":
		return LevelInfo, true
	case "warn", "warning":
		return LevelWarn, true
	case "error", "critical":
		return LevelError, true
	default:
		return LevelInfo, false
	}
}

func parseFormat(s string) Format {
	if strings.EqualFold(s, "json") {
		return FormatJSON
	}
	return FormatText
}
