package config

import (
	"fmt"
	"strings"
)

// LogConfig 日志配置
type LogConfig struct {
	// Level 运行时日志最低级别：debug、information、warning、error、critical
	Level string `json:"level"`

	// Format 控制台输出格式：text 或 json
	Format string `json:"format"`

	// Zap 额外输出到 zap 生产日志
	Zap bool `json:"zap,omitempty"`

	// Memory 额外保留最近的日志条目供自省服务查看，0 表示禁用
	Memory int `json:"memory,omitempty"`
}

// DefaultLogConfig 返回默认日志配置
func DefaultLogConfig() LogConfig {
	return LogConfig{
		Level:  "information",
		Format: "text",
	}
}

// Validate 验证日志配置
func (c LogConfig) Validate() error {
	switch strings.ToLower(c.Format) {
	case "", "text", "json":
	default:
		return fmt.Errorf("%w: unknown log format %q", ErrInvalidConfig, c.Format)
	}
	if c.Memory < 0 {
		return fmt.Errorf("%w: log memory cannot be negative", ErrInvalidConfig)
	}
	return nil
}
