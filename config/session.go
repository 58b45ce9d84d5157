package config

// SessionConfig 会话配置
type SessionConfig struct {
	// Enable 启用会话管理器
	Enable bool `json:"enable"`

	// Key 会话键
	// 默认 "app-session"
	Key string `json:"key"`
}

// DefaultSessionConfig 返回默认会话配置
func DefaultSessionConfig() SessionConfig {
	return SessionConfig{Key: "app-session"}
}

// Validate 验证会话配置
func (c SessionConfig) Validate() error {
	return nil
}
