package config

import "fmt"

// RegistrationConfig 注册编排配置
type RegistrationConfig struct {
	// PanicPolicy 远程注册函数 panic 的处理策略："capture" 或 "propagate"
	PanicPolicy string `json:"panic_policy"`
}

// DefaultRegistrationConfig 返回默认注册编排配置
func DefaultRegistrationConfig() RegistrationConfig {
	return RegistrationConfig{PanicPolicy: "capture"}
}

// Validate 验证注册编排配置
func (c RegistrationConfig) Validate() error {
	switch c.PanicPolicy {
	case "", "capture", "propagate":
		return nil
	default:
		return fmt.Errorf("%w: unknown panic policy %q", ErrInvalidConfig, c.PanicPolicy)
	}
}
