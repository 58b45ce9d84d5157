package config

import (
	"fmt"
	"net"
)

// IntrospectConfig 自省服务配置
type IntrospectConfig struct {
	// Enable 启用自省服务
	Enable bool `json:"enable"`

	// Addr 自省服务监听地址
	// 默认 "127.0.0.1:6060"
	Addr string `json:"addr"`
}

// DefaultIntrospectConfig 返回默认自省配置
func DefaultIntrospectConfig() IntrospectConfig {
	return IntrospectConfig{
		Enable: false, // 默认禁用
		Addr:   "127.0.0.1:6060",
	}
}

// Validate 验证自省配置
func (c IntrospectConfig) Validate() error {
	if !c.Enable {
		return nil
	}
	if _, _, err := net.SplitHostPort(c.Addr); err != nil {
		return fmt.Errorf("%w: introspect addr %q: %v", ErrInvalidConfig, c.Addr, err)
	}
	return nil
}
