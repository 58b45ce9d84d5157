package config

import (
	"fmt"
	"strings"
)

// RoutingConfig 路由配置
type RoutingConfig struct {
	// HoistAllowList 允许被提升的路径
	//
	// 为空时不做限制；非空时提升了列表之外路径的模块会导致路由组合失败。
	HoistAllowList []string `json:"hoist_allow_list,omitempty"`
}

// DefaultRoutingConfig 返回默认路由配置
func DefaultRoutingConfig() RoutingConfig {
	return RoutingConfig{}
}

// Validate 验证路由配置
func (c RoutingConfig) Validate() error {
	for _, p := range c.HoistAllowList {
		if !strings.HasPrefix(p, "/") {
			return fmt.Errorf("%w: hoist allow list path %q must start with /", ErrInvalidConfig, p)
		}
	}
	return nil
}
