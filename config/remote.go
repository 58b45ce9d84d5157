package config

import (
	"fmt"
	"net/url"
)

// RemoteConfig 远程模块描述
type RemoteConfig struct {
	// Name 容器名称
	Name string `json:"name"`

	// URL 远程模块基础地址，必须是绝对地址
	URL string `json:"url"`
}

// Validate 验证远程模块描述
func (c RemoteConfig) Validate() error {
	if c.Name == "" {
		return fmt.Errorf("%w: remote name cannot be empty", ErrInvalidConfig)
	}
	u, err := url.Parse(c.URL)
	if err != nil || !u.IsAbs() || u.Host == "" {
		return fmt.Errorf("%w: remote %q url %q must be absolute", ErrInvalidConfig, c.Name, c.URL)
	}
	return nil
}
