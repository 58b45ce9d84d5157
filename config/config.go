// Package config 提供外壳的统一配置管理
//
// 本包采用混合配置模式：
//   - 主 Config 结构体嵌入所有子配置
//   - 每个子配置在独立文件中定义，各自提供默认值与 Validate
//   - 支持从 JSON 加载和保存配置
//
// 使用示例：
//
//	cfg := config.NewConfig()
//	cfg.Remotes = append(cfg.Remotes, config.RemoteConfig{Name: "remote1", URL: "http://localhost:8081"})
//
//	// 从文件加载
//	cfg, err := config.LoadFile("shell.json")
package config

import "fmt"

// Config 是外壳的完整配置结构
//
//   - Remotes: 远程模块描述
//   - Loader: 远程脚本加载
//   - Registration: 注册编排
//   - Routing: 路由提升
//   - Log: 日志
//   - Storage: 存储
//   - Session: 会话
//   - Introspect: 自省服务
type Config struct {
	// Remotes 远程模块列表
	Remotes []RemoteConfig `json:"remotes,omitempty"`

	// Loader 远程加载配置
	Loader LoaderConfig `json:"loader"`

	// Registration 注册编排配置
	Registration RegistrationConfig `json:"registration"`

	// Routing 路由配置
	Routing RoutingConfig `json:"routing"`

	// Log 日志配置
	Log LogConfig `json:"log"`

	// Storage 存储配置
	Storage StorageConfig `json:"storage"`

	// Session 会话配置
	Session SessionConfig `json:"session"`

	// Introspect 自省服务配置
	Introspect IntrospectConfig `json:"introspect"`
}

// NewConfig 创建默认配置
func NewConfig() *Config {
	return &Config{
		Loader:       DefaultLoaderConfig(),
		Registration: DefaultRegistrationConfig(),
		Routing:      DefaultRoutingConfig(),
		Log:          DefaultLogConfig(),
		Storage:      DefaultStorageConfig(),
		Session:      DefaultSessionConfig(),
		Introspect:   DefaultIntrospectConfig(),
	}
}

// Validate 验证配置的有效性
func (c *Config) Validate() error {
	seen := make(map[string]struct{}, len(c.Remotes))
	for i := range c.Remotes {
		if err := c.Remotes[i].Validate(); err != nil {
			return fmt.Errorf("remotes[%d]: %w", i, err)
		}
		if _, dup := seen[c.Remotes[i].Name]; dup {
			return fmt.Errorf("remotes[%d]: %w: %q", i, ErrDuplicateRemote, c.Remotes[i].Name)
		}
		seen[c.Remotes[i].Name] = struct{}{}
	}
	if err := c.Loader.Validate(); err != nil {
		return err
	}
	if err := c.Registration.Validate(); err != nil {
		return err
	}
	if err := c.Routing.Validate(); err != nil {
		return err
	}
	if err := c.Log.Validate(); err != nil {
		return err
	}
	if err := c.Storage.Validate(); err != nil {
		return err
	}
	if err := c.Session.Validate(); err != nil {
		return err
	}
	return c.Introspect.Validate()
}
