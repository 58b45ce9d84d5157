package config

import (
	"encoding/json"
	"fmt"
	"os"
)

// FromJSON 从 JSON 数据创建配置
//
// 未出现的字段保留默认值。示例 JSON:
//
//	{
//	  "remotes": [{"name": "remote1", "url": "http://localhost:8081"}],
//	  "loader": {"timeout": "5s", "concurrency": 4},
//	  "routing": {"hoist_allow_list": ["/login"]}
//	}
func FromJSON(data []byte) (*Config, error) {
	cfg := NewConfig()
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	return cfg, nil
}

// LoadFile 从 JSON 文件加载并验证配置
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	cfg, err := FromJSON(data)
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// ToJSON 序列化配置
func (c *Config) ToJSON() ([]byte, error) {
	return json.MarshalIndent(c, "", "  ")
}

// CloneConfig 深拷贝配置
func CloneConfig(cfg *Config) *Config {
	if cfg == nil {
		return nil
	}
	clone := *cfg
	if cfg.Remotes != nil {
		clone.Remotes = make([]RemoteConfig, len(cfg.Remotes))
		copy(clone.Remotes, cfg.Remotes)
	}
	if cfg.Routing.HoistAllowList != nil {
		clone.Routing.HoistAllowList = make([]string, len(cfg.Routing.HoistAllowList))
		copy(clone.Routing.HoistAllowList, cfg.Routing.HoistAllowList)
	}
	return &clone
}
