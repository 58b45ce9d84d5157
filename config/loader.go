package config

import (
	"fmt"
	"time"
)

// LoaderConfig 远程加载配置
type LoaderConfig struct {
	// Timeout 单个远程脚本的加载超时
	// 默认 2s
	Timeout Duration `json:"timeout"`

	// Concurrency 同时加载的远程模块数量，0 表示不限制
	Concurrency int `json:"concurrency,omitempty"`

	// ShareScope 共享作用域名称
	// 默认 "default"
	ShareScope string `json:"share_scope"`

	// ManifestCacheSize 远程入口清单缓存容量
	ManifestCacheSize int `json:"manifest_cache_size"`

	// MaxEntrySize 远程入口最大字节数
	MaxEntrySize int64 `json:"max_entry_size"`
}

// DefaultLoaderConfig 返回默认加载配置
func DefaultLoaderConfig() LoaderConfig {
	return LoaderConfig{
		Timeout:           Duration(2 * time.Second),
		ShareScope:        "default",
		ManifestCacheSize: 64,
		MaxEntrySize:      1 << 20,
	}
}

// Validate 验证加载配置
func (c LoaderConfig) Validate() error {
	if c.Timeout <= 0 {
		return fmt.Errorf("%w: loader timeout must be positive", ErrInvalidConfig)
	}
	if c.Concurrency < 0 {
		return fmt.Errorf("%w: loader concurrency cannot be negative", ErrInvalidConfig)
	}
	if c.ManifestCacheSize <= 0 {
		return fmt.Errorf("%w: manifest cache size must be positive", ErrInvalidConfig)
	}
	if c.MaxEntrySize <= 0 {
		return fmt.Errorf("%w: max entry size must be positive", ErrInvalidConfig)
	}
	return nil
}
