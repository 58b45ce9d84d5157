package storage

import (
	"fmt"
	"time"

	"github.com/dep2p/go-shell/internal/core/storage/engine"
)

// Backend 存储后端
type Backend string

const (
	// BackendMemory 进程内 map，进程退出即丢失
	BackendMemory Backend = "memory"
	// BackendBadger BadgerDB 持久化存储
	BackendBadger Backend = "badger"
	// BackendBadgerInMemory BadgerDB 纯内存模式
	BackendBadgerInMemory Backend = "badger-memory"
)

// Config Storage 模块配置
type Config struct {
	// Backend 存储后端
	Backend Backend

	// Path BadgerDB 数据目录
	Path string

	// SyncWrites 是否同步写入
	SyncWrites bool

	// GCInterval 垃圾回收间隔，<= 0 禁用
	GCInterval time.Duration

	// GCDiscardRatio 垃圾回收丢弃比例
	GCDiscardRatio float64
}

// DefaultConfig 返回默认配置
func DefaultConfig() Config {
	return Config{
		Backend:        BackendMemory,
		Path:           "./data/shell.db",
		GCInterval:     10 * time.Minute,
		GCDiscardRatio: 0.5,
	}
}

// Validate 验证配置
func (c *Config) Validate() error {
	switch c.Backend {
	case "":
		c.Backend = BackendMemory
	case BackendMemory, BackendBadgerInMemory:
	case BackendBadger:
		if c.Path == "" {
			return fmt.Errorf("%w: badger backend requires a path", ErrInvalidConfig)
		}
	default:
		return fmt.Errorf("%w: unknown backend %q", ErrInvalidConfig, c.Backend)
	}
	if c.GCDiscardRatio <= 0 || c.GCDiscardRatio > 1 {
		c.GCDiscardRatio = 0.5
	}
	return nil
}

// ToEngineConfig 转换为 BadgerDB 引擎配置
func (c *Config) ToEngineConfig() *engine.Config {
	cfg := engine.DefaultConfig(c.Path)
	cfg.InMemory = c.Backend == BackendBadgerInMemory
	cfg.SyncWrites = c.SyncWrites
	cfg.GCInterval = c.GCInterval
	cfg.GCDiscardRatio = c.GCDiscardRatio
	return cfg
}
