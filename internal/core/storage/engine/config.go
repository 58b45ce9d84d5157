package engine

import (
	"fmt"
	"os"
	"path/filepath"
	"time"
)

const (
	defaultTableBytes   = 16 << 20
	minTableBytes       = 1 << 20
	defaultDiscardRatio = 0.5
)

// Config BadgerDB 引擎配置
type Config struct {
	// Path 数据目录；InMemory 时忽略
	Path string

	// InMemory 不落盘，进程退出即丢失
	InMemory bool

	SyncWrites bool
	ReadOnly   bool

	// GCInterval 值日志 GC 周期，<= 0 关闭；纯内存和只读模式下不运行
	GCInterval time.Duration

	// GCDiscardRatio 单个值日志文件可回收比例达到该值才重写，取值 (0, 1]
	GCDiscardRatio float64

	// BlockCacheSize 与 MemTableSize 均以字节计
	BlockCacheSize int64
	MemTableSize   int64
}

// DefaultConfig 返回以 path 为数据目录的默认配置
func DefaultConfig(path string) *Config {
	return &Config{
		Path:           path,
		GCInterval:     10 * time.Minute,
		GCDiscardRatio: defaultDiscardRatio,
		BlockCacheSize: defaultTableBytes,
		MemTableSize:   defaultTableBytes,
	}
}

// Validate 检查配置，越界的 GCDiscardRatio 被重置为默认值
func (c *Config) Validate() error {
	switch {
	case c.InMemory && c.ReadOnly:
		return fmt.Errorf("%w: in-memory database cannot be read-only", ErrInvalidConfig)
	case !c.InMemory && c.Path == "":
		return fmt.Errorf("%w: path required for on-disk database", ErrInvalidConfig)
	case c.MemTableSize < minTableBytes:
		return fmt.Errorf("%w: memtable size %d below %d", ErrInvalidConfig, c.MemTableSize, minTableBytes)
	}
	if !(c.GCDiscardRatio > 0 && c.GCDiscardRatio <= 1) {
		c.GCDiscardRatio = defaultDiscardRatio
	}
	return nil
}

// GCEnabled 报告是否需要后台值日志 GC
func (c *Config) GCEnabled() bool {
	return c.GCInterval > 0 && !c.InMemory && !c.ReadOnly
}

// PrepareDir 把 Path 解析为绝对路径并创建目录，纯内存模式下什么也不做
func (c *Config) PrepareDir() error {
	if c.InMemory {
		return nil
	}
	abs, err := filepath.Abs(c.Path)
	if err != nil {
		return fmt.Errorf("resolve %q: %w", c.Path, err)
	}
	c.Path = abs
	return os.MkdirAll(abs, 0o755)
}
