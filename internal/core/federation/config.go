package federation

import "time"

// Config 远程加载配置
type Config struct {
	// Timeout 脚本加载超时
	Timeout time.Duration

	// ShareScope 共享作用域名称
	ShareScope string

	// ManifestCacheSize 清单缓存容量
	ManifestCacheSize int

	// MaxEntrySize 远程入口最大字节数
	MaxEntrySize int64
}

// DefaultConfig 返回默认配置
func DefaultConfig() *Config {
	return &Config{
		Timeout:           DefaultTimeout,
		ShareScope:        DefaultShareScope,
		ManifestCacheSize: DefaultManifestCacheSize,
		MaxEntrySize:      DefaultMaxEntrySize,
	}
}
