package storage

import "github.com/dep2p/go-shell/internal/core/storage/engine"

// 会话层与测试只依赖 storage 包即可判断错误，不必导入 engine
var (
	// ErrInvalidConfig 存储配置无效
	ErrInvalidConfig = engine.ErrInvalidConfig
	// ErrCorrupted 存储的值无法解码
	ErrCorrupted = engine.ErrCorrupted
	// ErrNotFound 键不存在
	ErrNotFound = engine.ErrNotFound

	// IsClosed 报告 err 是否因为引擎已关闭
	IsClosed = engine.IsClosed
)
