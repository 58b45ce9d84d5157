package engine

import "errors"

var (
	// ErrNotFound 键不存在
	ErrNotFound = errors.New("engine: key not found")
	// ErrEmptyKey 空键
	ErrEmptyKey = errors.New("engine: empty key")
	// ErrClosed 引擎已关闭
	ErrClosed = errors.New("engine: closed")
	// ErrReadOnly 引擎以只读方式打开
	ErrReadOnly = errors.New("engine: opened read-only")
	// ErrInvalidConfig 引擎配置无效
	ErrInvalidConfig = errors.New("engine: invalid config")
	// ErrCorrupted 存储的值无法解码
	ErrCorrupted = errors.New("engine: stored value cannot be decoded")
)

// IsNotFound 报告 err 是否表示键不存在
//
// 会话等上层组件把它视为"没有值"而不是失败。
func IsNotFound(err error) bool { return errors.Is(err, ErrNotFound) }

// IsClosed 报告 err 是否因为引擎已关闭
func IsClosed(err error) bool { return errors.Is(err, ErrClosed) }
