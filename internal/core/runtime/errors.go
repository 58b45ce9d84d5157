package runtime

import "errors"

var (
	// ErrNoSessionAccessor 构造时没有提供会话访问器
	ErrNoSessionAccessor = errors.New("runtime: no session accessor has been provided")
	// ErrSessionType 会话类型不匹配
	ErrSessionType = errors.New("runtime: session has unexpected type")
)
