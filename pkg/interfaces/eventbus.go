package interfaces

import "github.com/google/uuid"

// EventBus 定义按名称分发的事件总线接口
//
// Dispatch 是同步的：按注册顺序调用当前所有监听器，不等待也不聚合结果。
// 监听器中的 panic 不会被总线捕获，会传播到 Dispatch 的调用方。
type EventBus interface {
	// AddListener 为事件名添加监听器
	AddListener(name string, listener *Listener, opts ListenerOptions)

	// RemoveListener 移除匹配的监听器
	RemoveListener(name string, listener *Listener, opts ListenerOptions)

	// Dispatch 同步分发事件
	Dispatch(name string, data any)
}

// ListenerOptions 监听选项
type ListenerOptions struct {
	// Context 绑定上下文，必须是可比较的值
	//
	// 同一个监听器以不同 Context 注册，是两个独立的订阅。
	Context any

	// Once 首次调用后自动移除
	Once bool
}

// ListenerFunc 监听回调
type ListenerFunc func(data any)

// Listener 监听器句柄
//
// Go 的函数值不可比较，监听器的身份由句柄指针决定：
// 使用同一个 *Listener 添加和移除。
type Listener struct {
	id string
	fn ListenerFunc
}

// NewListener 创建监听器句柄
func NewListener(fn ListenerFunc) *Listener {
	return &Listener{
		id: uuid.NewString(),
		fn: fn,
	}
}

// ID 返回监听器唯一标识
func (l *Listener) ID() string {
	return l.id
}

// Invoke 调用监听回调
func (l *Listener) Invoke(data any) {
	if l.fn != nil {
		l.fn(data)
	}
}
