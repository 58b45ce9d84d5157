package eventbus

import (
	pkgif "github.com/dep2p/go-shell/pkg/interfaces"
)

// ============================================================================
// subscription 实现
// ============================================================================

// subscription 一次监听注册
type subscription struct {
	listener *pkgif.Listener
	context  any
	once     bool
}

// matches 判断移除请求是否命中该订阅
//
// 未指定 Context 的移除请求匹配任意上下文；指定 Once 时只匹配一次性订阅。
func (s *subscription) matches(listener *pkgif.Listener, opts pkgif.ListenerOptions) bool {
	if s.listener != listener {
		return false
	}
	if opts.Once && !s.once {
		return false
	}
	if opts.Context != nil && s.context != opts.Context {
		return false
	}
	return true
}

// Observer 分发观察者，接收每一次分发
type Observer func(name string, data any)
