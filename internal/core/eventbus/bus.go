package eventbus

import (
	"errors"
	"fmt"
	"reflect"
	"sort"
	"sync"
	"sync/atomic"

	pkgif "github.com/dep2p/go-shell/pkg/interfaces"
	"github.com/dep2p/go-shell/pkg/lib/log"
)

var logger = log.Logger("core/eventbus")

// ============================================================================
// 错误定义
// ============================================================================

var (
	// ErrNilListener 监听器为空
	ErrNilListener = errors.New("eventbus: nil listener")
	// ErrUncomparableContext 绑定上下文不可比较
	ErrUncomparableContext = errors.New("eventbus: listener context must be comparable")
)

// ============================================================================
// Bus 实现
// ============================================================================

// Bus 事件总线
type Bus struct {
	mu sync.RWMutex

	// listeners 事件名 → 按注册顺序排列的订阅
	listeners map[string][]*subscription

	// observers 分发观察者
	observers  map[uint64]Observer
	nextObsID  uint64
	dispatched atomic.Int64
}

var _ pkgif.EventBus = (*Bus)(nil)

// NewBus 创建新的事件总线
func NewBus() *Bus {
	return &Bus{
		listeners: make(map[string][]*subscription),
		observers: make(map[uint64]Observer),
	}
}

// ============================================================================
// EventBus 接口实现
// ============================================================================

// AddListener 添加监听器
//
// listener 为 nil 或 Context 不可比较时 panic：这是调用方的编程错误。
func (b *Bus) AddListener(name string, listener *pkgif.Listener, opts pkgif.ListenerOptions) {
	if listener == nil {
		panic(ErrNilListener)
	}
	if opts.Context != nil && !reflect.TypeOf(opts.Context).Comparable() {
		panic(fmt.Errorf("%w: %T", ErrUncomparableContext, opts.Context))
	}

	b.mu.Lock()
	b.listeners[name] = append(b.listeners[name], &subscription{
		listener: listener,
		context:  opts.Context,
		once:     opts.Once,
	})
	b.mu.Unlock()

	logger.Debug("添加监听器", "event", name, "listener", log.TruncateID(listener.ID(), 8), "once", opts.Once)
}

// RemoveListener 移除所有匹配的监听器
func (b *Bus) RemoveListener(name string, listener *pkgif.Listener, opts pkgif.ListenerOptions) {
	if listener == nil {
		return
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	subs := b.listeners[name]
	if len(subs) == 0 {
		return
	}

	kept := make([]*subscription, 0, len(subs))
	for _, s := range subs {
		if !s.matches(listener, opts) {
			kept = append(kept, s)
		}
	}

	if len(kept) == 0 {
		delete(b.listeners, name)
		return
	}
	b.listeners[name] = kept
}

// Dispatch 同步分发事件
//
// 一次性监听器在调用前移除，因此监听器内部再次 Dispatch 不会重复触发它。
func (b *Bus) Dispatch(name string, data any) {
	b.mu.Lock()
	subs := b.listeners[name]
	snapshot := make([]*subscription, len(subs))
	copy(snapshot, subs)

	if hasOnce(subs) {
		kept := make([]*subscription, 0, len(subs))
		for _, s := range subs {
			if !s.once {
				kept = append(kept, s)
			}
		}
		if len(kept) == 0 {
			delete(b.listeners, name)
		} else {
			b.listeners[name] = kept
		}
	}

	observers := make([]Observer, 0, len(b.observers))
	ids := make([]uint64, 0, len(b.observers))
	for id := range b.observers {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	for _, id := range ids {
		observers = append(observers, b.observers[id])
	}
	b.mu.Unlock()

	b.dispatched.Add(1)

	for _, obs := range observers {
		obs(name, data)
	}
	for _, s := range snapshot {
		s.listener.Invoke(data)
	}
}

func hasOnce(subs []*subscription) bool {
	for _, s := range subs {
		if s.once {
			return true
		}
	}
	return false
}

// ============================================================================
// 便捷方法
// ============================================================================

// On 以回调函数添加监听器，返回取消函数
func (b *Bus) On(name string, fn pkgif.ListenerFunc) (unsubscribe func()) {
	l := pkgif.NewListener(fn)
	b.AddListener(name, l, pkgif.ListenerOptions{})
	return func() { b.RemoveListener(name, l, pkgif.ListenerOptions{}) }
}

// Once 添加一次性监听器，返回取消函数
func (b *Bus) Once(name string, fn pkgif.ListenerFunc) (unsubscribe func()) {
	l := pkgif.NewListener(fn)
	opts := pkgif.ListenerOptions{Once: true}
	b.AddListener(name, l, opts)
	return func() { b.RemoveListener(name, l, opts) }
}

// ListenerCount 返回事件名下的监听器数量
func (b *Bus) ListenerCount(name string) int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.listeners[name])
}

// EventNames 返回当前有监听器的事件名（已排序）
func (b *Bus) EventNames() []string {
	b.mu.RLock()
	defer b.mu.RUnlock()

	names := make([]string, 0, len(b.listeners))
	for name := range b.listeners {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Dispatched 返回累计分发次数
func (b *Bus) Dispatched() int64 {
	return b.dispatched.Load()
}

// Observe 注册分发观察者，返回取消函数
//
// 观察者在监听器之前被调用，且总是收到分发，无论事件名下是否有监听器。
func (b *Bus) Observe(fn Observer) (cancel func()) {
	b.mu.Lock()
	id := b.nextObsID
	b.nextObsID++
	b.observers[id] = fn
	b.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			b.mu.Lock()
			delete(b.observers, id)
			b.mu.Unlock()
		})
	}
}
