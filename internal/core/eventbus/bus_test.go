package eventbus

import (
	"sync"
	"testing"

	pkgif "github.com/dep2p/go-shell/pkg/interfaces"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ============================================================================
// 接口契约测试
// ============================================================================

// TestBus_ImplementsInterface 验证 Bus 实现接口
func TestBus_ImplementsInterface(t *testing.T) {
	var _ pkgif.EventBus = (*Bus)(nil)
}

// ============================================================================
// 基础功能测试
// ============================================================================

// TestBus_DispatchInRegistrationOrder 测试按注册顺序同步分发
func TestBus_DispatchInRegistrationOrder(t *testing.T) {
	bus := NewBus()
	var calls []string

	for _, id := range []string{"a", "b", "c"} {
		id := id
		bus.AddListener("evt", pkgif.NewListener(func(data any) {
			calls = append(calls, id+":"+data.(string))
		}), pkgif.ListenerOptions{})
	}

	bus.Dispatch("evt", "x")
	bus.Dispatch("other", "y")

	assert.Equal(t, []string{"a:x", "b:x", "c:x"}, calls)
	t.Log("✅ 按注册顺序分发测试通过")
}

// TestBus_Once 测试一次性监听器
func TestBus_Once(t *testing.T) {
	bus := NewBus()
	count := 0
	l := pkgif.NewListener(func(any) { count++ })

	bus.AddListener("evt", l, pkgif.ListenerOptions{Once: true})
	bus.Dispatch("evt", nil)
	bus.Dispatch("evt", nil)

	assert.Equal(t, 1, count)
	assert.Equal(t, 0, bus.ListenerCount("evt"))
}

// TestBus_OnceRemovedBeforeInvocation 测试一次性监听器在调用前移除
func TestBus_OnceRemovedBeforeInvocation(t *testing.T) {
	bus := NewBus()
	count := 0
	bus.Once("evt", func(any) {
		count++
		bus.Dispatch("evt", nil)
	})

	bus.Dispatch("evt", nil)
	assert.Equal(t, 1, count)
}

// TestBus_ContextScopedSubscriptions 测试上下文隔离
func TestBus_ContextScopedSubscriptions(t *testing.T) {
	bus := NewBus()
	count := 0
	l := pkgif.NewListener(func(any) { count++ })

	bus.AddListener("evt", l, pkgif.ListenerOptions{Context: "ctx-a"})
	bus.AddListener("evt", l, pkgif.ListenerOptions{Context: "ctx-b"})
	require.Equal(t, 2, bus.ListenerCount("evt"))

	bus.Dispatch("evt", nil)
	assert.Equal(t, 2, count)

	bus.RemoveListener("evt", l, pkgif.ListenerOptions{Context: "ctx-a"})
	assert.Equal(t, 1, bus.ListenerCount("evt"))

	bus.Dispatch("evt", nil)
	assert.Equal(t, 3, count)
}

// TestBus_RemoveListener 测试移除匹配规则
func TestBus_RemoveListener(t *testing.T) {
	t.Run("without context removes every context", func(t *testing.T) {
		bus := NewBus()
		l := pkgif.NewListener(func(any) {})
		bus.AddListener("evt", l, pkgif.ListenerOptions{Context: 1})
		bus.AddListener("evt", l, pkgif.ListenerOptions{Context: 2})

		bus.RemoveListener("evt", l, pkgif.ListenerOptions{})
		assert.Equal(t, 0, bus.ListenerCount("evt"))
		assert.Empty(t, bus.EventNames())
	})

	t.Run("once only removes once subscriptions", func(t *testing.T) {
		bus := NewBus()
		l := pkgif.NewListener(func(any) {})
		bus.AddListener("evt", l, pkgif.ListenerOptions{})
		bus.AddListener("evt", l, pkgif.ListenerOptions{Once: true})

		bus.RemoveListener("evt", l, pkgif.ListenerOptions{Once: true})
		assert.Equal(t, 1, bus.ListenerCount("evt"))
	})

	t.Run("other listeners are untouched", func(t *testing.T) {
		bus := NewBus()
		a := pkgif.NewListener(func(any) {})
		b := pkgif.NewListener(func(any) {})
		bus.AddListener("evt", a, pkgif.ListenerOptions{})
		bus.AddListener("evt", b, pkgif.ListenerOptions{})

		bus.RemoveListener("evt", a, pkgif.ListenerOptions{})
		bus.RemoveListener("missing", a, pkgif.ListenerOptions{})
		bus.RemoveListener("evt", nil, pkgif.ListenerOptions{})
		assert.Equal(t, 1, bus.ListenerCount("evt"))
	})
}

// TestBus_ListenerPanicPropagates 测试监听器 panic 传播到调用方
func TestBus_ListenerPanicPropagates(t *testing.T) {
	bus := NewBus()
	bus.On("evt", func(any) { panic("listener failed") })

	assert.PanicsWithValue(t, "listener failed", func() {
		bus.Dispatch("evt", nil)
	})
}

// TestBus_InvalidRegistration 测试非法注册
func TestBus_InvalidRegistration(t *testing.T) {
	bus := NewBus()

	assert.PanicsWithError(t, ErrNilListener.Error(), func() {
		bus.AddListener("evt", nil, pkgif.ListenerOptions{})
	})
	assert.Panics(t, func() {
		bus.AddListener("evt", pkgif.NewListener(func(any) {}), pkgif.ListenerOptions{Context: []string{"x"}})
	})
}

// TestBus_OnUnsubscribe 测试取消函数
func TestBus_OnUnsubscribe(t *testing.T) {
	bus := NewBus()
	count := 0
	off := bus.On("evt", func(any) { count++ })

	bus.Dispatch("evt", nil)
	off()
	bus.Dispatch("evt", nil)

	assert.Equal(t, 1, count)
}

// TestBus_Observe 测试观察者
func TestBus_Observe(t *testing.T) {
	bus := NewBus()
	var seen []string
	cancel := bus.Observe(func(name string, data any) {
		seen = append(seen, name)
	})

	bus.Dispatch("a", 1)
	bus.Dispatch("b", 2)
	cancel()
	cancel()
	bus.Dispatch("c", 3)

	assert.Equal(t, []string{"a", "b"}, seen)
	assert.Equal(t, int64(3), bus.Dispatched())
}

// ============================================================================
// 并发测试
// ============================================================================

// TestBus_ConcurrentAddAndDispatch 测试并发添加与分发
func TestBus_ConcurrentAddAndDispatch(t *testing.T) {
	bus := NewBus()
	var mu sync.Mutex
	received := 0

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			bus.On("evt", func(any) {
				mu.Lock()
				received++
				mu.Unlock()
			})
			bus.Dispatch("noise", nil)
		}()
	}
	wg.Wait()

	require.Equal(t, 20, bus.ListenerCount("evt"))
	bus.Dispatch("evt", nil)
	assert.Equal(t, 20, received)
}
