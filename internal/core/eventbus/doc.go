// Package eventbus 实现进程内按名称分发的事件总线
//
// 支持：
//   - 同一事件名下的多个独立监听器
//   - 绑定上下文（同一监听器以不同上下文注册是不同的订阅）
//   - 一次性监听（首次调用前自动移除）
//   - 观察者（接收所有分发，用于自省与指标）
//
// # 快速开始
//
//	bus := eventbus.NewBus()
//
//	l := pkgif.NewListener(func(data any) {
//	    // 处理事件
//	})
//	bus.AddListener("remote-loaded", l, pkgif.ListenerOptions{})
//	defer bus.RemoveListener("remote-loaded", l, pkgif.ListenerOptions{})
//
//	bus.Dispatch("remote-loaded", "remote1")
//
// # 分发语义
//
// Dispatch 是同步的：按注册顺序调用快照中的所有监听器，不等待也不聚合结果。
// 监听器 panic 不会被捕获，直接传播到 Dispatch 的调用方，由调用方决定如何处理。
//
// # 并发安全
//
// 监听器表由 sync.RWMutex 保护；Dispatch 在锁外调用监听器，
// 因此监听器内部可以安全地添加或移除监听器。
package eventbus
