// Package runtime 实现运行时门面
//
// Runtime 是外壳的组合根。它聚合三个注册表、日志扇出、事件总线、
// 服务表与会话访问器，并作为参数传给每个模块的注册函数。
//
// # 使用示例
//
//	rt := runtime.New(runtime.Config{
//	    Loggers:  []pkgif.Logger{logging.NewSlogSink(slog.Default(), logging.LevelDebug)},
//	    Services: map[string]any{"api": client},
//	})
//	rt.RegisterRoutes(&types.RootRoute{Route: types.Route{Path: "/home"}})
//
// 所有方法并发安全。
package runtime
