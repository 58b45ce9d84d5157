// Package logging 实现运行时日志扇出
//
// RuntimeLogger 把一次日志调用分发给零个或多个 Sink：
//   - 每个 Sink 都会被调用，某个 Sink 失败或 panic 不影响其余 Sink
//   - 所有失败通过 multierr 汇总后返回给调用方
//
// 内置 Sink：
//   - SlogSink   - 基于 log/slog 的控制台输出，带最低级别过滤
//   - ZapSink    - 基于 go.uber.org/zap 的结构化输出
//   - MemorySink - 固定容量的内存环形缓冲，供测试与自省端点使用
//
// # Fx 模块
//
//	app := fx.New(
//	    fx.Supply(logging.Sinks{logging.NewSlogSink(nil, logging.LevelInformation)}),
//	    logging.Module(),
//	    fx.Invoke(func(l pkgif.Logger) {
//	        _ = l.Information("shell started")
//	    }),
//	)
package logging
