// Package registration 实现模块注册编排
//
// 两个入口共享同一个契约 register(runtime, context)：
//
//   - StaticRegistrar.RegisterStaticModules - 按顺序同步调用静态链接模块的注册函数，
//     由独立的一次性标记保护
//   - Registrar.RegisterRemoteModules - 并发加载并注册所有远程模块，
//     由 none → in-progress → ready 状态机保护
//
// # 部分失败隔离
//
// 每个远程模块独立执行"加载 → 检查 register 导出 → 调用"，
// 任何阶段的失败都被记录为一条 RemoteModuleRegistrationError，不会取消或阻塞
// 其他远程模块。所有远程模块都处理完成后状态才进入 ready，
// 因此 ready 表示"全部已处理，无论成功与否"。
//
// # panic 策略
//
// 远程模块的注册函数同步 panic 时：
//   - PanicCapture（默认）：折叠为该远程模块的一条错误
//   - PanicPropagate：等待所有远程模块处理完成、状态进入 ready 后，
//     在调用方 goroutine 中重新 panic
package registration
