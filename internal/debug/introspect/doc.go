// Package introspect 提供本地自省 HTTP 服务
//
// 端点：
//
//	GET /health                  健康检查
//	GET /debug/shell             注册状态与各注册表条目数
//	GET /debug/shell/routes      提升后的路由表
//	GET /debug/shell/navigation  导航项与渲染结果
//	GET /debug/shell/errors      远程模块注册错误
//	GET /debug/runtime           Go 运行时信息
//	GET /metrics                 Prometheus 指标
//	GET /debug/events            事件总线分发的 WebSocket 流，可用 ?name= 过滤
//	GET /debug/pprof/*           pprof
//
// 默认只监听 127.0.0.1，不应暴露到公网。
package introspect
