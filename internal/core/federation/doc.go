// Package federation 实现远程模块加载协议
//
// 加载一个远程模块分为严格顺序的几步：
//
//	1. LoadRemoteScript - 向 Document 插入脚本引用，等待运行结果或超时，
//	                      无论结果如何都移除该引用
//	2. ShareScopes.Init - 初始化 "default" 共享作用域（幂等）
//	3. Resolve          - 在命名空间中按容器名查找容器
//	4. Container.Init   - 用共享作用域初始化容器
//	5. Container.Get    - 获取暴露模块的工厂
//	6. factory()        - 调用工厂得到模块导出
//
// 每一步失败都返回带 Stage 的 *LoadError，可用 errors.Is 区分：
// ErrScriptLoad、ErrScriptTimeout、ErrContainerUnavailable、ErrContainerInit、
// ErrModuleUnavailable、ErrFactoryFailed。
//
// # 脚本运行
//
// 浏览器的 load/error 信号由 ScriptRunner 抽象。内置 HTTPScriptRunner 通过
// 支持 gzip 的 HTTP 客户端获取远程入口，再交给 Evaluator 执行。
// ManifestEvaluator 把 JSON 入口清单解析为容器并绑定到 Namespace：
//
//	{
//	  "name": "remote1",
//	  "exposes": {"./register": "remote1/register"},
//	  "shared": {"design-system": "1.2.0"}
//	}
//
// exposes 的值是 ModuleCatalog 中编译期提供的模块工厂 ID。
package federation
