package interfaces

import "github.com/dep2p/go-shell/pkg/types"

// Runtime 运行时门面
//
// Runtime 是组合根：持有路由注册表、导航项注册表、日志扇出、事件总线、
// 服务表和会话访问器。它被传入每个模块的注册函数，也是渲染层读取
// 注册结果的唯一入口。
//
// 所有方法都是并发安全的。
type Runtime interface {
	// RegisterRoutes 注册根路由（nil 项被忽略）
	RegisterRoutes(routes ...*types.RootRoute)

	// Routes 返回已注册根路由的快照
	Routes() []*types.RootRoute

	// RegisterNavigationItems 注册导航项（nil 项被忽略）
	RegisterNavigationItems(items ...*types.NavigationItem)

	// NavigationItems 返回已注册导航项的快照
	NavigationItems() []*types.NavigationItem

	// RegisterModuleRoutes 注册底层模块路由（非根路由）
	RegisterModuleRoutes(routes ...*types.Route)

	// ModuleRoutes 返回底层模块路由快照
	ModuleRoutes() []*types.Route

	// Logger 返回日志扇出聚合
	Logger() Logger

	// EventBus 返回事件总线
	EventBus() EventBus

	// GetService 按名称查找服务，不存在时返回 nil
	GetService(name string) any

	// GetSession 通过会话访问器获取当前会话
	//
	// 构造时未提供会话访问器返回配置错误。
	GetSession() (any, error)
}

// SessionAccessor 会话访问器
type SessionAccessor func() (any, error)

// ============================================================================
//                              注册函数契约
// ============================================================================

// ModuleRegisterFunc 模块注册函数
//
// 对编排器而言是同步调用：函数内部可以再启动异步工作，
// 但编排器只等待调用本身返回。
type ModuleRegisterFunc func(rt Runtime, context any)

// RemoteModule 暴露 Register 方法的模块导出
type RemoteModule interface {
	Register(rt Runtime, context any)
}

// ModuleExports 以结构体形式给出的模块导出
type ModuleExports struct {
	// Register 注册函数，为 nil 时视为缺失
	Register ModuleRegisterFunc
}
