package registry

import "go.uber.org/fx"

// Result Fx 模块输出结果
type Result struct {
	fx.Out

	Routes          *RouteRegistry
	NavigationItems *NavigationItemRegistry
	ModuleRoutes    *ModuleRouteRegistry
}

// Module 返回 Fx 模块
func Module() fx.Option {
	return fx.Module("registry",
		fx.Provide(ProvideRegistries),
	)
}

// ProvideRegistries 提供三个注册表
func ProvideRegistries() Result {
	return Result{
		Routes:          NewRouteRegistry(),
		NavigationItems: NewNavigationItemRegistry(),
		ModuleRoutes:    NewModuleRouteRegistry(),
	}
}
