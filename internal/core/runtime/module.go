package runtime

import (
	"go.uber.org/fx"

	"github.com/dep2p/go-shell/internal/core/registry"
	pkgif "github.com/dep2p/go-shell/pkg/interfaces"
)

// ============================================================================
// Fx 模块
// ============================================================================

// Services 服务表
type Services map[string]any

// Params 运行时依赖参数
type Params struct {
	fx.In

	Routes          *registry.RouteRegistry
	NavigationItems *registry.NavigationItemRegistry
	ModuleRoutes    *registry.ModuleRouteRegistry
	Logger          pkgif.Logger
	EventBus        pkgif.EventBus

	Services        Services              `optional:"true"`
	SessionAccessor pkgif.SessionAccessor `optional:"true"`
}

// Result 运行时输出
type Result struct {
	fx.Out

	Runtime pkgif.Runtime
	Impl    *Runtime
}

// Module 返回 Fx 模块
func Module() fx.Option {
	return fx.Module("runtime",
		fx.Provide(ProvideRuntime),
	)
}

// ProvideRuntime 从依赖构建运行时
func ProvideRuntime(p Params) Result {
	rt := NewWithRegistries(Config{
		Logger:          p.Logger,
		EventBus:        p.EventBus,
		Services:        p.Services,
		SessionAccessor: p.SessionAccessor,
	}, p.Routes, p.NavigationItems, p.ModuleRoutes)
	return Result{Runtime: rt, Impl: rt}
}

// ============================================================================
// 模块元信息
// ============================================================================

const (
	// Version 模块版本
	Version = "1.0.0"
	// Name 模块名称
	Name = "runtime"
	// Description 模块描述
	Description = "运行时门面模块，聚合注册表、日志、事件总线、服务与会话"
)
