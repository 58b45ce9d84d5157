package runtime

import (
	"fmt"

	"github.com/dep2p/go-shell/internal/core/eventbus"
	"github.com/dep2p/go-shell/internal/core/logging"
	"github.com/dep2p/go-shell/internal/core/registry"
	pkgif "github.com/dep2p/go-shell/pkg/interfaces"
	"github.com/dep2p/go-shell/pkg/lib/log"
	"github.com/dep2p/go-shell/pkg/types"
)

var logger = log.Logger("core/runtime")

// Config 运行时构造参数
type Config struct {
	// Loggers 日志 Sink，为空时使用 Logger
	Loggers []pkgif.Logger

	// Logger 已组装好的日志聚合，Loggers 非空时被忽略
	Logger pkgif.Logger

	// EventBus 事件总线，为 nil 时创建新的
	EventBus pkgif.EventBus

	// Services 服务表，构造时复制
	Services map[string]any

	// SessionAccessor 会话访问器
	SessionAccessor pkgif.SessionAccessor
}

// Runtime 运行时门面
type Runtime struct {
	routes       *registry.RouteRegistry
	navItems     *registry.NavigationItemRegistry
	moduleRoutes *registry.ModuleRouteRegistry

	logger   pkgif.Logger
	eventBus pkgif.EventBus
	services map[string]any
	session  pkgif.SessionAccessor
}

var _ pkgif.Runtime = (*Runtime)(nil)

// New 创建运行时
func New(cfg Config) *Runtime {
	return NewWithRegistries(cfg,
		registry.NewRouteRegistry(),
		registry.NewNavigationItemRegistry(),
		registry.NewModuleRouteRegistry())
}

// NewWithRegistries 使用给定的注册表创建运行时
func NewWithRegistries(cfg Config, routes *registry.RouteRegistry, navItems *registry.NavigationItemRegistry, moduleRoutes *registry.ModuleRouteRegistry) *Runtime {
	var l pkgif.Logger
	switch {
	case len(cfg.Loggers) > 0:
		l = logging.NewRuntimeLogger(cfg.Loggers...)
	case cfg.Logger != nil:
		l = cfg.Logger
	default:
		l = logging.NewRuntimeLogger()
	}

	bus := cfg.EventBus
	if bus == nil {
		bus = eventbus.NewBus()
	}

	services := make(map[string]any, len(cfg.Services))
	for k, v := range cfg.Services {
		services[k] = v
	}

	return &Runtime{
		routes:       routes,
		navItems:     navItems,
		moduleRoutes: moduleRoutes,
		logger:       l,
		eventBus:     bus,
		services:     services,
		session:      cfg.SessionAccessor,
	}
}

// ============================================================================
//                              注册表
// ============================================================================

// RegisterRoutes 注册根路由
func (r *Runtime) RegisterRoutes(routes ...*types.RootRoute) {
	for _, route := range routes {
		if route == nil {
			continue
		}
		r.debug(fmt.Sprintf("[shell] Registering route %q", route.Path), "hoist", route.Hoist)
	}
	r.routes.Add(routes...)
}

// Routes 返回根路由快照
func (r *Runtime) Routes() []*types.RootRoute {
	return r.routes.Routes()
}

// RegisterNavigationItems 注册导航项
func (r *Runtime) RegisterNavigationItems(items ...*types.NavigationItem) {
	for _, item := range items {
		if item == nil {
			continue
		}
		r.debug(fmt.Sprintf("[shell] Registering navigation item %q", item.To))
	}
	r.navItems.Add(items...)
}

// NavigationItems 返回导航项快照
func (r *Runtime) NavigationItems() []*types.NavigationItem {
	return r.navItems.Items()
}

// RegisterModuleRoutes 注册底层模块路由
func (r *Runtime) RegisterModuleRoutes(routes ...*types.Route) {
	r.moduleRoutes.RegisterRoutes(routes...)
}

// ModuleRoutes 返回模块路由快照
func (r *Runtime) ModuleRoutes() []*types.Route {
	return r.moduleRoutes.Routes()
}

// ============================================================================
//                              其它能力
// ============================================================================

// Logger 返回日志聚合
func (r *Runtime) Logger() pkgif.Logger {
	return r.logger
}

// EventBus 返回事件总线
func (r *Runtime) EventBus() pkgif.EventBus {
	return r.eventBus
}

// GetService 按名称查找服务
func (r *Runtime) GetService(name string) any {
	return r.services[name]
}

// ServiceNames 返回已配置的服务名称
func (r *Runtime) ServiceNames() []string {
	names := make([]string, 0, len(r.services))
	for name := range r.services {
		names = append(names, name)
	}
	return names
}

// GetSession 通过会话访问器获取当前会话
func (r *Runtime) GetSession() (any, error) {
	if r.session == nil {
		return nil, ErrNoSessionAccessor
	}
	return r.session()
}

func (r *Runtime) debug(msg string, args ...any) {
	if err := r.logger.Debug(msg, args...); err != nil {
		logger.Warn("运行时日志写入失败", "error", err)
	}
}

// ============================================================================
//                              泛型辅助
// ============================================================================

// ServiceAs 按名称查找服务并断言为 T
func ServiceAs[T any](rt pkgif.Runtime, name string) (T, bool) {
	v, ok := rt.GetService(name).(T)
	return v, ok
}

// SessionAs 获取会话并断言为 T
//
// 会话为 nil 时返回 T 的零值且不报错。
func SessionAs[T any](rt pkgif.Runtime) (T, error) {
	var zero T
	v, err := rt.GetSession()
	if err != nil {
		return zero, err
	}
	if v == nil {
		return zero, nil
	}
	s, ok := v.(T)
	if !ok {
		return zero, fmt.Errorf("%w: %T", ErrSessionType, v)
	}
	return s, nil
}
