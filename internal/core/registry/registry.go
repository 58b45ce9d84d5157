package registry

import (
	"github.com/dep2p/go-shell/pkg/lib/log"
	"github.com/dep2p/go-shell/pkg/types"
)

var logger = log.Logger("core/registry")

// ============================================================================
//                              RouteRegistry
// ============================================================================

// RouteRegistry 根路由注册表
type RouteRegistry struct {
	list snapshotList[types.RootRoute, *types.RootRoute]
}

// NewRouteRegistry 创建根路由注册表
func NewRouteRegistry() *RouteRegistry {
	return &RouteRegistry{}
}

// Add 追加根路由，返回实际追加的数量
func (r *RouteRegistry) Add(routes ...*types.RootRoute) int {
	n := r.list.add(routes)
	if n < len(routes) {
		logger.Debug("忽略空路由", "dropped", len(routes)-n)
	}
	return n
}

// Routes 返回根路由快照
func (r *RouteRegistry) Routes() []*types.RootRoute {
	return r.list.items()
}

// Len 返回根路由数量
func (r *RouteRegistry) Len() int {
	return r.list.len()
}

// ============================================================================
//                              NavigationItemRegistry
// ============================================================================

// NavigationItemRegistry 导航项注册表
type NavigationItemRegistry struct {
	list snapshotList[types.NavigationItem, *types.NavigationItem]
}

// NewNavigationItemRegistry 创建导航项注册表
func NewNavigationItemRegistry() *NavigationItemRegistry {
	return &NavigationItemRegistry{}
}

// Add 追加导航项，返回实际追加的数量
func (r *NavigationItemRegistry) Add(items ...*types.NavigationItem) int {
	n := r.list.add(items)
	if n < len(items) {
		logger.Debug("忽略空导航项", "dropped", len(items)-n)
	}
	return n
}

// Items 返回导航项快照
func (r *NavigationItemRegistry) Items() []*types.NavigationItem {
	return r.list.items()
}

// Len 返回导航项数量
func (r *NavigationItemRegistry) Len() int {
	return r.list.len()
}

// ============================================================================
//                              ModuleRouteRegistry
// ============================================================================

// ModuleRouteRegistry 底层模块路由注册表
type ModuleRouteRegistry struct {
	list snapshotList[types.Route, *types.Route]
}

// NewModuleRouteRegistry 创建模块路由注册表
func NewModuleRouteRegistry() *ModuleRouteRegistry {
	return &ModuleRouteRegistry{}
}

// RegisterRoutes 追加模块路由，返回实际追加的数量
func (r *ModuleRouteRegistry) RegisterRoutes(routes ...*types.Route) int {
	return r.list.add(routes)
}

// Routes 返回模块路由快照
func (r *ModuleRouteRegistry) Routes() []*types.Route {
	return r.list.items()
}

// Len 返回模块路由数量
func (r *ModuleRouteRegistry) Len() int {
	return r.list.len()
}
