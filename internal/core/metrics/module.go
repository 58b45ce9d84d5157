package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/fx"

	"github.com/dep2p/go-shell/internal/core/federation"
	"github.com/dep2p/go-shell/internal/core/registration"
	"github.com/dep2p/go-shell/internal/core/registry"
)

// Params Metrics 依赖参数
type Params struct {
	fx.In

	Registerer      prometheus.Registerer            `optional:"true"`
	Routes          *registry.RouteRegistry          `optional:"true"`
	NavigationItems *registry.NavigationItemRegistry `optional:"true"`
	ModuleRoutes    *registry.ModuleRouteRegistry    `optional:"true"`
}

// Result Metrics 模块输出
type Result struct {
	fx.Out

	Collector     *Collector
	Reporter      Reporter
	LoadObserver  federation.LoadObserver
	StateObserver registration.StateObserver
}

// Module 是 metrics 的 Fx 模块
var Module = fx.Module("metrics",
	fx.Provide(NewCollectorFromParams),
)

// NewCollectorFromParams 从参数创建 Collector
func NewCollectorFromParams(p Params) (Result, error) {
	var sources Sources
	if p.Routes != nil {
		sources.Routes = p.Routes.Len
	}
	if p.NavigationItems != nil {
		sources.NavigationItems = p.NavigationItems.Len
	}
	if p.ModuleRoutes != nil {
		sources.ModuleRoutes = p.ModuleRoutes.Len
	}

	c, err := NewCollector(p.Registerer, sources)
	if err != nil {
		return Result{}, err
	}
	return Result{
		Collector:     c,
		Reporter:      c,
		LoadObserver:  c.ObserveRemoteLoad,
		StateObserver: c.SetRegistrationState,
	}, nil
}
