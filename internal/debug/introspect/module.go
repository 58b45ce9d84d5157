package introspect

import (
	"context"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/fx"

	"github.com/dep2p/go-shell/internal/core/eventbus"
	"github.com/dep2p/go-shell/internal/core/registration"
	pkgif "github.com/dep2p/go-shell/pkg/interfaces"
)

// Module 返回自省服务 Fx 模块
//
// 未注入 *Config 时服务被禁用。
func Module() fx.Option {
	return fx.Module("introspect",
		fx.Provide(NewFromParams),
		fx.Invoke(registerLifecycle),
	)
}

// IntrospectParams 自省服务依赖参数
type IntrospectParams struct {
	fx.In

	Config    *Config                 `optional:"true"`
	Runtime   pkgif.Runtime           `optional:"true"`
	Registrar *registration.Registrar `optional:"true"`
	Routes    RouteSource             `optional:"true"`
	Bus       *eventbus.Bus           `optional:"true"`
	Gatherer  prometheus.Gatherer     `optional:"true"`
}

// IntrospectOutput 自省服务输出
type IntrospectOutput struct {
	fx.Out

	Server *Server
}

// NewFromParams 从参数创建自省服务
func NewFromParams(p IntrospectParams) IntrospectOutput {
	if p.Config == nil {
		return IntrospectOutput{}
	}

	cfg := *p.Config
	if cfg.Runtime == nil {
		cfg.Runtime = p.Runtime
	}
	if cfg.Registration == nil && p.Registrar != nil {
		cfg.Registration = p.Registrar
	}
	if cfg.Routes == nil {
		cfg.Routes = p.Routes
	}
	if cfg.Bus == nil {
		cfg.Bus = p.Bus
	}
	if cfg.Gatherer == nil {
		cfg.Gatherer = p.Gatherer
	}

	return IntrospectOutput{Server: New(cfg)}
}

// registerLifecycle 注册生命周期钩子
func registerLifecycle(lc fx.Lifecycle, server *Server) {
	if server == nil {
		return
	}
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			return server.Start(ctx)
		},
		OnStop: func(_ context.Context) error {
			return server.Stop()
		},
	})
}
