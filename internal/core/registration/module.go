package registration

import (
	"context"

	"go.uber.org/fx"
)

// ============================================================================
// Fx 模块
// ============================================================================

// Config 注册编排配置
type Config struct {
	// Concurrency 同时处理的远程模块数量，<= 0 表示不限制
	Concurrency int

	// PanicPolicy 远程注册函数 panic 的处理策略
	PanicPolicy PanicPolicy
}

// Params 注册编排依赖参数
type Params struct {
	fx.In

	Loader   RemoteLoader
	Config   *Config       `optional:"true"`
	Observer StateObserver `optional:"true"`
}

// Result 注册编排输出
type Result struct {
	fx.Out

	Registrar *Registrar
	Static    *StaticRegistrar
}

// Module 返回 Fx 模块
func Module() fx.Option {
	return fx.Module("registration",
		fx.Provide(ProvideRegistrars),
		fx.Invoke(registerLifecycle),
	)
}

// ProvideRegistrars 提供远程与静态注册器
func ProvideRegistrars(p Params) Result {
	opts := []Option{WithStateObserver(p.Observer)}
	if p.Config != nil {
		opts = append(opts,
			WithConcurrency(p.Config.Concurrency),
			WithPanicPolicy(p.Config.PanicPolicy),
		)
	}
	return Result{
		Registrar: NewRegistrar(p.Loader, opts...),
		Static:    NewStaticRegistrar(),
	}
}

type lifecycleInput struct {
	fx.In
	LC        fx.Lifecycle
	Registrar *Registrar
}

func registerLifecycle(input lifecycleInput) {
	input.LC.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			logger.Debug("注册编排停止",
				"state", input.Registrar.State().String(),
				"failed", len(input.Registrar.Errors()))
			return nil
		},
	})
}

// ============================================================================
// 模块元信息
// ============================================================================

const (
	// Version 模块版本
	Version = "1.0.0"
	// Name 模块名称
	Name = "registration"
	// Description 模块描述
	Description = "模块注册编排，负责静态模块与远程模块的一次性注册"
)
