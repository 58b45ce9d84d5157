package logging

import (
	pkgif "github.com/dep2p/go-shell/pkg/interfaces"
	"go.uber.org/fx"
)

// ============================================================================
// Fx 模块
// ============================================================================

// Params 模块输入参数
type Params struct {
	fx.In

	Sinks Sinks `optional:"true"`
}

// Result 模块输出结果
type Result struct {
	fx.Out

	Logger        pkgif.Logger
	RuntimeLogger *RuntimeLogger
}

// Module 返回 Fx 模块
func Module() fx.Option {
	return fx.Module("logging",
		fx.Provide(ProvideRuntimeLogger),
	)
}

// ProvideRuntimeLogger 提供日志扇出聚合
func ProvideRuntimeLogger(p Params) Result {
	l := NewRuntimeLogger(p.Sinks...)
	return Result{
		Logger:        l,
		RuntimeLogger: l,
	}
}

// ============================================================================
// 模块元信息
// ============================================================================

const (
	// Version 模块版本
	Version = "1.0.0"
	// Name 模块名称
	Name = "logging"
	// Description 模块描述
	Description = "运行时日志模块，把日志扇出到多个 Sink 并汇总失败"
)
