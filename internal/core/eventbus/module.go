package eventbus

import (
	"context"

	"go.uber.org/fx"

	pkgif "github.com/dep2p/go-shell/pkg/interfaces"
)

// Module 返回事件总线 Fx 模块
//
// 同时提供 *Bus 与 pkgif.EventBus，二者是同一个实例。
// 停止时输出累计分发次数，不清理监听器：运行时在 Fx 停止后仍可被读取。
func Module() fx.Option {
	return fx.Module(Name,
		fx.Provide(
			NewBus,
			func(b *Bus) pkgif.EventBus { return b },
		),
		fx.Invoke(func(lc fx.Lifecycle, b *Bus) {
			lc.Append(fx.Hook{OnStop: func(context.Context) error {
				logger.Debug("事件总线停止", "dispatched", b.Dispatched(), "events", len(b.EventNames()))
				return nil
			}})
		}),
	)
}

// 模块元信息
const (
	Version     = "1.0.0"
	Name        = "eventbus"
	Description = "按名称分发的同步事件总线"
)
