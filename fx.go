package shell

import (
	"fmt"
	"os"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap"

	"github.com/dep2p/go-shell/config"
	"github.com/dep2p/go-shell/internal/core/eventbus"
	"github.com/dep2p/go-shell/internal/core/federation"
	"github.com/dep2p/go-shell/internal/core/logging"
	"github.com/dep2p/go-shell/internal/core/metrics"
	"github.com/dep2p/go-shell/internal/core/registration"
	"github.com/dep2p/go-shell/internal/core/registry"
	"github.com/dep2p/go-shell/internal/core/runtime"
	"github.com/dep2p/go-shell/internal/core/session"
	"github.com/dep2p/go-shell/internal/core/storage"
	"github.com/dep2p/go-shell/internal/debug/introspect"
	pkgif "github.com/dep2p/go-shell/pkg/interfaces"
	"github.com/dep2p/go-shell/pkg/lib/log"
	"github.com/dep2p/go-shell/pkg/types"
)

var fxLogger = log.Logger("shell/fx")

// buildFxApp 构建 Fx 应用
//
// 按层次组装模块：配置 → 运行时基础 → 远程加载 → 注册编排 → 可选服务。
// 可选模块根据配置条件加载。
func buildFxApp(cfg *config.Config, o *options, s *Shell) (*fx.App, error) {
	var modules []fx.Option

	// ════════════════════════════════════════════════════════════════════════
	// 1. 配置提供
	// ════════════════════════════════════════════════════════════════════════
	panicPolicy, err := registration.ParsePanicPolicy(cfg.Registration.PanicPolicy)
	if err != nil {
		return nil, err
	}
	modules = append(modules,
		fx.Supply(cfg),
		fx.Supply(&federation.Config{
			Timeout:           cfg.Loader.Timeout.Duration(),
			ShareScope:        cfg.Loader.ShareScope,
			ManifestCacheSize: cfg.Loader.ManifestCacheSize,
			MaxEntrySize:      cfg.Loader.MaxEntrySize,
		}),
		fx.Supply(&registration.Config{
			Concurrency: cfg.Loader.Concurrency,
			PanicPolicy: panicPolicy,
		}),
	)

	// ════════════════════════════════════════════════════════════════════════
	// 2. 注册表
	// ════════════════════════════════════════════════════════════════════════
	modules = append(modules, registry.Module())

	// ════════════════════════════════════════════════════════════════════════
	// 3. 日志扇出
	// ════════════════════════════════════════════════════════════════════════
	sinks, err := buildSinks(cfg.Log, o.loggers, s)
	if err != nil {
		return nil, err
	}
	modules = append(modules,
		fx.Supply(sinks),
		logging.Module(),
	)

	// ════════════════════════════════════════════════════════════════════════
	// 4. 事件总线
	// ════════════════════════════════════════════════════════════════════════
	modules = append(modules, eventbus.Module())

	// ════════════════════════════════════════════════════════════════════════
	// 5. 指标
	// ════════════════════════════════════════════════════════════════════════
	reg := o.registry
	if reg == nil {
		reg = prometheus.NewRegistry()
	}
	modules = append(modules,
		fx.Provide(func() prometheus.Registerer { return reg }),
		fx.Provide(func() prometheus.Gatherer { return reg }),
		metrics.Module,
		// 观测结果同时派发到事件总线
		fx.Decorate(dispatchLoadEvents),
		fx.Decorate(dispatchStateEvents),
	)

	// ════════════════════════════════════════════════════════════════════════
	// 6. 远程加载
	// ════════════════════════════════════════════════════════════════════════
	modules = append(modules,
		fx.Supply(o.catalog),
		federation.Module(),
	)
	if o.runner != nil {
		runner := o.runner
		modules = append(modules, fx.Provide(func() federation.ScriptRunner { return runner }))
	}
	if o.resolver != nil {
		resolver := o.resolver
		modules = append(modules, fx.Provide(func() pkgif.ContainerResolver { return resolver }))
	}
	if o.httpClient != nil {
		modules = append(modules, fx.Supply(o.httpClient))
	}
	if o.clock != nil {
		clk := o.clock
		modules = append(modules, fx.Provide(func() clock.Clock { return clk }))
	}

	// ════════════════════════════════════════════════════════════════════════
	// 7. 注册编排
	// ════════════════════════════════════════════════════════════════════════
	modules = append(modules,
		fx.Provide(func(l *federation.Loader) registration.RemoteLoader { return l }),
		registration.Module(),
	)

	// ════════════════════════════════════════════════════════════════════════
	// 8. 存储与会话（可选）
	// ════════════════════════════════════════════════════════════════════════
	if cfg.Session.Enable {
		modules = append(modules,
			fx.Supply(storageConfig(cfg.Storage)),
			storage.Module(),
			fx.Supply(&session.Config{Key: cfg.Session.Key}),
			session.Module(),
		)
	}
	if o.accessor != nil {
		accessor := o.accessor
		if cfg.Session.Enable {
			modules = append(modules, fx.Decorate(func(pkgif.SessionAccessor) pkgif.SessionAccessor { return accessor }))
		} else {
			modules = append(modules, fx.Provide(func() pkgif.SessionAccessor { return accessor }))
		}
	}

	// ════════════════════════════════════════════════════════════════════════
	// 9. 运行时门面
	// ════════════════════════════════════════════════════════════════════════
	modules = append(modules,
		fx.Supply(runtime.Services(o.services)),
		runtime.Module(),
	)

	// ════════════════════════════════════════════════════════════════════════
	// 10. 自省服务（可选）
	// ════════════════════════════════════════════════════════════════════════
	if cfg.Introspect.Enable {
		modules = append(modules,
			fx.Supply(&introspect.Config{Addr: cfg.Introspect.Addr}),
			fx.Provide(func() introspect.RouteSource { return s.HoistedRoutes }),
			introspect.Module(),
		)
	}

	// ════════════════════════════════════════════════════════════════════════
	// 11. 用户扩展
	// ════════════════════════════════════════════════════════════════════════
	modules = append(modules, o.fxOptions...)

	// ════════════════════════════════════════════════════════════════════════
	// 12. 组件注入
	// ════════════════════════════════════════════════════════════════════════
	modules = append(modules, fx.Invoke(injectShellComponents(s)))

	// ════════════════════════════════════════════════════════════════════════
	// 13. Fx 配置
	// ════════════════════════════════════════════════════════════════════════
	modules = append(modules,
		// 禁用 Fx 日志输出（避免干扰运行时日志）
		fx.WithLogger(func() fxevent.Logger {
			return &fxevent.ZapLogger{Logger: zap.NewNop()}
		}),
	)

	app := fx.New(modules...)
	if err := app.Err(); err != nil {
		fxLogger.Error("构建 Fx 应用失败", "error", err)
		return nil, err
	}
	return app, nil
}

// ════════════════════════════════════════════════════════════════════════════
// 配置转换辅助函数
// ════════════════════════════════════════════════════════════════════════════

// buildSinks 根据日志配置构建 Sink 列表
//
// 控制台 Sink 总是第一个，用户提供的 Sink 排在最后。
func buildSinks(cfg config.LogConfig, extra []pkgif.Logger, s *Shell) (logging.Sinks, error) {
	level, ok := logging.ParseLevel(cfg.Level)
	if !ok {
		level = logging.LevelInformation
	}

	console := log.New(os.Stderr, nil)
	if cfg.Format == "json" {
		console = log.NewJSON(os.Stderr, nil)
	}
	sinks := logging.Sinks{logging.NewSlogSink(console, level)}

	if cfg.Zap {
		zl, err := zap.NewProduction()
		if err != nil {
			return nil, fmt.Errorf("create zap logger: %w", err)
		}
		zs := logging.NewZapSink(zl, level)
		s.zapSink = zs
		sinks = append(sinks, zs)
	}

	if cfg.Memory > 0 {
		ms := logging.NewMemorySink(cfg.Memory)
		s.memorySink = ms
		sinks = append(sinks, ms)
	}

	return append(sinks, extra...), nil
}

// storageConfig 把存储配置转换为存储模块配置
func storageConfig(cfg config.StorageConfig) *storage.Config {
	sc := storage.DefaultConfig()
	if cfg.InMemory {
		sc.Backend = storage.BackendBadgerInMemory
		sc.Path = ""
	} else {
		sc.Backend = storage.BackendBadger
		sc.Path = cfg.DBPath()
	}
	return &sc
}

// dispatchLoadEvents 在指标观测之后派发远程加载事件
func dispatchLoadEvents(observe federation.LoadObserver, bus pkgif.EventBus) federation.LoadObserver {
	return func(url, container string, err error, elapsed time.Duration) {
		if observe != nil {
			observe(url, container, err, elapsed)
		}
		bus.Dispatch(EventRemoteLoaded, RemoteLoadedEvent{
			URL:       url,
			Container: container,
			Err:       err,
			Elapsed:   elapsed,
		})
	}
}

// dispatchStateEvents 在指标观测之后派发注册状态事件
func dispatchStateEvents(observe registration.StateObserver, bus pkgif.EventBus) registration.StateObserver {
	return func(state types.RegistrationState) {
		if observe != nil {
			observe(state)
		}
		bus.Dispatch(EventRegistrationStateChanged, state)
	}
}

// ════════════════════════════════════════════════════════════════════════════
// 组件注入
// ════════════════════════════════════════════════════════════════════════════

// shellInjectParams 外壳组件注入参数
type shellInjectParams struct {
	fx.In

	Runtime   *runtime.Runtime
	Bus       *eventbus.Bus
	Loader    *federation.Loader
	Registrar *registration.Registrar
	Static    *registration.StaticRegistrar
	Collector *metrics.Collector
	Gatherer  prometheus.Gatherer

	Session    *session.Manager[session.Data] `optional:"true"`
	Introspect *introspect.Server             `optional:"true"`
}

// injectShellComponents 创建外壳组件注入函数
func injectShellComponents(s *Shell) interface{} {
	return func(p shellInjectParams) {
		s.runtime = p.Runtime
		s.bus = p.Bus
		s.loader = p.Loader
		s.registrar = p.Registrar
		s.static = p.Static
		s.collector = p.Collector
		s.gatherer = p.Gatherer
		s.session = p.Session
		s.introspect = p.Introspect
		fxLogger.Debug("外壳组件注入完成",
			"session", p.Session != nil,
			"introspect", p.Introspect != nil)
	}
}
