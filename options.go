package shell

import (
	"errors"
	"net/http"

	"github.com/benbjohnson/clock"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/fx"

	"github.com/dep2p/go-shell/config"
	"github.com/dep2p/go-shell/internal/core/federation"
	pkgif "github.com/dep2p/go-shell/pkg/interfaces"
	"github.com/dep2p/go-shell/pkg/types"
)

// Option 外壳配置选项
type Option func(*options) error

// options 汇总所有选项
type options struct {
	config     *config.Config
	configFile string

	remotes  []types.RemoteDefinition
	loggers  []pkgif.Logger
	services map[string]any
	accessor pkgif.SessionAccessor

	catalog    *federation.ModuleCatalog
	runner     federation.ScriptRunner
	resolver   pkgif.ContainerResolver
	httpClient *http.Client
	clock      clock.Clock

	registry *prometheus.Registry

	wrapManaged  func(managed []*types.Route) *types.Route
	errorElement any

	fxOptions []fx.Option
}

func newOptions() *options {
	return &options{
		catalog:  federation.NewModuleCatalog(),
		services: make(map[string]any),
	}
}

// ════════════════════════════════════════════════════════════════════════════
//                              配置选项
// ════════════════════════════════════════════════════════════════════════════

// WithConfig 使用给定配置
//
// 配置会被深拷贝，之后对原配置的修改不影响外壳。
func WithConfig(cfg *config.Config) Option {
	return func(o *options) error {
		if cfg == nil {
			return errors.New("config cannot be nil")
		}
		o.config = config.CloneConfig(cfg)
		return nil
	}
}

// WithConfigFile 从 JSON 文件加载配置
func WithConfigFile(path string) Option {
	return func(o *options) error {
		if path == "" {
			return errors.New("config file path cannot be empty")
		}
		o.configFile = path
		return nil
	}
}

// ════════════════════════════════════════════════════════════════════════════
//                              运行时选项
// ════════════════════════════════════════════════════════════════════════════

// WithRemotes 设置远程模块列表，覆盖配置中的 Remotes
func WithRemotes(remotes ...types.RemoteDefinition) Option {
	return func(o *options) error {
		o.remotes = append(o.remotes[:0:0], remotes...)
		return nil
	}
}

// WithLoggers 追加运行时日志 Sink
func WithLoggers(loggers ...pkgif.Logger) Option {
	return func(o *options) error {
		for _, l := range loggers {
			if l != nil {
				o.loggers = append(o.loggers, l)
			}
		}
		return nil
	}
}

// WithService 注册一个命名服务
func WithService(name string, service any) Option {
	return func(o *options) error {
		if name == "" {
			return errors.New("service name cannot be empty")
		}
		o.services[name] = service
		return nil
	}
}

// WithServices 批量注册命名服务
func WithServices(services map[string]any) Option {
	return func(o *options) error {
		for name, svc := range services {
			o.services[name] = svc
		}
		return nil
	}
}

// WithSessionAccessor 设置会话访问器
//
// 设置后优先于内置会话管理器提供的访问器。
func WithSessionAccessor(accessor pkgif.SessionAccessor) Option {
	return func(o *options) error {
		o.accessor = accessor
		return nil
	}
}

// ════════════════════════════════════════════════════════════════════════════
//                              远程加载选项
// ════════════════════════════════════════════════════════════════════════════

// WithModule 在模块目录中登记一个注册函数
//
// 远程入口清单通过目录 ID 引用它，id 通常形如 "remote1/register"。
func WithModule(id string, register pkgif.ModuleRegisterFunc) Option {
	return func(o *options) error {
		if id == "" || register == nil {
			return errors.New("module id and register function are required")
		}
		o.catalog.ProvideRegister(id, register)
		return nil
	}
}

// WithModuleFactory 在模块目录中登记一个模块工厂
func WithModuleFactory(id string, factory pkgif.ModuleFactory) Option {
	return func(o *options) error {
		if id == "" || factory == nil {
			return errors.New("module id and factory are required")
		}
		o.catalog.Provide(id, factory)
		return nil
	}
}

// WithScriptRunner 替换远程脚本运行器
func WithScriptRunner(runner federation.ScriptRunner) Option {
	return func(o *options) error {
		o.runner = runner
		return nil
	}
}

// WithContainerResolver 替换容器解析器
func WithContainerResolver(resolver pkgif.ContainerResolver) Option {
	return func(o *options) error {
		o.resolver = resolver
		return nil
	}
}

// WithHTTPClient 设置拉取远程入口使用的 HTTP 客户端
func WithHTTPClient(client *http.Client) Option {
	return func(o *options) error {
		o.httpClient = client
		return nil
	}
}

// WithClock 设置加载超时使用的时钟
func WithClock(c clock.Clock) Option {
	return func(o *options) error {
		o.clock = c
		return nil
	}
}

// WithMetricsRegistry 设置指标注册表
//
// 未设置时外壳使用私有注册表，不会污染全局默认注册表。
func WithMetricsRegistry(reg *prometheus.Registry) Option {
	return func(o *options) error {
		o.registry = reg
		return nil
	}
}

// ════════════════════════════════════════════════════════════════════════════
//                              路由组合选项
// ════════════════════════════════════════════════════════════════════════════

// WithWrapManagedRoutes 设置托管路由包装函数
func WithWrapManagedRoutes(wrap func(managed []*types.Route) *types.Route) Option {
	return func(o *options) error {
		o.wrapManaged = wrap
		return nil
	}
}

// WithDefaultErrorElement 为未设置错误元素的路由补上默认值
func WithDefaultErrorElement(element any) Option {
	return func(o *options) error {
		o.errorElement = element
		return nil
	}
}

// WithHoistAllowList 设置允许提升的路径，覆盖配置中的列表
func WithHoistAllowList(paths ...string) Option {
	return func(o *options) error {
		cfg := o.ensureConfig()
		cfg.Routing.HoistAllowList = append([]string(nil), paths...)
		return nil
	}
}

// ════════════════════════════════════════════════════════════════════════════
//                              服务选项
// ════════════════════════════════════════════════════════════════════════════

// WithSession 启用内置会话管理器
func WithSession(enable bool) Option {
	return func(o *options) error {
		o.ensureConfig().Session.Enable = enable
		return nil
	}
}

// WithIntrospect 启用自省服务
//
// addr 为空时使用配置中的地址。
func WithIntrospect(addr string) Option {
	return func(o *options) error {
		cfg := o.ensureConfig()
		cfg.Introspect.Enable = true
		if addr != "" {
			cfg.Introspect.Addr = addr
		}
		return nil
	}
}

// WithFxOptions 追加额外的 Fx 选项
func WithFxOptions(opts ...fx.Option) Option {
	return func(o *options) error {
		o.fxOptions = append(o.fxOptions, opts...)
		return nil
	}
}

// ensureConfig 返回可修改的配置
func (o *options) ensureConfig() *config.Config {
	if o.config == nil {
		o.config = config.NewConfig()
	}
	return o.config
}

// resolveConfig 计算最终配置
//
// 配置文件优先于 WithConfig；WithHoistAllowList 等细粒度选项在
// 配置文件之前应用时会被文件覆盖。
func (o *options) resolveConfig() (*config.Config, error) {
	if o.configFile != "" {
		cfg, err := config.LoadFile(o.configFile)
		if err != nil {
			return nil, err
		}
		o.config = cfg
	}
	cfg := o.ensureConfig()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// resolveRemotes 计算远程模块列表
func (o *options) resolveRemotes(cfg *config.Config) []types.RemoteDefinition {
	if o.remotes != nil {
		return o.remotes
	}
	remotes := make([]types.RemoteDefinition, 0, len(cfg.Remotes))
	for _, r := range cfg.Remotes {
		remotes = append(remotes, types.RemoteDefinition{Name: r.Name, URL: r.URL})
	}
	return remotes
}
