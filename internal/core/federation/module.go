package federation

import (
	"net/http"

	"github.com/benbjohnson/clock"
	"go.uber.org/fx"

	pkgif "github.com/dep2p/go-shell/pkg/interfaces"
)

// ============================================================================
// Fx 模块
// ============================================================================

// Module 返回 Fx 模块
func Module() fx.Option {
	return fx.Module("federation",
		fx.Provide(
			NewDocument,
			NewShareScopes,
			NewNamespace,
			ProvideLoader,
		),
	)
}

// LoaderParams 加载器依赖参数
type LoaderParams struct {
	fx.In

	Catalog   *ModuleCatalog
	Document  *Document
	Scopes    *ShareScopes
	Namespace *Namespace

	Config     *Config                 `optional:"true"`
	Runner     ScriptRunner            `optional:"true"`
	Resolver   pkgif.ContainerResolver `optional:"true"`
	HTTPClient *http.Client            `optional:"true"`
	Clock      clock.Clock             `optional:"true"`
	Observer   LoadObserver            `optional:"true"`
}

// LoaderResult 加载器输出
type LoaderResult struct {
	fx.Out

	Loader *Loader
}

// ProvideLoader 从依赖构建加载器
//
// 未注入 ScriptRunner 时使用 HTTPScriptRunner + ManifestEvaluator；
// 未注入 ContainerResolver 时使用命名空间。
func ProvideLoader(p LoaderParams) (LoaderResult, error) {
	cfg := p.Config
	if cfg == nil {
		cfg = DefaultConfig()
	}

	runner := p.Runner
	if runner == nil {
		eval, err := NewManifestEvaluator(p.Catalog, p.Namespace, cfg.ManifestCacheSize)
		if err != nil {
			return LoaderResult{}, err
		}
		runner = NewHTTPScriptRunner(eval, WithHTTPClient(p.HTTPClient), WithMaxEntrySize(cfg.MaxEntrySize))
	}

	var resolver pkgif.ContainerResolver = p.Namespace
	if p.Resolver != nil {
		resolver = p.Resolver
	}

	loader := NewLoader(runner, resolver,
		WithDocument(p.Document),
		WithShareScopes(p.Scopes),
		WithClock(p.Clock),
		WithTimeout(cfg.Timeout),
		WithShareScopeName(cfg.ShareScope),
		WithLoadObserver(p.Observer),
	)
	return LoaderResult{Loader: loader}, nil
}

// ============================================================================
// 模块元信息
// ============================================================================

const (
	// Version 模块版本
	Version = "1.0.0"
	// Name 模块名称
	Name = "federation"
	// Description 模块描述
	Description = "远程模块加载模块，实现脚本注入、共享作用域与容器协议"
)
