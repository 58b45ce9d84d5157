package federation

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/benbjohnson/clock"

	pkgif "github.com/dep2p/go-shell/pkg/interfaces"
	"github.com/dep2p/go-shell/pkg/lib/log"
)

var logger = log.Logger("core/federation")

// DefaultTimeout 脚本加载默认超时
const DefaultTimeout = 2 * time.Second

// LoadObserver 加载结果观察者，err 为 nil 表示成功
type LoadObserver func(url, container string, err error, elapsed time.Duration)

// ============================================================================
//                              Loader
// ============================================================================

// Loader 远程模块加载器
type Loader struct {
	doc        *Document
	runner     ScriptRunner
	resolver   pkgif.ContainerResolver
	scopes     *ShareScopes
	clock      clock.Clock
	timeout    time.Duration
	shareScope string
	observer   LoadObserver
}

// LoaderOption 加载器选项
type LoaderOption func(*Loader)

// WithDocument 设置宿主文档
func WithDocument(doc *Document) LoaderOption {
	return func(l *Loader) {
		if doc != nil {
			l.doc = doc
		}
	}
}

// WithShareScopes 设置共享作用域集合
func WithShareScopes(scopes *ShareScopes) LoaderOption {
	return func(l *Loader) {
		if scopes != nil {
			l.scopes = scopes
		}
	}
}

// WithClock 设置时钟（测试使用 clock.NewMock()）
func WithClock(c clock.Clock) LoaderOption {
	return func(l *Loader) {
		if c != nil {
			l.clock = c
		}
	}
}

// WithTimeout 设置脚本加载超时，<= 0 时使用默认值
func WithTimeout(d time.Duration) LoaderOption {
	return func(l *Loader) {
		if d > 0 {
			l.timeout = d
		}
	}
}

// WithShareScopeName 设置共享作用域名称
func WithShareScopeName(name string) LoaderOption {
	return func(l *Loader) {
		if name != "" {
			l.shareScope = name
		}
	}
}

// WithLoadObserver 设置加载结果观察者
func WithLoadObserver(o LoadObserver) LoaderOption {
	return func(l *Loader) {
		l.observer = o
	}
}

// NewLoader 创建加载器
func NewLoader(runner ScriptRunner, resolver pkgif.ContainerResolver, opts ...LoaderOption) *Loader {
	l := &Loader{
		doc:        NewDocument(),
		runner:     runner,
		resolver:   resolver,
		scopes:     NewShareScopes(),
		clock:      clock.New(),
		timeout:    DefaultTimeout,
		shareScope: DefaultShareScope,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Document 返回宿主文档
func (l *Loader) Document() *Document {
	return l.doc
}

// ShareScopes 返回共享作用域集合
func (l *Loader) ShareScopes() *ShareScopes {
	return l.scopes
}

// Timeout 返回脚本加载超时
func (l *Loader) Timeout() time.Duration {
	return l.timeout
}

// LoadRemoteScript 加载远程入口脚本
//
// 插入脚本引用后同时启动计时器；计时器先触发时取消运行并返回超时错误。
// 无论结果如何，脚本引用都会被移除。
func (l *Loader) LoadRemoteScript(ctx context.Context, url string) error {
	el := l.doc.AppendScript(url)
	timer := l.clock.Timer(l.timeout)
	defer timer.Stop()
	defer l.doc.RemoveScript(el.ID)

	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	el.setState(ScriptLoading)
	done := make(chan error, 1)
	go func() {
		done <- l.runner.Run(runCtx, el)
	}()

	select {
	case err := <-done:
		if err != nil {
			el.setState(ScriptErrored)
			return &LoadError{Stage: StageScript, URL: url, Err: err}
		}
		el.setState(ScriptLoaded)
		return nil

	case <-timer.C:
		cancel()
		el.setState(ScriptTimedOut)
		return &LoadError{Stage: StageTimeout, URL: url, Err: fmt.Errorf("no response after %s", l.timeout)}

	case <-ctx.Done():
		el.setState(ScriptErrored)
		return &LoadError{Stage: StageScript, URL: url, Err: ctx.Err()}
	}
}

// LoadRemote 加载远程模块并返回其导出
func (l *Loader) LoadRemote(ctx context.Context, url, containerName, moduleName string) (exports any, err error) {
	start := l.clock.Now()
	defer func() {
		if l.observer != nil {
			l.observer(url, containerName, err, l.clock.Since(start))
		}
	}()

	if err := l.LoadRemoteScript(ctx, url); err != nil {
		var le *LoadError
		if errors.As(err, &le) {
			le.Container = containerName
			le.Module = moduleName
		}
		return nil, err
	}

	scope := l.scopes.Init(l.shareScope)

	fail := func(stage Stage, cause error) error {
		return &LoadError{Stage: stage, URL: url, Container: containerName, Module: moduleName, Err: cause}
	}

	container, ok := l.resolver.Resolve(url, containerName)
	if !ok || container == nil {
		return nil, fail(StageContainer, nil)
	}

	if err := container.Init(ctx, scope); err != nil {
		return nil, fail(StageInit, err)
	}

	factory, err := container.Get(ctx, moduleName)
	if err != nil {
		return nil, fail(StageModule, err)
	}
	if factory == nil {
		return nil, fail(StageModule, nil)
	}

	exports, err = factory()
	if err != nil {
		return nil, fail(StageFactory, err)
	}

	logger.Debug("远程模块加载完成", "container", containerName, "module", moduleName, "url", url)
	return exports, nil
}
