package registration

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	pkgif "github.com/dep2p/go-shell/pkg/interfaces"
	"github.com/dep2p/go-shell/pkg/lib/log"
	"github.com/dep2p/go-shell/pkg/types"
)

var logger = log.Logger("core/registration")

// RemoteLoader 远程模块加载器
type RemoteLoader interface {
	LoadRemote(ctx context.Context, url, containerName, moduleName string) (any, error)
}

// StateObserver 状态迁移观察者
type StateObserver func(state types.RegistrationState)

// ============================================================================
//                              选项
// ============================================================================

// Option Registrar 选项
type Option func(*Registrar)

// WithConcurrency 限制同时处理的远程模块数量，<= 0 表示不限制
func WithConcurrency(n int) Option {
	return func(r *Registrar) {
		r.concurrency = n
	}
}

// WithPanicPolicy 设置 panic 策略
func WithPanicPolicy(p PanicPolicy) Option {
	return func(r *Registrar) {
		r.panicPolicy = p
	}
}

// WithStateObserver 设置状态迁移观察者
func WithStateObserver(o StateObserver) Option {
	return func(r *Registrar) {
		r.observer = o
	}
}

// ============================================================================
//                              Registrar
// ============================================================================

// Registrar 远程模块注册编排器
type Registrar struct {
	loader      RemoteLoader
	concurrency int
	panicPolicy PanicPolicy
	observer    StateObserver

	state atomic.Int32
	ready chan struct{}

	mu      sync.RWMutex
	errors  []*types.RemoteModuleRegistrationError
	attempt string
}

// NewRegistrar 创建远程模块注册编排器
func NewRegistrar(loader RemoteLoader, opts ...Option) *Registrar {
	r := &Registrar{
		loader: loader,
		ready:  make(chan struct{}),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// RegisterRemoteModules 并发加载并注册所有远程模块
//
// 返回每个失败远程模块的错误（按描述顺序）；只有重复调用时返回 error。
// 重复调用不会发起任何网络请求，也不会修改任何注册表。
func (r *Registrar) RegisterRemoteModules(ctx context.Context, remotes []types.RemoteDefinition, rt pkgif.Runtime, regCtx any) ([]*types.RemoteModuleRegistrationError, error) {
	if !r.state.CompareAndSwap(int32(types.StateNone), int32(types.StateInProgress)) {
		return nil, ErrRemoteModulesAlreadyRegistered
	}
	r.notify(types.StateInProgress)

	attempt := uuid.NewString()
	r.mu.Lock()
	r.attempt = attempt
	r.mu.Unlock()

	start := time.Now()
	logger.Info("开始注册远程模块", "attempt", attempt, "remotes", len(remotes), "concurrency", r.concurrency)

	results := make([]*types.RemoteModuleRegistrationError, len(remotes))
	panics := make([]any, len(remotes))

	g := new(errgroup.Group)
	if r.concurrency > 0 {
		g.SetLimit(r.concurrency)
	}
	for i, remote := range remotes {
		i, remote := i, remote
		g.Go(func() error {
			results[i], panics[i] = r.registerRemote(ctx, remote, rt, regCtx)
			return nil
		})
	}
	_ = g.Wait()

	errs := make([]*types.RemoteModuleRegistrationError, 0, len(results))
	for _, e := range results {
		if e != nil {
			errs = append(errs, e)
		}
	}

	r.mu.Lock()
	r.errors = errs
	r.mu.Unlock()

	r.state.Store(int32(types.StateReady))
	close(r.ready)
	r.notify(types.StateReady)

	logger.Info("远程模块注册完成",
		"attempt", attempt,
		"remotes", len(remotes),
		"failed", len(errs),
		"elapsed", time.Since(start))

	if r.panicPolicy == PanicPropagate {
		for _, p := range panics {
			if p != nil {
				panic(p)
			}
		}
	}

	return copyErrors(errs), nil
}

// registerRemote 处理单个远程模块
func (r *Registrar) registerRemote(ctx context.Context, remote types.RemoteDefinition, rt pkgif.Runtime, regCtx any) (regErr *types.RemoteModuleRegistrationError, panicked any) {
	remoteURL, err := ResolveEntryURL(remote.URL)
	if err != nil {
		remoteURL = remote.URL
	}
	fail := func(cause error) *types.RemoteModuleRegistrationError {
		logError(rt, fmt.Sprintf("[shell] An error occurred while registering module %q from container %q of remote %q", ModuleName, remote.Name, remoteURL), "error", cause)
		return &types.RemoteModuleRegistrationError{
			URL:           remoteURL,
			ContainerName: remote.Name,
			ModuleName:    ModuleName,
			Err:           cause,
		}
	}
	if err != nil {
		return fail(err), nil
	}

	defer func() {
		if p := recover(); p != nil {
			regErr = fail(fmt.Errorf("%w: %v", ErrRegisterPanicked, p))
			if r.panicPolicy == PanicPropagate {
				panicked = p
			}
		}
	}()

	debug(rt, fmt.Sprintf("[shell] Loading module %q from container %q of remote %q", ModuleName, remote.Name, remoteURL))

	exports, err := r.loader.LoadRemote(ctx, remoteURL, remote.Name, ModuleName)
	if err != nil {
		return fail(err), nil
	}

	register, ok := ResolveRegister(exports)
	if !ok {
		return fail(fmt.Errorf("%w for module %q of container %q from remote %q", ErrRegisterUnavailable, ModuleName, remote.Name, remoteURL)), nil
	}

	debug(rt, fmt.Sprintf("[shell] Registering module %q from container %q of remote %q", ModuleName, remote.Name, remoteURL))
	register(rt, regCtx)

	return nil, nil
}

func (r *Registrar) notify(state types.RegistrationState) {
	if r.observer != nil {
		r.observer(state)
	}
}

// ============================================================================
//                              状态查询
// ============================================================================

// State 返回当前注册状态
func (r *Registrar) State() types.RegistrationState {
	return types.RegistrationState(r.state.Load())
}

// IsReady 是否所有远程模块都已处理完成
func (r *Registrar) IsReady() bool {
	return r.State() == types.StateReady
}

// Ready 返回在状态进入 ready 时关闭的通道
func (r *Registrar) Ready() <-chan struct{} {
	return r.ready
}

// WaitReady 阻塞直到状态进入 ready 或 ctx 结束
func (r *Registrar) WaitReady(ctx context.Context) error {
	select {
	case <-r.ready:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Errors 返回最近一次注册的错误列表
func (r *Registrar) Errors() []*types.RemoteModuleRegistrationError {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return copyErrors(r.errors)
}

// Attempt 返回注册尝试 ID，未开始时为空
func (r *Registrar) Attempt() string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.attempt
}

func copyErrors(errs []*types.RemoteModuleRegistrationError) []*types.RemoteModuleRegistrationError {
	out := make([]*types.RemoteModuleRegistrationError, len(errs))
	copy(out, errs)
	return out
}
