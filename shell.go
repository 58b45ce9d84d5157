package shell

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/fx"

	"github.com/dep2p/go-shell/config"
	"github.com/dep2p/go-shell/internal/core/eventbus"
	"github.com/dep2p/go-shell/internal/core/federation"
	"github.com/dep2p/go-shell/internal/core/logging"
	"github.com/dep2p/go-shell/internal/core/metrics"
	"github.com/dep2p/go-shell/internal/core/registration"
	"github.com/dep2p/go-shell/internal/core/runtime"
	"github.com/dep2p/go-shell/internal/core/session"
	"github.com/dep2p/go-shell/internal/debug/introspect"
	pkgif "github.com/dep2p/go-shell/pkg/interfaces"
	"github.com/dep2p/go-shell/pkg/lib/log"
)

var logger = log.Logger("shell")

// ════════════════════════════════════════════════════════════════════════════
//                              外壳事件
// ════════════════════════════════════════════════════════════════════════════

const (
	// EventRemoteLoaded 远程模块加载结束（成功或失败），数据为 RemoteLoadedEvent
	EventRemoteLoaded = "shell:remote-loaded"

	// EventRegistrationStateChanged 远程注册状态变化，数据为 types.RegistrationState
	EventRegistrationStateChanged = "shell:registration-state-changed"
)

// RemoteLoadedEvent 远程加载事件数据
type RemoteLoadedEvent struct {
	URL       string
	Container string
	Err       error
	Elapsed   time.Duration
}

// ════════════════════════════════════════════════════════════════════════════
//                              外壳状态
// ════════════════════════════════════════════════════════════════════════════

// ShellState 外壳状态
type ShellState int

const (
	// StateIdle 空闲状态（已创建未启动）
	StateIdle ShellState = iota
	// StateStarting 正在启动
	StateStarting
	// StateRunning 运行中
	StateRunning
	// StateStopping 正在停止
	StateStopping
	// StateStopped 已停止
	StateStopped
)

// String 返回状态字符串
func (s ShellState) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateStarting:
		return "starting"
	case StateRunning:
		return "running"
	case StateStopping:
		return "stopping"
	case StateStopped:
		return "stopped"
	default:
		return fmt.Sprintf("unknown(%d)", s)
	}
}

// ════════════════════════════════════════════════════════════════════════════
//                              Shell 结构
// ════════════════════════════════════════════════════════════════════════════

// Shell 微前端外壳
//
// Shell 是用户交互的主入口，内部由 Fx 组装运行时、远程加载器、
// 注册编排器以及可选的会话与自省服务。
//
// 注册与组合 API 在 New 之后即可使用；Start 启动生命周期组件
// （存储引擎、自省服务）。
type Shell struct {
	config *config.Config
	opts   *options
	app    *fx.App

	// 核心组件（由 Fx 注入）
	runtime   *runtime.Runtime
	bus       *eventbus.Bus
	loader    *federation.Loader
	registrar *registration.Registrar
	static    *registration.StaticRegistrar
	collector *metrics.Collector
	gatherer  prometheus.Gatherer

	// 可选组件
	session    *session.Manager[session.Data]
	introspect *introspect.Server
	zapSink    *logging.ZapSink
	memorySink *logging.MemorySink

	mu      sync.RWMutex
	state   ShellState
	started bool
	closed  bool
}

// New 创建新外壳（不启动）
//
// 创建外壳但不启动，需要调用 Start() 启动生命周期组件。
// 远程模块列表来自配置的 Remotes，可被 WithRemotes 覆盖。
func New(_ context.Context, opts ...Option) (*Shell, error) {
	o := newOptions()
	for _, opt := range opts {
		if err := opt(o); err != nil {
			return nil, fmt.Errorf("apply option: %w", err)
		}
	}

	cfg, err := o.resolveConfig()
	if err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	s := &Shell{
		config: cfg,
		opts:   o,
		state:  StateIdle,
	}

	app, err := buildFxApp(cfg, o, s)
	if err != nil {
		return nil, fmt.Errorf("build fx app: %w", err)
	}
	s.app = app

	logger.Debug("外壳已创建",
		"remotes", len(o.resolveRemotes(cfg)),
		"session", cfg.Session.Enable,
		"introspect", cfg.Introspect.Enable)
	return s, nil
}

// Start 创建并启动外壳
//
// 这是 New() + shell.Start() 的便捷方法。
func Start(ctx context.Context, opts ...Option) (*Shell, error) {
	s, err := New(ctx, opts...)
	if err != nil {
		return nil, err
	}
	if err := s.Start(ctx); err != nil {
		_ = s.Close()
		return nil, err
	}
	return s, nil
}

// ════════════════════════════════════════════════════════════════════════════
//                              生命周期
// ════════════════════════════════════════════════════════════════════════════

const (
	// startTimeout Fx 应用启动超时
	startTimeout = 30 * time.Second

	// closeTimeout 关闭时停止 Fx 应用的超时
	closeTimeout = 30 * time.Second
)

// Start 启动外壳
func (s *Shell) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return ErrShellClosed
	}
	if s.started {
		return ErrAlreadyStarted
	}

	s.state = StateStarting
	logger.Info("正在启动外壳")

	startCtx, cancel := context.WithTimeout(ctx, startTimeout)
	defer cancel()

	if err := s.app.Start(startCtx); err != nil {
		s.state = StateIdle
		logger.Error("外壳启动失败", "error", err)
		return fmt.Errorf("start failed: %w", err)
	}

	s.state = StateRunning
	s.started = true
	logger.Info("外壳已启动")
	return nil
}

// Stop 停止外壳
func (s *Shell) Stop(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return ErrShellClosed
	}
	if !s.started {
		return ErrNotStarted
	}

	s.state = StateStopping
	logger.Info("正在停止外壳")

	err := s.app.Stop(ctx)
	s.state = StateStopped
	s.started = false
	if err != nil {
		logger.Error("停止外壳失败", "error", err)
		return fmt.Errorf("stop fx app: %w", err)
	}
	logger.Info("外壳已停止")
	return nil
}

// Close 关闭外壳并释放所有资源，重复调用返回 nil
func (s *Shell) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return nil
	}

	if s.started {
		s.state = StateStopping
		ctx, cancel := context.WithTimeout(context.Background(), closeTimeout)
		defer cancel()
		if err := s.app.Stop(ctx); err != nil {
			logger.Warn("停止 Fx 应用失败", "error", err)
		}
	}
	if s.zapSink != nil {
		_ = s.zapSink.Sync()
	}

	s.state = StateStopped
	s.started = false
	s.closed = true
	logger.Info("外壳已关闭")
	return nil
}

// State 返回外壳状态
func (s *Shell) State() ShellState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// IsRunning 外壳是否运行中
func (s *Shell) IsRunning() bool {
	return s.State() == StateRunning
}

// checkOpen 确认外壳未关闭
func (s *Shell) checkOpen() error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.closed {
		return ErrShellClosed
	}
	return nil
}

// ════════════════════════════════════════════════════════════════════════════
//                              访问器
// ════════════════════════════════════════════════════════════════════════════

// Config 返回外壳配置的副本
func (s *Shell) Config() *config.Config {
	return config.CloneConfig(s.config)
}

// Runtime 返回运行时门面
func (s *Shell) Runtime() pkgif.Runtime {
	return s.runtime
}

// EventBus 返回事件总线
func (s *Shell) EventBus() pkgif.EventBus {
	return s.bus
}

// Document 返回远程脚本文档
func (s *Shell) Document() *federation.Document {
	return s.loader.Document()
}

// ShareScopes 返回共享作用域集合
func (s *Shell) ShareScopes() *federation.ShareScopes {
	return s.loader.ShareScopes()
}

// Gatherer 返回指标收集器
func (s *Shell) Gatherer() prometheus.Gatherer {
	return s.gatherer
}

// Session 返回内置会话管理器
func (s *Shell) Session() (*session.Manager[session.Data], error) {
	if s.session == nil {
		return nil, ErrSessionDisabled
	}
	return s.session, nil
}

// LogEntries 返回内存日志 Sink 保留的条目，未启用时返回 nil
func (s *Shell) LogEntries() []logging.Entry {
	if s.memorySink == nil {
		return nil
	}
	return s.memorySink.Entries()
}

// IntrospectAddr 返回自省服务的实际监听地址，未启用时返回空字符串
func (s *Shell) IntrospectAddr() string {
	if s.introspect == nil {
		return ""
	}
	return s.introspect.Addr()
}
