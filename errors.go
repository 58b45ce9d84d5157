package shell

import (
	"errors"

	"github.com/dep2p/go-shell/config"
	"github.com/dep2p/go-shell/internal/core/registration"
	"github.com/dep2p/go-shell/internal/core/runtime"
)

// 公共错误定义
var (
	// ────────────────────────────────────────────────────────────────────────
	// 外壳生命周期错误
	// ────────────────────────────────────────────────────────────────────────

	// ErrNotStarted 外壳未启动
	ErrNotStarted = errors.New("shell not started")

	// ErrAlreadyStarted 外壳已启动
	ErrAlreadyStarted = errors.New("shell already started")

	// ErrShellClosed 外壳已关闭
	ErrShellClosed = errors.New("shell closed")

	// ────────────────────────────────────────────────────────────────────────
	// 注册相关错误
	// ────────────────────────────────────────────────────────────────────────

	// ErrStaticModulesAlreadyRegistered 静态模块已注册
	ErrStaticModulesAlreadyRegistered = registration.ErrStaticModulesAlreadyRegistered

	// ErrRemoteModulesAlreadyRegistered 远程模块注册已开始或已完成
	ErrRemoteModulesAlreadyRegistered = registration.ErrRemoteModulesAlreadyRegistered

	// ────────────────────────────────────────────────────────────────────────
	// 会话与配置错误
	// ────────────────────────────────────────────────────────────────────────

	// ErrSessionDisabled 会话管理器未启用
	ErrSessionDisabled = errors.New("session manager is disabled")

	// ErrNoSessionAccessor 运行时未配置会话访问器
	ErrNoSessionAccessor = runtime.ErrNoSessionAccessor

	// ErrInvalidConfig 无效配置
	ErrInvalidConfig = config.ErrInvalidConfig
)
