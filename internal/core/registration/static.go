package registration

import (
	"fmt"
	"sync/atomic"

	pkgif "github.com/dep2p/go-shell/pkg/interfaces"
)

// StaticRegistrar 静态模块注册器
type StaticRegistrar struct {
	registered atomic.Bool
}

// NewStaticRegistrar 创建静态模块注册器
func NewStaticRegistrar() *StaticRegistrar {
	return &StaticRegistrar{}
}

// RegisterStaticModules 按顺序调用静态模块的注册函数
//
// 第二次调用返回 ErrStaticModulesAlreadyRegistered 且不做任何事。
// 注册函数中的 panic 直接传播给调用方。
func (s *StaticRegistrar) RegisterStaticModules(fns []pkgif.ModuleRegisterFunc, rt pkgif.Runtime, context any) error {
	if !s.registered.CompareAndSwap(false, true) {
		return ErrStaticModulesAlreadyRegistered
	}

	total := len(fns)
	plural := ""
	if total > 1 {
		plural = "s"
	}
	info(rt, fmt.Sprintf("[shell] Found %d static module%s to register", total, plural))

	for i, fn := range fns {
		if fn == nil {
			continue
		}
		info(rt, fmt.Sprintf("[shell] %d/%d Registering static module", i+1, total))
		fn(rt, context)
		info(rt, fmt.Sprintf("[shell] %d/%d Registration completed", i+1, total))
	}
	return nil
}

// IsRegistered 是否已注册
func (s *StaticRegistrar) IsRegistered() bool {
	return s.registered.Load()
}

// info 通过运行时日志输出 Information 日志，失败只记录到组件日志
func info(rt pkgif.Runtime, msg string, args ...any) {
	if rt == nil || rt.Logger() == nil {
		logger.Info(msg, args...)
		return
	}
	if err := rt.Logger().Information(msg, args...); err != nil {
		logger.Warn("运行时日志写入失败", "error", err)
	}
}

// debug 通过运行时日志输出 Debug 日志
func debug(rt pkgif.Runtime, msg string, args ...any) {
	if rt == nil || rt.Logger() == nil {
		logger.Debug(msg, args...)
		return
	}
	if err := rt.Logger().Debug(msg, args...); err != nil {
		logger.Warn("运行时日志写入失败", "error", err)
	}
}

// logError 通过运行时日志输出 Error 日志
func logError(rt pkgif.Runtime, msg string, args ...any) {
	if rt == nil || rt.Logger() == nil {
		logger.Error(msg, args...)
		return
	}
	if err := rt.Logger().Error(msg, args...); err != nil {
		logger.Warn("运行时日志写入失败", "error", err)
	}
}
