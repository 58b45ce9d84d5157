package federation

import (
	"errors"
	"fmt"
)

// ============================================================================
// 错误定义
// ============================================================================

var (
	// ErrScriptLoad 远程入口脚本加载失败
	ErrScriptLoad = errors.New("federation: remote script failed to load")
	// ErrScriptTimeout 远程入口脚本加载超时
	ErrScriptTimeout = errors.New("federation: remote script load timed out")
	// ErrContainerUnavailable 容器不存在
	ErrContainerUnavailable = errors.New("federation: container not available")
	// ErrContainerInit 容器初始化失败
	ErrContainerInit = errors.New("federation: container init failed")
	// ErrModuleUnavailable 暴露模块不存在
	ErrModuleUnavailable = errors.New("federation: module not available")
	// ErrFactoryFailed 模块工厂执行失败
	ErrFactoryFailed = errors.New("federation: module factory failed")
	// ErrInvalidManifest 远程入口清单无效
	ErrInvalidManifest = errors.New("federation: invalid remote entry manifest")
)

// Stage 加载阶段
type Stage string

const (
	// StageScript 脚本加载
	StageScript Stage = "script"
	// StageTimeout 脚本加载超时
	StageTimeout Stage = "timeout"
	// StageContainer 容器查找
	StageContainer Stage = "container"
	// StageInit 容器初始化
	StageInit Stage = "init"
	// StageModule 模块获取
	StageModule Stage = "module"
	// StageFactory 工厂调用
	StageFactory Stage = "factory"
)

// sentinel 返回阶段对应的哨兵错误
func (s Stage) sentinel() error {
	switch s {
	case StageScript:
		return ErrScriptLoad
	case StageTimeout:
		return ErrScriptTimeout
	case StageContainer:
		return ErrContainerUnavailable
	case StageInit:
		return ErrContainerInit
	case StageModule:
		return ErrModuleUnavailable
	case StageFactory:
		return ErrFactoryFailed
	default:
		return nil
	}
}

// LoadError 远程加载错误
type LoadError struct {
	Stage     Stage
	URL       string
	Container string
	Module    string
	Err       error
}

// Error 实现 error 接口
func (e *LoadError) Error() string {
	var msg string
	switch e.Stage {
	case StageScript:
		msg = fmt.Sprintf("An error occurred while loading remote %q", e.URL)
	case StageTimeout:
		msg = fmt.Sprintf("Remote %q timed out", e.URL)
	case StageContainer:
		msg = fmt.Sprintf("Container %q is not available for remote %q", e.Container, e.URL)
	case StageInit:
		msg = fmt.Sprintf("Container %q of remote %q failed to initialize", e.Container, e.URL)
	case StageModule:
		msg = fmt.Sprintf("Module %q is not available for container %q of remote %q", e.Module, e.Container, e.URL)
	case StageFactory:
		msg = fmt.Sprintf("Module %q of container %q failed to load", e.Module, e.Container)
	default:
		msg = fmt.Sprintf("remote %q failed", e.URL)
	}
	if e.Err != nil {
		return msg + ": " + e.Err.Error()
	}
	return msg
}

// Unwrap 返回底层错误
func (e *LoadError) Unwrap() error {
	return e.Err
}

// Is 使 errors.Is 可以按阶段哨兵错误匹配
func (e *LoadError) Is(target error) bool {
	return target != nil && target == e.Stage.sentinel()
}
