package registration

import "errors"

var (
	// ErrStaticModulesAlreadyRegistered 静态模块已注册
	ErrStaticModulesAlreadyRegistered = errors.New("registration: static modules are already registered")
	// ErrRemoteModulesAlreadyRegistered 远程模块注册已开始或已完成
	ErrRemoteModulesAlreadyRegistered = errors.New("registration: remote modules are already registered")
	// ErrRegisterUnavailable 模块没有导出 register 函数
	ErrRegisterUnavailable = errors.New("registration: register function is not available")
	// ErrRegisterPanicked 注册函数 panic
	ErrRegisterPanicked = errors.New("registration: register function panicked")
	// ErrInvalidRemoteURL 远程地址无效
	ErrInvalidRemoteURL = errors.New("registration: invalid remote url")
)
