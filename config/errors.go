package config

import "errors"

var (
	// ErrInvalidConfig 无效配置
	ErrInvalidConfig = errors.New("config: invalid configuration")
	// ErrDuplicateRemote 远程模块名称重复
	ErrDuplicateRemote = errors.New("config: duplicate remote name")
)
