// Package lib 包含基础设施工具库
//
// 本目录包含与架构组件无关的通用工具库：
//
//   - log: 基于 slog 的组件日志封装，级别与格式由 SHELL_LOG_LEVEL / SHELL_LOG_FORMAT 控制
//
// # 与 pkg/ 其他目录的关系
//
// pkg/ 目录包含三类内容：
//
//   - interfaces/: 组件公共接口（架构核心）
//   - types/: 公共类型定义（架构核心）
//   - lib/: 基础设施工具库（本目录）
//
// # 使用示例
//
//	import "github.com/dep2p/go-shell/pkg/lib/log"
//
//	var logger = log.Logger("core/registration")
package lib
