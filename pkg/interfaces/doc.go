// Package interfaces 定义 go-shell 的公共接口
//
// 本包只包含接口与少量契约类型，实现位于 internal/core 下对应目录
// （一个接口文件 = 一个实现目录）：
//
//   - runtime.go    - Runtime 门面、模块注册函数契约
//   - logger.go     - 运行时日志接口（扇出聚合与各 Sink 共用）
//   - eventbus.go   - 按名称分发的事件总线
//   - federation.go - 远程容器协议（Container / ContainerResolver / ShareScope）
//   - storage.go    - 键值存储引擎（会话持久化使用）
//
// # 依赖方向
//
// pkg/interfaces 只依赖 pkg/types，被 internal/* 与根包依赖。
package interfaces
