// Package types 定义 go-shell 的公共数据结构
//
// 这是整个系统的最底层包，不依赖任何其他 go-shell 内部包。
// 所有类型都是纯数据类型，用于在注册表、编排器与渲染层之间传递数据。
//
// # 文件组织
//
//   - route.go       - Route, RootRoute 路由描述
//   - navigation.go  - NavigationItem 导航项描述
//   - remote.go      - RemoteDefinition, RemoteModuleRegistrationError
//   - enums.go       - RegistrationState 注册状态机
//   - clone.go       - 深拷贝辅助函数
//
// # 不可变约定
//
// 注册表对外只暴露快照副本。所有类型都提供 Clone() 深拷贝，
// 注册表在写入和读取两侧各做一次拷贝，因此任何调用方修改拿到的值，
// 都不会影响注册表内部状态，也不会被其他读者观察到。
//
// Element、Content 等字段是渲染层的不透明值，拷贝时按值复制引用。
package types
