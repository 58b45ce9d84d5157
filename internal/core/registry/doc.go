// Package registry 实现只追加的不可变注册表
//
// 包含三个注册表：
//   - RouteRegistry          - 根路由（带 Hoist 标记）
//   - NavigationItemRegistry - 导航项
//   - ModuleRouteRegistry    - 底层模块路由
//
// # 不可变快照
//
// 每次 Add 都基于当前快照构造一个全新的切片，通过 atomic.Pointer 发布，
// 从不原地修改旧快照。写入侧对输入做深拷贝，读取侧再对快照做深拷贝，
// 因此调用方修改输入或返回值都不会影响注册表，也不会被其他读者观察到。
//
// nil 项在写入前被丢弃；注册表调用永不失败，也没有删除操作。
//
// # 并发安全
//
// 写入由互斥锁串行化，"读取当前快照 → 发布新快照" 是原子的，
// 并发 Add 不会丢失任何贡献。读取无锁。
package registry
