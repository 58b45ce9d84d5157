// Package compose 实现路由提升与导航渲染两个纯函数变换
//
// # 路由提升
//
// HoistRoutes 把根路由划分为"提升"与"托管"两组（组内保持相对顺序），
// 提升的路由排在最前；托管路由可以通过包装函数合并为一个节点，
// 用于注入宿主的公共布局。提供允许列表时，提升路由及其所有子路由的路径
// 都必须在列表中，否则返回 *HoistError。
//
// # 导航渲染
//
// RenderNavigationItems 按优先级稳定排序顶层导航项，逐层调用渲染回调，
// 子树渲染结果通过 Composable.WithChildren 合并进父节点。
// 相同输入与回调总是产生结构相同的输出，输入不会被修改。
package compose
