// Package engine 定义存储引擎的内部扩展接口、错误与配置
//
// 公共基础接口见 pkg/interfaces.Engine；本包增加生命周期方法，
// 并提供一个基于 map 的内存实现。
package engine
