package interfaces

import "context"

// ============================================================================
//                              远程容器协议
// ============================================================================

// ModuleFactory 模块工厂，调用后返回模块导出
type ModuleFactory func() (any, error)

// Container 远程容器
//
// 远程入口加载完成后，容器以声明的名称出现在命名空间中。
type Container interface {
	// Init 使用共享作用域初始化容器
	Init(ctx context.Context, scope ShareScope) error

	// Get 获取暴露的模块工厂
	//
	// 模块不存在时返回 nil 工厂与 nil 错误。
	Get(ctx context.Context, module string) (ModuleFactory, error)
}

// ContainerResolver 容器解析器
//
// 替代全局命名空间上的动态查找，使核心逻辑可以脱离真实网络测试。
type ContainerResolver interface {
	// Resolve 按远程地址与容器名查找容器
	Resolve(url, name string) (Container, bool)
}

// ContainerResolverFunc 函数形式的 ContainerResolver
type ContainerResolverFunc func(url, name string) (Container, bool)

// Resolve 实现 ContainerResolver
func (f ContainerResolverFunc) Resolve(url, name string) (Container, bool) {
	return f(url, name)
}

// ============================================================================
//                              共享作用域
// ============================================================================

// SharedModule 共享依赖条目
type SharedModule struct {
	Package string `json:"package"`
	Version string `json:"version"`
	From    string `json:"from"`
}

// ShareScope 共享作用域
//
// 宿主与各远程模块约定复用而非重复加载的依赖版本集合。
type ShareScope interface {
	// Name 作用域名称，默认 "default"
	Name() string

	// Share 登记共享依赖，已存在同版本时返回 false
	Share(pkg, version, from string) bool

	// Lookup 返回依赖最先登记的版本
	Lookup(pkg string) (SharedModule, bool)

	// Modules 返回所有登记条目
	Modules() []SharedModule
}
