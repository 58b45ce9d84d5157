package federation

import (
	"sync"

	pkgif "github.com/dep2p/go-shell/pkg/interfaces"
)

// ModuleCatalog 编译期模块工厂目录
//
// 远程入口清单中 exposes 的值在这里解析为模块工厂。
type ModuleCatalog struct {
	mu        sync.RWMutex
	factories map[string]pkgif.ModuleFactory
}

// NewModuleCatalog 创建模块目录
func NewModuleCatalog() *ModuleCatalog {
	return &ModuleCatalog{factories: make(map[string]pkgif.ModuleFactory)}
}

// Provide 登记模块工厂，同 ID 覆盖
func (c *ModuleCatalog) Provide(id string, factory pkgif.ModuleFactory) {
	c.mu.Lock()
	c.factories[id] = factory
	c.mu.Unlock()
}

// ProvideRegister 登记一个只导出注册函数的模块
func (c *ModuleCatalog) ProvideRegister(id string, fn pkgif.ModuleRegisterFunc) {
	c.Provide(id, func() (any, error) {
		return pkgif.ModuleExports{Register: fn}, nil
	})
}

// Lookup 查找模块工厂
func (c *ModuleCatalog) Lookup(id string) (pkgif.ModuleFactory, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	f, ok := c.factories[id]
	return f, ok && f != nil
}
