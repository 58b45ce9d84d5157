package federation

import (
	"sort"
	"sync"

	pkgif "github.com/dep2p/go-shell/pkg/interfaces"
)

// Namespace 容器命名空间
//
// 远程入口执行后把容器绑定到声明的名称上；重复绑定覆盖旧容器。
type Namespace struct {
	mu         sync.RWMutex
	containers map[string]pkgif.Container
}

var _ pkgif.ContainerResolver = (*Namespace)(nil)

// NewNamespace 创建命名空间
func NewNamespace() *Namespace {
	return &Namespace{containers: make(map[string]pkgif.Container)}
}

// Bind 绑定容器
func (n *Namespace) Bind(name string, c pkgif.Container) {
	n.mu.Lock()
	n.containers[name] = c
	n.mu.Unlock()
}

// Unbind 解除绑定
func (n *Namespace) Unbind(name string) {
	n.mu.Lock()
	delete(n.containers, name)
	n.mu.Unlock()
}

// Resolve 实现 pkgif.ContainerResolver
//
// 命名空间是全局的，容器只按名称查找，url 不参与匹配。
func (n *Namespace) Resolve(_ string, name string) (pkgif.Container, bool) {
	n.mu.RLock()
	defer n.mu.RUnlock()
	c, ok := n.containers[name]
	return c, ok && c != nil
}

// Names 返回已绑定的容器名（已排序）
func (n *Namespace) Names() []string {
	n.mu.RLock()
	defer n.mu.RUnlock()

	names := make([]string, 0, len(n.containers))
	for name := range n.containers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
