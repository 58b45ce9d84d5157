package federation

import (
	"sort"
	"sync"

	pkgif "github.com/dep2p/go-shell/pkg/interfaces"
)

// DefaultShareScope 默认共享作用域名称
const DefaultShareScope = "default"

// ShareScope 共享作用域
type ShareScope struct {
	name string

	mu      sync.RWMutex
	modules map[string][]pkgif.SharedModule
}

var _ pkgif.ShareScope = (*ShareScope)(nil)

func newShareScope(name string) *ShareScope {
	return &ShareScope{
		name:    name,
		modules: make(map[string][]pkgif.SharedModule),
	}
}

// Name 返回作用域名称
func (s *ShareScope) Name() string {
	return s.name
}

// Share 登记共享依赖，同一包的同一版本只登记一次
func (s *ShareScope) Share(pkg, version, from string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, m := range s.modules[pkg] {
		if m.Version == version {
			return false
		}
	}
	s.modules[pkg] = append(s.modules[pkg], pkgif.SharedModule{
		Package: pkg,
		Version: version,
		From:    from,
	})
	return true
}

// Lookup 返回依赖最先登记的版本
func (s *ShareScope) Lookup(pkg string) (pkgif.SharedModule, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	versions := s.modules[pkg]
	if len(versions) == 0 {
		return pkgif.SharedModule{}, false
	}
	return versions[0], true
}

// Modules 返回所有登记条目，按包名排序，同包按登记顺序
func (s *ShareScope) Modules() []pkgif.SharedModule {
	s.mu.RLock()
	defer s.mu.RUnlock()

	pkgs := make([]string, 0, len(s.modules))
	for pkg := range s.modules {
		pkgs = append(pkgs, pkg)
	}
	sort.Strings(pkgs)

	var out []pkgif.SharedModule
	for _, pkg := range pkgs {
		out = append(out, s.modules[pkg]...)
	}
	return out
}

// ShareScopes 命名共享作用域集合
type ShareScopes struct {
	mu     sync.Mutex
	scopes map[string]*ShareScope
}

// NewShareScopes 创建共享作用域集合
func NewShareScopes() *ShareScopes {
	return &ShareScopes{scopes: make(map[string]*ShareScope)}
}

// Init 初始化命名共享作用域
//
// 幂等：同名多次调用返回同一个作用域。
func (s *ShareScopes) Init(name string) *ShareScope {
	if name == "" {
		name = DefaultShareScope
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if scope, ok := s.scopes[name]; ok {
		return scope
	}
	scope := newShareScope(name)
	s.scopes[name] = scope
	return scope
}

// Get 返回已初始化的作用域
func (s *ShareScopes) Get(name string) (*ShareScope, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	scope, ok := s.scopes[name]
	return scope, ok
}
