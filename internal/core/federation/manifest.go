package federation

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"sync/atomic"

	lru "github.com/hashicorp/golang-lru/v2"
	sha256 "github.com/minio/sha256-simd"

	pkgif "github.com/dep2p/go-shell/pkg/interfaces"
)

// DefaultManifestCacheSize 清单缓存默认容量
const DefaultManifestCacheSize = 64

// ============================================================================
//                              Manifest
// ============================================================================

// Manifest 远程入口清单
type Manifest struct {
	// Name 容器名称
	Name string `json:"name"`

	// Exposes 暴露模块名 → 模块目录 ID
	Exposes map[string]string `json:"exposes"`

	// Shared 共享依赖 → 版本
	Shared map[string]string `json:"shared,omitempty"`
}

// ParseManifest 解析远程入口清单
func ParseManifest(data []byte) (*Manifest, error) {
	var m Manifest
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidManifest, err)
	}
	if m.Name == "" {
		return nil, fmt.Errorf("%w: missing container name", ErrInvalidManifest)
	}
	return &m, nil
}

// ============================================================================
//                              ManifestEvaluator
// ============================================================================

// ManifestEvaluator 把清单解析为容器并绑定到命名空间
type ManifestEvaluator struct {
	catalog   *ModuleCatalog
	namespace *Namespace
	cache     *lru.Cache[[sha256.Size]byte, *Manifest]
}

var _ Evaluator = (*ManifestEvaluator)(nil)

// NewManifestEvaluator 创建清单执行器，cacheSize <= 0 时使用默认容量
func NewManifestEvaluator(catalog *ModuleCatalog, ns *Namespace, cacheSize int) (*ManifestEvaluator, error) {
	if cacheSize <= 0 {
		cacheSize = DefaultManifestCacheSize
	}
	cache, err := lru.New[[sha256.Size]byte, *Manifest](cacheSize)
	if err != nil {
		return nil, err
	}
	return &ManifestEvaluator{
		catalog:   catalog,
		namespace: ns,
		cache:     cache,
	}, nil
}

// Evaluate 实现 Evaluator
//
// 相同内容的清单只解析一次；每次执行都会重新绑定容器。
func (e *ManifestEvaluator) Evaluate(_ context.Context, el *ScriptElement, body []byte) error {
	key := sha256.Sum256(body)

	m, ok := e.cache.Get(key)
	if !ok {
		parsed, err := ParseManifest(body)
		if err != nil {
			return err
		}
		m = parsed
		e.cache.Add(key, m)
	}

	e.namespace.Bind(m.Name, newManifestContainer(m, e.catalog))
	logger.Debug("绑定远程容器", "container", m.Name, "src", el.Src, "exposes", len(m.Exposes))
	return nil
}

// CacheLen 返回缓存中的清单数量
func (e *ManifestEvaluator) CacheLen() int {
	return e.cache.Len()
}

// ============================================================================
//                              manifestContainer
// ============================================================================

// manifestContainer 由清单描述的容器
type manifestContainer struct {
	manifest    *Manifest
	catalog     *ModuleCatalog
	initialized atomic.Bool
}

var _ pkgif.Container = (*manifestContainer)(nil)

func newManifestContainer(m *Manifest, catalog *ModuleCatalog) *manifestContainer {
	return &manifestContainer{manifest: m, catalog: catalog}
}

// Init 把清单声明的共享依赖登记到作用域，只执行一次
func (c *manifestContainer) Init(_ context.Context, scope pkgif.ShareScope) error {
	if scope == nil {
		return fmt.Errorf("container %q: nil share scope", c.manifest.Name)
	}
	if !c.initialized.CompareAndSwap(false, true) {
		return nil
	}

	pkgs := make([]string, 0, len(c.manifest.Shared))
	for pkg := range c.manifest.Shared {
		pkgs = append(pkgs, pkg)
	}
	sort.Strings(pkgs)
	for _, pkg := range pkgs {
		scope.Share(pkg, c.manifest.Shared[pkg], c.manifest.Name)
	}
	return nil
}

// Get 返回暴露模块的工厂
func (c *manifestContainer) Get(_ context.Context, module string) (pkgif.ModuleFactory, error) {
	id, ok := c.manifest.Exposes[module]
	if !ok {
		return nil, nil
	}
	factory, ok := c.catalog.Lookup(id)
	if !ok {
		return nil, fmt.Errorf("exposed module %q refers to unknown catalog entry %q", module, id)
	}
	return factory, nil
}
