package registry

import (
	"fmt"
	"sync"
	"testing"

	"github.com/dep2p/go-shell/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rootRoute(path string) *types.RootRoute {
	return &types.RootRoute{Route: types.Route{Path: path}}
}

func routePaths(routes []*types.RootRoute) []string {
	paths := make([]string, len(routes))
	for i, r := range routes {
		paths[i] = r.Path
	}
	return paths
}

// ============================================================================
// RouteRegistry
// ============================================================================

// TestRouteRegistry_AddConcatenatesNonNil 测试追加并丢弃 nil
func TestRouteRegistry_AddConcatenatesNonNil(t *testing.T) {
	r := NewRouteRegistry()
	assert.Empty(t, r.Routes())

	assert.Equal(t, 2, r.Add(rootRoute("/a"), nil, rootRoute("/b")))
	assert.Equal(t, 0, r.Add())
	assert.Equal(t, 0, r.Add(nil))
	assert.Equal(t, 1, r.Add(rootRoute("/a")))

	assert.Equal(t, []string{"/a", "/b", "/a"}, routePaths(r.Routes()))
	assert.Equal(t, 3, r.Len())
	t.Log("✅ 追加与丢弃 nil 测试通过")
}

// TestRouteRegistry_ReturnedViewIsFrozen 测试返回值被修改不影响注册表
func TestRouteRegistry_ReturnedViewIsFrozen(t *testing.T) {
	r := NewRouteRegistry()
	r.Add(&types.RootRoute{
		Route: types.Route{
			Path:     "/a",
			Children: []*types.Route{{Path: "/a/child"}},
			Meta:     map[string]any{"title": "A"},
		},
	})

	view := r.Routes()
	view[0].Path = "/mutated"
	view[0].Children[0].Path = "/mutated/child"
	view[0].Meta["title"] = "mutated"
	view = append(view, rootRoute("/extra"))
	_ = view

	fresh := r.Routes()
	require.Len(t, fresh, 1)
	assert.Equal(t, "/a", fresh[0].Path)
	assert.Equal(t, "/a/child", fresh[0].Children[0].Path)
	assert.Equal(t, "A", fresh[0].Meta["title"])
}

// TestRouteRegistry_NestedMetaIsFrozen 测试修改返回视图中的嵌套元数据不影响后续读取
func TestRouteRegistry_NestedMetaIsFrozen(t *testing.T) {
	r := NewRouteRegistry()
	nested := map[string]any{"x": 1}
	r.Add(&types.RootRoute{Route: types.Route{
		Path: "/a",
		Meta: map[string]any{
			"nav":  nested,
			"tags": []any{"a", map[string]any{"k": "v"}},
		},
	}})

	// 调用方保留的原始嵌套对象也不能影响注册表
	nested["x"] = 3

	view := r.Routes()
	view[0].Meta["nav"].(map[string]any)["x"] = 2
	view[0].Meta["tags"].([]any)[0] = "mutated"
	view[0].Meta["tags"].([]any)[1].(map[string]any)["k"] = "mutated"

	fresh := r.Routes()[0].Meta
	assert.Equal(t, map[string]any{"x": 1}, fresh["nav"])
	assert.Equal(t, []any{"a", map[string]any{"k": "v"}}, fresh["tags"])
}

// TestNavigationItemRegistry_NestedPropsAreFrozen 测试导航项附加属性的嵌套值同样被复制
func TestNavigationItemRegistry_NestedPropsAreFrozen(t *testing.T) {
	r := NewNavigationItemRegistry()
	r.Add(&types.NavigationItem{
		To:              "/a",
		AdditionalProps: map[string]any{"badge": map[string]string{"color": "red"}},
	})

	r.Items()[0].AdditionalProps["badge"].(map[string]string)["color"] = "blue"

	assert.Equal(t, map[string]string{"color": "red"}, r.Items()[0].AdditionalProps["badge"])
}

// TestRouteRegistry_InputIsCopied 测试调用方修改输入不影响注册表
func TestRouteRegistry_InputIsCopied(t *testing.T) {
	r := NewRouteRegistry()
	in := rootRoute("/a")
	r.Add(in)
	in.Path = "/changed"
	in.Hoist = true

	got := r.Routes()[0]
	assert.Equal(t, "/a", got.Path)
	assert.False(t, got.Hoist)
}

// TestRouteRegistry_PreviousSnapshotUnchanged 测试旧快照不被原地修改
func TestRouteRegistry_PreviousSnapshotUnchanged(t *testing.T) {
	r := NewRouteRegistry()
	r.Add(rootRoute("/a"))
	before := r.list.load()

	r.Add(rootRoute("/b"))

	assert.Len(t, before, 1)
	assert.Len(t, r.list.load(), 2)
}

// TestRouteRegistry_ConcurrentAdd 测试并发追加不丢失贡献
func TestRouteRegistry_ConcurrentAdd(t *testing.T) {
	r := NewRouteRegistry()
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			r.Add(rootRoute(fmt.Sprintf("/r%d", i)), rootRoute(fmt.Sprintf("/r%d/b", i)))
			_ = r.Routes()
		}(i)
	}
	wg.Wait()

	routes := r.Routes()
	require.Len(t, routes, 100)

	// 同一次 Add 的两项保持相邻且有序
	for i := 0; i < len(routes); i += 2 {
		assert.Equal(t, routes[i].Path+"/b", routes[i+1].Path)
	}
}

// ============================================================================
// NavigationItemRegistry
// ============================================================================

// TestNavigationItemRegistry_Add 测试导航项追加
func TestNavigationItemRegistry_Add(t *testing.T) {
	r := NewNavigationItemRegistry()
	r.Add(&types.NavigationItem{To: "/a", Priority: types.Priority(5)}, nil)
	r.Add(&types.NavigationItem{
		To:       "/b",
		Children: []*types.NavigationItem{{To: "/b/1"}},
	})

	items := r.Items()
	require.Len(t, items, 2)
	assert.Equal(t, "/a", items[0].To)
	assert.Equal(t, 5, *items[0].Priority)
	assert.Equal(t, "/b/1", items[1].Children[0].To)

	*items[0].Priority = 99
	items[1].Children[0].To = "/mutated"
	again := r.Items()
	assert.Equal(t, 5, *again[0].Priority)
	assert.Equal(t, "/b/1", again[1].Children[0].To)
	assert.Equal(t, 2, r.Len())
}

// ============================================================================
// ModuleRouteRegistry
// ============================================================================

// TestModuleRouteRegistry_RegisterRoutes 测试模块路由注册
func TestModuleRouteRegistry_RegisterRoutes(t *testing.T) {
	r := NewModuleRouteRegistry()
	assert.Equal(t, 1, r.RegisterRoutes(nil, &types.Route{Path: "/x"}))
	assert.Equal(t, 1, r.RegisterRoutes(&types.Route{Path: "/x"}))

	routes := r.Routes()
	require.Len(t, routes, 2)
	assert.Equal(t, "/x", routes[1].Path)
	assert.NotSame(t, routes[0], r.Routes()[0])
	assert.Equal(t, 2, r.Len())
}

// TestModule_Provides 测试 Fx 提供
func TestModule_Provides(t *testing.T) {
	res := ProvideRegistries()
	assert.NotNil(t, res.Routes)
	assert.NotNil(t, res.NavigationItems)
	assert.NotNil(t, res.ModuleRoutes)
}
