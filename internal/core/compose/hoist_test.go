package compose

import (
	"testing"

	"github.com/dep2p/go-shell/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func root(path string, hoist bool, children ...*types.Route) *types.RootRoute {
	return &types.RootRoute{Route: types.Route{Path: path, Children: children}, Hoist: hoist}
}

func paths(routes []*types.Route) []string {
	out := make([]string, len(routes))
	for i, r := range routes {
		out[i] = r.Path
	}
	return out
}

// TestHoistRoutes_HoistedFirst 测试提升路由排在最前且保持相对顺序
func TestHoistRoutes_HoistedFirst(t *testing.T) {
	routes := []*types.RootRoute{
		root("/m1", false),
		root("/h1", true),
		nil,
		root("/m2", false),
		root("/h2", true),
	}

	out, err := HoistRoutes(routes, HoistOptions{})
	require.NoError(t, err)
	assert.Equal(t, []string{"/h1", "/h2", "/m1", "/m2"}, paths(out))
	t.Log("✅ 提升路由排序测试通过")
}

// TestHoistRoutes_WrapManaged 测试托管路由包装
func TestHoistRoutes_WrapManaged(t *testing.T) {
	routes := []*types.RootRoute{root("/m1", false), root("/h1", true), root("/m2", false)}

	var wrappedArg []*types.Route
	out, err := HoistRoutes(routes, HoistOptions{
		WrapManagedRoutes: func(managed []*types.Route) *types.Route {
			wrappedArg = managed
			return &types.Route{Path: "/", Element: "layout", Children: managed}
		},
	})
	require.NoError(t, err)

	require.Len(t, out, 2)
	assert.Equal(t, "/h1", out[0].Path)
	assert.Equal(t, "/", out[1].Path)
	assert.Equal(t, "layout", out[1].Element)
	assert.Equal(t, []string{"/m1", "/m2"}, paths(out[1].Children))
	assert.Equal(t, []string{"/m1", "/m2"}, paths(wrappedArg))
}

// TestHoistRoutes_AllowList 测试允许列表
func TestHoistRoutes_AllowList(t *testing.T) {
	routes := []*types.RootRoute{
		root("/login", true, &types.Route{Path: "/login/help"}, &types.Route{Path: "/login/secret"}),
		root("/managed-not-checked", false),
		root("/admin", true),
	}

	_, err := HoistRoutes(routes, HoistOptions{AllowedPaths: []string{"/login", "/login/help"}})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrForbiddenHoistedPath)

	var hoistErr *HoistError
	require.ErrorAs(t, err, &hoistErr)
	assert.Equal(t, []string{"/login/secret", "/admin"}, hoistErr.Paths)
	assert.Contains(t, err.Error(), "/login/secret")

	out, err := HoistRoutes(routes, HoistOptions{
		AllowedPaths: []string{"/login", "/login/help", "/login/secret", "/admin"},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"/login", "/admin", "/managed-not-checked"}, paths(out))
}

// TestHoistRoutes_DoesNotMutateInput 测试输入不被修改
func TestHoistRoutes_DoesNotMutateInput(t *testing.T) {
	in := root("/h", true, &types.Route{Path: "/h/c"})
	out, err := HoistRoutes([]*types.RootRoute{in}, HoistOptions{})
	require.NoError(t, err)

	out[0].Children[0].Path = "/changed"
	assert.Equal(t, "/h/c", in.Children[0].Path)
	assert.True(t, in.Hoist)
}

// TestApplyDefaultErrorElement 测试默认错误元素
func TestApplyDefaultErrorElement(t *testing.T) {
	routes := []*types.Route{
		{Path: "/a", Children: []*types.Route{{Path: "/a/b"}}},
		{Path: "/c", ErrorElement: "custom"},
		nil,
	}

	out := ApplyDefaultErrorElement(routes, "fallback")
	require.Len(t, out, 2)
	assert.Equal(t, "fallback", out[0].ErrorElement)
	assert.Equal(t, "fallback", out[0].Children[0].ErrorElement)
	assert.Equal(t, "custom", out[1].ErrorElement)
	assert.Nil(t, routes[0].ErrorElement)
}
