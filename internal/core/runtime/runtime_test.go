package runtime

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx"

	"github.com/dep2p/go-shell/internal/core/eventbus"
	"github.com/dep2p/go-shell/internal/core/logging"
	"github.com/dep2p/go-shell/internal/core/registry"
	pkgif "github.com/dep2p/go-shell/pkg/interfaces"
	"github.com/dep2p/go-shell/pkg/types"
)

func TestRuntime_RegisterRoutes(t *testing.T) {
	sink := logging.NewMemorySink(16)
	rt := New(Config{Loggers: []pkgif.Logger{sink}})

	rt.RegisterRoutes(
		&types.RootRoute{Route: types.Route{Path: "/a"}},
		nil,
		&types.RootRoute{Route: types.Route{Path: "/b"}, Hoist: true},
	)

	routes := rt.Routes()
	require.Len(t, routes, 2)
	assert.Equal(t, "/a", routes[0].Path)
	assert.True(t, routes[1].Hoist)

	entries := sink.Entries()
	require.Len(t, entries, 2)
	assert.Equal(t, logging.LevelDebug.String(), entries[0].Level)
	assert.Contains(t, entries[0].Message, `"/a"`)

	t.Log("✅ 根路由注册测试通过")
}

func TestRuntime_RoutesAreSnapshots(t *testing.T) {
	rt := New(Config{})
	rt.RegisterRoutes(&types.RootRoute{Route: types.Route{Path: "/a"}})

	first := rt.Routes()
	first[0].Path = "/mutated"

	assert.Equal(t, "/a", rt.Routes()[0].Path)

	t.Log("✅ 路由快照隔离测试通过")
}

func TestRuntime_NavigationItems(t *testing.T) {
	rt := New(Config{})
	rt.RegisterNavigationItems(
		&types.NavigationItem{To: "/home", Content: "Home"},
		&types.NavigationItem{To: "/about", Content: "About", Priority: types.Priority(1)},
	)

	items := rt.NavigationItems()
	require.Len(t, items, 2)
	assert.Equal(t, "/home", items[0].To)
	assert.Equal(t, 1, *items[1].Priority)

	t.Log("✅ 导航项注册测试通过")
}

func TestRuntime_ModuleRoutes(t *testing.T) {
	rt := New(Config{})
	rt.RegisterModuleRoutes(&types.Route{Path: "/x"}, &types.Route{Path: "/y"})

	got := rt.ModuleRoutes()
	require.Len(t, got, 2)
	assert.Equal(t, "/y", got[1].Path)

	t.Log("✅ 模块路由注册测试通过")
}

func TestRuntime_Services(t *testing.T) {
	services := map[string]any{"api": 42}
	rt := New(Config{Services: services})

	services["api"] = 0
	services["late"] = "x"

	assert.Equal(t, 42, rt.GetService("api"))
	assert.Nil(t, rt.GetService("late"))
	assert.Nil(t, rt.GetService("missing"))

	n, ok := ServiceAs[int](rt, "api")
	assert.True(t, ok)
	assert.Equal(t, 42, n)

	_, ok = ServiceAs[string](rt, "api")
	assert.False(t, ok)

	t.Log("✅ 服务表测试通过")
}

func TestRuntime_Session(t *testing.T) {
	t.Run("无访问器", func(t *testing.T) {
		rt := New(Config{})
		_, err := rt.GetSession()
		assert.ErrorIs(t, err, ErrNoSessionAccessor)
	})

	t.Run("访问器结果", func(t *testing.T) {
		type session struct{ User string }
		rt := New(Config{SessionAccessor: func() (any, error) {
			return &session{User: "ada"}, nil
		}})

		s, err := SessionAs[*session](rt)
		require.NoError(t, err)
		assert.Equal(t, "ada", s.User)

		_, err = SessionAs[string](rt)
		assert.ErrorIs(t, err, ErrSessionType)
	})

	t.Run("访问器错误透传", func(t *testing.T) {
		boom := errors.New("boom")
		rt := New(Config{SessionAccessor: func() (any, error) { return nil, boom }})
		_, err := rt.GetSession()
		assert.ErrorIs(t, err, boom)
	})

	t.Log("✅ 会话访问测试通过")
}

func TestRuntime_EventBus(t *testing.T) {
	rt := New(Config{})

	var got any
	l := pkgif.NewListener(func(data any) { got = data })
	rt.EventBus().AddListener("ping", l, pkgif.ListenerOptions{})
	rt.EventBus().Dispatch("ping", "pong")

	assert.Equal(t, "pong", got)

	t.Log("✅ 事件总线访问测试通过")
}

func TestModule_Load(t *testing.T) {
	var rt pkgif.Runtime

	app := fx.New(
		fx.NopLogger,
		registry.Module(),
		logging.Module(),
		eventbus.Module(),
		fx.Supply(Services{"api": "client"}),
		Module(),
		fx.Populate(&rt),
	)
	require.NoError(t, app.Err())

	assert.Equal(t, "client", rt.GetService("api"))
	_, err := rt.GetSession()
	assert.ErrorIs(t, err, ErrNoSessionAccessor)

	t.Log("✅ Fx 模块加载测试通过")
}
