package main

import (
	pkgif "github.com/dep2p/go-shell/pkg/interfaces"
	"github.com/dep2p/go-shell/pkg/types"
)

// registerDemo 内置演示模块
//
// 注册一个提升的登录页、一个托管首页和两级导航。
func registerDemo(rt pkgif.Runtime, _ any) {
	rt.RegisterRoutes(
		&types.RootRoute{Route: types.Route{Path: "/login", Element: "LoginPage"}, Hoist: true},
		&types.RootRoute{Route: types.Route{Index: true, Element: "HomePage"}},
		&types.RootRoute{Route: types.Route{
			Path:    "/settings",
			Element: "SettingsPage",
			Children: []*types.Route{
				{Path: "profile", Element: "ProfilePage"},
			},
		}},
	)

	priority := 100
	rt.RegisterNavigationItems(
		&types.NavigationItem{To: "/", Content: "Home", Priority: &priority},
		&types.NavigationItem{
			To:      "/settings",
			Content: "Settings",
			Children: []*types.NavigationItem{
				{To: "/settings/profile", Content: "Profile"},
			},
		},
	)
}
