package shell

import (
	"context"

	"github.com/dep2p/go-shell/internal/core/compose"
	pkgif "github.com/dep2p/go-shell/pkg/interfaces"
	"github.com/dep2p/go-shell/pkg/types"
)

// ════════════════════════════════════════════════════════════════════════════
//                              模块注册
// ════════════════════════════════════════════════════════════════════════════

// RegisterStaticModules 按顺序调用静态模块的注册函数
//
// 每个外壳只能调用一次，第二次调用返回 ErrStaticModulesAlreadyRegistered。
// 注册函数中的 panic 直接传播给调用方。
func (s *Shell) RegisterStaticModules(fns []pkgif.ModuleRegisterFunc, regCtx any) error {
	if err := s.checkOpen(); err != nil {
		return err
	}
	return s.static.RegisterStaticModules(fns, s.runtime, regCtx)
}

// RegisterRemoteModules 加载并注册远程模块
//
// 远程模块并发加载，单个模块失败只记录到返回的错误列表，
// 不影响其余模块。每个外壳只能调用一次，第二次调用返回
// ErrRemoteModulesAlreadyRegistered。
func (s *Shell) RegisterRemoteModules(ctx context.Context, regCtx any) ([]*types.RemoteModuleRegistrationError, error) {
	if err := s.checkOpen(); err != nil {
		return nil, err
	}
	remotes := s.opts.resolveRemotes(s.config)
	return s.registrar.RegisterRemoteModules(ctx, remotes, s.runtime, regCtx)
}

// RegistrationState 返回远程模块注册状态
func (s *Shell) RegistrationState() types.RegistrationState {
	return s.registrar.State()
}

// RegistrationErrors 返回远程模块注册错误的副本
func (s *Shell) RegistrationErrors() []*types.RemoteModuleRegistrationError {
	return s.registrar.Errors()
}

// IsReady 远程模块是否已全部处理完成
func (s *Shell) IsReady() bool {
	return s.registrar.IsReady()
}

// WaitReady 阻塞直到远程模块注册完成或 ctx 结束
func (s *Shell) WaitReady(ctx context.Context) error {
	return s.registrar.WaitReady(ctx)
}

// ════════════════════════════════════════════════════════════════════════════
//                              路由与导航组合
// ════════════════════════════════════════════════════════════════════════════

// HoistedRoutes 返回提升后的路由表
//
// 结果是已注册根路由的深拷贝：提升路由在前，托管路由（或其包装节点）在后。
// 配置了允许列表时，提升列表外路径的模块会导致返回错误。
func (s *Shell) HoistedRoutes() ([]*types.Route, error) {
	routes, err := compose.HoistRoutes(s.runtime.Routes(), compose.HoistOptions{
		WrapManagedRoutes: s.opts.wrapManaged,
		AllowedPaths:      s.config.Routing.HoistAllowList,
	})
	if err != nil {
		return nil, err
	}
	if s.opts.errorElement != nil {
		routes = compose.ApplyDefaultErrorElement(routes, s.opts.errorElement)
	}
	return routes, nil
}

// NavigationItems 返回按优先级排序的导航项
func (s *Shell) NavigationItems() []*types.NavigationItem {
	return compose.SortNavigationItems(s.runtime.NavigationItems())
}

// RenderNavigation 把已注册的导航项渲染为元素树
func (s *Shell) RenderNavigation() compose.Element {
	return compose.RenderElementTree(s.runtime.NavigationItems())
}
