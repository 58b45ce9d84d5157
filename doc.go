// Package shell 提供微前端组合运行时
//
// Shell 把若干独立构建的功能模块组合成一个应用：静态模块在进程内
// 直接注册，远程模块在运行时从远程入口加载，然后调用各自的注册函数
// 向运行时贡献路由与导航项。
//
// # 核心概念
//
//   - Runtime: 组合根，持有路由注册表、导航项注册表、日志扇出、事件总线、服务表与会话
//   - Registration: 静态模块与远程模块的一次性注册编排
//   - Composition: 路由提升与导航项渲染
//
// # 快速开始
//
//	import "github.com/dep2p/go-shell"
//
//	// 1. 创建并启动外壳
//	s, err := shell.Start(ctx,
//	    shell.WithRemotes(types.RemoteDefinition{Name: "remote1", URL: "http://localhost:8081"}),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer s.Close()
//
//	// 2. 注册静态模块
//	_ = s.RegisterStaticModules([]pkgif.ModuleRegisterFunc{registerLocal}, nil)
//
//	// 3. 注册远程模块，失败不会中断其余模块
//	errs, _ := s.RegisterRemoteModules(ctx, nil)
//
//	// 4. 组合路由与导航
//	routes, err := s.HoistedRoutes()
//	nav := s.RenderNavigation()
//
// # API 层次结构
//
//	┌─────────────────────────────────────────────────────────────────┐
//	│  入口层                                                          │
//	│  ┌─────────┐                                                     │
//	│  │  Shell  │  shell.New() / shell.Start()                       │
//	│  └─────────┘                                                     │
//	├─────────────────────────────────────────────────────────────────┤
//	│  编排层                                                          │
//	│  ┌──────────────┐ ┌──────────────┐                               │
//	│  │ Registration │ │  Federation  │                               │
//	│  └──────────────┘ └──────────────┘                               │
//	├─────────────────────────────────────────────────────────────────┤
//	│  运行时层                                                        │
//	│  ┌─────────┐ ┌──────────┐ ┌──────────┐ ┌─────────┐              │
//	│  │ Runtime │ │ Registry │ │ EventBus │ │ Logging │              │
//	│  └─────────┘ └──────────┘ └──────────┘ └─────────┘              │
//	└─────────────────────────────────────────────────────────────────┘
//
// # 配置
//
// 配置可以通过 WithConfig 直接给出，也可以用 WithConfigFile 从 JSON 文件加载。
// 详见 config 包。
package shell
