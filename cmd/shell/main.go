// Package main 提供 shell 命令行入口
//
// 命令行加载配置、注册内置演示模块与配置中的远程模块，
// 然后打印组合后的路由表与导航树。指定 -serve 时保持运行并
// 启用自省服务，直到收到退出信号。
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/dep2p/go-shell"
	"github.com/dep2p/go-shell/config"
	pkgif "github.com/dep2p/go-shell/pkg/interfaces"
	"github.com/dep2p/go-shell/pkg/lib/log"
	"github.com/dep2p/go-shell/pkg/types"
)

var logger = log.Logger("shell/cmd")

// ═══════════════════════════════════════════════════════════════════════════
// 命令行参数
// ═══════════════════════════════════════════════════════════════════════════
//
//   命令行参数：运行时覆盖 / 快速测试
//   JSON 配置文件：远程模块列表、加载超时、路由允许列表等持久化配置
//
// ═══════════════════════════════════════════════════════════════════════════
var (
	configFile = flag.String("config", "", "配置文件路径（JSON）")
	remotes    = flag.String("remotes", "", "远程模块列表，格式 name=url,name=url（覆盖配置文件）")
	serve      = flag.Bool("serve", false, "保持运行并启用自省服务")
	addr       = flag.String("addr", "", "自省服务监听地址（默认取配置文件）")
	withDemo   = flag.Bool("demo", true, "注册内置演示模块")
	logLevel   = flag.String("log", "", "组件日志级别，格式同 SHELL_LOG_LEVEL，如 core/federation=debug,info")

	showVersion = flag.Bool("version", false, "显示版本信息")
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "错误: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	flag.Parse()

	if *showVersion {
		fmt.Println(shell.VersionInfo())
		return nil
	}

	if *logLevel != "" {
		log.Configure(*logLevel, os.Getenv(log.EnvLogFormat))
	}

	opts, err := buildOptions()
	if err != nil {
		return fmt.Errorf("配置错误: %w", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	fmt.Printf("📦 %s\n", shell.VersionInfo())
	logger.Info("启动 shell", "version", shell.Version, "commit", shell.GitCommit)

	s, err := shell.Start(ctx, opts...)
	if err != nil {
		return fmt.Errorf("启动失败: %w", err)
	}
	defer func() { _ = s.Close() }()

	// ═══════════════════════════════════════════════════════════════════
	// 1. 静态模块
	// ═══════════════════════════════════════════════════════════════════
	var static []pkgif.ModuleRegisterFunc
	if *withDemo {
		static = append(static, registerDemo)
	}
	if err := s.RegisterStaticModules(static, nil); err != nil {
		return err
	}

	// ═══════════════════════════════════════════════════════════════════
	// 2. 远程模块
	// ═══════════════════════════════════════════════════════════════════
	failures, err := s.RegisterRemoteModules(ctx, nil)
	if err != nil {
		return err
	}
	for _, f := range failures {
		fmt.Printf("⚠️  %v\n", f)
	}

	// ═══════════════════════════════════════════════════════════════════
	// 3. 组合输出
	// ═══════════════════════════════════════════════════════════════════
	if err := printComposition(s); err != nil {
		return err
	}

	if !*serve {
		return nil
	}

	if a := s.IntrospectAddr(); a != "" {
		fmt.Printf("🔎 自省服务: http://%s/debug/shell\n", a)
	}
	fmt.Println("外壳已启动，按 Ctrl+C 退出")
	waitForSignal()
	fmt.Println("\n正在关闭外壳...")
	return nil
}

// buildOptions 构建选项
//
// 配置优先级（从高到低）：
//  1. 命令行参数
//  2. 环境变量（SHELL_* 前缀）
//  3. 配置文件
func buildOptions() ([]shell.Option, error) {
	cfg := config.NewConfig()
	if *configFile != "" {
		loaded, err := config.LoadFile(*configFile)
		if err != nil {
			return nil, fmt.Errorf("加载配置文件失败: %w", err)
		}
		cfg = loaded
	}

	applyEnvOverrides(cfg)

	if *remotes != "" {
		parsed, err := parseRemotes(*remotes)
		if err != nil {
			return nil, err
		}
		cfg.Remotes = parsed
	}

	if *serve {
		cfg.Introspect.Enable = true
		if *addr != "" {
			cfg.Introspect.Addr = *addr
		}
	}

	return []shell.Option{shell.WithConfig(cfg)}, nil
}

// parseRemotes 解析 name=url,name=url 形式的远程模块列表
func parseRemotes(s string) ([]config.RemoteConfig, error) {
	var out []config.RemoteConfig
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		name, url, ok := strings.Cut(part, "=")
		if !ok {
			return nil, fmt.Errorf("invalid remote %q, expected name=url", part)
		}
		out = append(out, config.RemoteConfig{Name: strings.TrimSpace(name), URL: strings.TrimSpace(url)})
	}
	return out, nil
}

// printComposition 打印提升后的路由表与导航树
func printComposition(s *shell.Shell) error {
	routes, err := s.HoistedRoutes()
	if err != nil {
		return fmt.Errorf("路由组合失败: %w", err)
	}

	fmt.Println("═══ 路由 ═══")
	for _, r := range routes {
		printRoute(r, 0)
	}

	fmt.Println("═══ 导航 ═══")
	fmt.Println(s.RenderNavigation().String())
	return nil
}

func printRoute(r *types.Route, depth int) {
	path := r.Path
	if r.Index {
		path = "(index)"
	}
	fmt.Printf("%s%s\n", strings.Repeat("  ", depth), path)
	for _, c := range r.Children {
		printRoute(c, depth+1)
	}
}

// waitForSignal 等待退出信号
func waitForSignal() {
	signals := make(chan os.Signal, 1)
	signal.Notify(signals, syscall.SIGINT, syscall.SIGTERM)
	<-signals
}
