package main

import (
	"os"
	"strings"

	"github.com/dep2p/go-shell/config"
)

// ============================================================================
//                              环境变量覆盖（CLI 专用）
// ============================================================================

// 环境变量名称
const (
	envRemotes        = "SHELL_REMOTES"
	envIntrospectAddr = "SHELL_INTROSPECT_ADDR"
	envDataDir        = "SHELL_DATA_DIR"
	envHoistAllowList = "SHELL_HOIST_ALLOW_LIST"
)

// applyEnvOverrides 应用环境变量覆盖配置
//
// 环境变量优先级高于配置文件，但低于命令行参数。
// 支持的环境变量：
//   - SHELL_REMOTES: 远程模块列表，格式 name=url,name=url
//   - SHELL_INTROSPECT_ADDR: 自省服务监听地址
//   - SHELL_DATA_DIR: 数据目录，设置后会话落盘
//   - SHELL_HOIST_ALLOW_LIST: 允许提升的路径（逗号分隔）
func applyEnvOverrides(cfg *config.Config) {
	if v := os.Getenv(envRemotes); v != "" {
		if remotes, err := parseRemotes(v); err == nil {
			cfg.Remotes = remotes
		} else {
			logger.Warn("忽略无效的环境变量", "name", envRemotes, "error", err)
		}
	}

	if v := os.Getenv(envIntrospectAddr); v != "" {
		cfg.Introspect.Addr = v
	}

	if v := os.Getenv(envDataDir); v != "" {
		cfg.Storage.DataDir = v
		cfg.Storage.InMemory = false
	}

	if v := os.Getenv(envHoistAllowList); v != "" {
		var paths []string
		for _, p := range strings.Split(v, ",") {
			if p = strings.TrimSpace(p); p != "" {
				paths = append(paths, p)
			}
		}
		cfg.Routing.HoistAllowList = paths
	}
}
