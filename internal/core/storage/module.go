package storage

import (
	"context"
	"fmt"

	"go.uber.org/fx"

	"github.com/dep2p/go-shell/internal/core/storage/engine"
	"github.com/dep2p/go-shell/internal/core/storage/engine/badger"
	"github.com/dep2p/go-shell/internal/core/storage/kv"
	"github.com/dep2p/go-shell/pkg/lib/log"
)

var logger = log.Logger("core/storage")

// InternalEngine 是 engine.InternalEngine 的类型别名
type InternalEngine = engine.InternalEngine

// KVStore 是 kv.Store 的类型别名
type KVStore = kv.Store

// ════════════════════════════════════════════════════════════════════════════
//                              Fx 模块
// ════════════════════════════════════════════════════════════════════════════

type engineParams struct {
	fx.In

	LC     fx.Lifecycle
	Config *Config `optional:"true"`
}

// Module 返回 Storage Fx 模块
//
// 引擎随 Fx 应用启动（BadgerDB 开始值日志 GC），随应用停止而关闭。
// 未提供 *Config 时使用进程内 map 引擎。
func Module() fx.Option {
	return fx.Module("storage",
		fx.Provide(provideEngine),
	)
}

func provideEngine(p engineParams) (InternalEngine, error) {
	cfg := DefaultConfig()
	if p.Config != nil {
		cfg = *p.Config
	}
	eng, err := NewEngine(cfg)
	if err != nil {
		return nil, err
	}

	p.LC.Append(fx.Hook{
		OnStart: func(context.Context) error {
			if err := eng.Start(); err != nil {
				return fmt.Errorf("start %s engine: %w", cfg.Backend, err)
			}
			logger.Debug("存储引擎已启动", "backend", cfg.Backend)
			return nil
		},
		OnStop: func(context.Context) error {
			stats := eng.Stats()
			logger.Debug("关闭存储引擎", "backend", cfg.Backend, "keys", stats.KeyCount, "writes", stats.NumWrites)
			return eng.Close()
		},
	})
	return eng, nil
}

// ════════════════════════════════════════════════════════════════════════════
//                              构造函数
// ════════════════════════════════════════════════════════════════════════════

// NewEngine 按后端创建存储引擎，配置非法时返回 ErrInvalidConfig
func NewEngine(cfg Config) (InternalEngine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	switch cfg.Backend {
	case BackendMemory:
		return engine.NewMemoryEngine(), nil
	default:
		eng, err := badger.New(cfg.ToEngineConfig())
		if err != nil {
			return nil, fmt.Errorf("open %s at %q: %w", cfg.Backend, cfg.Path, err)
		}
		return eng, nil
	}
}

// NewKVStore 在 eng 上创建以 prefix 隔离的键空间
func NewKVStore(eng InternalEngine, prefix []byte) *KVStore {
	return kv.New(eng, prefix)
}
