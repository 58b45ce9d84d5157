package session

import (
	"go.uber.org/fx"

	"github.com/dep2p/go-shell/internal/core/storage"
	pkgif "github.com/dep2p/go-shell/pkg/interfaces"
)

// ============================================================================
// Fx 模块
// ============================================================================

// KeyPrefix 会话在存储中的键前缀
var KeyPrefix = []byte("s/")

// Data 外壳默认使用的会话结构
type Data map[string]any

// Config 会话配置
type Config struct {
	// Key 会话键
	Key string
}

// Params 会话模块依赖参数
type Params struct {
	fx.In

	Engine storage.InternalEngine
	Config *Config `optional:"true"`
}

// Result 会话模块输出
type Result struct {
	fx.Out

	Manager  *Manager[Data]
	Accessor pkgif.SessionAccessor
}

// Module 返回 Fx 模块
func Module() fx.Option {
	return fx.Module("session",
		fx.Provide(ProvideManager),
	)
}

// ProvideManager 提供会话管理器与会话访问器
func ProvideManager(p Params) Result {
	var opts []Option
	if p.Config != nil {
		opts = append(opts, WithKey(p.Config.Key))
	}
	m := NewManager[Data](storage.NewKVStore(p.Engine, KeyPrefix), opts...)
	logger.Debug("会话管理器已创建", "key", m.Key())
	return Result{Manager: m, Accessor: m.Accessor()}
}

// ============================================================================
// 模块元信息
// ============================================================================

const (
	// Version 模块版本
	Version = "1.0.0"
	// Name 模块名称
	Name = "session"
	// Description 模块描述
	Description = "会话管理模块，把会话持久化到键值存储"
)
