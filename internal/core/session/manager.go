package session

import (
	"errors"
	"sync"

	"github.com/dep2p/go-shell/internal/core/storage/engine"
	pkgif "github.com/dep2p/go-shell/pkg/interfaces"
	"github.com/dep2p/go-shell/pkg/lib/log"
)

var logger = log.Logger("core/session")

// DefaultKey 默认会话键
const DefaultKey = "app-session"

// Store 会话存储
//
// kv.Store 满足该接口。
type Store interface {
	GetJSON(key []byte, v interface{}) error
	PutJSON(key []byte, v interface{}) error
	Delete(key []byte) error
}

// Option Manager 选项
type Option func(*options)

type options struct {
	key string
}

// WithKey 设置会话键，空字符串被忽略
func WithKey(key string) Option {
	return func(o *options) {
		if key != "" {
			o.key = key
		}
	}
}

// Manager 会话管理器
type Manager[T any] struct {
	store Store
	key   []byte

	mu    sync.RWMutex
	cache *T
}

// NewManager 创建会话管理器
func NewManager[T any](store Store, opts ...Option) *Manager[T] {
	o := options{key: DefaultKey}
	for _, opt := range opts {
		opt(&o)
	}
	return &Manager[T]{
		store: store,
		key:   []byte(o.key),
	}
}

// Key 返回会话键
func (m *Manager[T]) Key() string {
	return string(m.key)
}

// SetSession 写入会话，nil 表示删除
func (m *Manager[T]) SetSession(session *T) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.cache = nil
	if session == nil {
		return m.store.Delete(m.key)
	}
	return m.store.PutJSON(m.key, session)
}

// GetSession 返回当前会话
//
// 没有会话时返回零值与 false。返回值是缓存的副本。
func (m *Manager[T]) GetSession() (T, bool, error) {
	var zero T

	m.mu.RLock()
	if m.cache != nil {
		s := *m.cache
		m.mu.RUnlock()
		return s, true, nil
	}
	m.mu.RUnlock()

	m.mu.Lock()
	defer m.mu.Unlock()
	if m.cache != nil {
		return *m.cache, true, nil
	}

	var s T
	if err := m.store.GetJSON(m.key, &s); err != nil {
		if errors.Is(err, engine.ErrNotFound) {
			return zero, false, nil
		}
		logger.Warn("读取会话失败", "key", string(m.key), "error", err)
		return zero, false, err
	}
	m.cache = &s
	return s, true, nil
}

// ClearSession 删除会话
func (m *Manager[T]) ClearSession() error {
	return m.SetSession(nil)
}

// IsAuthenticated 是否存在会话
func (m *Manager[T]) IsAuthenticated() bool {
	_, ok, err := m.GetSession()
	return ok && err == nil
}

// Accessor 返回运行时使用的会话访问器
//
// 存在会话时返回 T，否则返回 nil。
func (m *Manager[T]) Accessor() pkgif.SessionAccessor {
	return func() (any, error) {
		s, ok, err := m.GetSession()
		if err != nil || !ok {
			return nil, err
		}
		return s, nil
	}
}
