package kv

import (
	"encoding/json"
	"fmt"

	"github.com/dep2p/go-shell/internal/core/storage/engine"
	pkgif "github.com/dep2p/go-shell/pkg/interfaces"
)

// Store 在共享引擎上划出一个键空间
//
// 所有键在写入引擎前都会加上 Store 的前缀，不同前缀的 Store 互不可见。
// 空键一律返回 engine.ErrEmptyKey。
type Store struct {
	eng    pkgif.Engine
	prefix []byte
}

// New 创建以 prefix 为键空间的 Store，prefix 会被复制
func New(eng pkgif.Engine, prefix []byte) *Store {
	return &Store{eng: eng, prefix: append([]byte(nil), prefix...)}
}

// Prefix 返回键空间前缀
func (s *Store) Prefix() []byte { return s.prefix }

func (s *Store) fullKey(key []byte) ([]byte, error) {
	if len(key) == 0 {
		return nil, engine.ErrEmptyKey
	}
	k := make([]byte, 0, len(s.prefix)+len(key))
	return append(append(k, s.prefix...), key...), nil
}

// Get 读取原始值
func (s *Store) Get(key []byte) ([]byte, error) {
	k, err := s.fullKey(key)
	if err != nil {
		return nil, err
	}
	return s.eng.Get(k)
}

// Put 写入原始值
func (s *Store) Put(key, value []byte) error {
	k, err := s.fullKey(key)
	if err != nil {
		return err
	}
	return s.eng.Put(k, value)
}

// Delete 删除键，键不存在时不报错
func (s *Store) Delete(key []byte) error {
	k, err := s.fullKey(key)
	if err != nil {
		return err
	}
	return s.eng.Delete(k)
}

// Has 报告键是否存在
func (s *Store) Has(key []byte) (bool, error) {
	k, err := s.fullKey(key)
	if err != nil {
		return false, err
	}
	return s.eng.Has(k)
}

// GetJSON 读取值并解码到 v
//
// 存储的内容不是合法 JSON 时返回包装了 engine.ErrCorrupted 的错误。
func (s *Store) GetJSON(key []byte, v any) error {
	raw, err := s.Get(key)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(raw, v); err != nil {
		return fmt.Errorf("%w: key %q: %v", engine.ErrCorrupted, key, err)
	}
	return nil
}

// PutJSON 把 v 编码为 JSON 后写入
func (s *Store) PutJSON(key []byte, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %q: %w", key, err)
	}
	return s.Put(key, raw)
}
