package engine

import (
	"sync"
	"sync/atomic"
)

// MemoryEngine 基于 map 的内存存储引擎
type MemoryEngine struct {
	mu     sync.RWMutex
	data   map[string][]byte
	closed atomic.Bool

	reads   atomic.Int64
	writes  atomic.Int64
	deletes atomic.Int64
}

var _ InternalEngine = (*MemoryEngine)(nil)

// NewMemoryEngine 创建内存存储引擎
func NewMemoryEngine() *MemoryEngine {
	return &MemoryEngine{data: make(map[string][]byte)}
}

// Get 获取指定键的值
func (e *MemoryEngine) Get(key []byte) ([]byte, error) {
	if e.closed.Load() {
		return nil, ErrClosed
	}
	if len(key) == 0 {
		return nil, ErrEmptyKey
	}

	e.reads.Add(1)
	e.mu.RLock()
	v, ok := e.data[string(key)]
	e.mu.RUnlock()
	if !ok {
		return nil, ErrNotFound
	}
	out := make([]byte, len(v))
	copy(out, v)
	return out, nil
}

// Put 设置键值对
func (e *MemoryEngine) Put(key, value []byte) error {
	if e.closed.Load() {
		return ErrClosed
	}
	if len(key) == 0 {
		return ErrEmptyKey
	}

	v := make([]byte, len(value))
	copy(v, value)

	e.mu.Lock()
	defer e.mu.Unlock()
	if e.data == nil {
		return ErrClosed
	}
	e.data[string(key)] = v
	e.writes.Add(1)
	return nil
}

// Delete 删除指定键
func (e *MemoryEngine) Delete(key []byte) error {
	if e.closed.Load() {
		return ErrClosed
	}
	if len(key) == 0 {
		return ErrEmptyKey
	}

	e.mu.Lock()
	delete(e.data, string(key))
	e.mu.Unlock()
	e.deletes.Add(1)
	return nil
}

// Has 检查键是否存在
func (e *MemoryEngine) Has(key []byte) (bool, error) {
	if e.closed.Load() {
		return false, ErrClosed
	}
	if len(key) == 0 {
		return false, ErrEmptyKey
	}

	e.mu.RLock()
	_, ok := e.data[string(key)]
	e.mu.RUnlock()
	return ok, nil
}

// Start 内存引擎没有后台任务
func (e *MemoryEngine) Start() error {
	if e.closed.Load() {
		return ErrClosed
	}
	return nil
}

// Stats 返回统计信息
func (e *MemoryEngine) Stats() *Stats {
	e.mu.RLock()
	n := len(e.data)
	e.mu.RUnlock()
	return &Stats{
		KeyCount:   int64(n),
		NumReads:   e.reads.Load(),
		NumWrites:  e.writes.Load(),
		NumDeletes: e.deletes.Load(),
	}
}

// Close 关闭引擎并丢弃数据
func (e *MemoryEngine) Close() error {
	if e.closed.Swap(true) {
		return nil
	}
	e.mu.Lock()
	e.data = nil
	e.mu.Unlock()
	return nil
}
