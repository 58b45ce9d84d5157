package badger

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/dgraph-io/badger/v4"

	"github.com/dep2p/go-shell/internal/core/storage/engine"
	"github.com/dep2p/go-shell/pkg/lib/log"
)

var logger = log.Logger("storage/badger")

// maxCountedKeys Stats 计数键的上限，超过后 KeyCount 为下界
const maxCountedKeys = 10000

// Engine BadgerDB 存储引擎
type Engine struct {
	db  *badger.DB
	cfg *engine.Config

	closed                 atomic.Bool
	reads, writes, deletes atomic.Int64

	startOnce sync.Once
	stopGC    context.CancelFunc
	gcDone    sync.WaitGroup
}

var _ engine.InternalEngine = (*Engine)(nil)

// New 打开 BadgerDB，cfg 会被校验并补全
func New(cfg *engine.Config) (*Engine, error) {
	if cfg == nil {
		return nil, fmt.Errorf("%w: nil config", engine.ErrInvalidConfig)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if err := cfg.PrepareDir(); err != nil {
		return nil, err
	}

	opts := badger.DefaultOptions(cfg.Path).
		WithInMemory(cfg.InMemory).
		WithSyncWrites(cfg.SyncWrites).
		WithReadOnly(cfg.ReadOnly).
		WithNumVersionsToKeep(1).
		WithMemTableSize(cfg.MemTableSize).
		WithBlockCacheSize(cfg.BlockCacheSize).
		WithLogger(badgerLog{})
	if cfg.InMemory {
		opts.Dir, opts.ValueDir = "", ""
	}

	db, err := badger.Open(opts)
	if err != nil {
		return nil, err
	}
	return &Engine{db: db, cfg: cfg, stopGC: func() {}}, nil
}

// ════════════════════════════════════════════════════════════════════════════
//                              生命周期
// ════════════════════════════════════════════════════════════════════════════

// Start 按配置启动值日志 GC，重复调用只生效一次
func (e *Engine) Start() error {
	if e.closed.Load() {
		return engine.ErrClosed
	}
	if !e.cfg.GCEnabled() {
		return nil
	}
	e.startOnce.Do(func() {
		ctx, cancel := context.WithCancel(context.Background())
		e.stopGC = cancel
		e.gcDone.Add(1)
		go e.gcLoop(ctx)
	})
	return nil
}

func (e *Engine) gcLoop(ctx context.Context) {
	defer e.gcDone.Done()
	t := time.NewTicker(e.cfg.GCInterval)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
		}
		// 一次 GC 只重写一个文件，循环直到无可回收
		for !e.closed.Load() {
			if err := e.db.RunValueLogGC(e.cfg.GCDiscardRatio); err != nil {
				if !errors.Is(err, badger.ErrNoRewrite) {
					logger.Debug("值日志 GC 中止", "error", err)
				}
				break
			}
		}
	}
}

// Close 停止 GC 并关闭数据库，重复调用返回 nil
func (e *Engine) Close() error {
	if e.closed.Swap(true) {
		return nil
	}
	e.stopGC()
	e.gcDone.Wait()
	return e.db.Close()
}

// ════════════════════════════════════════════════════════════════════════════
//                              读写
// ════════════════════════════════════════════════════════════════════════════

func (e *Engine) check(key []byte, write bool) error {
	switch {
	case e.closed.Load():
		return engine.ErrClosed
	case write && e.cfg.ReadOnly:
		return engine.ErrReadOnly
	case len(key) == 0:
		return engine.ErrEmptyKey
	}
	return nil
}

func (e *Engine) update(key []byte, counter *atomic.Int64, fn func(*badger.Txn) error) error {
	if err := e.check(key, true); err != nil {
		return err
	}
	if err := e.db.Update(fn); err != nil {
		return translate(err)
	}
	counter.Add(1)
	return nil
}

// Get 返回值的副本，键不存在时返回 engine.ErrNotFound
func (e *Engine) Get(key []byte) ([]byte, error) {
	if err := e.check(key, false); err != nil {
		return nil, err
	}
	e.reads.Add(1)

	var out []byte
	err := e.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(key)
		if err == nil {
			out, err = item.ValueCopy(nil)
		}
		return err
	})
	if err != nil {
		return nil, translate(err)
	}
	return out, nil
}

// Has 报告键是否存在
func (e *Engine) Has(key []byte) (bool, error) {
	_, err := e.Get(key)
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, engine.ErrNotFound):
		return false, nil
	default:
		return false, err
	}
}

// Put 写入键值，覆盖已有值
func (e *Engine) Put(key, value []byte) error {
	return e.update(key, &e.writes, func(txn *badger.Txn) error {
		return txn.Set(key, value)
	})
}

// PutWithTTL 写入在 ttl 之后过期的键值
func (e *Engine) PutWithTTL(key, value []byte, ttl time.Duration) error {
	return e.update(key, &e.writes, func(txn *badger.Txn) error {
		return txn.SetEntry(badger.NewEntry(key, value).WithTTL(ttl))
	})
}

// Delete 删除键，键不存在时不报错
func (e *Engine) Delete(key []byte) error {
	return e.update(key, &e.deletes, func(txn *badger.Txn) error {
		return txn.Delete(key)
	})
}

// Stats 返回计数与磁盘占用；键超过 maxCountedKeys 时只计到上限
func (e *Engine) Stats() *engine.Stats {
	st := &engine.Stats{
		NumReads:   e.reads.Load(),
		NumWrites:  e.writes.Load(),
		NumDeletes: e.deletes.Load(),
	}
	if e.closed.Load() {
		return st
	}
	lsm, vlog := e.db.Size()
	st.DiskSize = lsm + vlog

	_ = e.db.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.IteratorOptions{})
		defer it.Close()
		for it.Rewind(); it.Valid() && st.KeyCount < maxCountedKeys; it.Next() {
			st.KeyCount++
		}
		return nil
	})
	return st
}

func translate(err error) error {
	switch {
	case errors.Is(err, badger.ErrKeyNotFound):
		return engine.ErrNotFound
	case errors.Is(err, badger.ErrEmptyKey):
		return engine.ErrEmptyKey
	case errors.Is(err, badger.ErrReadOnlyTxn):
		return engine.ErrReadOnly
	}
	return err
}

// badgerLog 把 BadgerDB 的内部日志转到组件 logger
type badgerLog struct{}

func (badgerLog) Errorf(f string, args ...any)   { logger.Error(fmt.Sprintf(f, args...)) }
func (badgerLog) Warningf(f string, args ...any) { logger.Warn(fmt.Sprintf(f, args...)) }
func (badgerLog) Infof(f string, args ...any)    { logger.Debug(fmt.Sprintf(f, args...)) }
func (badgerLog) Debugf(f string, args ...any)   { logger.Debug(fmt.Sprintf(f, args...)) }
