// Package storage 提供外壳的键值存储服务
//
// 会话管理器等组件通过带前缀隔离的 KVStore 读写数据，底层引擎可选：
//
//	┌─────────────────────────────────────────────┐
//	│                  使用方模块                   │
//	│              session.Manager                │
//	└─────────────────────────────────────────────┘
//	                      │
//	                      ▼
//	┌─────────────────────────────────────────────┐
//	│  kv.Store  带前缀隔离的 KV 抽象                │
//	├──────────────────────┬──────────────────────┤
//	│  engine.MemoryEngine │  engine/badger       │
//	└──────────────────────┴──────────────────────┘
//
// # 键空间设计
//
//	前缀     | 模块      | 说明
//	---------|-----------|------------------
//	s/       | session   | 当前会话
//
// # 使用示例
//
//	eng, err := storage.NewEngine(storage.Config{Backend: storage.BackendBadger, Path: "./data/shell.db"})
//	if err != nil {
//	    return err
//	}
//	defer eng.Close()
//
//	sessions := storage.NewKVStore(eng, []byte("s/"))
//
// 所有公开的类型和方法都是线程安全的。
package storage
