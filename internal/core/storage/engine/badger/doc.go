// Package badger 提供基于 BadgerDB 的存储引擎实现
//
// 支持持久化与纯内存两种模式，持久化模式下后台定期执行值日志垃圾回收。
//
// # 使用示例
//
//	cfg := engine.DefaultConfig("/data/shell.db")
//	db, err := badger.New(cfg)
//	if err != nil {
//	    return err
//	}
//	defer db.Close()
//
//	if err := db.Put([]byte("key"), []byte("value")); err != nil {
//	    return err
//	}
//	value, err := db.Get([]byte("key"))
package badger
