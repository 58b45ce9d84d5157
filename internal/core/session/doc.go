// Package session 提供持久化的会话管理器
//
// Manager 把会话以 JSON 形式存入带前缀的 kv.Store，读取时缓存解码结果，
// 写入或清除时使缓存失效。Accessor 把管理器适配为运行时的会话访问器。
//
//	mgr := session.NewManager[Session](storage.NewKVStore(eng, []byte("s/")))
//	rt := runtime.New(runtime.Config{SessionAccessor: mgr.Accessor()})
package session
