// Package kv 提供带前缀隔离的 KV 存储抽象层
//
// 每个组件使用不同的前缀隔离数据：
//
//	sessions := kv.New(engine, []byte("s/"))
//	sessions.PutJSON([]byte("app-session"), sess) // 实际键: s/app-session
package kv
