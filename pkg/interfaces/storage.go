package interfaces

// Engine 会话持久化使用的字节键值引擎
//
// 实现必须可以并发调用。键为空时返回错误；读取返回值的副本。
// 内置实现有进程内 map 与 BadgerDB（持久化或纯内存）两种。
type Engine interface {
	// Get 键不存在时返回实现定义的 not-found 哨兵错误
	Get(key []byte) ([]byte, error)
	Put(key, value []byte) error
	// Delete 对不存在的键不报错
	Delete(key []byte) error
	Has(key []byte) (bool, error)
	// Close 可重复调用，关闭后的读写返回错误
	Close() error
}
