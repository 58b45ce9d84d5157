package interfaces

// Logger 运行时日志接口
//
// 每个方法返回写入过程中的错误；扇出聚合会收集所有 Sink 的错误，
// 不会因为某个 Sink 失败而跳过其余 Sink。
type Logger interface {
	Debug(msg string, args ...any) error
	Information(msg string, args ...any) error
	Warning(msg string, args ...any) error
	Error(msg string, args ...any) error
	Critical(msg string, args ...any) error
}
