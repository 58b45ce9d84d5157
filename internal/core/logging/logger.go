package logging

import (
	"fmt"

	pkgif "github.com/dep2p/go-shell/pkg/interfaces"
	"go.uber.org/multierr"
)

// Sinks 日志 Sink 列表（用于 Fx 注入）
type Sinks []pkgif.Logger

// RuntimeLogger 日志扇出聚合
type RuntimeLogger struct {
	sinks []pkgif.Logger
}

var _ pkgif.Logger = (*RuntimeLogger)(nil)

// NewRuntimeLogger 创建日志扇出聚合，nil Sink 被忽略
func NewRuntimeLogger(sinks ...pkgif.Logger) *RuntimeLogger {
	filtered := make([]pkgif.Logger, 0, len(sinks))
	for _, s := range sinks {
		if s != nil {
			filtered = append(filtered, s)
		}
	}
	return &RuntimeLogger{sinks: filtered}
}

// Sinks 返回 Sink 列表副本
func (l *RuntimeLogger) Sinks() []pkgif.Logger {
	out := make([]pkgif.Logger, len(l.sinks))
	copy(out, l.sinks)
	return out
}

// Debug 分发 Debug 日志
func (l *RuntimeLogger) Debug(msg string, args ...any) error {
	return l.fanOut(LevelDebug, msg, args)
}

// Information 分发 Information 日志
func (l *RuntimeLogger) Information(msg string, args ...any) error {
	return l.fanOut(LevelInformation, msg, args)
}

// Warning 分发 Warning 日志
func (l *RuntimeLogger) Warning(msg string, args ...any) error {
	return l.fanOut(LevelWarning, msg, args)
}

// Error 分发 Error 日志
func (l *RuntimeLogger) Error(msg string, args ...any) error {
	return l.fanOut(LevelError, msg, args)
}

// Critical 分发 Critical 日志
func (l *RuntimeLogger) Critical(msg string, args ...any) error {
	return l.fanOut(LevelCritical, msg, args)
}

func (l *RuntimeLogger) fanOut(level Level, msg string, args []any) error {
	var err error
	for i, sink := range l.sinks {
		if sinkErr := write(sink, level, msg, args); sinkErr != nil {
			err = multierr.Append(err, fmt.Errorf("sink %d: %w", i, sinkErr))
		}
	}
	return err
}

// write 调用单个 Sink，并把 panic 转换为错误
func write(sink pkgif.Logger, level Level, msg string, args []any) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: %v", ErrSinkPanicked, r)
		}
	}()

	switch level {
	case LevelDebug:
		return sink.Debug(msg, args...)
	case LevelInformation:
		return sink.Information(msg, args...)
	case LevelWarning:
		return sink.Warning(msg, args...)
	case LevelError:
		return sink.Error(msg, args...)
	default:
		return sink.Critical(msg, args...)
	}
}
