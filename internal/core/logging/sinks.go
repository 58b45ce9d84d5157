package logging

import (
	"context"
	"log/slog"
	"sync"
	"time"

	pkgif "github.com/dep2p/go-shell/pkg/interfaces"
	"go.uber.org/zap"
)

// ============================================================================
//                              SlogSink
// ============================================================================

// SlogSink 基于 log/slog 的控制台 Sink
type SlogSink struct {
	logger *slog.Logger
	min    Level
}

var _ pkgif.Logger = (*SlogSink)(nil)

// NewSlogSink 创建 slog Sink
//
// logger 为 nil 时使用 slog.Default()；低于 min 的日志被丢弃。
func NewSlogSink(logger *slog.Logger, min Level) *SlogSink {
	return &SlogSink{logger: logger, min: min}
}

func (s *SlogSink) write(level Level, msg string, args []any) error {
	if level < s.min {
		return nil
	}
	l := s.logger
	if l == nil {
		l = slog.Default()
	}
	l.Log(context.Background(), level.slog(), msg, args...)
	return nil
}

// Debug 实现 pkgif.Logger
func (s *SlogSink) Debug(msg string, args ...any) error { return s.write(LevelDebug, msg, args) }

// Information 实现 pkgif.Logger
func (s *SlogSink) Information(msg string, args ...any) error {
	return s.write(LevelInformation, msg, args)
}

// Warning 实现 pkgif.Logger
func (s *SlogSink) Warning(msg string, args ...any) error {
	return s.write(LevelWarning, msg, args)
}

// Error 实现 pkgif.Logger
func (s *SlogSink) Error(msg string, args ...any) error { return s.write(LevelError, msg, args) }

// Critical 实现 pkgif.Logger
func (s *SlogSink) Critical(msg string, args ...any) error {
	return s.write(LevelCritical, msg, args)
}

// ============================================================================
//                              ZapSink
// ============================================================================

// ZapSink 基于 zap 的结构化 Sink
//
// zap 没有 Critical 级别，Critical 以 Error 输出并附加 critical=true。
type ZapSink struct {
	logger *zap.SugaredLogger
	min    Level
}

var _ pkgif.Logger = (*ZapSink)(nil)

// NewZapSink 创建 zap Sink，logger 为 nil 时使用 zap.NewNop()
func NewZapSink(logger *zap.Logger, min Level) *ZapSink {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ZapSink{logger: logger.Sugar(), min: min}
}

// Sync 刷新缓冲
func (s *ZapSink) Sync() error {
	return s.logger.Sync()
}

// Debug 实现 pkgif.Logger
func (s *ZapSink) Debug(msg string, args ...any) error {
	if s.min <= LevelDebug {
		s.logger.Debugw(msg, args...)
	}
	return nil
}

// Information 实现 pkgif.Logger
func (s *ZapSink) Information(msg string, args ...any) error {
	if s.min <= LevelInformation {
		s.logger.Infow(msg, args...)
	}
	return nil
}

// Warning 实现 pkgif.Logger
func (s *ZapSink) Warning(msg string, args ...any) error {
	if s.min <= LevelWarning {
		s.logger.Warnw(msg, args...)
	}
	return nil
}

// Error 实现 pkgif.Logger
func (s *ZapSink) Error(msg string, args ...any) error {
	if s.min <= LevelError {
		s.logger.Errorw(msg, args...)
	}
	return nil
}

// Critical 实现 pkgif.Logger
func (s *ZapSink) Critical(msg string, args ...any) error {
	s.logger.Errorw(msg, append([]any{"critical", true}, args...)...)
	return nil
}

// ============================================================================
//                              MemorySink
// ============================================================================

// DefaultMemoryCapacity MemorySink 默认容量
const DefaultMemoryCapacity = 256

// Entry 内存日志条目
type Entry struct {
	Time    time.Time `json:"time"`
	Level   string    `json:"level"`
	Message string    `json:"message"`
	Args    []any     `json:"args,omitempty"`
}

// MemorySink 固定容量的内存 Sink，超出容量时覆盖最旧的条目
type MemorySink struct {
	mu       sync.Mutex
	entries  []Entry
	next     int
	full     bool
	capacity int
}

var _ pkgif.Logger = (*MemorySink)(nil)

// NewMemorySink 创建内存 Sink，capacity <= 0 时使用默认容量
func NewMemorySink(capacity int) *MemorySink {
	if capacity <= 0 {
		capacity = DefaultMemoryCapacity
	}
	return &MemorySink{
		entries:  make([]Entry, capacity),
		capacity: capacity,
	}
}

func (s *MemorySink) write(level Level, msg string, args []any) error {
	argsCopy := make([]any, len(args))
	copy(argsCopy, args)

	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries[s.next] = Entry{
		Time:    time.Now(),
		Level:   level.String(),
		Message: msg,
		Args:    argsCopy,
	}
	s.next = (s.next + 1) % s.capacity
	if s.next == 0 {
		s.full = true
	}
	return nil
}

// Entries 按写入顺序返回当前保留的条目
func (s *MemorySink) Entries() []Entry {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.full {
		out := make([]Entry, s.next)
		copy(out, s.entries[:s.next])
		return out
	}
	out := make([]Entry, 0, s.capacity)
	out = append(out, s.entries[s.next:]...)
	out = append(out, s.entries[:s.next]...)
	return out
}

// Debug 实现 pkgif.Logger
func (s *MemorySink) Debug(msg string, args ...any) error { return s.write(LevelDebug, msg, args) }

// Information 实现 pkgif.Logger
func (s *MemorySink) Information(msg string, args ...any) error {
	return s.write(LevelInformation, msg, args)
}

// Warning 实现 pkgif.Logger
func (s *MemorySink) Warning(msg string, args ...any) error {
	return s.write(LevelWarning, msg, args)
}

// Error 实现 pkgif.Logger
func (s *MemorySink) Error(msg string, args ...any) error { return s.write(LevelError, msg, args) }

// Critical 实现 pkgif.Logger
func (s *MemorySink) Critical(msg string, args ...any) error {
	return s.write(LevelCritical, msg, args)
}
