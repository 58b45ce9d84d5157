package federation

import (
	"sync"
	"sync/atomic"

	"github.com/google/uuid"
)

// ============================================================================
//                              ScriptState
// ============================================================================

// ScriptState 脚本加载状态
type ScriptState int32

const (
	// ScriptIdle 未开始
	ScriptIdle ScriptState = iota
	// ScriptLoading 加载中
	ScriptLoading
	// ScriptLoaded 加载成功
	ScriptLoaded
	// ScriptErrored 加载失败
	ScriptErrored
	// ScriptTimedOut 加载超时
	ScriptTimedOut
)

// String 返回状态的字符串表示
func (s ScriptState) String() string {
	switch s {
	case ScriptIdle:
		return "idle"
	case ScriptLoading:
		return "loading"
	case ScriptLoaded:
		return "loaded"
	case ScriptErrored:
		return "errored"
	case ScriptTimedOut:
		return "timed-out"
	default:
		return "unknown"
	}
}

// ============================================================================
//                              ScriptElement
// ============================================================================

// ScriptElement 插入 Document 的脚本引用
type ScriptElement struct {
	// ID 元素唯一标识
	ID string
	// Src 脚本地址
	Src string
	// Type 脚本类型，固定为 "text/javascript"
	Type string
	// Async 异步加载
	Async bool

	state atomic.Int32
}

// State 返回当前加载状态
func (e *ScriptElement) State() ScriptState {
	return ScriptState(e.state.Load())
}

func (e *ScriptElement) setState(s ScriptState) {
	e.state.Store(int32(s))
}

// ============================================================================
//                              Document
// ============================================================================

// Document 宿主文档
//
// 记录当前插入的脚本引用，用于验证加载结束后没有残留引用。
type Document struct {
	mu      sync.Mutex
	scripts []*ScriptElement
}

// NewDocument 创建文档
func NewDocument() *Document {
	return &Document{}
}

// AppendScript 插入脚本引用
func (d *Document) AppendScript(src string) *ScriptElement {
	el := &ScriptElement{
		ID:    uuid.NewString(),
		Src:   src,
		Type:  "text/javascript",
		Async: true,
	}

	d.mu.Lock()
	d.scripts = append(d.scripts, el)
	d.mu.Unlock()

	return el
}

// RemoveScript 移除脚本引用，返回是否存在
func (d *Document) RemoveScript(id string) bool {
	d.mu.Lock()
	defer d.mu.Unlock()

	for i, el := range d.scripts {
		if el.ID == id {
			d.scripts = append(d.scripts[:i:i], d.scripts[i+1:]...)
			return true
		}
	}
	return false
}

// Scripts 返回当前脚本引用快照
func (d *Document) Scripts() []*ScriptElement {
	d.mu.Lock()
	defer d.mu.Unlock()

	out := make([]*ScriptElement, len(d.scripts))
	copy(out, d.scripts)
	return out
}

// Len 返回当前脚本引用数量
func (d *Document) Len() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.scripts)
}
