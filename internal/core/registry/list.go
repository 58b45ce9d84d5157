package registry

import (
	"sync"
	"sync/atomic"
)

// snapshotList 只追加的快照列表
type snapshotList[E any, P interface {
	*E
	Clone() P
}] struct {
	mu   sync.Mutex
	snap atomic.Pointer[[]P]
}

// add 追加非 nil 项并发布新快照，返回实际追加的数量
func (l *snapshotList[E, P]) add(items []P) int {
	filtered := make([]P, 0, len(items))
	for _, it := range items {
		if it != nil {
			filtered = append(filtered, it.Clone())
		}
	}
	if len(filtered) == 0 {
		return 0
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	cur := l.load()
	next := make([]P, 0, len(cur)+len(filtered))
	next = append(next, cur...)
	next = append(next, filtered...)
	l.snap.Store(&next)

	return len(filtered)
}

// items 返回当前快照的深拷贝
func (l *snapshotList[E, P]) items() []P {
	cur := l.load()
	out := make([]P, len(cur))
	for i, it := range cur {
		out[i] = it.Clone()
	}
	return out
}

func (l *snapshotList[E, P]) len() int {
	return len(l.load())
}

func (l *snapshotList[E, P]) load() []P {
	if p := l.snap.Load(); p != nil {
		return *p
	}
	return nil
}
