package badger

import (
	"bytes"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/dep2p/go-shell/internal/core/storage/engine"
)

// testEngine 创建测试用引擎
// 使用 t.TempDir() 创建临时目录，测试结束后自动清理
func testEngine(t *testing.T) *Engine {
	t.Helper()

	cfg := engine.DefaultConfig(filepath.Join(t.TempDir(), "test.db"))
	e, err := New(cfg)
	if err != nil {
		t.Fatalf("failed to create engine: %v", err)
	}
	t.Cleanup(func() {
		if err := e.Close(); err != nil {
			t.Errorf("failed to close engine: %v", err)
		}
	})
	return e
}

// ============= 基础 CRUD 测试 =============

func TestEngine_PutGet(t *testing.T) {
	e := testEngine(t)

	key := []byte("test-key")
	value := []byte("test-value")

	if err := e.Put(key, value); err != nil {
		t.Fatalf("Put failed: %v", err)
	}

	got, err := e.Get(key)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if !bytes.Equal(got, value) {
		t.Errorf("Get returned %q, want %q", got, value)
	}
}

func TestEngine_GetNotFound(t *testing.T) {
	e := testEngine(t)

	_, err := e.Get([]byte("nonexistent"))
	if err != engine.ErrNotFound {
		t.Errorf("Get returned error %v, want ErrNotFound", err)
	}
}

func TestEngine_DeleteAndHas(t *testing.T) {
	e := testEngine(t)
	key := []byte("delete-key")

	if err := e.Put(key, []byte("v")); err != nil {
		t.Fatalf("Put failed: %v", err)
	}
	if ok, err := e.Has(key); err != nil || !ok {
		t.Fatalf("Has = %v, %v; want true, nil", ok, err)
	}
	if err := e.Delete(key); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if ok, err := e.Has(key); err != nil || ok {
		t.Fatalf("Has after delete = %v, %v; want false, nil", ok, err)
	}
	// 幂等
	if err := e.Delete(key); err != nil {
		t.Errorf("second Delete failed: %v", err)
	}
}

func TestEngine_EmptyKey(t *testing.T) {
	e := testEngine(t)

	if _, err := e.Get(nil); err != engine.ErrEmptyKey {
		t.Errorf("Get(nil) = %v, want ErrEmptyKey", err)
	}
	if err := e.Put([]byte{}, []byte("v")); err != engine.ErrEmptyKey {
		t.Errorf("Put(empty) = %v, want ErrEmptyKey", err)
	}
}

func TestEngine_Closed(t *testing.T) {
	cfg := engine.DefaultConfig(filepath.Join(t.TempDir(), "closed.db"))
	e, err := New(cfg)
	if err != nil {
		t.Fatalf("failed to create engine: %v", err)
	}
	if err := e.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}
	if err := e.Close(); err != nil {
		t.Errorf("second Close = %v, want nil", err)
	}
	if _, err := e.Get([]byte("k")); err != engine.ErrClosed {
		t.Errorf("Get after close = %v, want ErrClosed", err)
	}
	if err := e.Start(); err != engine.ErrClosed {
		t.Errorf("Start after close = %v, want ErrClosed", err)
	}
}

func TestEngine_Persistence(t *testing.T) {
	path := filepath.Join(t.TempDir(), "persist.db")

	e, err := New(engine.DefaultConfig(path))
	if err != nil {
		t.Fatalf("failed to create engine: %v", err)
	}
	if err := e.Put([]byte("k"), []byte("v")); err != nil {
		t.Fatalf("Put failed: %v", err)
	}
	if err := e.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	reopened, err := New(engine.DefaultConfig(path))
	if err != nil {
		t.Fatalf("failed to reopen engine: %v", err)
	}
	defer reopened.Close()

	got, err := reopened.Get([]byte("k"))
	if err != nil {
		t.Fatalf("Get after reopen failed: %v", err)
	}
	if string(got) != "v" {
		t.Errorf("Get after reopen = %q, want %q", got, "v")
	}
}

func TestEngine_InMemory(t *testing.T) {
	cfg := engine.DefaultConfig("")
	cfg.InMemory = true
	e, err := New(cfg)
	if err != nil {
		t.Fatalf("failed to create in-memory engine: %v", err)
	}
	defer e.Close()

	if err := e.Start(); err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	if err := e.Put([]byte("k"), []byte("v")); err != nil {
		t.Fatalf("Put failed: %v", err)
	}
	stats := e.Stats()
	if stats.KeyCount != 1 || stats.NumWrites != 1 {
		t.Errorf("Stats = %+v, want 1 key and 1 write", stats)
	}
}

func TestEngine_PutWithTTL(t *testing.T) {
	e := testEngine(t)

	if err := e.PutWithTTL([]byte("ttl"), []byte("v"), time.Hour); err != nil {
		t.Fatalf("PutWithTTL failed: %v", err)
	}
	if ok, _ := e.Has([]byte("ttl")); !ok {
		t.Error("key with long TTL should exist")
	}
}

func TestEngine_ConcurrentAccess(t *testing.T) {
	e := testEngine(t)

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			key := []byte{byte('a' + i)}
			if err := e.Put(key, key); err != nil {
				t.Errorf("Put failed: %v", err)
				return
			}
			if _, err := e.Get(key); err != nil {
				t.Errorf("Get failed: %v", err)
			}
		}(i)
	}
	wg.Wait()
}
