package session

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx"

	"github.com/dep2p/go-shell/internal/core/runtime"
	"github.com/dep2p/go-shell/internal/core/storage"
	"github.com/dep2p/go-shell/internal/core/storage/kv"
	pkgif "github.com/dep2p/go-shell/pkg/interfaces"
)

type testSession struct {
	User  string   `json:"user"`
	Roles []string `json:"roles"`
}

func newStore(t *testing.T) *kv.Store {
	t.Helper()
	eng, err := storage.NewEngine(storage.Config{Backend: storage.BackendBadgerInMemory})
	require.NoError(t, err)
	t.Cleanup(func() { _ = eng.Close() })
	return storage.NewKVStore(eng, []byte("s/"))
}

func TestManager_SetGetClear(t *testing.T) {
	m := NewManager[testSession](newStore(t))
	assert.Equal(t, DefaultKey, m.Key())

	_, ok, err := m.GetSession()
	require.NoError(t, err)
	assert.False(t, ok)
	assert.False(t, m.IsAuthenticated())

	require.NoError(t, m.SetSession(&testSession{User: "ada", Roles: []string{"admin"}}))
	s, ok, err := m.GetSession()
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "ada", s.User)
	assert.True(t, m.IsAuthenticated())

	require.NoError(t, m.ClearSession())
	_, ok, err = m.GetSession()
	require.NoError(t, err)
	assert.False(t, ok)

	t.Log("✅ 会话读写清除测试通过")
}

func TestManager_SetNilRemoves(t *testing.T) {
	m := NewManager[testSession](newStore(t))
	require.NoError(t, m.SetSession(&testSession{User: "ada"}))
	require.NoError(t, m.SetSession(nil))
	assert.False(t, m.IsAuthenticated())

	t.Log("✅ nil 会话删除测试通过")
}

func TestManager_SharedStoreSeesWrites(t *testing.T) {
	store := newStore(t)
	writer := NewManager[testSession](store, WithKey("custom"))
	reader := NewManager[testSession](store, WithKey("custom"))

	require.NoError(t, writer.SetSession(&testSession{User: "grace"}))
	s, ok, err := reader.GetSession()
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "grace", s.User)

	t.Log("✅ 共享存储测试通过")
}

func TestManager_CorruptedSession(t *testing.T) {
	store := newStore(t)
	require.NoError(t, store.Put([]byte(DefaultKey), []byte("not-json")))

	m := NewManager[testSession](store)
	_, ok, err := m.GetSession()
	assert.False(t, ok)
	assert.ErrorIs(t, err, storage.ErrCorrupted)

	t.Log("✅ 损坏会话测试通过")
}

func TestManager_Accessor(t *testing.T) {
	m := NewManager[testSession](newStore(t))
	rt := runtime.New(runtime.Config{SessionAccessor: m.Accessor()})

	s, err := runtime.SessionAs[testSession](rt)
	require.NoError(t, err)
	assert.Equal(t, testSession{}, s)

	require.NoError(t, m.SetSession(&testSession{User: "ada"}))
	s, err = runtime.SessionAs[testSession](rt)
	require.NoError(t, err)
	assert.Equal(t, "ada", s.User)

	t.Log("✅ 会话访问器测试通过")
}

type failingStore struct{ err error }

func (s failingStore) GetJSON([]byte, interface{}) error { return s.err }
func (s failingStore) PutJSON([]byte, interface{}) error { return s.err }
func (s failingStore) Delete([]byte) error               { return s.err }

func TestManager_StoreErrors(t *testing.T) {
	boom := errors.New("boom")
	m := NewManager[testSession](failingStore{err: boom})

	assert.ErrorIs(t, m.SetSession(&testSession{}), boom)
	_, _, err := m.GetSession()
	assert.ErrorIs(t, err, boom)

	_, err = m.Accessor()()
	assert.ErrorIs(t, err, boom)

	t.Log("✅ 存储错误透传测试通过")
}

func TestModule_Load(t *testing.T) {
	var m *Manager[Data]
	var rt *runtime.Runtime

	app := fx.New(
		fx.NopLogger,
		fx.Supply(&storage.Config{Backend: storage.BackendMemory}),
		storage.Module(),
		fx.Supply(&Config{Key: "shell-session"}),
		Module(),
		fx.Provide(func(accessor pkgif.SessionAccessor) *runtime.Runtime {
			return runtime.New(runtime.Config{SessionAccessor: accessor})
		}),
		fx.Populate(&m, &rt),
	)
	require.NoError(t, app.Err())
	require.NoError(t, app.Start(context.Background()))
	defer app.Stop(context.Background())

	assert.Equal(t, "shell-session", m.Key())
	require.NoError(t, m.SetSession(&Data{"user": "ada"}))

	got, err := runtime.SessionAs[Data](rt)
	require.NoError(t, err)
	assert.Equal(t, "ada", got["user"])

	t.Log("✅ 会话 Fx 模块测试通过")
}
