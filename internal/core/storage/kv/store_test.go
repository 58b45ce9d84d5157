package kv

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dep2p/go-shell/internal/core/storage/engine"
)

func TestStore_PrefixIsolation(t *testing.T) {
	eng := engine.NewMemoryEngine()
	a := New(eng, []byte("a/"))
	b := New(eng, []byte("b/"))

	require.NoError(t, a.Put([]byte("key"), []byte("from-a")))
	require.NoError(t, b.Put([]byte("key"), []byte("from-b")))

	got, err := a.Get([]byte("key"))
	require.NoError(t, err)
	assert.Equal(t, "from-a", string(got))

	raw, err := eng.Get([]byte("b/key"))
	require.NoError(t, err)
	assert.Equal(t, "from-b", string(raw))

	require.NoError(t, a.Delete([]byte("key")))
	ok, err := b.Has([]byte("key"))
	require.NoError(t, err)
	assert.True(t, ok)

	t.Log("✅ 前缀隔离测试通过")
}

func TestStore_JSON(t *testing.T) {
	s := New(engine.NewMemoryEngine(), []byte("s/"))

	type payload struct {
		User  string `json:"user"`
		Roles []string
	}
	require.NoError(t, s.PutJSON([]byte("p"), payload{User: "ada", Roles: []string{"admin"}}))

	var got payload
	require.NoError(t, s.GetJSON([]byte("p"), &got))
	assert.Equal(t, "ada", got.User)
	assert.Equal(t, []string{"admin"}, got.Roles)

	require.NoError(t, s.Put([]byte("bad"), []byte("{")))
	assert.ErrorIs(t, s.GetJSON([]byte("bad"), &got), engine.ErrCorrupted)

	assert.True(t, engine.IsNotFound(s.GetJSON([]byte("missing"), &got)))
	assert.ErrorIs(t, s.Put(nil, nil), engine.ErrEmptyKey)

	t.Log("✅ JSON 读写测试通过")
}
