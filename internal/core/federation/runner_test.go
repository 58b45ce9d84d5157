package federation

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/klauspost/compress/gzhttp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkgif "github.com/dep2p/go-shell/pkg/interfaces"
)

func newRemoteServer(t *testing.T, body string) *httptest.Server {
	t.Helper()

	wrapper, err := gzhttp.NewWrapper(gzhttp.MinSize(0))
	require.NoError(t, err)

	mux := http.NewServeMux()
	mux.HandleFunc("/remote1/remoteEntry.js", func(w http.ResponseWriter, r *http.Request) {
		assert.Contains(t, r.Header.Get("Accept-Encoding"), "gzip")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(body))
	})
	mux.HandleFunc("/slow/remoteEntry.js", func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(5 * time.Second):
		}
	})

	srv := httptest.NewServer(wrapper(mux))
	t.Cleanup(srv.Close)
	return srv
}

// TestHTTPScriptRunner_LoadRemote 测试通过 HTTP 加载远程模块
func TestHTTPScriptRunner_LoadRemote(t *testing.T) {
	srv := newRemoteServer(t, manifestJSON)

	catalog := NewModuleCatalog()
	catalog.ProvideRegister("remote1/register", func(pkgif.Runtime, any) {})
	ns := NewNamespace()
	eval, err := NewManifestEvaluator(catalog, ns, 8)
	require.NoError(t, err)

	l := NewLoader(NewHTTPScriptRunner(eval), ns)
	exports, err := l.LoadRemote(context.Background(), srv.URL+"/remote1/remoteEntry.js", "remote1", "./register")
	require.NoError(t, err)
	assert.NotNil(t, exports.(pkgif.ModuleExports).Register)
	assert.Equal(t, 0, l.Document().Len())
	t.Log("✅ HTTP 加载远程模块测试通过")
}

// TestHTTPScriptRunner_NotFound 测试入口不存在
func TestHTTPScriptRunner_NotFound(t *testing.T) {
	srv := newRemoteServer(t, manifestJSON)
	eval, err := NewManifestEvaluator(NewModuleCatalog(), NewNamespace(), 8)
	require.NoError(t, err)

	l := NewLoader(NewHTTPScriptRunner(eval), NewNamespace())
	err = l.LoadRemoteScript(context.Background(), srv.URL+"/missing/remoteEntry.js")
	assert.ErrorIs(t, err, ErrScriptLoad)
	assert.Contains(t, err.Error(), "unexpected status 404")
}

// TestHTTPScriptRunner_Timeout 测试慢远程超时且请求被取消
func TestHTTPScriptRunner_Timeout(t *testing.T) {
	srv := newRemoteServer(t, manifestJSON)
	eval, err := NewManifestEvaluator(NewModuleCatalog(), NewNamespace(), 8)
	require.NoError(t, err)

	l := NewLoader(NewHTTPScriptRunner(eval), NewNamespace(), WithTimeout(100*time.Millisecond))
	err = l.LoadRemoteScript(context.Background(), srv.URL+"/slow/remoteEntry.js")
	assert.ErrorIs(t, err, ErrScriptTimeout)
}

// TestHTTPScriptRunner_MaxEntrySize 测试入口大小限制
func TestHTTPScriptRunner_MaxEntrySize(t *testing.T) {
	srv := newRemoteServer(t, `{"name":"remote1","pad":"`+strings.Repeat("x", 256)+`"}`)
	eval, err := NewManifestEvaluator(NewModuleCatalog(), NewNamespace(), 8)
	require.NoError(t, err)

	runner := NewHTTPScriptRunner(eval, WithMaxEntrySize(64), WithHTTPClient(NewHTTPClient()))
	err = runner.Run(context.Background(), &ScriptElement{Src: srv.URL + "/remote1/remoteEntry.js"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "exceeds 64 bytes")
}
