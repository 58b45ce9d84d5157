package federation

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkgif "github.com/dep2p/go-shell/pkg/interfaces"
)

const remoteURL = "http://remote1.test/remoteEntry.js"

func exportsFactory(v any) pkgif.ModuleFactory {
	return func() (any, error) { return v, nil }
}

// ============================================================================
// LoadRemoteScript
// ============================================================================

// TestLoader_LoadRemoteScript_Success 测试加载成功并移除脚本引用
func TestLoader_LoadRemoteScript_Success(t *testing.T) {
	doc := NewDocument()
	var seen *ScriptElement
	runner := ScriptRunnerFunc(func(_ context.Context, el *ScriptElement) error {
		seen = el
		assert.Equal(t, 1, doc.Len(), "script is attached while running")
		assert.Equal(t, ScriptLoading, el.State())
		return nil
	})

	l := NewLoader(runner, NewNamespace(), WithDocument(doc))
	require.NoError(t, l.LoadRemoteScript(context.Background(), remoteURL))

	require.NotNil(t, seen)
	assert.Equal(t, remoteURL, seen.Src)
	assert.Equal(t, "text/javascript", seen.Type)
	assert.True(t, seen.Async)
	assert.NotEmpty(t, seen.ID)
	assert.Equal(t, ScriptLoaded, seen.State())
	assert.Equal(t, 0, doc.Len())
	t.Log("✅ 脚本加载成功测试通过")
}

// TestLoader_LoadRemoteScript_Error 测试加载失败
func TestLoader_LoadRemoteScript_Error(t *testing.T) {
	doc := NewDocument()
	cause := errors.New("404")
	l := NewLoader(ScriptRunnerFunc(func(context.Context, *ScriptElement) error { return cause }),
		NewNamespace(), WithDocument(doc))

	err := l.LoadRemoteScript(context.Background(), remoteURL)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrScriptLoad)
	assert.ErrorIs(t, err, cause)
	assert.NotErrorIs(t, err, ErrScriptTimeout)
	assert.Contains(t, err.Error(), remoteURL)
	assert.Equal(t, 0, doc.Len())
}

// TestLoader_LoadRemoteScript_TimeoutMockClock 测试超时（模拟时钟）
func TestLoader_LoadRemoteScript_TimeoutMockClock(t *testing.T) {
	doc := NewDocument()
	mock := clock.NewMock()
	l := NewLoader(hangingRunner, NewNamespace(), WithDocument(doc), WithClock(mock))
	assert.Equal(t, DefaultTimeout, l.Timeout())

	errCh := make(chan error, 1)
	go func() { errCh <- l.LoadRemoteScript(context.Background(), remoteURL) }()

	var err error
	require.Eventually(t, func() bool {
		mock.Add(500 * time.Millisecond)
		select {
		case err = <-errCh:
			return true
		default:
			return false
		}
	}, 5*time.Second, 5*time.Millisecond)

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrScriptTimeout)

	var le *LoadError
	require.ErrorAs(t, err, &le)
	assert.Equal(t, StageTimeout, le.Stage)
	assert.Equal(t, remoteURL, le.URL)
	assert.Equal(t, 0, doc.Len(), "no injected reference remains")
}

// TestLoader_LoadRemoteScript_TimeoutCancelsRunner 测试超时后运行器的 ctx 被取消
func TestLoader_LoadRemoteScript_TimeoutCancelsRunner(t *testing.T) {
	released := make(chan error, 1)
	runner := ScriptRunnerFunc(func(ctx context.Context, _ *ScriptElement) error {
		<-ctx.Done()
		released <- ctx.Err()
		return ctx.Err()
	})
	l := NewLoader(runner, NewNamespace(), WithTimeout(20*time.Millisecond))

	err := l.LoadRemoteScript(context.Background(), remoteURL)
	require.ErrorIs(t, err, ErrScriptTimeout)

	select {
	case cause := <-released:
		assert.ErrorIs(t, cause, context.Canceled)
	case <-time.After(2 * time.Second):
		t.Fatal("runner goroutine was not released after timeout")
	}
}

// TestLoader_LoadRemoteScript_TimeoutRealClock 测试超时在 T+ε 内返回
func TestLoader_LoadRemoteScript_TimeoutRealClock(t *testing.T) {
	doc := NewDocument()
	timeout := 50 * time.Millisecond
	l := NewLoader(hangingRunner, NewNamespace(), WithDocument(doc), WithTimeout(timeout))

	start := time.Now()
	err := l.LoadRemoteScript(context.Background(), remoteURL)
	elapsed := time.Since(start)

	assert.ErrorIs(t, err, ErrScriptTimeout)
	assert.GreaterOrEqual(t, elapsed, timeout)
	assert.Less(t, elapsed, timeout+time.Second)
	assert.Equal(t, 0, doc.Len())
}

// TestLoader_LoadRemoteScript_ContextCanceled 测试调用方取消
func TestLoader_LoadRemoteScript_ContextCanceled(t *testing.T) {
	doc := NewDocument()
	l := NewLoader(hangingRunner, NewNamespace(), WithDocument(doc), WithTimeout(time.Hour))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := l.LoadRemoteScript(ctx, remoteURL)
	assert.ErrorIs(t, err, ErrScriptLoad)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 0, doc.Len())
}

// ============================================================================
// LoadRemote
// ============================================================================

// TestLoader_LoadRemote_Success 测试完整加载流程
func TestLoader_LoadRemote_Success(t *testing.T) {
	ns := NewNamespace()
	exports := pkgif.ModuleExports{Register: func(pkgif.Runtime, any) {}}
	container := &fakeContainer{factories: map[string]pkgif.ModuleFactory{
		"./register": exportsFactory(exports),
	}}
	ns.Bind("remote1", container)

	var observed []error
	l := NewLoader(okRunner, ns, WithLoadObserver(func(url, name string, err error, _ time.Duration) {
		assert.Equal(t, remoteURL, url)
		assert.Equal(t, "remote1", name)
		observed = append(observed, err)
	}))

	got, err := l.LoadRemote(context.Background(), remoteURL, "remote1", "./register")
	require.NoError(t, err)
	assert.NotNil(t, got.(pkgif.ModuleExports).Register)

	assert.Equal(t, int32(1), container.inits.Load())
	scope, ok := l.ShareScopes().Get(DefaultShareScope)
	require.True(t, ok)
	assert.Same(t, scope, container.scope)
	assert.Equal(t, []error{nil}, observed)
}

// TestLoader_LoadRemote_ShareScopeIdempotent 测试共享作用域初始化幂等
func TestLoader_LoadRemote_ShareScopeIdempotent(t *testing.T) {
	ns := NewNamespace()
	a := &fakeContainer{factories: map[string]pkgif.ModuleFactory{"./register": exportsFactory(1)}}
	b := &fakeContainer{factories: map[string]pkgif.ModuleFactory{"./register": exportsFactory(2)}}
	ns.Bind("a", a)
	ns.Bind("b", b)

	l := NewLoader(okRunner, ns)
	_, err := l.LoadRemote(context.Background(), "http://a/remoteEntry.js", "a", "./register")
	require.NoError(t, err)
	_, err = l.LoadRemote(context.Background(), "http://b/remoteEntry.js", "b", "./register")
	require.NoError(t, err)

	assert.Same(t, a.scope, b.scope)
}

// TestLoader_LoadRemote_StageErrors 测试每个阶段的错误可区分
func TestLoader_LoadRemote_StageErrors(t *testing.T) {
	cause := errors.New("cause")

	cases := []struct {
		name      string
		runner    ScriptRunner
		container pkgif.Container
		sentinel  error
		stage     Stage
		message   string
	}{
		{
			name:     "script",
			runner:   ScriptRunnerFunc(func(context.Context, *ScriptElement) error { return cause }),
			sentinel: ErrScriptLoad,
			stage:    StageScript,
			message:  "An error occurred while loading remote",
		},
		{
			name:     "missing container",
			runner:   okRunner,
			sentinel: ErrContainerUnavailable,
			stage:    StageContainer,
			message:  `Container "remote1" is not available for remote "` + remoteURL + `"`,
		},
		{
			name:      "init",
			runner:    okRunner,
			container: &fakeContainer{initErr: cause},
			sentinel:  ErrContainerInit,
			stage:     StageInit,
		},
		{
			name:      "get error",
			runner:    okRunner,
			container: &fakeContainer{getErr: cause},
			sentinel:  ErrModuleUnavailable,
			stage:     StageModule,
		},
		{
			name:      "missing module",
			runner:    okRunner,
			container: &fakeContainer{},
			sentinel:  ErrModuleUnavailable,
			stage:     StageModule,
			message:   `Module "./register" is not available for container "remote1" of remote "` + remoteURL + `"`,
		},
		{
			name:   "factory",
			runner: okRunner,
			container: &fakeContainer{factories: map[string]pkgif.ModuleFactory{
				"./register": func() (any, error) { return nil, cause },
			}},
			sentinel: ErrFactoryFailed,
			stage:    StageFactory,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ns := NewNamespace()
			if tc.container != nil {
				ns.Bind("remote1", tc.container)
			}
			l := NewLoader(tc.runner, ns)

			_, err := l.LoadRemote(context.Background(), remoteURL, "remote1", "./register")
			require.Error(t, err)
			assert.ErrorIs(t, err, tc.sentinel)

			var le *LoadError
			require.ErrorAs(t, err, &le)
			assert.Equal(t, tc.stage, le.Stage)
			assert.Equal(t, "remote1", le.Container)
			assert.Equal(t, "./register", le.Module)
			if tc.message != "" {
				assert.Contains(t, err.Error(), tc.message)
			}
		})
	}
}

// TestLoader_LoadRemote_CustomResolver 测试注入容器解析器
func TestLoader_LoadRemote_CustomResolver(t *testing.T) {
	var mu sync.Mutex
	var asked []string
	resolver := pkgif.ContainerResolverFunc(func(url, name string) (pkgif.Container, bool) {
		mu.Lock()
		asked = append(asked, url+"|"+name)
		mu.Unlock()
		return &fakeContainer{factories: map[string]pkgif.ModuleFactory{"./register": exportsFactory("ok")}}, true
	})

	l := NewLoader(okRunner, resolver)
	got, err := l.LoadRemote(context.Background(), remoteURL, "remote1", "./register")
	require.NoError(t, err)
	assert.Equal(t, "ok", got)
	assert.Equal(t, []string{remoteURL + "|remote1"}, asked)
}
