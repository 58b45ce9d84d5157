package federation

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx"
)

// TestModule_Load 测试 Fx 模块加载
func TestModule_Load(t *testing.T) {
	var loader *Loader
	var ns *Namespace

	app := fx.New(
		fx.NopLogger,
		fx.Supply(NewModuleCatalog()),
		fx.Supply(&Config{Timeout: 3 * time.Second}),
		Module(),
		fx.Populate(&loader, &ns),
	)
	require.NoError(t, app.Start(context.Background()))
	defer func() { require.NoError(t, app.Stop(context.Background())) }()

	require.NotNil(t, loader)
	assert.Equal(t, 3*time.Second, loader.Timeout())

	ns.Bind("x", &fakeContainer{})
	_, ok := loader.resolver.Resolve("", "x")
	assert.True(t, ok, "namespace is the default resolver")
}
