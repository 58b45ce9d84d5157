package eventbus

import (
	"context"
	"testing"

	pkgif "github.com/dep2p/go-shell/pkg/interfaces"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx"
)

// ============================================================================
// Fx 模块测试
// ============================================================================

// TestModule_Load 测试 Fx 模块加载
func TestModule_Load(t *testing.T) {
	var loadedBus pkgif.EventBus

	app := fx.New(
		fx.NopLogger,
		Module(),
		fx.Invoke(func(bus pkgif.EventBus) {
			loadedBus = bus
		}),
	)

	ctx := context.Background()
	require.NoError(t, app.Start(ctx))
	assert.NotNil(t, loadedBus, "EventBus not injected by Fx")
	require.NoError(t, app.Stop(ctx))
}

// TestModule_SameInstance 接口与具体类型指向同一个总线
func TestModule_SameInstance(t *testing.T) {
	var (
		iface pkgif.EventBus
		bus   *Bus
	)
	app := fx.New(fx.NopLogger, Module(), fx.Populate(&iface, &bus))
	require.NoError(t, app.Err())

	assert.Same(t, bus, iface.(*Bus))
	bus.Dispatch("ping", nil)
	assert.EqualValues(t, 1, iface.(*Bus).Dispatched())
}
