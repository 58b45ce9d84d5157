package federation

import (
	"context"
	"sync/atomic"

	pkgif "github.com/dep2p/go-shell/pkg/interfaces"
)

// fakeContainer 测试用容器
type fakeContainer struct {
	initErr   error
	getErr    error
	factories map[string]pkgif.ModuleFactory

	inits atomic.Int32
	scope pkgif.ShareScope
}

func (c *fakeContainer) Init(_ context.Context, scope pkgif.ShareScope) error {
	c.inits.Add(1)
	c.scope = scope
	return c.initErr
}

func (c *fakeContainer) Get(_ context.Context, module string) (pkgif.ModuleFactory, error) {
	if c.getErr != nil {
		return nil, c.getErr
	}
	return c.factories[module], nil
}

// okRunner 立即成功的运行器
var okRunner = ScriptRunnerFunc(func(context.Context, *ScriptElement) error { return nil })

// hangingRunner 直到 ctx 取消才返回的运行器
var hangingRunner = ScriptRunnerFunc(func(ctx context.Context, _ *ScriptElement) error {
	<-ctx.Done()
	return ctx.Err()
})
