package registration

import (
	"context"
	"time"

	"github.com/benbjohnson/clock"
)

// DefaultPollInterval 默认轮询间隔
const DefaultPollInterval = 10 * time.Millisecond

// WaitUntil 以固定间隔轮询 isCompleted，直到返回 true 或 ctx 结束
//
// clk 为 nil 时使用真实时钟；interval <= 0 时使用 DefaultPollInterval。
func WaitUntil(ctx context.Context, clk clock.Clock, isCompleted func() bool, interval time.Duration) error {
	if isCompleted() {
		return nil
	}
	if clk == nil {
		clk = clock.New()
	}
	if interval <= 0 {
		interval = DefaultPollInterval
	}

	ticker := clk.Ticker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			if isCompleted() {
				return nil
			}
		}
	}
}
