package metrics

import (
	"time"

	"github.com/dep2p/go-shell/pkg/types"
)

// Reporter 记录外壳运行指标
type Reporter interface {
	// ObserveRemoteLoad 记录一次远程模块加载
	ObserveRemoteLoad(url, container string, err error, elapsed time.Duration)

	// SetRegistrationState 记录远程注册状态
	SetRegistrationState(state types.RegistrationState)
}

// 确保 Collector 实现 Reporter 接口
var _ Reporter = (*Collector)(nil)
