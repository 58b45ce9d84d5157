package engine

import (
	"github.com/dep2p/go-shell/pkg/interfaces"
)

// InternalEngine 内部存储引擎接口
//
// 在公共 Engine 接口基础上增加生命周期管理。
type InternalEngine interface {
	interfaces.Engine

	// Start 启动后台任务（如垃圾回收）
	Start() error

	// Stats 返回引擎统计信息
	Stats() *Stats
}

// Stats 存储引擎统计信息
type Stats struct {
	// KeyCount 键数量（可能为估算值）
	KeyCount int64 `json:"keyCount"`

	// DiskSize 磁盘占用（字节），内存引擎为 0
	DiskSize int64 `json:"diskSize"`

	// NumReads 读取次数
	NumReads int64 `json:"numReads"`

	// NumWrites 写入次数
	NumWrites int64 `json:"numWrites"`

	// NumDeletes 删除次数
	NumDeletes int64 `json:"numDeletes"`
}
