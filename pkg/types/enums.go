package types

// ============================================================================
//                              RegistrationState - 注册状态
// ============================================================================

// RegistrationState 远程模块注册状态
//
// 状态只能按 StateNone → StateInProgress → StateReady 单向迁移，
// 每个宿主生命周期内只迁移一次。
type RegistrationState int32

const (
	// StateNone 尚未开始注册
	StateNone RegistrationState = iota
	// StateInProgress 注册进行中
	StateInProgress
	// StateReady 所有远程模块都已处理完成（无论成功与否）
	StateReady
)

// String 返回状态的字符串表示
func (s RegistrationState) String() string {
	switch s {
	case StateNone:
		return "none"
	case StateInProgress:
		return "in-progress"
	case StateReady:
		return "ready"
	default:
		return "unknown"
	}
}
