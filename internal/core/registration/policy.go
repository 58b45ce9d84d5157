package registration

import (
	"fmt"
	"strings"
)

// PanicPolicy 远程注册函数 panic 的处理策略
type PanicPolicy int

const (
	// PanicCapture 折叠为该远程模块的错误
	PanicCapture PanicPolicy = iota
	// PanicPropagate 所有远程模块处理完成后在调用方重新 panic
	PanicPropagate
)

// String 返回策略的字符串表示
func (p PanicPolicy) String() string {
	switch p {
	case PanicCapture:
		return "capture"
	case PanicPropagate:
		return "propagate"
	default:
		return "unknown"
	}
}

// ParsePanicPolicy 解析策略名称，空字符串返回 PanicCapture
func ParsePanicPolicy(s string) (PanicPolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "capture":
		return PanicCapture, nil
	case "propagate":
		return PanicPropagate, nil
	default:
		return PanicCapture, fmt.Errorf("unknown panic policy %q", s)
	}
}
