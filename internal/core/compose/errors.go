package compose

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrForbiddenHoistedPath 提升路由的路径不在允许列表中
	ErrForbiddenHoistedPath = errors.New("compose: hoisted route path is not allowed")
)

// HoistError 路由提升配置错误
type HoistError struct {
	// Paths 不在允许列表中的路径（按出现顺序，去重）
	Paths []string
}

// Error 实现 error 接口
func (e *HoistError) Error() string {
	return fmt.Sprintf("%v: [%s]", ErrForbiddenHoistedPath, strings.Join(e.Paths, ", "))
}

// Unwrap 返回 ErrForbiddenHoistedPath
func (e *HoistError) Unwrap() error {
	return ErrForbiddenHoistedPath
}
