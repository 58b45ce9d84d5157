package compose

import (
	"github.com/dep2p/go-shell/pkg/types"
)

// HoistOptions 路由提升选项
type HoistOptions struct {
	// WrapManagedRoutes 包装所有托管路由，为 nil 时托管路由原样输出
	WrapManagedRoutes func(managed []*types.Route) *types.Route

	// AllowedPaths 允许提升的路径，为空表示不限制
	AllowedPaths []string
}

// HoistRoutes 执行路由提升
//
// 输出为新的深拷贝：先是去除 Hoist 标记的提升路由，
// 然后是托管路由或包装后的单个节点。
func HoistRoutes(routes []*types.RootRoute, opts HoistOptions) ([]*types.Route, error) {
	var hoisted, managed []*types.Route
	for _, r := range routes {
		if r == nil {
			continue
		}
		if r.Hoist {
			hoisted = append(hoisted, r.AsRoute())
		} else {
			managed = append(managed, r.AsRoute())
		}
	}

	if len(opts.AllowedPaths) > 0 {
		if forbidden := forbiddenPaths(hoisted, opts.AllowedPaths); len(forbidden) > 0 {
			return nil, &HoistError{Paths: forbidden}
		}
	}

	out := make([]*types.Route, 0, len(hoisted)+len(managed))
	out = append(out, hoisted...)

	if opts.WrapManagedRoutes == nil {
		return append(out, managed...), nil
	}
	if wrapped := opts.WrapManagedRoutes(managed); wrapped != nil {
		out = append(out, wrapped.Clone())
	}
	return out, nil
}

// forbiddenPaths 收集不在允许列表中的路径
func forbiddenPaths(hoisted []*types.Route, allowed []string) []string {
	allow := make(map[string]struct{}, len(allowed))
	for _, p := range allowed {
		allow[p] = struct{}{}
	}

	seen := make(map[string]struct{})
	var forbidden []string
	for _, r := range hoisted {
		for _, p := range r.Paths() {
			if _, ok := allow[p]; ok {
				continue
			}
			if _, dup := seen[p]; dup {
				continue
			}
			seen[p] = struct{}{}
			forbidden = append(forbidden, p)
		}
	}
	return forbidden
}

// ApplyDefaultErrorElement 为所有未设置 ErrorElement 的路由（递归）设置默认值
//
// 返回新的深拷贝，不修改输入。
func ApplyDefaultErrorElement(routes []*types.Route, element any) []*types.Route {
	out := make([]*types.Route, 0, len(routes))
	for _, r := range routes {
		if r == nil {
			continue
		}
		c := r.Clone()
		applyErrorElement(c, element)
		out = append(out, c)
	}
	return out
}

func applyErrorElement(r *types.Route, element any) {
	if r.ErrorElement == nil {
		r.ErrorElement = element
	}
	for _, child := range r.Children {
		applyErrorElement(child, element)
	}
}
