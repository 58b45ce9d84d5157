package types

// ============================================================================
//                              Route - 路由描述
// ============================================================================

// Route 路由描述
//
// 路由的身份是位置性的：不同模块注册相同 Path 是合法的，二者并存。
type Route struct {
	// Path 路由路径，如 "/remote1/page"
	Path string `json:"path,omitempty"`

	// Index 是否为索引路由
	Index bool `json:"index,omitempty"`

	// Element 渲染层元素（不透明值）
	Element any `json:"-"`

	// ErrorElement 错误兜底元素（不透明值）
	ErrorElement any `json:"-"`

	// Children 子路由
	Children []*Route `json:"children,omitempty"`

	// Meta 附加元数据
	Meta map[string]any `json:"meta,omitempty"`
}

// Clone 深拷贝路由（递归拷贝子路由）
func (r *Route) Clone() *Route {
	if r == nil {
		return nil
	}
	c := &Route{
		Path:         r.Path,
		Index:        r.Index,
		Element:      r.Element,
		ErrorElement: r.ErrorElement,
		Meta:         cloneAnyMap(r.Meta),
	}
	if r.Children != nil {
		c.Children = make([]*Route, 0, len(r.Children))
		for _, child := range r.Children {
			if child != nil {
				c.Children = append(c.Children, child.Clone())
			}
		}
	}
	return c
}

// Paths 递归收集当前路由及所有子路由的路径（跳过空路径）
func (r *Route) Paths() []string {
	if r == nil {
		return nil
	}
	var paths []string
	if r.Path != "" {
		paths = append(paths, r.Path)
	}
	for _, child := range r.Children {
		paths = append(paths, child.Paths()...)
	}
	return paths
}

// ============================================================================
//                              RootRoute - 根路由
// ============================================================================

// RootRoute 根路由
//
// 在 Route 的基础上增加 Hoist 标记：为 true 时路由被提升到路由树顶层，
// 绕过宿主为托管路由提供的布局包装。
type RootRoute struct {
	Route

	// Hoist 是否提升到顶层
	Hoist bool `json:"hoist,omitempty"`
}

// Clone 深拷贝根路由
func (r *RootRoute) Clone() *RootRoute {
	if r == nil {
		return nil
	}
	return &RootRoute{
		Route: *r.Route.Clone(),
		Hoist: r.Hoist,
	}
}

// AsRoute 返回去除 Hoist 标记后的路由副本
func (r *RootRoute) AsRoute() *Route {
	if r == nil {
		return nil
	}
	return r.Route.Clone()
}
