package types

// NavigationItem 导航项描述
//
// 导航项可以嵌套，子项遵循同样的约定。
type NavigationItem struct {
	// To 链接目标
	To string `json:"to"`

	// Content 显示内容（不透明值）
	Content any `json:"content,omitempty"`

	// Attributes 链接的额外属性，如 target、rel
	Attributes map[string]string `json:"attributes,omitempty"`

	// AdditionalProps 传递给渲染回调的额外属性
	AdditionalProps map[string]any `json:"additionalProps,omitempty"`

	// Priority 优先级，值越大越靠前；nil 排在所有设置了优先级的项之后
	Priority *int `json:"priority,omitempty"`

	// Children 子导航项
	Children []*NavigationItem `json:"children,omitempty"`
}

// Clone 深拷贝导航项
func (n *NavigationItem) Clone() *NavigationItem {
	if n == nil {
		return nil
	}
	c := &NavigationItem{
		To:              n.To,
		Content:         n.Content,
		Attributes:      cloneStringMap(n.Attributes),
		AdditionalProps: cloneAnyMap(n.AdditionalProps),
	}
	if n.Priority != nil {
		p := *n.Priority
		c.Priority = &p
	}
	if n.Children != nil {
		c.Children = make([]*NavigationItem, 0, len(n.Children))
		for _, child := range n.Children {
			if child != nil {
				c.Children = append(c.Children, child.Clone())
			}
		}
	}
	return c
}

// Priority 返回指向 p 的指针，便于构造 NavigationItem 字面量
func Priority(p int) *int {
	return &p
}
