package compose

import (
	"sort"

	"github.com/dep2p/go-shell/pkg/types"
)

// LinkProps 链接属性
type LinkProps struct {
	To         string            `json:"to"`
	Attributes map[string]string `json:"attributes,omitempty"`
}

// RenderItem 传给渲染回调的导航项
type RenderItem struct {
	Content         any            `json:"content,omitempty"`
	LinkProps       LinkProps      `json:"linkProps"`
	AdditionalProps map[string]any `json:"additionalProps"`
}

// Composable 可合并子节点的渲染结果
type Composable[T any] interface {
	// WithChildren 返回把子层渲染结果合并进自身后的新值
	WithChildren(section T) T
}

// RenderItemFunc 渲染单个导航项
type RenderItemFunc[T any] func(item RenderItem, index, level int) T

// RenderSectionFunc 渲染一层导航项
type RenderSectionFunc[T any] func(elements []T, index, level int) T

// RenderNavigationItems 渲染导航树
//
// 顶层导航项按优先级稳定排序；子层保持注册顺序。
func RenderNavigationItems[T Composable[T]](items []*types.NavigationItem, renderItem RenderItemFunc[T], renderSection RenderSectionFunc[T]) T {
	return renderItems(SortNavigationItems(items), renderItem, renderSection, 0, 0)
}

func renderItems[T Composable[T]](items []*types.NavigationItem, renderItem RenderItemFunc[T], renderSection RenderSectionFunc[T], index, level int) T {
	elements := make([]T, 0, len(items))
	for i, item := range items {
		el := renderItem(toRenderItem(item), i, level)
		if children := compact(item.Children); len(children) > 0 {
			el = el.WithChildren(renderItems(children, renderItem, renderSection, 0, level+1))
		}
		elements = append(elements, el)
	}
	return renderSection(elements, index, level)
}

// SortNavigationItems 按优先级降序稳定排序，返回新切片
//
// 未设置优先级的项排在所有设置了优先级的项之后；
// 优先级相同（或都未设置）的项保持输入顺序。nil 项被丢弃。
func SortNavigationItems(items []*types.NavigationItem) []*types.NavigationItem {
	sorted := compact(items)
	sort.SliceStable(sorted, func(i, j int) bool {
		return comparePriority(sorted[i], sorted[j]) < 0
	})
	return sorted
}

// comparePriority 比较两个导航项，负数表示 a 排在前面
func comparePriority(a, b *types.NavigationItem) int {
	switch {
	case a.Priority == nil && b.Priority == nil:
		return 0
	case b.Priority == nil:
		return -1
	case a.Priority == nil:
		return 1
	case *a.Priority > *b.Priority:
		return -1
	case *a.Priority < *b.Priority:
		return 1
	default:
		return 0
	}
}

func toRenderItem(item *types.NavigationItem) RenderItem {
	props := make(map[string]any, len(item.AdditionalProps))
	for k, v := range item.AdditionalProps {
		props[k] = v
	}
	var attrs map[string]string
	if len(item.Attributes) > 0 {
		attrs = make(map[string]string, len(item.Attributes))
		for k, v := range item.Attributes {
			attrs[k] = v
		}
	}
	return RenderItem{
		Content:         item.Content,
		LinkProps:       LinkProps{To: item.To, Attributes: attrs},
		AdditionalProps: props,
	}
}

func compact(items []*types.NavigationItem) []*types.NavigationItem {
	out := make([]*types.NavigationItem, 0, len(items))
	for _, it := range items {
		if it != nil {
			out = append(out, it)
		}
	}
	return out
}
