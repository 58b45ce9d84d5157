package compose

import (
	"fmt"
	"sort"
	"strings"

	"github.com/dep2p/go-shell/pkg/types"
)

// Element 通用的渲染树节点
type Element struct {
	Kind     string         `json:"kind"`
	Props    map[string]any `json:"props,omitempty"`
	Text     string         `json:"text,omitempty"`
	Children []Element      `json:"children,omitempty"`
}

var _ Composable[Element] = Element{}

// WithChildren 实现 Composable，把子层追加为最后一个子节点
func (e Element) WithChildren(section Element) Element {
	c := e
	c.Children = make([]Element, 0, len(e.Children)+1)
	c.Children = append(c.Children, e.Children...)
	c.Children = append(c.Children, section)
	return c
}

// String 以缩进文本形式输出渲染树
func (e Element) String() string {
	var sb strings.Builder
	e.write(&sb, 0)
	return sb.String()
}

func (e Element) write(sb *strings.Builder, depth int) {
	sb.WriteString(strings.Repeat("  ", depth))
	sb.WriteString(e.Kind)

	keys := make([]string, 0, len(e.Props))
	for k := range e.Props {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Fprintf(sb, " %s=%v", k, e.Props[k])
	}
	if e.Text != "" {
		fmt.Fprintf(sb, " %q", e.Text)
	}
	sb.WriteByte('\n')

	for _, child := range e.Children {
		child.write(sb, depth+1)
	}
}

// ElementRenderItem 默认导航项渲染：li > a
func ElementRenderItem(item RenderItem, index, level int) Element {
	props := map[string]any{"href": item.LinkProps.To}
	for k, v := range item.LinkProps.Attributes {
		props[k] = v
	}
	text := ""
	if item.Content != nil {
		text = fmt.Sprint(item.Content)
	}
	return Element{
		Kind:     "li",
		Props:    item.AdditionalProps,
		Children: []Element{{Kind: "a", Props: props, Text: text}},
	}
}

// ElementRenderSection 默认导航层渲染：ul
func ElementRenderSection(elements []Element, index, level int) Element {
	return Element{
		Kind:     "ul",
		Props:    map[string]any{"level": level},
		Children: elements,
	}
}

// RenderElementTree 使用默认回调渲染导航树
func RenderElementTree(items []*types.NavigationItem) Element {
	return RenderNavigationItems[Element](items, ElementRenderItem, ElementRenderSection)
}
