package registration

import (
	"fmt"
	"net/url"

	pkgif "github.com/dep2p/go-shell/pkg/interfaces"
)

// 远程入口约定
const (
	// EntryPoint 远程入口文件名
	EntryPoint = "remoteEntry.js"
	// ModuleName 远程容器暴露的注册模块名
	ModuleName = "./register"
)

// ResolveEntryURL 计算远程入口地址
//
// base 必须是绝对地址。EntryPoint 按 RFC 3986 相对 base 解析：
// 不以 "/" 结尾的最后一段被替换，"http://h/apps/a" 得到 "http://h/apps/remoteEntry.js"。
func ResolveEntryURL(base string) (string, error) {
	u, err := url.Parse(base)
	if err != nil {
		return "", fmt.Errorf("%w %q: %v", ErrInvalidRemoteURL, base, err)
	}
	if !u.IsAbs() || u.Host == "" {
		return "", fmt.Errorf("%w %q: must be absolute", ErrInvalidRemoteURL, base)
	}
	return u.ResolveReference(&url.URL{Path: EntryPoint}).String(), nil
}

// ResolveRegister 从模块导出中取出 register 函数
//
// 支持的导出形式：
//   - pkgif.ModuleExports / *pkgif.ModuleExports
//   - 实现 pkgif.RemoteModule 的值
//   - pkgif.ModuleRegisterFunc 或同签名函数
//   - map[string]any{"register": ...}
func ResolveRegister(exports any) (pkgif.ModuleRegisterFunc, bool) {
	switch v := exports.(type) {
	case nil:
		return nil, false
	case pkgif.ModuleExports:
		return v.Register, v.Register != nil
	case *pkgif.ModuleExports:
		if v == nil {
			return nil, false
		}
		return v.Register, v.Register != nil
	case pkgif.ModuleRegisterFunc:
		return v, v != nil
	case func(pkgif.Runtime, any):
		return v, v != nil
	case map[string]any:
		fn, ok := v["register"]
		if !ok {
			return nil, false
		}
		if _, nested := fn.(map[string]any); nested {
			return nil, false
		}
		return ResolveRegister(fn)
	case pkgif.RemoteModule:
		return v.Register, true
	default:
		return nil, false
	}
}
