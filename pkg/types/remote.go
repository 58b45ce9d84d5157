package types

import (
	"encoding/json"
	"fmt"
)

// RemoteDefinition 远程模块描述
//
// 由宿主配置提供，不做动态发现。
type RemoteDefinition struct {
	// Name 容器名称
	Name string `json:"name"`

	// URL 远程模块的基础地址
	URL string `json:"url"`
}

// String 返回描述的字符串表示
func (d RemoteDefinition) String() string {
	return fmt.Sprintf("%s@%s", d.Name, d.URL)
}

// RemoteModuleRegistrationError 单个远程模块的注册错误
//
// 编排器对每个失败的远程模块记录一条，不会向上抛出。
type RemoteModuleRegistrationError struct {
	// URL 远程入口地址
	URL string `json:"url"`

	// ContainerName 容器名称
	ContainerName string `json:"containerName"`

	// ModuleName 暴露的模块名称
	ModuleName string `json:"moduleName"`

	// Err 底层错误
	Err error `json:"-"`
}

// Error 实现 error 接口
func (e *RemoteModuleRegistrationError) Error() string {
	return fmt.Sprintf("remote %q (container %q, module %q): %v", e.URL, e.ContainerName, e.ModuleName, e.Err)
}

// Unwrap 返回底层错误
func (e *RemoteModuleRegistrationError) Unwrap() error {
	return e.Err
}

// MarshalJSON 输出包含错误消息的 JSON
func (e *RemoteModuleRegistrationError) MarshalJSON() ([]byte, error) {
	msg := ""
	if e.Err != nil {
		msg = e.Err.Error()
	}
	return json.Marshal(struct {
		URL           string `json:"url"`
		ContainerName string `json:"containerName"`
		ModuleName    string `json:"moduleName"`
		Error         string `json:"error"`
	}{e.URL, e.ContainerName, e.ModuleName, msg})
}
