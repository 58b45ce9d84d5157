// Package metrics 提供外壳的 Prometheus 监控指标
//
// 指标列表：
//
//	shell_remote_load_total{container,result}   远程模块加载次数，result 为 ok 或失败阶段
//	shell_remote_load_duration_seconds          远程模块加载耗时
//	shell_registration_state                    远程注册状态（0 none，1 in-progress，2 ready）
//	shell_registry_entries{registry}            注册表条目数，抓取时读取
//
// # 快速开始
//
//	reg := prometheus.NewRegistry()
//	c, err := metrics.NewCollector(reg, metrics.Sources{Routes: routes.Len})
//	if err != nil {
//	    return err
//	}
//	loader := federation.NewLoader(runner, resolver, federation.WithLoadObserver(c.ObserveRemoteLoad))
//
// 指标注册在可注入的 prometheus.Registerer 上，未注入时使用独立的 Registry，
// 因此多个外壳实例可以并存于同一进程。
package metrics
