package metrics

import (
	"errors"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/dep2p/go-shell/internal/core/federation"
	"github.com/dep2p/go-shell/pkg/types"
)

const namespace = "shell"

// 加载结果标签
const (
	ResultOK    = "ok"
	ResultError = "error"
)

// Sources 注册表条目数来源，字段为 nil 时不输出对应标签
type Sources struct {
	Routes          func() int
	NavigationItems func() int
	ModuleRoutes    func() int
}

// Collector Prometheus 指标收集器
type Collector struct {
	loads     *prometheus.CounterVec
	durations prometheus.Histogram
	state     prometheus.Gauge
	registry  *registryCollector
}

// NewCollector 创建指标收集器并注册到 reg
//
// reg 为 nil 时使用新的 prometheus.Registry。
func NewCollector(reg prometheus.Registerer, sources Sources) (*Collector, error) {
	if reg == nil {
		reg = prometheus.NewRegistry()
	}

	c := &Collector{
		loads: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "remote_load_total",
				Help:      "Total remote module loads by container and result.",
			},
			[]string{"container", "result"},
		),
		durations: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "remote_load_duration_seconds",
				Help:      "Remote module load duration in seconds.",
				Buckets:   prometheus.DefBuckets,
			},
		),
		state: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "registration_state",
				Help:      "Remote module registration state (0 none, 1 in-progress, 2 ready).",
			},
		),
		registry: newRegistryCollector(sources),
	}

	for _, col := range []prometheus.Collector{c.loads, c.durations, c.state, c.registry} {
		if err := reg.Register(col); err != nil {
			return nil, err
		}
	}
	return c, nil
}

// ObserveRemoteLoad 记录一次远程模块加载
func (c *Collector) ObserveRemoteLoad(_ string, container string, err error, elapsed time.Duration) {
	c.loads.WithLabelValues(container, resultLabel(err)).Inc()
	c.durations.Observe(elapsed.Seconds())
}

// SetRegistrationState 记录远程注册状态
func (c *Collector) SetRegistrationState(state types.RegistrationState) {
	c.state.Set(float64(state))
}

// resultLabel 把加载错误映射为 result 标签
func resultLabel(err error) string {
	if err == nil {
		return ResultOK
	}
	var le *federation.LoadError
	if errors.As(err, &le) {
		return string(le.Stage)
	}
	return ResultError
}

// ============================================================================
//                              注册表条目数
// ============================================================================

// registryCollector 在抓取时读取注册表条目数
type registryCollector struct {
	desc    *prometheus.Desc
	sources Sources
}

func newRegistryCollector(sources Sources) *registryCollector {
	return &registryCollector{
		desc: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, "", "registry_entries"),
			"Number of entries per registry.",
			[]string{"registry"}, nil,
		),
		sources: sources,
	}
}

// Describe 实现 prometheus.Collector
func (r *registryCollector) Describe(ch chan<- *prometheus.Desc) {
	ch <- r.desc
}

// Collect 实现 prometheus.Collector
func (r *registryCollector) Collect(ch chan<- prometheus.Metric) {
	emit := func(name string, fn func() int) {
		if fn == nil {
			return
		}
		ch <- prometheus.MustNewConstMetric(r.desc, prometheus.GaugeValue, float64(fn()), name)
	}
	emit("routes", r.sources.Routes)
	emit("navigation_items", r.sources.NavigationItems)
	emit("module_routes", r.sources.ModuleRoutes)
}
