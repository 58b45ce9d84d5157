package introspect

import (
	"context"
	"encoding/json"
	"fmt"
	"net"
	"net/http"
	"net/http/pprof"
	"runtime"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/dep2p/go-shell/internal/core/compose"
	"github.com/dep2p/go-shell/internal/core/eventbus"
	pkgif "github.com/dep2p/go-shell/pkg/interfaces"
	"github.com/dep2p/go-shell/pkg/lib/log"
	"github.com/dep2p/go-shell/pkg/types"
)

var logger = log.Logger("debug/introspect")

// DefaultAddr 默认监听地址
const DefaultAddr = "127.0.0.1:6060"

// ============================================================================
//                              配置
// ============================================================================

// StateSource 远程注册状态来源
//
// *registration.Registrar 满足该接口。
type StateSource interface {
	State() types.RegistrationState
	Errors() []*types.RemoteModuleRegistrationError
}

// RouteSource 返回提升后的路由表
type RouteSource func() ([]*types.Route, error)

// Config 服务配置
type Config struct {
	// Addr 监听地址，默认 "127.0.0.1:6060"
	Addr string

	// Runtime 运行时
	Runtime pkgif.Runtime

	// Registration 可选的远程注册状态来源
	Registration StateSource

	// Routes 可选的路由来源，为 nil 时直接输出已注册的根路由
	Routes RouteSource

	// Bus 可选的事件总线，提供 /debug/events
	Bus *eventbus.Bus

	// Gatherer 可选的指标收集器，提供 /metrics
	Gatherer prometheus.Gatherer

	// CustomHandlers 自定义处理器
	CustomHandlers map[string]http.HandlerFunc
}

// ============================================================================
//                              Server
// ============================================================================

// Server 本地自省 HTTP 服务
type Server struct {
	config Config

	server   *http.Server
	listener net.Listener

	running   bool
	startTime time.Time

	streams sync.WaitGroup
	done    chan struct{}

	mu sync.Mutex
}

// New 创建自省服务
func New(cfg Config) *Server {
	if cfg.Addr == "" {
		cfg.Addr = DefaultAddr
	}
	return &Server{
		config:    cfg,
		startTime: time.Now(),
	}
}

// Handler 返回服务的路由
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("/health", s.handleHealth)
	mux.HandleFunc("/debug/shell", s.handleShell)
	mux.HandleFunc("/debug/shell/routes", s.handleRoutes)
	mux.HandleFunc("/debug/shell/navigation", s.handleNavigation)
	mux.HandleFunc("/debug/shell/errors", s.handleErrors)
	mux.HandleFunc("/debug/runtime", s.handleRuntime)
	mux.HandleFunc("/debug/events", s.handleEvents)

	if s.config.Gatherer != nil {
		mux.Handle("/metrics", promhttp.HandlerFor(s.config.Gatherer, promhttp.HandlerOpts{}))
	}

	// pprof 端点
	mux.HandleFunc("/debug/pprof/", pprof.Index)
	mux.HandleFunc("/debug/pprof/cmdline", pprof.Cmdline)
	mux.HandleFunc("/debug/pprof/profile", pprof.Profile)
	mux.HandleFunc("/debug/pprof/symbol", pprof.Symbol)
	mux.HandleFunc("/debug/pprof/trace", pprof.Trace)

	for path, handler := range s.config.CustomHandlers {
		mux.HandleFunc(path, handler)
	}
	return mux
}

// Start 启动服务
func (s *Server) Start(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.running {
		return nil
	}

	listener, err := net.Listen("tcp", s.config.Addr)
	if err != nil {
		return err
	}
	s.listener = listener
	s.done = make(chan struct{})

	// WebSocket 流是长连接，不设置 WriteTimeout
	s.server = &http.Server{
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		if err := s.server.Serve(listener); err != nil && err != http.ErrServerClosed {
			logger.Error("自省服务异常退出", "error", err)
		}
	}()

	s.running = true
	s.startTime = time.Now()
	logger.Info("自省服务已启动", "addr", listener.Addr().String())
	return nil
}

// Stop 停止服务
func (s *Server) Stop() error {
	s.mu.Lock()
	if !s.running {
		s.mu.Unlock()
		return nil
	}

	close(s.done)
	s.running = false

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	err := s.server.Shutdown(ctx)
	s.mu.Unlock()

	// 事件流是被劫持的连接，Shutdown 不会等待它们
	s.streams.Wait()

	if err != nil {
		logger.Error("关闭自省服务失败", "error", err)
		return err
	}
	logger.Info("自省服务已停止")
	return nil
}

// Addr 返回实际监听地址
func (s *Server) Addr() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.listener != nil {
		return s.listener.Addr().String()
	}
	return s.config.Addr
}

// ============================================================================
//                              响应结构
// ============================================================================

// HealthResponse 健康检查响应
type HealthResponse struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
	Uptime    string    `json:"uptime,omitempty"`
}

// ShellResponse 外壳状态响应
type ShellResponse struct {
	Timestamp         time.Time      `json:"timestamp"`
	Uptime            string         `json:"uptime"`
	RegistrationState string         `json:"registrationState"`
	Counts            map[string]int `json:"counts"`
	FailedRemotes     int            `json:"failedRemotes"`
	Services          int            `json:"services,omitempty"`
}

// RoutesResponse 路由响应
type RoutesResponse struct {
	Routes []*types.Route `json:"routes"`
	Paths  []string       `json:"paths"`
}

// NavigationView 导航项的可序列化视图
type NavigationView struct {
	To       string            `json:"to"`
	Content  string            `json:"content,omitempty"`
	Priority *int              `json:"priority,omitempty"`
	Children []*NavigationView `json:"children,omitempty"`
}

// NavigationResponse 导航响应
type NavigationResponse struct {
	Items    []*NavigationView `json:"items"`
	Rendered string            `json:"rendered"`
}

// RuntimeInfo 运行时信息
type RuntimeInfo struct {
	GoVersion    string `json:"go_version"`
	NumGoroutine int    `json:"num_goroutine"`
	NumCPU       int    `json:"num_cpu"`
	MemAlloc     uint64 `json:"mem_alloc"`
	MemSys       uint64 `json:"mem_sys"`
	NumGC        uint32 `json:"num_gc"`
}

// ============================================================================
//                              HTTP 处理器
// ============================================================================

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if !allowGet(w, r) {
		return
	}
	s.writeJSON(w, HealthResponse{
		Status:    "ok",
		Timestamp: time.Now(),
		Uptime:    time.Since(s.startTime).String(),
	})
}

func (s *Server) handleShell(w http.ResponseWriter, r *http.Request) {
	if !allowGet(w, r) {
		return
	}

	resp := ShellResponse{
		Timestamp:         time.Now(),
		Uptime:            time.Since(s.startTime).String(),
		RegistrationState: types.StateNone.String(),
		Counts:            map[string]int{},
	}
	if rt := s.config.Runtime; rt != nil {
		resp.Counts["routes"] = len(rt.Routes())
		resp.Counts["navigationItems"] = len(rt.NavigationItems())
		resp.Counts["moduleRoutes"] = len(rt.ModuleRoutes())
	}
	if src := s.config.Registration; src != nil {
		resp.RegistrationState = src.State().String()
		resp.FailedRemotes = len(src.Errors())
	}
	s.writeJSON(w, resp)
}

func (s *Server) handleRoutes(w http.ResponseWriter, r *http.Request) {
	if !allowGet(w, r) {
		return
	}

	routes, err := s.routes()
	if err != nil {
		http.Error(w, err.Error(), http.StatusConflict)
		return
	}

	paths := []string{}
	for _, route := range routes {
		paths = append(paths, route.Paths()...)
	}
	s.writeJSON(w, RoutesResponse{Routes: routes, Paths: paths})
}

func (s *Server) routes() ([]*types.Route, error) {
	if s.config.Routes != nil {
		return s.config.Routes()
	}
	if s.config.Runtime == nil {
		return nil, nil
	}
	roots := s.config.Runtime.Routes()
	out := make([]*types.Route, 0, len(roots))
	for _, root := range roots {
		out = append(out, root.AsRoute())
	}
	return out, nil
}

func (s *Server) handleNavigation(w http.ResponseWriter, r *http.Request) {
	if !allowGet(w, r) {
		return
	}

	var items []*types.NavigationItem
	if s.config.Runtime != nil {
		items = s.config.Runtime.NavigationItems()
	}
	s.writeJSON(w, NavigationResponse{
		Items:    navigationViews(compose.SortNavigationItems(items)),
		Rendered: compose.RenderElementTree(items).String(),
	})
}

func navigationViews(items []*types.NavigationItem) []*NavigationView {
	views := make([]*NavigationView, 0, len(items))
	for _, item := range items {
		v := &NavigationView{
			To:       item.To,
			Priority: item.Priority,
		}
		if item.Content != nil {
			v.Content = fmt.Sprint(item.Content)
		}
		if len(item.Children) > 0 {
			v.Children = navigationViews(item.Children)
		}
		views = append(views, v)
	}
	return views
}

func (s *Server) handleErrors(w http.ResponseWriter, r *http.Request) {
	if !allowGet(w, r) {
		return
	}
	errs := []*types.RemoteModuleRegistrationError{}
	if src := s.config.Registration; src != nil {
		errs = append(errs, src.Errors()...)
	}
	s.writeJSON(w, errs)
}

func (s *Server) handleRuntime(w http.ResponseWriter, r *http.Request) {
	if !allowGet(w, r) {
		return
	}

	var memStats runtime.MemStats
	runtime.ReadMemStats(&memStats)

	s.writeJSON(w, RuntimeInfo{
		GoVersion:    runtime.Version(),
		NumGoroutine: runtime.NumGoroutine(),
		NumCPU:       runtime.NumCPU(),
		MemAlloc:     memStats.Alloc,
		MemSys:       memStats.Sys,
		NumGC:        memStats.NumGC,
	})
}

// ============================================================================
//                              辅助方法
// ============================================================================

func allowGet(w http.ResponseWriter, r *http.Request) bool {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return false
	}
	return true
}

// writeJSON 写入 JSON 响应
func (s *Server) writeJSON(w http.ResponseWriter, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("X-Content-Type-Options", "nosniff")

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(data); err != nil {
		logger.Error("JSON 编码失败", "error", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
	}
}
