package federation

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/klauspost/compress/gzhttp"
)

// DefaultMaxEntrySize 远程入口最大字节数
const DefaultMaxEntrySize = 1 << 20

// ScriptRunner 脚本运行器
//
// Run 返回 nil 表示 load 信号，返回错误表示 error 信号。
//
// Loader 在独立 goroutine 中调用 Run，超时或调用方取消后不再等待它，
// 也从不 join 该 goroutine。实现必须在 ctx 取消后尽快返回，
// 忽略 ctx 的实现每次超时都会泄漏一个 goroutine。
type ScriptRunner interface {
	Run(ctx context.Context, el *ScriptElement) error
}

// ScriptRunnerFunc 函数形式的 ScriptRunner
type ScriptRunnerFunc func(ctx context.Context, el *ScriptElement) error

// Run 实现 ScriptRunner
func (f ScriptRunnerFunc) Run(ctx context.Context, el *ScriptElement) error {
	return f(ctx, el)
}

// Evaluator 执行已获取的远程入口内容
type Evaluator interface {
	Evaluate(ctx context.Context, el *ScriptElement, body []byte) error
}

// ============================================================================
//                              HTTPScriptRunner
// ============================================================================

// HTTPScriptRunner 通过 HTTP 获取远程入口并交给 Evaluator
type HTTPScriptRunner struct {
	client    *http.Client
	evaluator Evaluator
	maxBytes  int64
}

// HTTPRunnerOption HTTPScriptRunner 选项
type HTTPRunnerOption func(*HTTPScriptRunner)

// WithHTTPClient 设置 HTTP 客户端
func WithHTTPClient(c *http.Client) HTTPRunnerOption {
	return func(r *HTTPScriptRunner) {
		if c != nil {
			r.client = c
		}
	}
}

// WithMaxEntrySize 设置远程入口最大字节数
func WithMaxEntrySize(n int64) HTTPRunnerOption {
	return func(r *HTTPScriptRunner) {
		if n > 0 {
			r.maxBytes = n
		}
	}
}

// NewHTTPClient 创建支持 gzip 压缩响应的 HTTP 客户端
func NewHTTPClient() *http.Client {
	return &http.Client{
		Transport: gzhttp.Transport(http.DefaultTransport),
	}
}

// NewHTTPScriptRunner 创建 HTTP 脚本运行器
func NewHTTPScriptRunner(eval Evaluator, opts ...HTTPRunnerOption) *HTTPScriptRunner {
	r := &HTTPScriptRunner{
		client:    NewHTTPClient(),
		evaluator: eval,
		maxBytes:  DefaultMaxEntrySize,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Run 实现 ScriptRunner
func (r *HTTPScriptRunner) Run(ctx context.Context, el *ScriptElement) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, el.Src, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json, text/javascript;q=0.9, */*;q=0.1")

	resp, err := r.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, r.maxBytes+1))
	if err != nil {
		return err
	}
	if int64(len(body)) > r.maxBytes {
		return fmt.Errorf("remote entry exceeds %d bytes", r.maxBytes)
	}

	return r.evaluator.Evaluate(ctx, el, body)
}
