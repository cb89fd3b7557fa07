package httpclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/NebulousLabs/fastrand"
	"github.com/ayxworxfr/go_admin_client/pkg/logger"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

// 错误类型定义
var (
	ErrInvalidURL        = errors.New("invalid URL")
	ErrJSONMarshal       = errors.New("JSON marshal failed")
	ErrJSONUnmarshal     = errors.New("JSON unmarshal failed")
	ErrStatusNotOK       = errors.New("HTTP status code is not successful")
	ErrEmptyResponseBody = errors.New("response body is empty")
)

const (
	HeaderRequestID     = "X-Request-ID"
	HeaderAuthorization = "Authorization"

	tracerName = "github.com/ayxworxfr/go_admin_client/pkg/httpclient"
)

// StatusError 非 2xx 响应，尽量解析后端的 {code, message} 信封
type StatusError struct {
	StatusCode int
	Code       int
	Message    string
	Body       string
}

func (e *StatusError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("%s: %d %s, code: %d, message: %s", ErrStatusNotOK, e.StatusCode, http.StatusText(e.StatusCode), e.Code, e.Message)
	}
	return fmt.Sprintf("%s: %d %s, body: %s", ErrStatusNotOK, e.StatusCode, http.StatusText(e.StatusCode), e.Body)
}

func (e *StatusError) Unwrap() error {
	return ErrStatusNotOK
}

func IsRetriableError(err error) bool {
	if err == nil {
		return false
	}

	// 检查是否是我们自定义的HTTP 500错误
	if strings.Contains(err.Error(), "server returned status code 5") {
		return true
	}

	// 检查常见的可重试网络错误
	if strings.Contains(err.Error(), "connection refused") ||
		strings.Contains(err.Error(), "timeout") ||
		strings.Contains(err.Error(), "TLS handshake timeout") {
		return true
	}

	return false
}

// isIdempotent POST/PATCH 不做重试，避免重复写入
func isIdempotent(method string) bool {
	switch method {
	case http.MethodGet, http.MethodHead, http.MethodPut, http.MethodDelete:
		return true
	default:
		return false
	}
}

// TokenSource 返回当前请求应携带的访问令牌，空字符串表示匿名
type TokenSource func(ctx context.Context) (string, error)

// Client 是 HTTP 客户端的主结构体
type Client struct {
	BaseURL     string
	HTTPClient  *http.Client
	Headers     map[string]string
	Retries     int
	Backoff     time.Duration
	TokenSource TokenSource
	tracer      trace.Tracer
}

// Option 是配置客户端的函数类型
type Option func(*Client)

// WithTimeout 设置HTTP客户端超时时间
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.HTTPClient.Timeout = timeout
	}
}

// WithRetries 设置重试次数
func WithRetries(retries int) Option {
	return func(c *Client) {
		c.Retries = retries
	}
}

// WithBackoff 设置重试退避时间
func WithBackoff(backoff time.Duration) Option {
	return func(c *Client) {
		c.Backoff = backoff
	}
}

// WithHeader 设置默认请求头
func WithHeader(key, value string) Option {
	return func(c *Client) {
		c.Headers[key] = value
	}
}

// WithHTTPClient 使用自定义的HTTP客户端
func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) {
		c.HTTPClient = client
	}
}

// WithTokenSource 设置 Bearer 令牌来源
func WithTokenSource(source TokenSource) Option {
	return func(c *Client) {
		c.TokenSource = source
	}
}

// WithTracerProvider 指定追踪器，默认使用全局 provider
func WithTracerProvider(tp trace.TracerProvider) Option {
	return func(c *Client) {
		c.tracer = tp.Tracer(tracerName)
	}
}

// NewClient 创建一个新的 HTTP 客户端
func NewClient(baseURL string, opts ...Option) *Client {
	client := &Client{
		BaseURL: strings.TrimRight(baseURL, "/"),
		HTTPClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		Headers: make(map[string]string),
		Retries: 3,                      // 默认重试3次
		Backoff: 500 * time.Millisecond, // 默认退避500毫秒
	}

	// 应用选项
	for _, opt := range opts {
		opt(client)
	}

	// 设置默认Content-Type
	if _, exists := client.Headers["Content-Type"]; !exists {
		client.Headers["Content-Type"] = "application/json"
	}
	if client.tracer == nil {
		client.tracer = otel.Tracer(tracerName)
	}

	return client
}

// SetHeader 设置一个 HTTP 头
func (c *Client) SetHeader(key, value string) {
	c.Headers[key] = value
}

// encodeBody 返回请求体构造函数，replayable 表示重试时能否再次读取
func encodeBody(body any) (newBody func() io.Reader, replayable bool, err error) {
	if body == nil {
		return nil, true, nil
	}
	// io.Reader 直接透传，只能读取一次
	if reader, ok := body.(io.Reader); ok {
		return func() io.Reader { return reader }, false, nil
	}
	jsonBody, err := json.Marshal(body)
	if err != nil {
		return nil, false, fmt.Errorf("%w: %s", ErrJSONMarshal, err)
	}
	return func() io.Reader { return bytes.NewReader(jsonBody) }, true, nil
}

// request 是发送 HTTP 请求的通用方法
func (c *Client) request(ctx context.Context, method, path string, params url.Values, body any) (*http.Response, error) {
	// 构建URL
	u, err := url.Parse(c.BaseURL + path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidURL, err)
	}

	// 添加查询参数
	if len(params) > 0 {
		u.RawQuery = params.Encode()
	}

	newBody, replayable, err := encodeBody(body)
	if err != nil {
		return nil, err
	}

	requestID := uuid.NewString()
	ctx, span := c.tracer.Start(ctx, method+" "+u.Path, trace.WithSpanKind(trace.SpanKindClient))
	defer span.End()
	span.SetAttributes(
		attribute.String("http.request.method", method),
		attribute.String("url.full", u.String()),
		attribute.String("http.request_id", requestID),
	)
	ctx = logger.WithContext(ctx,
		zap.String("request_id", requestID),
		zap.String("method", method),
		zap.String("path", u.Path),
	)

	token := ""
	if c.TokenSource != nil {
		if token, err = c.TokenSource(ctx); err != nil {
			span.SetStatus(codes.Error, err.Error())
			return nil, err
		}
	}

	attempts := 0
	if isIdempotent(method) && replayable {
		attempts = c.Retries
	}

	// 执行请求（带重试逻辑）
	start := time.Now()
	var resp *http.Response
	for i := 0; i <= attempts; i++ {
		var bodyReader io.Reader
		if newBody != nil {
			bodyReader = newBody()
		}
		// 创建请求
		req, reqErr := http.NewRequestWithContext(ctx, method, u.String(), bodyReader)
		if reqErr != nil {
			span.SetStatus(codes.Error, reqErr.Error())
			return nil, reqErr
		}
		// 添加自定义头
		for key, value := range c.Headers {
			req.Header.Set(key, value)
		}
		req.Header.Set(HeaderRequestID, requestID)
		if token != "" {
			req.Header.Set(HeaderAuthorization, "Bearer "+token)
		}
		otel.GetTextMapPropagator().Inject(ctx, propagation.HeaderCarrier(req.Header))

		resp, err = c.HTTPClient.Do(req)

		// 处理网络错误（如连接超时）
		if err != nil {
			if !IsRetriableError(err) {
				break
			}
			// 可重试的网络错误，继续循环
		} else {
			// 检查HTTP状态码是否为可重试的服务器错误
			if resp.StatusCode >= 500 && resp.StatusCode < 600 && i < attempts {
				// 关闭响应体以便重试
				resp.Body.Close()
				err = fmt.Errorf("server returned status code %d", resp.StatusCode)
			} else {
				break
			}
		}

		// 重试前等待（指数退避 + 随机抖动）
		if i < attempts {
			backoffTime := c.Backoff * time.Duration(1<<i)
			if c.Backoff > 0 {
				backoffTime += time.Duration(fastrand.Intn(int(c.Backoff)))
			}
			logger.Warn(ctx, "Retrying request", zap.Int("attempt", i+1), zap.Duration("backoff", backoffTime), zap.Error(err))
			select {
			case <-time.After(backoffTime):
				continue
			case <-ctx.Done():
				span.SetStatus(codes.Error, ctx.Err().Error())
				return nil, ctx.Err()
			}
		}
	}

	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		logger.Error(ctx, "Request failed", zap.Duration("latency", time.Since(start)), zap.Error(err))
		return nil, err
	}

	span.SetAttributes(attribute.Int("http.response.status_code", resp.StatusCode))
	if resp.StatusCode >= http.StatusBadRequest {
		span.SetStatus(codes.Error, http.StatusText(resp.StatusCode))
		logger.Warn(ctx, "Request completed with error", zap.Int("status", resp.StatusCode), zap.Duration("latency", time.Since(start)))
	} else {
		logger.Debug(ctx, "Request completed", zap.Int("status", resp.StatusCode), zap.Duration("latency", time.Since(start)))
	}
	return resp, nil
}

// Get 发送 GET 请求
func (c *Client) Get(ctx context.Context, path string, params url.Values) (*http.Response, error) {
	return c.request(ctx, http.MethodGet, path, params, nil)
}

// Post 发送 POST 请求
func (c *Client) Post(ctx context.Context, path string, body any) (*http.Response, error) {
	return c.request(ctx, http.MethodPost, path, nil, body)
}

// Put 发送 PUT 请求
func (c *Client) Put(ctx context.Context, path string, body any) (*http.Response, error) {
	return c.request(ctx, http.MethodPut, path, nil, body)
}

// Patch 发送 PATCH 请求
func (c *Client) Patch(ctx context.Context, path string, body any) (*http.Response, error) {
	return c.request(ctx, http.MethodPatch, path, nil, body)
}

// Delete 发送 DELETE 请求
func (c *Client) Delete(ctx context.Context, path string) (*http.Response, error) {
	return c.request(ctx, http.MethodDelete, path, nil, nil)
}

// DoJSON 发送任意方法的请求并解析JSON响应
func (c *Client) DoJSON(ctx context.Context, method, path string, params url.Values, body, response any) error {
	resp, err := c.request(ctx, method, path, params, body)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	return c.handleJSONResponse(resp, response)
}

// GetJSON 发送GET请求并解析JSON响应
func (c *Client) GetJSON(ctx context.Context, path string, params url.Values, response any) error {
	return c.DoJSON(ctx, http.MethodGet, path, params, nil, response)
}

// PostJSON 发送POST请求并解析JSON响应
func (c *Client) PostJSON(ctx context.Context, path string, body, response any) error {
	return c.DoJSON(ctx, http.MethodPost, path, nil, body, response)
}

// PutJSON 发送PUT请求并解析JSON响应
func (c *Client) PutJSON(ctx context.Context, path string, body, response any) error {
	return c.DoJSON(ctx, http.MethodPut, path, nil, body, response)
}

// PatchJSON 发送PATCH请求并解析JSON响应
func (c *Client) PatchJSON(ctx context.Context, path string, body, response any) error {
	return c.DoJSON(ctx, http.MethodPatch, path, nil, body, response)
}

// DeleteJSON 发送DELETE请求并解析JSON响应
func (c *Client) DeleteJSON(ctx context.Context, path string, response any) error {
	return c.DoJSON(ctx, http.MethodDelete, path, nil, nil, response)
}

// handleJSONResponse 处理JSON响应
func (c *Client) handleJSONResponse(resp *http.Response, response any) error {
	// 检查状态码
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		bodyBytes, _ := io.ReadAll(resp.Body)
		statusErr := &StatusError{StatusCode: resp.StatusCode, Body: string(bodyBytes)}
		var envelope struct {
			Code    int    `json:"code"`
			Message string `json:"message"`
		}
		if json.Unmarshal(bodyBytes, &envelope) == nil {
			statusErr.Code = envelope.Code
			statusErr.Message = envelope.Message
		}
		return statusErr
	}

	// 读取响应体
	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	// 如果响应体为空且不需要解析到结构体，则直接返回
	if len(bodyBytes) == 0 {
		if response == nil {
			return nil
		}
		return ErrEmptyResponseBody
	}
	if response == nil {
		return nil
	}

	// 解析JSON
	if err := json.Unmarshal(bodyBytes, response); err != nil {
		return fmt.Errorf("%w: %s, body: %s", ErrJSONUnmarshal, err, string(bodyBytes))
	}

	return nil
}
