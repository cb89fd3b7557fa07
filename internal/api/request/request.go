package request

import (
	"context"
	"net/url"
)

// Method 请求方法
type Method string

const (
	GET    Method = "GET"
	POST   Method = "POST"
	PUT    Method = "PUT"
	PATCH  Method = "PATCH"
	DELETE Method = "DELETE"
)

// Descriptor 描述一次待执行的请求，本身不做任何 I/O
type Descriptor struct {
	URL    string     `json:"url"`
	Method Method     `json:"method"`
	Params url.Values `json:"params,omitempty"`
	Data   any        `json:"data,omitempty"`
}

// Requester 共享的传输层，负责鉴权头、序列化与错误转换
type Requester interface {
	Request(ctx context.Context, d *Descriptor, out any) error
}

// RequesterFunc 函数适配器
type RequesterFunc func(ctx context.Context, d *Descriptor, out any) error

func (f RequesterFunc) Request(ctx context.Context, d *Descriptor, out any) error {
	return f(ctx, d, out)
}

// Do 执行描述符并把响应解码为 T，每次调用只会触发一次 Request
func Do[T any](ctx context.Context, r Requester, d *Descriptor) (T, error) {
	var out T
	err := r.Request(ctx, d, &out)
	return out, err
}
