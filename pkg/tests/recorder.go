package tests

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/ayxworxfr/go_admin_client/internal/api/request"
	"github.com/pkg/errors"
)

// Recorder 记录收到的请求描述符的假传输层
//
// 响应按 "METHOD URL" 匹配，未登记的请求返回 ErrNoResponse。
type Recorder struct {
	mu        sync.Mutex
	calls     []request.Descriptor
	responses map[string]string
	errs      map[string]error
}

var ErrNoResponse = errors.New("no response registered")

func NewRecorder() *Recorder {
	return &Recorder{responses: map[string]string{}, errs: map[string]error{}}
}

func key(method request.Method, url string) string {
	return string(method) + " " + url
}

// Respond 登记一个 JSON 响应体
func (r *Recorder) Respond(method request.Method, url, body string) *Recorder {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.responses[key(method, url)] = body
	return r
}

// Fail 登记一个传输错误
func (r *Recorder) Fail(method request.Method, url string, err error) *Recorder {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.errs[key(method, url)] = err
	return r
}

func (r *Recorder) Request(ctx context.Context, d *request.Descriptor, out any) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls = append(r.calls, *d)

	k := key(d.Method, d.URL)
	if err, ok := r.errs[k]; ok {
		return err
	}
	body, ok := r.responses[k]
	if !ok {
		return errors.Wrap(ErrNoResponse, k)
	}
	if out == nil {
		return nil
	}
	return json.Unmarshal([]byte(body), out)
}

// Calls 返回收到的全部请求
func (r *Recorder) Calls() []request.Descriptor {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]request.Descriptor(nil), r.calls...)
}

// Last 返回最后一次请求，没有请求时返回 nil
func (r *Recorder) Last() *request.Descriptor {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.calls) == 0 {
		return nil
	}
	d := r.calls[len(r.calls)-1]
	return &d
}

// Body 把最后一次请求的 Data 序列化为 JSON，便于断言线上格式
func (r *Recorder) Body() (string, error) {
	last := r.Last()
	if last == nil || last.Data == nil {
		return "", nil
	}
	data, err := json.Marshal(last.Data)
	return string(data), err
}
