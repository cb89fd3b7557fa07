package request

import (
	"net/url"

	"github.com/ayxworxfr/go_admin_client/internal/api/resource"
)

// ID 资源标识符，不同资源的后端约定不同（数字或字符串），不做互相转换
type ID interface {
	~int64 | ~string
}

// Identified 更新类载荷，id 从载荷中取出拼到 URL 上，body 中不再携带
type Identified[K ID] interface {
	Identifier() K
}

// Endpoint 绑定某个资源前缀的描述符构造器
type Endpoint[K ID] struct {
	Prefix resource.Prefix
}

func NewEndpoint[K ID](prefix resource.Prefix) Endpoint[K] {
	return Endpoint[K]{Prefix: prefix}
}

// List GET 列表，params 为已经重整过的查询参数
func (e Endpoint[K]) List(params url.Values, sub ...any) *Descriptor {
	return &Descriptor{URL: e.Prefix.Path(sub...), Method: GET, Params: params}
}

// Get GET 单个资源
func (e Endpoint[K]) Get(id K) *Descriptor {
	return &Descriptor{URL: e.Prefix.Path(id), Method: GET}
}

// Fetch GET 子路径，例如 /menus/route-names
func (e Endpoint[K]) Fetch(sub ...any) *Descriptor {
	return &Descriptor{URL: e.Prefix.Path(sub...), Method: GET}
}

// Create POST 完整载荷，载荷中不应包含服务端生成的字段
func (e Endpoint[K]) Create(data any) *Descriptor {
	return &Descriptor{URL: e.Prefix.Path(), Method: POST, Data: data}
}

// Update PATCH /prefix/{id}，载荷的 id 字段需标记 json:"-"
func (e Endpoint[K]) Update(payload Identified[K]) *Descriptor {
	return &Descriptor{URL: e.Prefix.Path(payload.Identifier()), Method: PATCH, Data: payload}
}

// Delete DELETE /prefix/{id}
func (e Endpoint[K]) Delete(id K) *Descriptor {
	return &Descriptor{URL: e.Prefix.Path(id), Method: DELETE}
}

// Patch PATCH /prefix/{id}/{sub}，用于单字段的状态变更
func (e Endpoint[K]) Patch(id K, sub string, data any) *Descriptor {
	return &Descriptor{URL: e.Prefix.Path(id, sub), Method: PATCH, Data: data}
}

// Sub GET /prefix/{id}/{sub}
func (e Endpoint[K]) Sub(id K, sub string) *Descriptor {
	return &Descriptor{URL: e.Prefix.Path(id, sub), Method: GET}
}
