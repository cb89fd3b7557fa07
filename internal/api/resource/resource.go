package resource

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/pkg/errors"
)

// Prefix 后端资源的 URL 路径前缀
type Prefix string

const (
	// 认证服务
	Auth     Prefix = "/auth"
	User     Prefix = "/users"
	Menu     Prefix = "/menus"
	Role     Prefix = "/roles"
	Content  Prefix = "/contents"
	Category Prefix = "/categories"
	Tag      Prefix = "/tags"
)

var ErrUnknownResource = errors.New("unknown resource")

// 逻辑资源名 -> 路径前缀，顺序即 Names() 的顺序
var table = []struct {
	name   string
	prefix Prefix
}{
	{"auth", Auth},
	{"users", User},
	{"menus", Menu},
	{"roles", Role},
	{"contents", Content},
	{"categories", Category},
	{"tags", Tag},
}

// Lookup 根据逻辑资源名查找路径前缀，未知资源属于配置错误
func Lookup(name string) (Prefix, error) {
	for _, entry := range table {
		if entry.name == name {
			return entry.prefix, nil
		}
	}
	return "", errors.Wrapf(ErrUnknownResource, "name: %q", name)
}

// MustLookup 同 Lookup，未知资源直接 panic
func MustLookup(name string) Prefix {
	prefix, err := Lookup(name)
	if err != nil {
		panic(err)
	}
	return prefix
}

// Names 返回所有已知的逻辑资源名
func Names() []string {
	names := make([]string, 0, len(table))
	for _, entry := range table {
		names = append(names, entry.name)
	}
	return names
}

// Path 拼接前缀与路径段，每一段都做 PathEscape
//
//	Content.Path(42, "status") => "/contents/42/status"
func (p Prefix) Path(segments ...any) string {
	if len(segments) == 0 {
		return string(p)
	}
	var b strings.Builder
	b.WriteString(string(p))
	for _, segment := range segments {
		b.WriteByte('/')
		b.WriteString(url.PathEscape(fmt.Sprint(segment)))
	}
	return b.String()
}

func (p Prefix) String() string {
	return string(p)
}
