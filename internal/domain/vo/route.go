package vo

import "github.com/ayxworxfr/go_admin_client/internal/domain/types"

// RouteMeta 前端路由元信息
type RouteMeta struct {
	Title     string `json:"title"`
	Icon      string `json:"icon,omitempty"`
	LocalIcon string `json:"localIcon,omitempty"`
	types.RouteProps
}

// MenuRoute 后端下发的路由
type MenuRoute struct {
	ID        string      `json:"id"`
	Name      string      `json:"name"`
	Path      string      `json:"path"`
	Component string      `json:"component,omitempty"`
	Redirect  string      `json:"redirect,omitempty"`
	Props     any         `json:"props,omitempty"`
	Meta      RouteMeta   `json:"meta"`
	Children  []MenuRoute `json:"children,omitempty"`
}

// UserRoute 用户路由及首页
type UserRoute struct {
	Routes []MenuRoute `json:"routes"`
	Home   string      `json:"home"`
}
