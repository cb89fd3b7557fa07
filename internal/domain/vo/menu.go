package vo

import (
	"github.com/ayxworxfr/go_admin_client/internal/domain/params"
	"github.com/ayxworxfr/go_admin_client/internal/domain/types"
)

// Menu 菜单视图对象，parentId 为 0 表示根节点
type Menu struct {
	CommonRecord[int64]
	ParentID  int64               `json:"parentId"`
	MenuType  types.MenuType      `json:"menuType"`
	MenuName  string              `json:"menuName"`
	RouteName string              `json:"routeName"`
	RoutePath string              `json:"routePath"`
	Component string              `json:"component,omitempty"`
	Icon      string              `json:"icon"`
	IconType  types.IconType      `json:"iconType"`
	Buttons   []params.MenuButton `json:"buttons,omitempty"`
	Children  []Menu              `json:"children,omitempty"`
	types.RouteProps
}

type MenuList = Page[Menu]

// MenuTree 菜单树（角色授权时使用）
type MenuTree struct {
	ID       int64      `json:"id"`
	Label    string     `json:"label"`
	PID      int64      `json:"pId"`
	Children []MenuTree `json:"children,omitempty"`
}
