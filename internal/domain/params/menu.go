package params

import "github.com/ayxworxfr/go_admin_client/internal/domain/types"

type MenuButton struct {
	// 按钮编码，可用于按钮权限控制
	Code string `json:"code"`
	Desc string `json:"desc"`
}

// CreateMenu 创建菜单请求，parentId 为 0 表示根节点
type CreateMenu struct {
	ParentID  int64          `json:"parentId"`
	MenuType  types.MenuType `json:"menuType"`
	MenuName  string         `json:"menuName"`
	RouteName string         `json:"routeName"`
	RoutePath string         `json:"routePath"`
	Component string         `json:"component,omitempty"`
	Icon      string         `json:"icon"`
	IconType  types.IconType `json:"iconType"`
	Buttons   []MenuButton   `json:"buttons,omitempty"`
	types.RouteProps
}

// UpdateMenu 部分更新菜单，父节点不可通过该接口修改
type UpdateMenu struct {
	ID        int64           `json:"-"`
	MenuType  *types.MenuType `json:"menuType,omitempty"`
	MenuName  *string         `json:"menuName,omitempty"`
	RouteName *string         `json:"routeName,omitempty"`
	RoutePath *string         `json:"routePath,omitempty"`
	Component *string         `json:"component,omitempty"`
	Icon      *string         `json:"icon,omitempty"`
	IconType  *types.IconType `json:"iconType,omitempty"`
	Buttons   []MenuButton    `json:"buttons,omitempty"`
	RoutePropsPatch
}

// RoutePropsPatch 路由属性的部分更新，nil 表示不修改，false / 0 / "" 会原样发送
type RoutePropsPatch struct {
	I18nKey         *string            `json:"i18nKey,omitempty"`
	KeepAlive       *bool              `json:"keepAlive,omitempty"`
	Constant        *bool              `json:"constant,omitempty"`
	Order           *types.FlexInt     `json:"order,omitempty"`
	Href            *string            `json:"href,omitempty"`
	HideInMenu      *bool              `json:"hideInMenu,omitempty"`
	ActiveMenu      *string            `json:"activeMenu,omitempty"`
	MultiTab        *bool              `json:"multiTab,omitempty"`
	FixedIndexInTab *int               `json:"fixedIndexInTab,omitempty"`
	Query           []types.RouteQuery `json:"query,omitempty"`
}

func (m UpdateMenu) Identifier() int64 { return m.ID }

// MenuSearchParams 菜单分页
type MenuSearchParams struct {
	CommonSearchParams
}
