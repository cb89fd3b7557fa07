package params

import "github.com/ayxworxfr/go_admin_client/internal/domain/types"

// CreateRole 创建角色请求
type CreateRole struct {
	Name        string `json:"name"`
	Code        string `json:"code"`
	Description string `json:"description"`
}

// UpdateRole 更新角色请求
type UpdateRole struct {
	ID int64 `json:"-"`
	CreateRole
}

func (r UpdateRole) Identifier() int64 { return r.ID }

// RoleSearchParams 角色列表筛选
type RoleSearchParams struct {
	CommonSearchParams
	Name   *string             `query:"name,omitempty"`
	Code   *string             `query:"code,omitempty"`
	Status *types.EnableStatus `query:"status,omitempty"`
}

// RoleMenuRequest 覆盖角色关联的菜单
type RoleMenuRequest struct {
	MenuIDs []int64 `json:"menuIds"`
}
