package params

import "github.com/ayxworxfr/go_admin_client/internal/domain/types"

// CreateUser 创建用户请求
type CreateUser struct {
	Email     string            `json:"email"`
	UserName  string            `json:"userName"`
	Password  string            `json:"password,omitempty"`
	FirstName string            `json:"firstName,omitempty"`
	LastName  string            `json:"lastName,omitempty"`
	RoleIDs   []string          `json:"roleIds,omitempty"`
	Avatar    string            `json:"avatar,omitempty"`
	Phone     string            `json:"phone,omitempty"`
	Gender    *types.UserGender `json:"gender,omitempty"`
	NickName  string            `json:"nickName,omitempty"`
}

// UpdateUser 更新用户请求，id 只出现在 URL 中
type UpdateUser struct {
	ID string `json:"-"`
	CreateUser
}

func (u UpdateUser) Identifier() string { return u.ID }

// UserSearchParams 用户列表筛选，所有字段可空
type UserSearchParams struct {
	CommonSearchParams
	UserName *string             `query:"userName,omitempty"`
	Gender   *types.UserGender   `query:"gender,omitempty"`
	NickName *string             `query:"nickName,omitempty"`
	Phone    *string             `query:"phone,omitempty"`
	Email    *string             `query:"email,omitempty"`
	Status   *types.EnableStatus `query:"status,omitempty"`
	// 通用关键字搜索
	Search *string `query:"search,omitempty"`
}
