package vo

import "github.com/ayxworxfr/go_admin_client/internal/domain/types"

// User 用户视图对象
type User struct {
	CommonRecord[string]
	UserName  string            `json:"userName"`
	Gender    *types.UserGender `json:"gender"`
	NickName  string            `json:"nickName"`
	Phone     string            `json:"phone"`
	Email     string            `json:"email"`
	RoleIDs   []string          `json:"roleIds"`
	FirstName string            `json:"firstName,omitempty"`
	LastName  string            `json:"lastName,omitempty"`
}

type UserList = Page[User]
