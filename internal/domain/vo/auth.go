package vo

import "github.com/ayxworxfr/go_admin_client/internal/domain/types"

// Token 登录返回的 Token 信息
type Token struct {
	AccessToken string `json:"accessToken"`
	ExpiresIn   string `json:"expiresIn"`
}

// LoginUser 登录返回的用户信息
type LoginUser struct {
	ID        string   `json:"id"`
	Email     string   `json:"email"`
	UserName  string   `json:"userName"`
	FirstName string   `json:"firstName"`
	LastName  string   `json:"lastName"`
	Roles     []string `json:"roles"`
	Buttons   []string `json:"buttons"`
}

// LoginData 登录接口 data 部分
type LoginData struct {
	User  LoginUser `json:"user"`
	Token Token     `json:"token"`
}

// LoginResponse 登录接口完整响应体
type LoginResponse struct {
	Code      int       `json:"code"`
	Success   bool      `json:"success"`
	Data      LoginData `json:"data"`
	Message   string    `json:"message"`
	Timestamp string    `json:"timestamp"`
}

// LoginToken 刷新令牌接口的返回
type LoginToken = LoginResponse

// UserPermission 用户权限
type UserPermission struct {
	ID         string               `json:"id"`
	Name       string               `json:"name"`
	Type       types.PermissionType `json:"type"`
	Permission string               `json:"permission"`
}
