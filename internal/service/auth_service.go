package service

import (
	"context"

	"github.com/ayxworxfr/go_admin_client/internal/api/query"
	"github.com/ayxworxfr/go_admin_client/internal/api/request"
	"github.com/ayxworxfr/go_admin_client/internal/api/resource"
	"github.com/ayxworxfr/go_admin_client/internal/domain/params"
	"github.com/ayxworxfr/go_admin_client/internal/domain/vo"
)

// AuthService 认证服务 - 登录、令牌刷新与当前用户信息
type AuthService struct {
	r  request.Requester
	ep request.Endpoint[string]
}

func NewAuthService(r request.Requester) *AuthService {
	return &AuthService{r: r, ep: request.NewEndpoint[string](resource.Auth)}
}

// Login 用户登录
func (s *AuthService) Login(ctx context.Context, userName, password string) (vo.LoginData, error) {
	d := &request.Descriptor{
		URL:    resource.Auth.Path("login"),
		Method: request.POST,
		Data:   params.LoginRequest{UserName: userName, Password: password},
	}
	return request.Do[vo.LoginData](ctx, s.r, d)
}

// Profile 当前登录用户信息
func (s *AuthService) Profile(ctx context.Context) (vo.LoginUser, error) {
	return request.Do[vo.LoginUser](ctx, s.r, s.ep.Fetch("profile"))
}

// Permissions 当前登录用户的权限列表
func (s *AuthService) Permissions(ctx context.Context) ([]vo.UserPermission, error) {
	return request.Do[[]vo.UserPermission](ctx, s.r, s.ep.Fetch("permissions"))
}

// RefreshToken 刷新令牌
func (s *AuthService) RefreshToken(ctx context.Context, refreshToken string) (vo.LoginToken, error) {
	d := &request.Descriptor{
		URL:    resource.Auth.Path("refreshToken"),
		Method: request.POST,
		Data:   params.RefreshTokenRequest{RefreshToken: refreshToken},
	}
	return request.Do[vo.LoginToken](ctx, s.r, d)
}

// CustomBackendError 让后端返回指定的错误码和信息
func (s *AuthService) CustomBackendError(ctx context.Context, code, msg string) (vo.CommonResponse[any], error) {
	values, err := query.Encode(params.CustomErrorParams{Code: &code, Msg: &msg})
	if err != nil {
		return vo.CommonResponse[any]{}, err
	}
	return request.Do[vo.CommonResponse[any]](ctx, s.r, s.ep.List(values, "error"))
}
