package service

import (
	"context"

	"github.com/ayxworxfr/go_admin_client/internal/api/request"
	"github.com/ayxworxfr/go_admin_client/internal/api/resource"
	"github.com/ayxworxfr/go_admin_client/internal/domain/vo"
)

// RouteService 前端路由，接口挂在菜单前缀下
type RouteService struct {
	r  request.Requester
	ep request.Endpoint[string]
}

func NewRouteService(r request.Requester) *RouteService {
	return &RouteService{r: r, ep: request.NewEndpoint[string](resource.Menu)}
}

// ConstantRoutes 无需登录的常量路由
func (s *RouteService) ConstantRoutes(ctx context.Context) ([]vo.MenuRoute, error) {
	return request.Do[[]vo.MenuRoute](ctx, s.r, s.ep.Fetch("constant-routes"))
}

// UserRoutes 当前用户可见的路由
func (s *RouteService) UserRoutes(ctx context.Context) ([]vo.MenuRoute, error) {
	return request.Do[[]vo.MenuRoute](ctx, s.r, s.ep.Fetch("user-routes"))
}

// IsRouteExist 路由名是否已存在
func (s *RouteService) IsRouteExist(ctx context.Context, routeName string) (bool, error) {
	return request.Do[bool](ctx, s.r, s.ep.Fetch("route-exist", routeName))
}
