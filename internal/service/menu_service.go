package service

import (
	"context"

	"github.com/ayxworxfr/go_admin_client/internal/api/query"
	"github.com/ayxworxfr/go_admin_client/internal/api/request"
	"github.com/ayxworxfr/go_admin_client/internal/api/resource"
	"github.com/ayxworxfr/go_admin_client/internal/domain/params"
	"github.com/ayxworxfr/go_admin_client/internal/domain/vo"
)

// MenuService 菜单管理
type MenuService struct {
	r  request.Requester
	ep request.Endpoint[int64]
}

func NewMenuService(r request.Requester) *MenuService {
	return &MenuService{r: r, ep: request.NewEndpoint[int64](resource.Menu)}
}

func (s *MenuService) List(ctx context.Context, filter *params.MenuSearchParams) (vo.MenuList, error) {
	values, err := query.Encode(filter)
	if err != nil {
		return vo.MenuList{}, err
	}
	return request.Do[vo.MenuList](ctx, s.r, s.ep.List(values))
}

// Tree 菜单树
func (s *MenuService) Tree(ctx context.Context) ([]vo.MenuTree, error) {
	return request.Do[[]vo.MenuTree](ctx, s.r, s.ep.Fetch("tree"))
}

func (s *MenuService) Get(ctx context.Context, id int64) (vo.Menu, error) {
	return request.Do[vo.Menu](ctx, s.r, s.ep.Get(id))
}

func (s *MenuService) Create(ctx context.Context, p params.CreateMenu) (vo.CommonResponse[int64], error) {
	return request.Do[vo.CommonResponse[int64]](ctx, s.r, s.ep.Create(p))
}

func (s *MenuService) Update(ctx context.Context, p params.UpdateMenu) (vo.CommonResponse[int64], error) {
	return request.Do[vo.CommonResponse[int64]](ctx, s.r, s.ep.Update(p))
}

func (s *MenuService) Delete(ctx context.Context, id int64) (vo.CommonResponse[any], error) {
	return request.Do[vo.CommonResponse[any]](ctx, s.r, s.ep.Delete(id))
}

// RouteNames 所有菜单的路由名
func (s *MenuService) RouteNames(ctx context.Context) (vo.CommonResponse[[]string], error) {
	return request.Do[vo.CommonResponse[[]string]](ctx, s.r, s.ep.Fetch("route-names"))
}
