package service

import (
	"context"

	"github.com/ayxworxfr/go_admin_client/internal/api/query"
	"github.com/ayxworxfr/go_admin_client/internal/api/request"
	"github.com/ayxworxfr/go_admin_client/internal/api/resource"
	"github.com/ayxworxfr/go_admin_client/internal/domain/params"
	"github.com/ayxworxfr/go_admin_client/internal/domain/vo"
)

// RoleService 角色管理，所有接口都在 /roles 下
type RoleService struct {
	r  request.Requester
	ep request.Endpoint[int64]
}

func NewRoleService(r request.Requester) *RoleService {
	return &RoleService{r: r, ep: request.NewEndpoint[int64](resource.Role)}
}

// All 所有角色（下拉选项用）
func (s *RoleService) All(ctx context.Context) ([]vo.AllRole, error) {
	return request.Do[[]vo.AllRole](ctx, s.r, s.ep.Fetch())
}

// List 分页查询角色
func (s *RoleService) List(ctx context.Context, filter *params.RoleSearchParams) (vo.RoleList, error) {
	values, err := query.Encode(filter)
	if err != nil {
		return vo.RoleList{}, err
	}
	return request.Do[vo.RoleList](ctx, s.r, s.ep.List(values, "page"))
}

func (s *RoleService) Get(ctx context.Context, id int64) (vo.Role, error) {
	return request.Do[vo.Role](ctx, s.r, s.ep.Get(id))
}

func (s *RoleService) Create(ctx context.Context, p params.CreateRole) (vo.CommonResponse[int64], error) {
	return request.Do[vo.CommonResponse[int64]](ctx, s.r, s.ep.Create(p))
}

func (s *RoleService) Update(ctx context.Context, p params.UpdateRole) (vo.CommonResponse[int64], error) {
	return request.Do[vo.CommonResponse[int64]](ctx, s.r, s.ep.Update(p))
}

func (s *RoleService) Delete(ctx context.Context, id int64) (vo.CommonResponse[any], error) {
	return request.Do[vo.CommonResponse[any]](ctx, s.r, s.ep.Delete(id))
}

// GetMenuList 角色已授权的菜单 id
func (s *RoleService) GetMenuList(ctx context.Context, id int64) ([]int64, error) {
	return request.Do[[]int64](ctx, s.r, s.ep.Sub(id, "menus"))
}

// UpdateMenuList 覆盖角色已授权的菜单
func (s *RoleService) UpdateMenuList(ctx context.Context, id int64, menuIDs []int64) (vo.CommonResponse[any], error) {
	if menuIDs == nil {
		menuIDs = []int64{}
	}
	d := s.ep.Patch(id, "menus", params.RoleMenuRequest{MenuIDs: menuIDs})
	return request.Do[vo.CommonResponse[any]](ctx, s.r, d)
}
