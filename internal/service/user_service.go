package service

import (
	"context"

	"github.com/ayxworxfr/go_admin_client/internal/api/query"
	"github.com/ayxworxfr/go_admin_client/internal/api/request"
	"github.com/ayxworxfr/go_admin_client/internal/api/resource"
	"github.com/ayxworxfr/go_admin_client/internal/domain/params"
	"github.com/ayxworxfr/go_admin_client/internal/domain/vo"
)

// UserService 用户管理，用户 id 为字符串
type UserService struct {
	r  request.Requester
	ep request.Endpoint[string]
}

func NewUserService(r request.Requester) *UserService {
	return &UserService{r: r, ep: request.NewEndpoint[string](resource.User)}
}

// List 分页查询用户，filter 可以为 nil
func (s *UserService) List(ctx context.Context, filter *params.UserSearchParams) (vo.UserList, error) {
	values, err := query.Encode(filter)
	if err != nil {
		return vo.UserList{}, err
	}
	return request.Do[vo.UserList](ctx, s.r, s.ep.List(values))
}

func (s *UserService) Get(ctx context.Context, id string) (vo.User, error) {
	return request.Do[vo.User](ctx, s.r, s.ep.Get(id))
}

func (s *UserService) Create(ctx context.Context, p params.CreateUser) (vo.CommonResponse[string], error) {
	return request.Do[vo.CommonResponse[string]](ctx, s.r, s.ep.Create(p))
}

func (s *UserService) Update(ctx context.Context, p params.UpdateUser) (vo.CommonResponse[string], error) {
	return request.Do[vo.CommonResponse[string]](ctx, s.r, s.ep.Update(p))
}

func (s *UserService) Delete(ctx context.Context, id string) (vo.CommonResponse[any], error) {
	return request.Do[vo.CommonResponse[any]](ctx, s.r, s.ep.Delete(id))
}
