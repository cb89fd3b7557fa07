package service

import (
	"context"

	"github.com/ayxworxfr/go_admin_client/internal/api/request"
	"github.com/ayxworxfr/go_admin_client/internal/api/resource"
	"github.com/ayxworxfr/go_admin_client/internal/domain/params"
	"github.com/ayxworxfr/go_admin_client/internal/domain/vo"
)

// CategoryService 分类管理，分类没有分页，列表即整棵树
type CategoryService struct {
	r  request.Requester
	ep request.Endpoint[string]
}

func NewCategoryService(r request.Requester) *CategoryService {
	return &CategoryService{r: r, ep: request.NewEndpoint[string](resource.Category)}
}

func (s *CategoryService) Tree(ctx context.Context) ([]vo.Category, error) {
	return request.Do[[]vo.Category](ctx, s.r, s.ep.Fetch())
}

func (s *CategoryService) Get(ctx context.Context, id string) (vo.Category, error) {
	return request.Do[vo.Category](ctx, s.r, s.ep.Get(id))
}

func (s *CategoryService) Create(ctx context.Context, p params.CreateCategory) (vo.CommonResponse[string], error) {
	return request.Do[vo.CommonResponse[string]](ctx, s.r, s.ep.Create(p))
}

func (s *CategoryService) Update(ctx context.Context, p params.UpdateCategory) (vo.CommonResponse[string], error) {
	return request.Do[vo.CommonResponse[string]](ctx, s.r, s.ep.Update(p))
}

func (s *CategoryService) Delete(ctx context.Context, id string) (vo.CommonResponse[any], error) {
	return request.Do[vo.CommonResponse[any]](ctx, s.r, s.ep.Delete(id))
}
