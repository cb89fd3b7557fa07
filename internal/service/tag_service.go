package service

import (
	"context"

	"github.com/ayxworxfr/go_admin_client/internal/api/query"
	"github.com/ayxworxfr/go_admin_client/internal/api/request"
	"github.com/ayxworxfr/go_admin_client/internal/api/resource"
	"github.com/ayxworxfr/go_admin_client/internal/domain/params"
	"github.com/ayxworxfr/go_admin_client/internal/domain/vo"
)

type TagService struct {
	r  request.Requester
	ep request.Endpoint[string]
}

func NewTagService(r request.Requester) *TagService {
	return &TagService{r: r, ep: request.NewEndpoint[string](resource.Tag)}
}

// List 分页查询标签
func (s *TagService) List(ctx context.Context, filter *params.TagSearchParams) (vo.TagList, error) {
	values, err := query.Encode(filter)
	if err != nil {
		return vo.TagList{}, err
	}
	return request.Do[vo.TagList](ctx, s.r, s.ep.List(values, "page"))
}

func (s *TagService) Get(ctx context.Context, id string) (vo.Tag, error) {
	return request.Do[vo.Tag](ctx, s.r, s.ep.Get(id))
}

func (s *TagService) Create(ctx context.Context, p params.CreateTag) (vo.CommonResponse[string], error) {
	return request.Do[vo.CommonResponse[string]](ctx, s.r, s.ep.Create(p))
}

func (s *TagService) Update(ctx context.Context, p params.UpdateTag) (vo.CommonResponse[string], error) {
	return request.Do[vo.CommonResponse[string]](ctx, s.r, s.ep.Update(p))
}

func (s *TagService) Delete(ctx context.Context, id string) (vo.CommonResponse[any], error) {
	return request.Do[vo.CommonResponse[any]](ctx, s.r, s.ep.Delete(id))
}
