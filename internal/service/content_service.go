package service

import (
	"context"

	"github.com/ayxworxfr/go_admin_client/internal/api/query"
	"github.com/ayxworxfr/go_admin_client/internal/api/request"
	"github.com/ayxworxfr/go_admin_client/internal/api/resource"
	"github.com/ayxworxfr/go_admin_client/internal/domain/params"
	"github.com/ayxworxfr/go_admin_client/internal/domain/types"
	"github.com/ayxworxfr/go_admin_client/internal/domain/vo"
)

// ContentService 文章管理
type ContentService struct {
	r  request.Requester
	ep request.Endpoint[int64]
}

func NewContentService(r request.Requester) *ContentService {
	return &ContentService{r: r, ep: request.NewEndpoint[int64](resource.Content)}
}

// List 分页查询文章，dateRange 拆分为 startPublishedAt / endPublishedAt
func (s *ContentService) List(ctx context.Context, filter *params.ArticleSearchParams) (vo.ArticleList, error) {
	values, err := query.Encode(filter, params.PublishedAtRange)
	if err != nil {
		return vo.ArticleList{}, err
	}
	return request.Do[vo.ArticleList](ctx, s.r, s.ep.List(values))
}

func (s *ContentService) Get(ctx context.Context, id int64) (vo.Article, error) {
	return request.Do[vo.Article](ctx, s.r, s.ep.Get(id))
}

// Create 创建文章，tagIds 为空时发送 []
func (s *ContentService) Create(ctx context.Context, p params.CreateArticle) (vo.CommonResponse[int64], error) {
	p.TagIDs = nonNilTags(p.TagIDs)
	return request.Do[vo.CommonResponse[int64]](ctx, s.r, s.ep.Create(p))
}

func (s *ContentService) Update(ctx context.Context, p params.UpdateArticle) (vo.CommonResponse[int64], error) {
	p.TagIDs = nonNilTags(p.TagIDs)
	return request.Do[vo.CommonResponse[int64]](ctx, s.r, s.ep.Update(p))
}

func (s *ContentService) Delete(ctx context.Context, id int64) (vo.CommonResponse[any], error) {
	return request.Do[vo.CommonResponse[any]](ctx, s.r, s.ep.Delete(id))
}

// UpdateStatus 修改文章状态（发布、下线等）
func (s *ContentService) UpdateStatus(ctx context.Context, id int64, status types.ArticleStatus) (vo.CommonResponse[any], error) {
	d := s.ep.Patch(id, "status", params.ArticleStatusRequest{Status: status})
	return request.Do[vo.CommonResponse[any]](ctx, s.r, d)
}

// UpdateTop 置顶 / 取消置顶
func (s *ContentService) UpdateTop(ctx context.Context, id int64, isTop bool) (vo.CommonResponse[any], error) {
	d := s.ep.Patch(id, "top", params.ArticleTopRequest{IsTop: isTop})
	return request.Do[vo.CommonResponse[any]](ctx, s.r, d)
}

// UpdateRecommend 推荐 / 取消推荐
func (s *ContentService) UpdateRecommend(ctx context.Context, id int64, isRecommend bool) (vo.CommonResponse[any], error) {
	d := s.ep.Patch(id, "recommend", params.ArticleRecommendRequest{IsRecommend: isRecommend})
	return request.Do[vo.CommonResponse[any]](ctx, s.r, d)
}

func nonNilTags(ids []string) []string {
	if ids == nil {
		return []string{}
	}
	return ids
}
