package params

import (
	"github.com/ayxworxfr/go_admin_client/internal/api/query"
	"github.com/ayxworxfr/go_admin_client/internal/domain/types"
)

// PublishedAtRange dateRange 拆分为 startPublishedAt / endPublishedAt
var PublishedAtRange = query.RangeRule{Field: "dateRange", Name: "PublishedAt"}

// ArticlePayload 创建/更新文章的公共字段
type ArticlePayload struct {
	Title       string                `json:"title"`
	Slug        string                `json:"slug,omitempty"`
	Summary     *string               `json:"summary,omitempty"`
	EditorType  types.ArticleEditType `json:"editorType"`
	ContentMd   *string               `json:"contentMd,omitempty"`
	ContentHTML *string               `json:"contentHtml,omitempty"`
	ContentRaw  *string               `json:"contentRaw,omitempty"`
	CoverImage  *string               `json:"coverImage,omitempty"`
	CategoryID  *string               `json:"categoryId,omitempty"`
	TagIDs      []string              `json:"tagIds"`
	AuthorName  string                `json:"authorName"`
	PublishTime *string               `json:"publishTime,omitempty"`
	IsTop       bool                  `json:"isTop"`
	IsRecommend bool                  `json:"isRecommend"`
}

type CreateArticle = ArticlePayload

// UpdateArticle 更新文章请求
type UpdateArticle struct {
	ID int64 `json:"-"`
	ArticlePayload
}

func (a UpdateArticle) Identifier() int64 { return a.ID }

// ArticleSearchParams 文章列表筛选，DateRange 为 [开始, 结束]
type ArticleSearchParams struct {
	CommonSearchParams
	Title       *string                `query:"title,omitempty"`
	CategoryID  *string                `query:"categoryId,omitempty"`
	Status      *types.ArticleStatus   `query:"status,omitempty"`
	EditorType  *types.ArticleEditType `query:"editorType,omitempty"`
	IsTop       *bool                  `query:"isTop,omitempty"`
	IsRecommend *bool                  `query:"isRecommend,omitempty"`
	DateRange   []string               `query:"dateRange,omitempty"`
}

type ArticleStatusRequest struct {
	Status types.ArticleStatus `json:"status"`
}

type ArticleTopRequest struct {
	IsTop bool `json:"isTop"`
}

type ArticleRecommendRequest struct {
	IsRecommend bool `json:"isRecommend"`
}
