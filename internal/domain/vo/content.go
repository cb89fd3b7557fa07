package vo

import "github.com/ayxworxfr/go_admin_client/internal/domain/types"

// Article 文章视图对象，状态使用文章自己的枚举
type Article struct {
	Record[int64]
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
	Status      types.ArticleStatus   `json:"status"`
	ViewCount   int64                 `json:"viewCount"`
}

type ArticleList = Page[Article]
