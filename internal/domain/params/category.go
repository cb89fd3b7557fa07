package params

import "github.com/ayxworxfr/go_admin_client/internal/domain/types"

// CreateCategory 创建分类请求
type CreateCategory struct {
	Name        string         `json:"name"`
	Slug        string         `json:"slug"`
	Description *string        `json:"description,omitempty"`
	ParentID    *string        `json:"parentId,omitempty"`
	Order       *types.FlexInt `json:"order,omitempty"`
}

// UpdateCategory 部分更新分类
type UpdateCategory struct {
	ID          string         `json:"-"`
	Name        *string        `json:"name,omitempty"`
	Slug        *string        `json:"slug,omitempty"`
	Description *string        `json:"description,omitempty"`
	ParentID    *string        `json:"parentId,omitempty"`
	Order       *types.FlexInt `json:"order,omitempty"`
}

func (c UpdateCategory) Identifier() string { return c.ID }
