package vo

import "github.com/ayxworxfr/go_admin_client/internal/domain/types"

// Category 分类，children 构成分类树
type Category struct {
	ID          string         `json:"id"`
	Name        string         `json:"name"`
	Slug        string         `json:"slug"`
	Description *string        `json:"description,omitempty"`
	ParentID    *string        `json:"parentId,omitempty"`
	Order       *types.FlexInt `json:"order,omitempty"`
	Children    []Category     `json:"children,omitempty"`
}

type CategoryTree = Category
