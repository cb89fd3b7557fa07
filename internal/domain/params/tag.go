package params

// TagSearchParams 标签列表筛选
type TagSearchParams struct {
	CommonSearchParams
	Search *string `query:"search,omitempty"`
	Slug   *string `query:"slug,omitempty"`
}

// CreateTag 创建标签请求
type CreateTag struct {
	Name        string  `json:"name"`
	Slug        string  `json:"slug"`
	Description *string `json:"description,omitempty"`
}

// UpdateTag 部分更新标签
type UpdateTag struct {
	ID          string  `json:"-"`
	Name        *string `json:"name,omitempty"`
	Slug        *string `json:"slug,omitempty"`
	Description *string `json:"description,omitempty"`
}

func (t UpdateTag) Identifier() string { return t.ID }
