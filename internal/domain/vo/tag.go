package vo

type Tag struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Slug        string  `json:"slug"`
	Description *string `json:"description,omitempty"`
	CreateTime  string  `json:"createTime,omitempty"`
	UpdateTime  string  `json:"updateTime,omitempty"`
}

type TagList = Page[Tag]
