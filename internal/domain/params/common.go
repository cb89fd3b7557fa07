package params

// CommonSearchParams 列表分页参数，原样透传
type CommonSearchParams struct {
	Current *int `query:"current,omitempty" json:"current,omitempty"`
	Size    *int `query:"size,omitempty" json:"size,omitempty"`
}

// NewPage 构造分页参数
func NewPage(current, size int) CommonSearchParams {
	return CommonSearchParams{Current: &current, Size: &size}
}
