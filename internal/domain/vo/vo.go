package vo

import "github.com/ayxworxfr/go_admin_client/internal/domain/types"

// Page 分页信封，所有列表接口统一返回
type Page[T any] struct {
	Current int   `json:"current"`
	Size    int   `json:"size"`
	Total   int64 `json:"total"`
	Records []T   `json:"records"`
}

// CommonResponse 非分页接口的通用返回
type CommonResponse[T any] struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Data    T      `json:"data"`
}

// Record 记录的来源信息
type Record[K comparable] struct {
	ID         K      `json:"id"`
	CreateBy   string `json:"createBy"`
	CreateTime string `json:"createTime"`
	UpdateBy   string `json:"updateBy"`
	UpdateTime string `json:"updateTime"`
}

// CommonRecord 大多数资源共用的记录结构
type CommonRecord[K comparable] struct {
	Record[K]
	Status types.EnableStatus `json:"status"`
}
