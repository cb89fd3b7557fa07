package vo

// Role 角色视图对象
type Role struct {
	CommonRecord[int64]
	Name        string `json:"name"`
	Code        string `json:"code"`
	Description string `json:"description"`
	IsSystem    bool   `json:"isSystem"`
}

type RoleList = Page[Role]

// AllRole 启用中的角色（下拉选项用）
type AllRole struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	Code string `json:"code"`
}
