package types

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// EnableStatus 启用状态：1 启用，2 禁用
type EnableStatus int

const (
	StatusEnabled  EnableStatus = 1
	StatusDisabled EnableStatus = 2
)

func (s EnableStatus) Valid() bool {
	return s == StatusEnabled || s == StatusDisabled
}

func (s *EnableStatus) UnmarshalJSON(data []byte) error {
	return unmarshalIntEnum(data, "enable status", EnableStatus.Valid, s)
}

// UserGender 用户性别
type UserGender string

const (
	GenderMale    UserGender = "MALE"
	GenderFemale  UserGender = "FEMALE"
	GenderUnknown UserGender = "UNKNOWN"
)

func (g UserGender) Valid() bool {
	switch g {
	case GenderMale, GenderFemale, GenderUnknown:
		return true
	}
	return false
}

func (g *UserGender) UnmarshalJSON(data []byte) error {
	return unmarshalStringEnum(data, "user gender", UserGender.Valid, g)
}

// MenuType 菜单类型：1 目录，2 菜单
type MenuType int

const (
	MenuTypeDirectory MenuType = 1
	MenuTypeMenu      MenuType = 2
)

func (t MenuType) Valid() bool {
	return t == MenuTypeDirectory || t == MenuTypeMenu
}

func (t *MenuType) UnmarshalJSON(data []byte) error {
	return unmarshalIntEnum(data, "menu type", MenuType.Valid, t)
}

// IconType 图标类型：1 iconify 图标，2 本地图标
type IconType int

const (
	IconTypeIconify IconType = 1
	IconTypeLocal   IconType = 2
)

func (t IconType) Valid() bool {
	return t == IconTypeIconify || t == IconTypeLocal
}

func (t *IconType) UnmarshalJSON(data []byte) error {
	return unmarshalIntEnum(data, "icon type", IconType.Valid, t)
}

// ArticleStatus 文章状态
type ArticleStatus string

const (
	ArticleDraft     ArticleStatus = "DRAFT"
	ArticlePublished ArticleStatus = "PUBLISHED"
	ArticleOffline   ArticleStatus = "OFFLINE"
)

func (s ArticleStatus) Valid() bool {
	switch s {
	case ArticleDraft, ArticlePublished, ArticleOffline:
		return true
	}
	return false
}

func (s *ArticleStatus) UnmarshalJSON(data []byte) error {
	return unmarshalStringEnum(data, "article status", ArticleStatus.Valid, s)
}

// ArticleEditType 文章编辑器类型
type ArticleEditType string

const (
	EditMarkdown ArticleEditType = "MARKDOWN"
	EditRichText ArticleEditType = "RICHTEXT"
	EditUpload   ArticleEditType = "UPLOAD"
)

func (t ArticleEditType) Valid() bool {
	switch t {
	case EditMarkdown, EditRichText, EditUpload:
		return true
	}
	return false
}

func (t *ArticleEditType) UnmarshalJSON(data []byte) error {
	return unmarshalStringEnum(data, "article edit type", ArticleEditType.Valid, t)
}

// PermissionType 用户权限类型
type PermissionType string

const (
	PermissionButton PermissionType = "button"
	PermissionMenu   PermissionType = "menu"
)

func (t PermissionType) Valid() bool {
	return t == PermissionButton || t == PermissionMenu
}

func (t *PermissionType) UnmarshalJSON(data []byte) error {
	return unmarshalStringEnum(data, "permission type", PermissionType.Valid, t)
}

// unmarshalIntEnum 同时接受数字和数字字符串（"1"），null 保持原值
func unmarshalIntEnum[T ~int](data []byte, name string, valid func(T) bool, dst *T) error {
	if string(data) == "null" {
		return nil
	}
	raw := strings.Trim(string(data), `"`)
	n, err := strconv.Atoi(raw)
	if err != nil {
		return fmt.Errorf("invalid %s %s: %w", name, string(data), err)
	}
	if !valid(T(n)) {
		return fmt.Errorf("invalid %s: %d", name, n)
	}
	*dst = T(n)
	return nil
}

func unmarshalStringEnum[T ~string](data []byte, name string, valid func(T) bool, dst *T) error {
	if string(data) == "null" {
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("invalid %s %s: %w", name, string(data), err)
	}
	if !valid(T(s)) {
		return fmt.Errorf("invalid %s: %q", name, s)
	}
	*dst = T(s)
	return nil
}
