package types

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// RouteQuery 路由附带的查询参数
type RouteQuery struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// RouteProps 菜单上与前端路由 meta 对应的属性
type RouteProps struct {
	I18nKey         string       `json:"i18nKey,omitempty"`
	KeepAlive       bool         `json:"keepAlive,omitempty"`
	Constant        bool         `json:"constant,omitempty"`
	Order           FlexInt      `json:"order,omitempty"`
	Href            string       `json:"href,omitempty"`
	HideInMenu      bool         `json:"hideInMenu,omitempty"`
	ActiveMenu      string       `json:"activeMenu,omitempty"`
	MultiTab        bool         `json:"multiTab,omitempty"`
	FixedIndexInTab *int         `json:"fixedIndexInTab,omitempty"`
	Query           []RouteQuery `json:"query,omitempty"`
}

// FlexInt 后端可能以数字或数字字符串返回的整数
type FlexInt int

func (n *FlexInt) UnmarshalJSON(data []byte) error {
	raw := string(data)
	if raw == "null" {
		return nil
	}
	raw = strings.Trim(raw, `"`)
	if raw == "" {
		*n = 0
		return nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return fmt.Errorf("invalid integer %s: %w", string(data), err)
	}
	*n = FlexInt(v)
	return nil
}

func (n FlexInt) MarshalJSON() ([]byte, error) {
	return json.Marshal(int(n))
}
