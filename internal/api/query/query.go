package query

import (
	"net/url"
	"reflect"

	"github.com/gorilla/schema"
	"github.com/pkg/errors"
)

// TagName 查询参数使用的结构体标签，与 params 包保持一致
const TagName = "query"

var encoder = schema.NewEncoder()

func init() {
	encoder.SetAliasTag(TagName)
}

// RangeRule 将二元区间字段拆分为 start<Name> / end<Name> 两个独立参数
//
//	RangeRule{Field: "dateRange", Name: "PublishedAt"}
//	dateRange=[a, b] => startPublishedAt=a&endPublishedAt=b
type RangeRule struct {
	Field string
	Name  string
}

func (r RangeRule) StartKey() string { return "start" + r.Name }

func (r RangeRule) EndKey() string { return "end" + r.Name }

// Encode 把可空的筛选结构体转换为扁平的查询参数
//
// 字段需使用 `query:"name,omitempty"` 且为指针或切片类型；nil 字段不会出现在结果中。
// 长度恰好为 2 的区间字段按 rules 拆分，原字段被移除；其它长度保持原样透传。
func Encode(filter any, rules ...RangeRule) (url.Values, error) {
	values := url.Values{}
	if isNil(filter) {
		return values, nil
	}
	if err := encoder.Encode(filter, values); err != nil {
		return nil, errors.Wrap(err, "encode query params")
	}
	for _, rule := range rules {
		SplitRange(values, rule)
	}
	return values, nil
}

// SplitRange 对已编码的参数应用单条区间规则
func SplitRange(values url.Values, rule RangeRule) {
	pair, ok := values[rule.Field]
	if !ok || len(pair) != 2 {
		return
	}
	values.Set(rule.StartKey(), pair[0])
	values.Set(rule.EndKey(), pair[1])
	values.Del(rule.Field)
}

func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	return rv.Kind() == reflect.Ptr && rv.IsNil()
}
