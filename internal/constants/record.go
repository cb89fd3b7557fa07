package constants

import "github.com/samber/lo"

// Label 国际化文案的 key
type Label string

// Record 有序的 值 -> 文案 静态表
type Record[K comparable] []lo.Entry[K, Label]

// Option 下拉选项
type Option[K comparable] struct {
	Value K     `json:"value"`
	Label Label `json:"label"`
}

// Label 返回值对应的文案，未登记的值返回空串
func (r Record[K]) Label(k K) Label {
	entry, ok := lo.Find(r, func(e lo.Entry[K, Label]) bool { return e.Key == k })
	if !ok {
		return ""
	}
	return entry.Value
}

// Keys 按登记顺序返回所有值
func (r Record[K]) Keys() []K {
	return lo.Map(r, func(e lo.Entry[K, Label], _ int) K { return e.Key })
}

// OptionsOf 按登记顺序把静态表转换为选项列表
func OptionsOf[K comparable](r Record[K]) []Option[K] {
	return lo.Map(r, func(e lo.Entry[K, Label], _ int) Option[K] {
		return Option[K]{Value: e.Key, Label: e.Value}
	})
}
