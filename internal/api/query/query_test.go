package query

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type Page struct {
	Current *int `query:"current,omitempty"`
	Size    *int `query:"size,omitempty"`
}

type articleFilter struct {
	Page
	Title     *string  `query:"title,omitempty"`
	IsTop     *bool    `query:"isTop,omitempty"`
	DateRange []string `query:"dateRange,omitempty"`
}

var publishedAt = RangeRule{Field: "dateRange", Name: "PublishedAt"}

func ptr[T any](v T) *T { return &v }

func TestEncode_SplitsDateRange(t *testing.T) {
	filter := &articleFilter{
		Page:      Page{Current: ptr(1), Size: ptr(10)},
		DateRange: []string{"2024-01-01", "2024-01-31"},
	}

	values, err := Encode(filter, publishedAt)
	require.NoError(t, err)

	assert.Equal(t, url.Values{
		"current":          {"1"},
		"size":             {"10"},
		"startPublishedAt": {"2024-01-01"},
		"endPublishedAt":   {"2024-01-31"},
	}, values)
	assert.NotContains(t, values, "dateRange")
}

func TestEncode_NilFieldsOmitted(t *testing.T) {
	values, err := Encode(articleFilter{Title: ptr("go")})
	require.NoError(t, err)

	assert.Equal(t, url.Values{"title": {"go"}}, values)
	for key, vs := range values {
		for _, v := range vs {
			assert.NotEqual(t, "null", v, key)
		}
	}
}

func TestEncode_FalseIsKept(t *testing.T) {
	values, err := Encode(&articleFilter{IsTop: ptr(false)})
	require.NoError(t, err)
	assert.Equal(t, "false", values.Get("isTop"))
}

func TestEncode_RangeOtherLengthPassedThrough(t *testing.T) {
	tests := []struct {
		name  string
		input []string
		want  url.Values
	}{
		{"single", []string{"2024-01-01"}, url.Values{"dateRange": {"2024-01-01"}}},
		{"triple", []string{"a", "b", "c"}, url.Values{"dateRange": {"a", "b", "c"}}},
		{"empty", []string{}, url.Values{}},
		{"nil", nil, url.Values{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			values, err := Encode(&articleFilter{DateRange: tt.input}, publishedAt)
			require.NoError(t, err)
			assert.Equal(t, tt.want, values)
		})
	}
}

func TestEncode_NilFilter(t *testing.T) {
	values, err := Encode(nil, publishedAt)
	require.NoError(t, err)
	assert.Empty(t, values)

	var filter *articleFilter
	values, err = Encode(filter)
	require.NoError(t, err)
	assert.Empty(t, values)
}

func TestEncode_NotStruct(t *testing.T) {
	_, err := Encode(42)
	assert.Error(t, err)
}

func TestSplitRange_Keys(t *testing.T) {
	rule := RangeRule{Field: "createRange", Name: "CreateTime"}
	assert.Equal(t, "startCreateTime", rule.StartKey())
	assert.Equal(t, "endCreateTime", rule.EndKey())

	values := url.Values{"createRange": {"x", "y"}, "other": {"1"}}
	SplitRange(values, rule)
	assert.Equal(t, url.Values{"other": {"1"}, "startCreateTime": {"x"}, "endCreateTime": {"y"}}, values)
}
