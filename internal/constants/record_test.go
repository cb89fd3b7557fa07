package constants

import (
	"testing"

	"github.com/ayxworxfr/go_admin_client/internal/domain/types"
	"github.com/stretchr/testify/assert"
)

func TestOptionsOf_OrderPreserved(t *testing.T) {
	assert.Equal(t, []Option[types.EnableStatus]{
		{Value: types.StatusEnabled, Label: "page.manage.common.status.enable"},
		{Value: types.StatusDisabled, Label: "page.manage.common.status.disable"},
	}, EnableStatusOptions)

	assert.Equal(t,
		[]types.ArticleStatus{types.ArticleDraft, types.ArticlePublished, types.ArticleOffline},
		ArticleStatusRecord.Keys())
}

func TestOptionsOf_Total(t *testing.T) {
	assert.Len(t, UserGenderOptions, len(UserGenderRecord))
	assert.Len(t, MenuTypeOptions, len(MenuTypeRecord))
	assert.Len(t, MenuIconTypeOptions, len(MenuIconTypeRecord))
	assert.Len(t, ArticleEditTypeOptions, len(ArticleEditTypeRecord))

	for _, option := range ArticleEditTypeOptions {
		assert.True(t, option.Value.Valid())
		assert.NotEmpty(t, option.Label)
	}
}

func TestOptionsOf_Empty(t *testing.T) {
	assert.Empty(t, OptionsOf(Record[string]{}))
}

func TestRecord_Label(t *testing.T) {
	assert.Equal(t, Label("page.manage.user.gender.female"), UserGenderRecord.Label(types.GenderFemale))
	assert.Equal(t, Label("page.manage.menu.iconType.local"), MenuIconTypeRecord.Label(types.IconTypeLocal))
	assert.Equal(t, Label(""), UserGenderRecord.Label("OTHER"))
}
