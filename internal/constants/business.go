package constants

import "github.com/ayxworxfr/go_admin_client/internal/domain/types"

var EnableStatusRecord = Record[types.EnableStatus]{
	{Key: types.StatusEnabled, Value: "page.manage.common.status.enable"},
	{Key: types.StatusDisabled, Value: "page.manage.common.status.disable"},
}

var EnableStatusOptions = OptionsOf(EnableStatusRecord)

var UserGenderRecord = Record[types.UserGender]{
	{Key: types.GenderMale, Value: "page.manage.user.gender.male"},
	{Key: types.GenderFemale, Value: "page.manage.user.gender.female"},
	{Key: types.GenderUnknown, Value: "page.manage.user.gender.unknown"},
}

var UserGenderOptions = OptionsOf(UserGenderRecord)

var MenuTypeRecord = Record[types.MenuType]{
	{Key: types.MenuTypeDirectory, Value: "page.manage.menu.type.directory"},
	{Key: types.MenuTypeMenu, Value: "page.manage.menu.type.menu"},
}

var MenuTypeOptions = OptionsOf(MenuTypeRecord)

var MenuIconTypeRecord = Record[types.IconType]{
	{Key: types.IconTypeIconify, Value: "page.manage.menu.iconType.iconify"},
	{Key: types.IconTypeLocal, Value: "page.manage.menu.iconType.local"},
}

var MenuIconTypeOptions = OptionsOf(MenuIconTypeRecord)

var ArticleStatusRecord = Record[types.ArticleStatus]{
	{Key: types.ArticleDraft, Value: "page.manage.content.status.draft"},
	{Key: types.ArticlePublished, Value: "page.manage.content.status.published"},
	{Key: types.ArticleOffline, Value: "page.manage.content.status.offline"},
}

var ArticleStatusOptions = OptionsOf(ArticleStatusRecord)

var ArticleEditTypeRecord = Record[types.ArticleEditType]{
	{Key: types.EditMarkdown, Value: "page.manage.content.editTypeMap.markdown"},
	{Key: types.EditRichText, Value: "page.manage.content.editTypeMap.richtext"},
	{Key: types.EditUpload, Value: "page.manage.content.editTypeMap.upload"},
}

var ArticleEditTypeOptions = OptionsOf(ArticleEditTypeRecord)
