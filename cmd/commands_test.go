package main

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/alecthomas/kong"
	"github.com/ayxworxfr/go_admin_client/internal/domain/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parse(t *testing.T, args ...string) (*CLI, *kong.Context) {
	t.Helper()
	cli := &CLI{}
	parser, err := kong.New(cli, kong.Name("adminctl"))
	require.NoError(t, err)
	kctx, err := parser.Parse(args)
	require.NoError(t, err)
	return cli, kctx
}

func TestArticlesList_Filter(t *testing.T) {
	cli, kctx := parse(t, "articles", "list", "--status", "PUBLISHED", "--from", "2024-01-01", "--to", "2024-01-31", "--size", "20")
	assert.Equal(t, "articles list", kctx.Command())

	filter, err := cli.Articles.List.filter()
	require.NoError(t, err)
	assert.Equal(t, 1, *filter.Current)
	assert.Equal(t, 20, *filter.Size)
	assert.Equal(t, types.ArticlePublished, *filter.Status)
	assert.Equal(t, []string{"2024-01-01", "2024-01-31"}, filter.DateRange)
	assert.Nil(t, filter.Title)
	assert.Nil(t, filter.CategoryID)
}

func TestArticlesList_FilterErrors(t *testing.T) {
	cli, _ := parse(t, "articles", "list", "--status", "ARCHIVED")
	_, err := cli.Articles.List.filter()
	assert.Error(t, err)

	cli, _ = parse(t, "articles", "list", "--from", "2024-01-01")
	_, err = cli.Articles.List.filter()
	assert.Error(t, err)
}

func TestOptionsCmd(t *testing.T) {
	_, kctx := parse(t, "options")
	var out bytes.Buffer
	rt := &Runtime{ctx: context.Background(), cli: &CLI{}, out: &out}
	require.NoError(t, kctx.Run(rt))

	var got map[string][]map[string]any
	require.NoError(t, json.Unmarshal(out.Bytes(), &got))
	require.Len(t, got["articleStatus"], 3)
	assert.Equal(t, "DRAFT", got["articleStatus"][0]["value"])
	assert.Equal(t, float64(1), got["enableStatus"][0]["value"])
	assert.Equal(t, "page.manage.user.gender.male", got["userGender"][0]["label"])
	assert.Nil(t, rt.app)
}
