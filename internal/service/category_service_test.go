package service

import (
	"context"
	"net/url"
	"testing"

	"github.com/ayxworxfr/go_admin_client/internal/api/request"
	"github.com/ayxworxfr/go_admin_client/internal/domain/params"
	"github.com/ayxworxfr/go_admin_client/internal/domain/types"
	"github.com/ayxworxfr/go_admin_client/pkg/tests"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCategoryService_Tree(t *testing.T) {
	rec := tests.NewRecorder().Respond(request.GET, "/categories", `[
		{"id": "c1", "name": "后端", "slug": "backend", "order": "1", "children": [
			{"id": "c2", "name": "Go", "slug": "go", "parentId": "c1", "order": 2}
		]}
	]`)

	tree, err := NewCategoryService(rec).Tree(context.Background())
	require.NoError(t, err)
	require.Len(t, tree, 1)
	assert.Equal(t, types.FlexInt(1), *tree[0].Order)

	child := tree[0].Children[0]
	assert.Equal(t, "c1", *child.ParentID)
	assert.Equal(t, types.FlexInt(2), *child.Order)
	assert.Nil(t, rec.Last().Params)
}

func TestCategoryService_UpdatePartial(t *testing.T) {
	rec := tests.NewRecorder().Respond(request.PATCH, "/categories/c2", `{"code":200,"message":"ok","data":"c2"}`)

	resp, err := NewCategoryService(rec).Update(context.Background(), params.UpdateCategory{ID: "c2", Order: ptr(types.FlexInt(5))})
	require.NoError(t, err)
	assert.Equal(t, "c2", resp.Data)

	body, err := rec.Body()
	require.NoError(t, err)
	assert.JSONEq(t, `{"order":5}`, body)
}

func TestCategoryService_CreateOrderZero(t *testing.T) {
	rec := tests.NewRecorder().Respond(request.POST, "/categories", `{"code":200,"message":"ok","data":"c9"}`)

	_, err := NewCategoryService(rec).Create(context.Background(), params.CreateCategory{
		Name: "Go", Slug: "go", Order: ptr(types.FlexInt(0)),
	})
	require.NoError(t, err)

	body, err := rec.Body()
	require.NoError(t, err)
	assert.JSONEq(t, `{"name":"Go","slug":"go","order":0}`, body)
}

func TestTagService_List(t *testing.T) {
	rec := tests.NewRecorder().Respond(request.GET, "/tags/page", `{
		"current": 1, "size": 2, "total": 3,
		"records": [{"id": "t1", "name": "Go", "slug": "go"}, {"id": "t2", "name": "Rust", "slug": "rust"}]
	}`)

	page, err := NewTagService(rec).List(context.Background(), &params.TagSearchParams{
		CommonSearchParams: params.NewPage(1, 2),
		Search:             ptr("g"),
	})
	require.NoError(t, err)

	assert.Equal(t, url.Values{"current": {"1"}, "size": {"2"}, "search": {"g"}}, rec.Last().Params)
	assert.GreaterOrEqual(t, page.Total, int64(len(page.Records)))
	assert.Equal(t, "rust", page.Records[1].Slug)
}

func TestTagService_CreateUpdate(t *testing.T) {
	rec := tests.NewRecorder().
		Respond(request.POST, "/tags", `{"code":200,"message":"ok","data":"t3"}`).
		Respond(request.PATCH, "/tags/t3", `{"code":200,"message":"ok","data":"t3"}`)
	svc := NewTagService(rec)

	created, err := svc.Create(context.Background(), params.CreateTag{Name: "Zig", Slug: "zig"})
	require.NoError(t, err)
	body, err := rec.Body()
	require.NoError(t, err)
	assert.JSONEq(t, `{"name":"Zig","slug":"zig"}`, body)

	_, err = svc.Update(context.Background(), params.UpdateTag{ID: created.Data, Description: ptr("systems")})
	require.NoError(t, err)
	assert.Equal(t, "/tags/t3", rec.Last().URL)
	body, err = rec.Body()
	require.NoError(t, err)
	assert.JSONEq(t, `{"description":"systems"}`, body)
}
