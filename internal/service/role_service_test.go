package service

import (
	"context"
	"testing"

	"github.com/ayxworxfr/go_admin_client/internal/api/request"
	"github.com/ayxworxfr/go_admin_client/internal/domain/params"
	"github.com/ayxworxfr/go_admin_client/pkg/tests"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoleService_MenuList(t *testing.T) {
	rec := tests.NewRecorder().
		Respond(request.GET, "/roles/2/menus", `[1, 3, 5]`).
		Respond(request.PATCH, "/roles/2/menus", `{"code":200,"message":"ok","data":null}`)
	svc := NewRoleService(rec)

	ids, err := svc.GetMenuList(context.Background(), 2)
	require.NoError(t, err)
	assert.Equal(t, []int64{1, 3, 5}, ids)

	_, err = svc.UpdateMenuList(context.Background(), 2, append(ids, 7))
	require.NoError(t, err)
	body, err := rec.Body()
	require.NoError(t, err)
	assert.JSONEq(t, `{"menuIds":[1,3,5,7]}`, body)

	_, err = svc.UpdateMenuList(context.Background(), 2, nil)
	require.NoError(t, err)
	body, err = rec.Body()
	require.NoError(t, err)
	assert.JSONEq(t, `{"menuIds":[]}`, body)
}

func TestRoleService_UpdateUsesRolesPrefix(t *testing.T) {
	rec := tests.NewRecorder().Respond(request.PATCH, "/roles/4", `{"code":200,"message":"ok","data":4}`)

	resp, err := NewRoleService(rec).Update(context.Background(), params.UpdateRole{
		ID:         4,
		CreateRole: params.CreateRole{Name: "编辑", Code: "R_EDITOR", Description: "内容编辑"},
	})
	require.NoError(t, err)
	assert.Equal(t, int64(4), resp.Data)

	body, err := rec.Body()
	require.NoError(t, err)
	assert.JSONEq(t, `{"name":"编辑","code":"R_EDITOR","description":"内容编辑"}`, body)
}

func TestRoleService_All(t *testing.T) {
	rec := tests.NewRecorder().Respond(request.GET, "/roles",
		`[{"id":1,"name":"超级管理员","code":"R_SUPER"},{"id":2,"name":"管理员","code":"R_ADMIN"}]`)

	roles, err := NewRoleService(rec).All(context.Background())
	require.NoError(t, err)
	require.Len(t, roles, 2)
	assert.Equal(t, int64(2), roles[1].ID)
	assert.Equal(t, "R_ADMIN", roles[1].Code)
}
