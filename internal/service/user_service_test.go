package service

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/ayxworxfr/go_admin_client/internal/api/request"
	"github.com/ayxworxfr/go_admin_client/internal/domain/params"
	"github.com/ayxworxfr/go_admin_client/internal/domain/types"
	"github.com/ayxworxfr/go_admin_client/pkg/tests"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserService_UpdateIDOnlyInURL(t *testing.T) {
	rec := tests.NewRecorder().Respond(request.PATCH, "/users/u-42", `{"code":200,"message":"ok","data":"u-42"}`)

	resp, err := NewUserService(rec).Update(context.Background(), params.UpdateUser{
		ID:         "u-42",
		CreateUser: params.CreateUser{Email: "a@b.c", UserName: "alice", Gender: ptr(types.GenderFemale)},
	})
	require.NoError(t, err)
	assert.Equal(t, "u-42", resp.Data)

	body, err := rec.Body()
	require.NoError(t, err)
	var fields map[string]any
	require.NoError(t, json.Unmarshal([]byte(body), &fields))
	assert.NotContains(t, fields, "id")
	assert.Equal(t, "alice", fields["userName"])
	assert.Equal(t, "FEMALE", fields["gender"])
}

func TestUserService_List(t *testing.T) {
	rec := tests.NewRecorder().Respond(request.GET, "/users", `{
		"current": 1, "size": 10, "total": 1,
		"records": [{"id": "u1", "createBy": "system", "createTime": "2024-01-01", "updateBy": "", "updateTime": "",
			"status": 1, "userName": "alice", "gender": "FEMALE", "nickName": "A", "phone": "", "email": "a@b.c",
			"roleIds": ["R_ADMIN"]}]
	}`)

	page, err := NewUserService(rec).List(context.Background(), &params.UserSearchParams{CommonSearchParams: params.NewPage(1, 10)})
	require.NoError(t, err)
	require.Len(t, page.Records, 1)
	assert.LessOrEqual(t, len(page.Records), page.Size)

	user := page.Records[0]
	assert.Equal(t, "u1", user.ID)
	assert.Equal(t, types.StatusEnabled, user.Status)
	assert.Equal(t, types.GenderFemale, *user.Gender)
}

func TestUserService_List_InvalidStatus(t *testing.T) {
	rec := tests.NewRecorder().Respond(request.GET, "/users",
		`{"current":1,"size":10,"total":1,"records":[{"id":"u1","status":3}]}`)

	_, err := NewUserService(rec).List(context.Background(), nil)
	assert.Error(t, err)
}

func TestUserService_CreateDelete(t *testing.T) {
	rec := tests.NewRecorder().
		Respond(request.POST, "/users", `{"code":200,"message":"ok","data":"u-9"}`).
		Respond(request.DELETE, "/users/u-9", `{"code":200,"message":"ok","data":null}`)
	svc := NewUserService(rec)

	created, err := svc.Create(context.Background(), params.CreateUser{Email: "x@y.z", UserName: "x", Password: "p"})
	require.NoError(t, err)
	assert.Equal(t, "u-9", created.Data)

	body, err := rec.Body()
	require.NoError(t, err)
	assert.JSONEq(t, `{"email":"x@y.z","userName":"x","password":"p"}`, body)

	deleted, err := svc.Delete(context.Background(), created.Data)
	require.NoError(t, err)
	assert.Equal(t, 200, deleted.Code)
	assert.Nil(t, rec.Last().Data)
}
