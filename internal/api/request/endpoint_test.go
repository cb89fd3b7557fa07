package request

import (
	"context"
	"encoding/json"
	"errors"
	"net/url"
	"strings"
	"testing"

	"github.com/ayxworxfr/go_admin_client/internal/api/resource"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type updateThing struct {
	ID   int64  `json:"-"`
	Name string `json:"name"`
}

func (u updateThing) Identifier() int64 { return u.ID }

type updateNote struct {
	ID    string `json:"-"`
	Title string `json:"title,omitempty"`
}

func (u updateNote) Identifier() string { return u.ID }

var things = NewEndpoint[int64](resource.Prefix("/things"))

func TestEndpoint_Update(t *testing.T) {
	d := things.Update(updateThing{ID: 42, Name: "x"})

	assert.Equal(t, "/things/42", d.URL)
	assert.Equal(t, PATCH, d.Method)
	assert.Nil(t, d.Params)
	assert.Equal(t, 1, strings.Count(d.URL, "42"))

	body, err := json.Marshal(d.Data)
	require.NoError(t, err)
	assert.JSONEq(t, `{"name":"x"}`, string(body))
}

func TestEndpoint_Update_StringID(t *testing.T) {
	notes := NewEndpoint[string](resource.Prefix("/notes"))
	d := notes.Update(updateNote{ID: "n-1", Title: "hello"})

	assert.Equal(t, "/notes/n-1", d.URL)
	body, err := json.Marshal(d.Data)
	require.NoError(t, err)

	var fields map[string]any
	require.NoError(t, json.Unmarshal(body, &fields))
	assert.NotContains(t, fields, "id")
	assert.Equal(t, "hello", fields["title"])
}

func TestEndpoint_Delete(t *testing.T) {
	d := things.Delete(7)
	assert.Equal(t, &Descriptor{URL: "/things/7", Method: DELETE}, d)
}

func TestEndpoint_CreateThenGet_SamePrefix(t *testing.T) {
	created := things.Create(map[string]string{"name": "x"})
	fetched := things.Get(99)

	assert.Equal(t, POST, created.Method)
	assert.Equal(t, "/things", created.URL)
	assert.Equal(t, GET, fetched.Method)
	assert.True(t, strings.HasPrefix(fetched.URL, created.URL+"/"))
}

func TestEndpoint_ListAndSubPaths(t *testing.T) {
	params := url.Values{"current": {"1"}}

	d := things.List(params)
	assert.Equal(t, "/things", d.URL)
	assert.Equal(t, GET, d.Method)
	assert.Equal(t, params, d.Params)

	assert.Equal(t, "/things/page", things.List(nil, "page").URL)
	assert.Equal(t, "/things/route-names", things.Fetch("route-names").URL)
	assert.Equal(t, "/things/3/menus", things.Sub(3, "menus").URL)

	patch := things.Patch(3, "top", map[string]bool{"isTop": true})
	assert.Equal(t, "/things/3/top", patch.URL)
	assert.Equal(t, PATCH, patch.Method)
	assert.Equal(t, map[string]bool{"isTop": true}, patch.Data)
}

func TestDo_SingleRequest(t *testing.T) {
	var calls int
	r := RequesterFunc(func(ctx context.Context, d *Descriptor, out any) error {
		calls++
		return json.Unmarshal([]byte(`{"current":1,"size":10,"total":0,"records":[]}`), out)
	})

	got, err := Do[map[string]any](context.Background(), r, things.List(nil))
	require.NoError(t, err)
	assert.Equal(t, 1, calls)
	assert.Equal(t, float64(10), got["size"])
}

func TestDo_ForwardsError(t *testing.T) {
	transportErr := errors.New("connection refused")
	r := RequesterFunc(func(ctx context.Context, d *Descriptor, out any) error {
		return transportErr
	})

	_, err := Do[bool](context.Background(), r, things.Get(1))
	assert.ErrorIs(t, err, transportErr)
}
