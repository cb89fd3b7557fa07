package tests

import (
	"context"
	"errors"
	"testing"

	"github.com/ayxworxfr/go_admin_client/internal/api/request"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecorder(t *testing.T) {
	boom := errors.New("boom")
	r := NewRecorder().
		Respond(request.GET, "/tags/1", `{"id":"1","name":"go"}`).
		Fail(request.DELETE, "/tags/1", boom)

	var out map[string]string
	require.NoError(t, r.Request(context.Background(), &request.Descriptor{URL: "/tags/1", Method: request.GET}, &out))
	assert.Equal(t, "go", out["name"])

	err := r.Request(context.Background(), &request.Descriptor{URL: "/tags/1", Method: request.DELETE}, nil)
	assert.ErrorIs(t, err, boom)

	err = r.Request(context.Background(), &request.Descriptor{URL: "/tags", Method: request.POST, Data: map[string]string{"name": "x"}}, nil)
	assert.ErrorIs(t, err, ErrNoResponse)

	assert.Len(t, r.Calls(), 3)
	body, err := r.Body()
	require.NoError(t, err)
	assert.JSONEq(t, `{"name":"x"}`, body)
}

func TestSetup(t *testing.T) {
	cfg := Setup()
	require.NotNil(t, cfg)
	assert.Equal(t, "http://127.0.0.1:18080/api", cfg.Client.BaseURL)
	assert.Same(t, cfg, Setup())
}
