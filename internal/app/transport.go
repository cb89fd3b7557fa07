package app

import (
	"context"

	"github.com/ayxworxfr/go_admin_client/internal/api/request"
	"github.com/ayxworxfr/go_admin_client/pkg/httpclient"
	"github.com/pkg/errors"
)

// Transport 把描述符交给 httpclient 执行，实现 request.Requester
type Transport struct {
	client *httpclient.Client
}

var _ request.Requester = (*Transport)(nil)

func NewTransport(client *httpclient.Client) *Transport {
	return &Transport{client: client}
}

func (t *Transport) Request(ctx context.Context, d *request.Descriptor, out any) error {
	if d == nil {
		return errors.New("nil request descriptor")
	}
	err := t.client.DoJSON(ctx, string(d.Method), d.URL, d.Params, d.Data, out)
	return errors.Wrapf(err, "%s %s", d.Method, d.URL)
}
