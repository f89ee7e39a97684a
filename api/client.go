// Package api is the typed client for the venue REST backend. It is the
// dashboard's only data source; there is no local database.
package api

import (
	"context"
	"fmt"

	"github.com/go-resty/resty/v2"

	"github.com/qcutapp/dashboard-v2/config"
)

type Client struct {
	rc *resty.Client
}

func New(cfg config.API) *Client {
	rc := resty.New().
		SetBaseURL(cfg.Endpoint).
		SetTimeout(cfg.Timeout)
	return &Client{rc: rc}
}

// do runs one request. token may be empty for the few public endpoints.
// out, when non-nil, receives the decoded success body.
func (c *Client) do(ctx context.Context, method, path, token string, body, out any) error {
	req := c.rc.R().SetContext(ctx)
	if token != "" {
		req.SetAuthToken(token)
	}
	if body != nil {
		req.SetBody(body)
	}
	if out != nil {
		req.SetResult(out)
	}

	resp, err := req.Execute(method, path)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	if resp.IsError() {
		return parseError(resp.StatusCode(), resp.Body())
	}
	return nil
}
