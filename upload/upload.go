// Package upload pushes a single file to the object-storage bucket and
// returns its public download URL.
package upload

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/url"
	"sync"

	"github.com/go-resty/resty/v2"

	"github.com/qcutapp/dashboard-v2/config"
)

// ErrBusy means an upload for the same field is still in flight;
// further attempts are ignored until it finishes.
var ErrBusy = errors.New("upload: already in progress")

type Uploader struct {
	rc     *resty.Client
	bucket string
	apiKey string

	mu       sync.Mutex
	inflight map[string]bool
}

func New(cfg config.Storage) *Uploader {
	return &Uploader{
		rc:       resty.New().SetBaseURL(cfg.Endpoint),
		bucket:   cfg.Bucket,
		apiKey:   cfg.APIKey,
		inflight: make(map[string]bool),
	}
}

type uploadResult struct {
	Name           string `json:"name"`
	DownloadTokens string `json:"downloadTokens"`
}

// Upload stores the file under name and returns its public URL. field
// keys the in-flight latch (one upload per editor field at a time).
func (u *Uploader) Upload(ctx context.Context, field, name string, r io.Reader) (string, error) {
	u.mu.Lock()
	if u.inflight[field] {
		u.mu.Unlock()
		return "", ErrBusy
	}
	u.inflight[field] = true
	u.mu.Unlock()

	defer func() {
		u.mu.Lock()
		delete(u.inflight, field)
		u.mu.Unlock()
	}()

	var result uploadResult
	resp, err := u.rc.R().
		SetContext(ctx).
		SetQueryParam("name", name).
		SetQueryParam("key", u.apiKey).
		SetBody(r).
		SetResult(&result).
		Post(fmt.Sprintf("/v0/b/%s/o", u.bucket))
	if err != nil {
		return "", fmt.Errorf("upload %s: %w", name, err)
	}
	if resp.IsError() {
		return "", fmt.Errorf("upload %s: storage returned %s", name, resp.Status())
	}

	return fmt.Sprintf("%s/v0/b/%s/o/%s?alt=media&token=%s",
		u.rc.BaseURL, u.bucket, url.PathEscape(result.Name), result.DownloadTokens), nil
}
