package api

import (
	"context"
	"net/http"
	"net/url"

	"github.com/qcutapp/dashboard-v2/models"
)

func specialPath(menuID string) string {
	if menuID == "" {
		return "/venue/special"
	}
	return "/venue/special/" + url.PathEscape(menuID)
}

func (c *Client) ListSpecials(ctx context.Context, token, menuID string) ([]models.Special, error) {
	var specials []models.Special
	err := c.do(ctx, http.MethodGet, specialPath(menuID), token, nil, &specials)
	return specials, err
}

func (c *Client) CreateSpecial(ctx context.Context, token, menuID string, in models.SpecialInput) (models.Special, error) {
	var special models.Special
	err := c.do(ctx, http.MethodPost, specialPath(menuID), token, in, &special)
	return special, err
}

func (c *Client) UpdateSpecial(ctx context.Context, token, id string, in models.SpecialInput) (models.Special, error) {
	var special models.Special
	err := c.do(ctx, http.MethodPatch, "/venue/special/"+url.PathEscape(id), token, in, &special)
	return special, err
}

func (c *Client) DeleteSpecial(ctx context.Context, token, id string) error {
	return c.do(ctx, http.MethodDelete, "/venue/special/"+url.PathEscape(id), token, nil, nil)
}
