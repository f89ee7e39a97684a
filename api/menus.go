package api

import (
	"context"
	"net/http"
	"net/url"

	"github.com/qcutapp/dashboard-v2/models"
)

func (c *Client) ListMenus(ctx context.Context, token string) ([]models.Menu, error) {
	var menus []models.Menu
	err := c.do(ctx, http.MethodGet, "/menu", token, nil, &menus)
	return menus, err
}

func (c *Client) GetMenu(ctx context.Context, token, id string) (models.Menu, error) {
	var menu models.Menu
	err := c.do(ctx, http.MethodGet, "/menu/"+url.PathEscape(id), token, nil, &menu)
	return menu, err
}

func (c *Client) CreateMenu(ctx context.Context, token string, in models.MenuInput) (models.Menu, error) {
	var menu models.Menu
	err := c.do(ctx, http.MethodPost, "/menu", token, in, &menu)
	return menu, err
}

func (c *Client) UpdateMenu(ctx context.Context, token, id string, in models.MenuInput) (models.Menu, error) {
	var menu models.Menu
	err := c.do(ctx, http.MethodPatch, "/menu/"+url.PathEscape(id), token, in, &menu)
	return menu, err
}

func (c *Client) DeleteMenu(ctx context.Context, token, id string) error {
	return c.do(ctx, http.MethodDelete, "/menu/"+url.PathEscape(id), token, nil, nil)
}

// ActivateMenu flips the active menu server-side and returns the full
// refreshed menu list.
func (c *Client) ActivateMenu(ctx context.Context, token, id string) ([]models.Menu, error) {
	var menus []models.Menu
	err := c.do(ctx, http.MethodPatch, "/menu/"+url.PathEscape(id)+"/activate", token, struct{}{}, &menus)
	return menus, err
}

// CopyMenu duplicates a menu and returns the new copy.
func (c *Client) CopyMenu(ctx context.Context, token, id string) (models.Menu, error) {
	var menu models.Menu
	err := c.do(ctx, http.MethodPost, "/menu/"+url.PathEscape(id)+"/copy", token, struct{}{}, &menu)
	return menu, err
}
