package api

import (
	"context"
	"net/http"

	"github.com/qcutapp/dashboard-v2/models"
)

// VenueMe returns the operator's venue with nested drinks, specials and
// menus.
func (c *Client) VenueMe(ctx context.Context, token string) (models.Venue, error) {
	var venue models.Venue
	err := c.do(ctx, http.MethodGet, "/venue/me", token, nil, &venue)
	return venue, err
}

// Takings returns today's takings total, 0 when the venue has none yet.
func (c *Client) Takings(ctx context.Context, token string) (float64, error) {
	var out struct {
		Sum []struct {
			Total models.Price `json:"total"`
		} `json:"sum"`
	}
	if err := c.do(ctx, http.MethodGet, "/venue/takings", token, nil, &out); err != nil {
		return 0, err
	}
	if len(out.Sum) == 0 {
		return 0, nil
	}
	return out.Sum[0].Total.Float(), nil
}

// VenueCategories lists the categories the venue's drinks currently use
// (the filter button row).
func (c *Client) VenueCategories(ctx context.Context, token string) ([]string, error) {
	var cats []string
	err := c.do(ctx, http.MethodGet, "/venue/categories", token, nil, &cats)
	return cats, err
}
