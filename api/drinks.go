package api

import (
	"context"
	"net/http"
	"net/url"

	"github.com/qcutapp/dashboard-v2/models"
)

func drinkPath(menuID string) string {
	if menuID == "" {
		return "/venue/drink"
	}
	return "/venue/drink/" + url.PathEscape(menuID)
}

// ListDrinks returns the venue's drinks, or one menu's drinks when
// menuID is set.
func (c *Client) ListDrinks(ctx context.Context, token, menuID string) ([]models.Drink, error) {
	var drinks []models.Drink
	err := c.do(ctx, http.MethodGet, drinkPath(menuID), token, nil, &drinks)
	return drinks, err
}

func (c *Client) CreateDrink(ctx context.Context, token, menuID string, in models.DrinkInput) (models.Drink, error) {
	var drink models.Drink
	err := c.do(ctx, http.MethodPost, drinkPath(menuID), token, in, &drink)
	return drink, err
}

func (c *Client) UpdateDrink(ctx context.Context, token, id string, in models.DrinkInput) (models.Drink, error) {
	var drink models.Drink
	err := c.do(ctx, http.MethodPatch, "/venue/drink/"+url.PathEscape(id), token, in, &drink)
	return drink, err
}

func (c *Client) DeleteDrink(ctx context.Context, token, id string) error {
	return c.do(ctx, http.MethodDelete, "/venue/drink/"+url.PathEscape(id), token, nil, nil)
}

// DrinkCategories is the global category catalog shown in the drink
// editor. Public endpoint, no auth.
func (c *Client) DrinkCategories(ctx context.Context) ([]string, error) {
	var cats []string
	err := c.do(ctx, http.MethodGet, "/drink/categories", "", nil, &cats)
	return cats, err
}

// MenuCategories lists the categories used by one menu's drinks.
func (c *Client) MenuCategories(ctx context.Context, token, menuID string) ([]string, error) {
	var cats []string
	err := c.do(ctx, http.MethodGet, "/menu/"+url.PathEscape(menuID)+"/categories", token, nil, &cats)
	return cats, err
}
