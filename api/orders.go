package api

import (
	"context"
	"net/http"
	"net/url"

	"github.com/qcutapp/dashboard-v2/models"
)

// HistoryFilter is the order-history query. Empty fields are still sent
// as empty params, matching the query string the dashboard always built.
type HistoryFilter struct {
	Name    string
	OrderID string
	From    string // YYYY-MM-DD
	To      string // YYYY-MM-DD
}

func (f HistoryFilter) Values() url.Values {
	v := url.Values{}
	v.Set("name", f.Name)
	v.Set("orderID", f.OrderID)
	v.Set("from", f.From)
	v.Set("to", f.To)
	return v
}

// Active reports whether any filter field is set (drives the "reset
// filters" affordance).
func (f HistoryFilter) Active() bool {
	return f.Name != "" || f.OrderID != "" || f.From != "" || f.To != ""
}

func (c *Client) OrderHistory(ctx context.Context, token string, f HistoryFilter) ([]models.Order, error) {
	var orders []models.Order
	err := c.do(ctx, http.MethodGet, "/venue/orders/history?"+f.Values().Encode(), token, nil, &orders)
	return orders, err
}
