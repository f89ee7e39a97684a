package views

import (
	"context"
	"strconv"
	"sync"
	"time"

	"github.com/qcutapp/dashboard-v2/api"
	"github.com/qcutapp/dashboard-v2/models"
	"github.com/qcutapp/dashboard-v2/store"
)

// OrdersView drives the read-only order history page. Filtering happens
// server-side via the history query string; the view only owns the
// filter and the fetched page.
type OrdersView struct {
	store *store.Store
	api   *api.Client

	mu      sync.Mutex
	seq     fetchSeq
	filter  api.HistoryFilter
	orders  []models.Order
	viewing *models.Order
}

func NewOrdersView(st *store.Store, c *api.Client) *OrdersView {
	return &OrdersView{store: st, api: c}
}

func (v *OrdersView) token() string {
	return v.store.State().User.AccessToken
}

func (v *OrdersView) Refresh(ctx context.Context) error {
	seq := v.seq.begin()

	orders, err := v.api.OrderHistory(ctx, v.token(), v.Filter())
	if err != nil {
		return err
	}

	v.mu.Lock()
	defer v.mu.Unlock()
	if !v.seq.current(seq) {
		return nil
	}
	v.orders = orders
	return nil
}

func (v *OrdersView) Orders() []models.Order {
	v.mu.Lock()
	defer v.mu.Unlock()
	return append([]models.Order(nil), v.orders...)
}

func (v *OrdersView) Filter() api.HistoryFilter {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.filter
}

// Search routes the free-text box: an integer filters by order number,
// anything else by customer name.
func (v *OrdersView) Search(term string) {
	v.mu.Lock()
	defer v.mu.Unlock()
	if _, err := strconv.Atoi(term); err == nil && term != "" {
		v.filter.OrderID = term
		v.filter.Name = ""
	} else {
		v.filter.Name = term
		v.filter.OrderID = ""
	}
}

func (v *OrdersView) SetRange(from, to string) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.filter.From = from
	v.filter.To = to
}

// QuickRange selects one of the last-7-days buttons: daysAgo=0 is today,
// 1 is yesterday, and so on; the window is one day wide.
func (v *OrdersView) QuickRange(daysAgo int) {
	now := time.Now()
	from := now.AddDate(0, 0, -daysAgo).Format("2006-01-02")
	to := now.AddDate(0, 0, -(daysAgo - 1)).Format("2006-01-02")
	v.SetRange(from, to)
}

func (v *OrdersView) ResetFilter() {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.filter = api.HistoryFilter{}
}

// View opens the order detail modal; false when the id is not in the
// current page.
func (v *OrdersView) View(id string) bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	for _, o := range v.orders {
		if o.ID == id {
			order := o
			v.viewing = &order
			return true
		}
	}
	return false
}

func (v *OrdersView) Viewing() *models.Order {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.viewing
}

func (v *OrdersView) CloseView() {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.viewing = nil
}
