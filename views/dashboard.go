package views

import (
	"context"
	"sync"

	"github.com/qcutapp/dashboard-v2/api"
	"github.com/qcutapp/dashboard-v2/store"
)

// Dashboard is the shell around the collection pages: it loads the venue
// wholesale into the store and shows today's takings in the sidebar.
type Dashboard struct {
	store *store.Store
	api   *api.Client

	mu      sync.Mutex
	takings float64
	loaded  bool
}

func NewDashboard(st *store.Store, c *api.Client) *Dashboard {
	return &Dashboard{store: st, api: c}
}

func (d *Dashboard) Refresh(ctx context.Context) error {
	token := d.store.State().User.AccessToken

	venue, err := d.api.VenueMe(ctx, token)
	if err != nil {
		return err
	}
	if err := d.store.Dispatch(store.Action{
		Type:  store.ActionVenueSet,
		Venue: &venue,
	}); err != nil {
		return err
	}

	takings, err := d.api.Takings(ctx, token)
	if err != nil {
		return err
	}

	d.mu.Lock()
	d.takings = takings
	d.loaded = true
	d.mu.Unlock()
	return nil
}

// Loaded reports whether the venue fetch has completed at least once.
func (d *Dashboard) Loaded() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.loaded
}

func (d *Dashboard) Takings() float64 {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.takings
}

// NoVenue reports the "account belongs to no venue" state, only
// meaningful after a successful Refresh.
func (d *Dashboard) NoVenue() bool {
	d.mu.Lock()
	loaded := d.loaded
	d.mu.Unlock()
	return loaded && d.store.State().Venue.Empty()
}
