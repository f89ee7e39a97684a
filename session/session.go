// Package session maps browser cookies to per-session application
// state: one store plus one instance of each view, shared by reference.
// Tests construct isolated sessions the same way the manager does.
package session

import (
	"sync"

	"github.com/google/uuid"

	"github.com/qcutapp/dashboard-v2/api"
	"github.com/qcutapp/dashboard-v2/models"
	"github.com/qcutapp/dashboard-v2/store"
	"github.com/qcutapp/dashboard-v2/views"
)

type Session struct {
	ID        string
	Store     *store.Store
	Dashboard *views.Dashboard
	Drinks    *views.DrinksView
	Specials  *views.SpecialsView
	Menus     *views.MenusView
	Orders    *views.OrdersView

	api *api.Client

	mu           sync.Mutex
	menuDrinks   map[string]*views.MenuDrinksView
	menuSpecials map[string]*views.MenuSpecialsView
}

// API exposes the shared backend client for one-off reads that have no
// dedicated view, like fetching a menu's name for a subview title.
func (s *Session) API() *api.Client {
	return s.api
}

// MenuDrinks returns the drinks subview for one menu, created on first
// use so filter/editor state survives navigation within the menu.
func (s *Session) MenuDrinks(menuID string) *views.MenuDrinksView {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.menuDrinks[menuID]
	if !ok {
		v = views.NewMenuDrinksView(s.Store, s.api, menuID)
		s.menuDrinks[menuID] = v
	}
	return v
}

func (s *Session) MenuSpecials(menuID string) *views.MenuSpecialsView {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.menuSpecials[menuID]
	if !ok {
		v = views.NewMenuSpecialsView(s.Store, s.api, menuID)
		s.menuSpecials[menuID] = v
	}
	return v
}

type Manager struct {
	mu       sync.Mutex
	api      *api.Client
	creds    store.CredentialStore
	sessions map[string]*Session
}

func NewManager(c *api.Client, creds store.CredentialStore) *Manager {
	return &Manager{
		api:      c,
		creds:    creds,
		sessions: make(map[string]*Session),
	}
}

func (m *Manager) build(id string) *Session {
	st := store.New(m.creds, id)
	return &Session{
		ID:           id,
		Store:        st,
		Dashboard:    views.NewDashboard(st, m.api),
		Drinks:       views.NewDrinksView(st, m.api),
		Specials:     views.NewSpecialsView(st, m.api),
		Menus:        views.NewMenusView(st, m.api),
		Orders:       views.NewOrdersView(st, m.api),
		api:          m.api,
		menuDrinks:   make(map[string]*views.MenuDrinksView),
		menuSpecials: make(map[string]*views.MenuSpecialsView),
	}
}

func (m *Manager) Create() *Session {
	s := m.build(uuid.NewString())
	m.mu.Lock()
	m.sessions[s.ID] = s
	m.mu.Unlock()
	return s
}

// Resolve returns the live session for id. After a restart the in-memory
// state is gone but the credential survives in the durable store; in
// that case the session is rebuilt and the user re-authenticated from
// the persisted token (the login round-trip property).
func (m *Manager) Resolve(id string) (*Session, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if s, ok := m.sessions[id]; ok {
		return s, true
	}

	token, found, err := m.creds.Get(id)
	if err != nil || !found || token == "" {
		return nil, false
	}
	s := m.build(id)
	if err := s.Store.Dispatch(store.Action{
		Type: store.ActionUserSet,
		User: &models.User{AccessToken: token},
	}); err != nil {
		return nil, false
	}
	m.sessions[id] = s
	return s, true
}

func (m *Manager) Drop(id string) {
	m.mu.Lock()
	delete(m.sessions, id)
	m.mu.Unlock()
}
