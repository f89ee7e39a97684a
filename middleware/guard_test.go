package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/qcutapp/dashboard-v2/api"
	"github.com/qcutapp/dashboard-v2/config"
	"github.com/qcutapp/dashboard-v2/models"
	"github.com/qcutapp/dashboard-v2/session"
	"github.com/qcutapp/dashboard-v2/store"
)

var signedInUser = models.User{ID: "u1", Name: "Op", AccessToken: "tok"}

type memCreds struct {
	tokens map[string]string
}

func newMemCreds() *memCreds {
	return &memCreds{tokens: make(map[string]string)}
}

func (m *memCreds) Put(key, token string) error {
	m.tokens[key] = token
	return nil
}

func (m *memCreds) Get(key string) (string, bool, error) {
	t, ok := m.tokens[key]
	return t, ok, nil
}

func (m *memCreds) Delete(key string) error {
	delete(m.tokens, key)
	return nil
}

func guardApp(t *testing.T) (*fiber.App, *session.Manager) {
	t.Helper()
	client := api.New(config.API{Endpoint: "http://127.0.0.1:0", Timeout: time.Second})
	manager := session.NewManager(client, newMemCreds())

	app := fiber.New()
	app.Use(SessionMiddleware(manager))
	app.Get("/login", RequirePublic("/dashboard"), func(c *fiber.Ctx) error {
		return c.SendString("login page")
	})
	app.Get("/dashboard", RequireUser("/login"), func(c *fiber.Ctx) error {
		return c.SendString("dashboard")
	})
	return app, manager
}

func TestAnonymousRedirectedFromUserRoute(t *testing.T) {
	app, _ := guardApp(t)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/dashboard", nil))
	if err != nil {
		t.Fatalf("test: %v", err)
	}
	if resp.StatusCode != http.StatusFound {
		t.Errorf("status = %d, want 302", resp.StatusCode)
	}
	if loc := resp.Header.Get("Location"); loc != "/login" {
		t.Errorf("location = %q, want /login", loc)
	}
}

func TestAnonymousAllowedOnPublicRoute(t *testing.T) {
	app, _ := guardApp(t)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/login", nil))
	if err != nil {
		t.Fatalf("test: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Errorf("status = %d, want 200", resp.StatusCode)
	}
}

func TestSignedInRedirectedFromPublicRoute(t *testing.T) {
	app, manager := guardApp(t)

	s := manager.Create()
	if err := s.Store.Dispatch(store.Action{
		Type: store.ActionUserSet,
		User: &signedInUser,
	}); err != nil {
		t.Fatalf("sign in: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/login", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookie, Value: s.ID})
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("test: %v", err)
	}
	if resp.StatusCode != http.StatusFound {
		t.Errorf("status = %d, want 302", resp.StatusCode)
	}
	if loc := resp.Header.Get("Location"); loc != "/dashboard" {
		t.Errorf("location = %q, want /dashboard", loc)
	}
}

func TestSignedInAllowedOnUserRoute(t *testing.T) {
	app, manager := guardApp(t)

	s := manager.Create()
	if err := s.Store.Dispatch(store.Action{
		Type: store.ActionUserSet,
		User: &signedInUser,
	}); err != nil {
		t.Fatalf("sign in: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookie, Value: s.ID})
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("test: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Errorf("status = %d, want 200", resp.StatusCode)
	}
}

func TestFirstVisitSetsSessionCookie(t *testing.T) {
	app, _ := guardApp(t)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/login", nil))
	if err != nil {
		t.Fatalf("test: %v", err)
	}

	var found bool
	for _, c := range resp.Cookies() {
		if c.Name == SessionCookie && c.Value != "" {
			found = true
		}
	}
	if !found {
		t.Error("no session cookie set on first visit")
	}
}
