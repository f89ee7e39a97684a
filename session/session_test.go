package session

import (
	"testing"
	"time"

	"github.com/qcutapp/dashboard-v2/api"
	"github.com/qcutapp/dashboard-v2/config"
	"github.com/qcutapp/dashboard-v2/models"
	"github.com/qcutapp/dashboard-v2/store"
)

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

func testManager(creds store.CredentialStore) *Manager {
	client := api.New(config.API{Endpoint: "http://127.0.0.1:0", Timeout: time.Second})
	return NewManager(client, creds)
}

func TestCreateAndResolve(t *testing.T) {
	m := testManager(newMemCreds())

	s := m.Create()
	if s.ID == "" {
		t.Fatal("session without id")
	}

	got, ok := m.Resolve(s.ID)
	if !ok || got != s {
		t.Errorf("Resolve returned a different session")
	}
}

func TestResolveUnknownID(t *testing.T) {
	m := testManager(newMemCreds())
	if _, ok := m.Resolve("nope"); ok {
		t.Error("resolved a session that never existed")
	}
}

// A session lost from memory but whose token survives in the credential
// store comes back signed in.
func TestResolveRebuildsFromCredential(t *testing.T) {
	creds := newMemCreds()
	m := testManager(creds)

	s := m.Create()
	if err := s.Store.Dispatch(store.Action{
		Type: store.ActionUserSet,
		User: &models.User{ID: "u1", AccessToken: "tok-abc"},
	}); err != nil {
		t.Fatalf("sign in: %v", err)
	}

	// Simulate a restart: fresh manager, same credential store.
	m2 := testManager(creds)
	restored, ok := m2.Resolve(s.ID)
	if !ok {
		t.Fatal("session not rebuilt from persisted credential")
	}

	user := restored.Store.State().User
	if user.Empty() || user.AccessToken != "tok-abc" {
		t.Errorf("restored user = %+v", user)
	}
}

func TestDropForgetsSession(t *testing.T) {
	creds := newMemCreds()
	m := testManager(creds)

	s := m.Create()
	m.Drop(s.ID)

	// No credential was ever stored, so the session is gone for good.
	if _, ok := m.Resolve(s.ID); ok {
		t.Error("dropped session still resolvable")
	}
}

func TestMenuSubviewsReused(t *testing.T) {
	m := testManager(newMemCreds())
	s := m.Create()

	a := s.MenuDrinks("m1")
	b := s.MenuDrinks("m1")
	if a != b {
		t.Error("same menu id produced distinct drink subviews")
	}
	if c := s.MenuDrinks("m2"); c == a {
		t.Error("different menu ids share a subview")
	}

	x := s.MenuSpecials("m1")
	if y := s.MenuSpecials("m1"); x != y {
		t.Error("same menu id produced distinct special subviews")
	}
}
