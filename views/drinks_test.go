package views

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
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

// testStore returns a store with a signed-in user so views can read a
// token.
func testStore(t *testing.T) *store.Store {
	t.Helper()
	st := store.New(newMemCreds(), "test")
	if err := st.Dispatch(store.Action{
		Type: store.ActionUserSet,
		User: &models.User{ID: "u1", AccessToken: "tok"},
	}); err != nil {
		t.Fatalf("seed user: %v", err)
	}
	return st
}

func testClient(t *testing.T, h http.Handler) *api.Client {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	return api.New(config.API{Endpoint: srv.URL, Timeout: 5 * time.Second})
}

func writeJSON(t *testing.T, w http.ResponseWriter, v any) {
	t.Helper()
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		t.Errorf("encode response: %v", err)
	}
}

func TestDrinksRefreshSyncsStore(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/venue/drink", func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Authorization"); got != "Bearer tok" {
			t.Errorf("auth header = %q", got)
		}
		writeJSON(t, w, []models.Drink{
			{ID: "d1", Name: "Lager", Category: "Beers & Bottles"},
		})
	})
	mux.HandleFunc("/venue/categories", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, []string{"Beers & Bottles"})
	})

	st := testStore(t)
	v := NewDrinksView(st, testClient(t, mux))

	if err := v.Refresh(context.Background()); err != nil {
		t.Fatalf("refresh: %v", err)
	}

	// The list lands in the store, not the view.
	drinks := st.State().Venue.Drinks
	if len(drinks) != 1 || drinks[0].ID != "d1" {
		t.Errorf("store drinks = %+v", drinks)
	}
	if cats := v.Categories(); len(cats) != 1 || cats[0] != "Beers & Bottles" {
		t.Errorf("categories = %v", cats)
	}
}

func TestDrinksFilterMutualExclusion(t *testing.T) {
	v := NewDrinksView(testStore(t), nil)

	v.SelectCategory("Wines")
	v.Search("merlot")
	if f := v.Filter(); len(f.Categories) != 0 || f.Search != "merlot" {
		t.Errorf("search did not clear categories: %+v", f)
	}

	v.SelectCategory("Wines")
	if f := v.Filter(); f.Search != "" || !f.HasCategory("Wines") {
		t.Errorf("category did not clear search: %+v", f)
	}

	v.ResetFilter()
	if v.Filter().Active() {
		t.Error("reset left the filter active")
	}
}

func TestDrinksSubmitAddPrependsToStore(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/venue/drink", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("method = %s, want POST", r.Method)
		}
		var in models.DrinkInput
		if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
			t.Errorf("decode: %v", err)
		}
		if len(in.Sizes) != 1 {
			t.Errorf("incomplete size rows reached the wire: %+v", in.Sizes)
		}
		writeJSON(t, w, models.Drink{ID: "new", Name: in.Name, Category: in.Category})
	})

	st := testStore(t)
	seed := []models.Drink{{ID: "d1", Name: "Lager"}}
	if err := st.Dispatch(store.Action{
		Type:  store.ActionVenueUpdate,
		Patch: &store.VenuePatch{Drinks: &seed},
	}); err != nil {
		t.Fatalf("seed: %v", err)
	}

	v := NewDrinksView(st, testClient(t, mux))
	v.OpenAdd()

	in := models.DrinkInput{
		Category:  "Wines",
		Name:      "Merlot",
		IsPopular: "yes",
		InStock:   "yes",
		Sizes: []models.Size{
			{Size: "Bottle", Price: "18.00"},
			{Size: "", Price: ""}, // trailing blank row
		},
	}
	if err := v.Submit(context.Background(), KindAdd, in); err != nil {
		t.Fatalf("submit: %v", err)
	}

	drinks := st.State().Venue.Drinks
	if len(drinks) != 2 || drinks[0].ID != "new" || drinks[1].ID != "d1" {
		t.Errorf("store after add = %+v", drinks)
	}
	if v.EditorOpen() {
		t.Error("editor still open after successful add")
	}
}

func TestDrinksSubmitValidationKeepsEditorOpen(t *testing.T) {
	v := NewDrinksView(testStore(t), nil)
	v.OpenAdd()

	// Name and category missing.
	err := v.Submit(context.Background(), KindAdd, models.DrinkInput{
		IsPopular: "yes", InStock: "yes",
	})
	if err == nil {
		t.Fatal("expected validation error")
	}
	if !v.EditorOpen() {
		t.Error("editor closed on validation failure")
	}
	if len(v.EditorErrors()) == 0 {
		t.Error("no editor errors recorded")
	}
}

func TestDrinksSubmitServerErrorSurfacesMessages(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/venue/drink", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"message":[{"message":"name already taken"}]}`))
	})

	v := NewDrinksView(testStore(t), testClient(t, mux))
	v.OpenAdd()

	err := v.Submit(context.Background(), KindAdd, models.DrinkInput{
		Category: "Wines", Name: "Merlot", IsPopular: "yes", InStock: "yes",
	})
	if err == nil {
		t.Fatal("expected server error")
	}

	var apiErr *api.Error
	if !errors.As(err, &apiErr) {
		t.Fatalf("error type = %T", err)
	}
	msgs := v.EditorErrors()
	if len(msgs) != 1 || msgs[0] != "name already taken" {
		t.Errorf("editor errors = %v", msgs)
	}
	if !v.EditorOpen() {
		t.Error("editor closed on server failure")
	}
}

func TestDrinksSubmitDeleteRemovesFromStore(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/venue/drink/d1", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodDelete {
			t.Errorf("method = %s, want DELETE", r.Method)
		}
		w.WriteHeader(http.StatusNoContent)
	})

	st := testStore(t)
	seed := []models.Drink{{ID: "d1", Name: "Lager"}, {ID: "d2", Name: "Stout"}}
	if err := st.Dispatch(store.Action{
		Type:  store.ActionVenueUpdate,
		Patch: &store.VenuePatch{Drinks: &seed},
	}); err != nil {
		t.Fatalf("seed: %v", err)
	}

	v := NewDrinksView(st, testClient(t, mux))
	if !v.OpenEdit("d1") {
		t.Fatal("OpenEdit(d1) = false")
	}
	if err := v.Submit(context.Background(), KindDelete, models.DrinkInput{}); err != nil {
		t.Fatalf("delete: %v", err)
	}

	drinks := st.State().Venue.Drinks
	if len(drinks) != 1 || drinks[0].ID != "d2" {
		t.Errorf("store after delete = %+v", drinks)
	}
}

func TestDrinksOpenEditUnknownID(t *testing.T) {
	v := NewDrinksView(testStore(t), nil)
	if v.OpenEdit("missing") {
		t.Error("OpenEdit on unknown id returned true")
	}
	if v.EditorOpen() {
		t.Error("editor opened for unknown id")
	}
}

func TestDrinksStaleRefreshDiscarded(t *testing.T) {
	st := testStore(t)
	v := NewDrinksView(st, nil)

	stale := v.seq.begin()
	fresh := v.seq.begin()

	staleDrinks := []models.Drink{{ID: "old"}}
	if err := v.complete(stale, staleDrinks, []string{"Old"}); err != nil {
		t.Fatalf("stale complete: %v", err)
	}
	if got := st.State().Venue.Drinks; len(got) != 0 {
		t.Errorf("stale fetch landed in store: %+v", got)
	}

	freshDrinks := []models.Drink{{ID: "new"}}
	if err := v.complete(fresh, freshDrinks, []string{"New"}); err != nil {
		t.Fatalf("fresh complete: %v", err)
	}
	if got := st.State().Venue.Drinks; len(got) != 1 || got[0].ID != "new" {
		t.Errorf("fresh fetch did not land: %+v", got)
	}
}
