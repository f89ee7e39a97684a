// Package store holds the per-session application state: the signed-in
// user and the operator's venue with its nested collections. State is
// mutated only through Dispatch with a closed set of actions; every view
// shares the same instance by reference, so the venue collections are the
// single source of truth and derived lists cannot diverge from them.
package store

import (
	"fmt"
	"sync"

	"github.com/qcutapp/dashboard-v2/models"
)

const (
	ActionUserSet          = "USER:SET"
	ActionUserUnset        = "USER:UNSET"
	ActionVenueSet         = "VENUE:SET"
	ActionVenueUpdate      = "VENUE:UPDATE"
	ActionVenueAddOrUpdate = "VENUE:ADD_OR_UPDATE"
	ActionVenueDelete      = "VENUE:DELETE"
)

type State struct {
	User  models.User
	Venue models.Venue
}

// Action carries one named mutation. Exactly the payload fields the
// action type reads must be set.
type Action struct {
	Type    string
	User    *models.User       // USER:SET
	Venue   *models.Venue      // VENUE:SET
	Patch   *VenuePatch        // VENUE:UPDATE
	Drink   *models.Drink      // VENUE:ADD_OR_UPDATE, VENUE:DELETE
	Special *models.Special    // VENUE:ADD_OR_UPDATE, VENUE:DELETE
}

// VenuePatch shallow-merges collections into the venue. Scalar venue
// fields only ever arrive wholesale via VENUE:SET.
type VenuePatch struct {
	Drinks   *[]models.Drink
	Specials *[]models.Special
	Menus    *[]models.Menu
}

// CredentialStore persists the bearer token across restarts, the
// server-side stand-in for the browser cookie the dashboard used to set.
type CredentialStore interface {
	Put(key, token string) error
	Get(key string) (token string, found bool, err error)
	Delete(key string) error
}

type Store struct {
	mu    sync.Mutex
	state State
	creds CredentialStore
	key   string
}

// New returns an empty store whose credential side effects are scoped to
// key in creds.
func New(creds CredentialStore, key string) *Store {
	return &Store{creds: creds, key: key}
}

// State returns a copy. Nested collection slices are cloned so callers
// cannot mutate venue state behind Dispatch's back.
func (s *Store) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()

	st := s.state
	st.Venue.Drinks = append([]models.Drink(nil), s.state.Venue.Drinks...)
	st.Venue.Specials = append([]models.Special(nil), s.state.Venue.Specials...)
	st.Venue.Menus = append([]models.Menu(nil), s.state.Venue.Menus...)
	return st
}

// Dispatch applies one action. Unrecognized action types and missing
// payloads are programming errors and fail loudly; the state is left
// unchanged on any error.
func (s *Store) Dispatch(a Action) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch a.Type {
	case ActionUserSet:
		if a.User == nil {
			return fmt.Errorf("store: %s requires a user payload", a.Type)
		}
		if err := s.creds.Put(s.key, a.User.AccessToken); err != nil {
			return fmt.Errorf("store: persist credential: %w", err)
		}
		s.state.User = *a.User

	case ActionUserUnset:
		if err := s.creds.Delete(s.key); err != nil {
			return fmt.Errorf("store: clear credential: %w", err)
		}
		s.state.User = models.User{}

	case ActionVenueSet:
		if a.Venue == nil {
			return fmt.Errorf("store: %s requires a venue payload", a.Type)
		}
		s.state.Venue = *a.Venue

	case ActionVenueUpdate:
		if a.Patch == nil {
			return fmt.Errorf("store: %s requires a patch payload", a.Type)
		}
		if a.Patch.Drinks != nil {
			s.state.Venue.Drinks = append([]models.Drink(nil), *a.Patch.Drinks...)
		}
		if a.Patch.Specials != nil {
			s.state.Venue.Specials = append([]models.Special(nil), *a.Patch.Specials...)
		}
		if a.Patch.Menus != nil {
			s.state.Venue.Menus = append([]models.Menu(nil), *a.Patch.Menus...)
		}

	case ActionVenueAddOrUpdate:
		if a.Drink == nil && a.Special == nil {
			return fmt.Errorf("store: %s requires a drink or special payload", a.Type)
		}
		if a.Drink != nil {
			s.state.Venue.Drinks = upsertDrink(s.state.Venue.Drinks, *a.Drink)
		}
		if a.Special != nil {
			s.state.Venue.Specials = upsertSpecial(s.state.Venue.Specials, *a.Special)
		}

	case ActionVenueDelete:
		if a.Drink == nil && a.Special == nil {
			return fmt.Errorf("store: %s requires a drink or special payload", a.Type)
		}
		if a.Drink != nil {
			s.state.Venue.Drinks = deleteDrink(s.state.Venue.Drinks, a.Drink.ID)
		}
		if a.Special != nil {
			s.state.Venue.Specials = deleteSpecial(s.state.Venue.Specials, a.Special.ID)
		}

	default:
		return fmt.Errorf("store: unknown action type %q", a.Type)
	}

	return nil
}

// upsert semantics: existing items are replaced in place so the list
// order is preserved; new items go to the front.
func upsertDrink(drinks []models.Drink, d models.Drink) []models.Drink {
	for i := range drinks {
		if drinks[i].ID == d.ID {
			drinks[i] = d
			return drinks
		}
	}
	return append([]models.Drink{d}, drinks...)
}

func upsertSpecial(specials []models.Special, sp models.Special) []models.Special {
	for i := range specials {
		if specials[i].ID == sp.ID {
			specials[i] = sp
			return specials
		}
	}
	return append([]models.Special{sp}, specials...)
}

func deleteDrink(drinks []models.Drink, id string) []models.Drink {
	out := drinks[:0]
	for _, d := range drinks {
		if d.ID != id {
			out = append(out, d)
		}
	}
	return out
}

func deleteSpecial(specials []models.Special, id string) []models.Special {
	out := specials[:0]
	for _, sp := range specials {
		if sp.ID != id {
			out = append(out, sp)
		}
	}
	return out
}
