package views

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/qcutapp/dashboard-v2/api"
	"github.com/qcutapp/dashboard-v2/models"
	"github.com/qcutapp/dashboard-v2/store"
)

// DrinksView drives the venue-wide drinks page. The drink list itself
// lives in the store (single source of truth); the view owns the filter,
// the category button row and the editor.
type DrinksView struct {
	store *store.Store
	api   *api.Client

	mu           sync.Mutex
	seq          fetchSeq
	categories   []string
	filter       Filter
	adding       bool
	editing      *models.Drink
	editorErrors []string
}

func NewDrinksView(st *store.Store, c *api.Client) *DrinksView {
	return &DrinksView{store: st, api: c}
}

func (v *DrinksView) token() string {
	return v.store.State().User.AccessToken
}

// Refresh fetches the venue's drinks and category row. A refresh that
// was superseded by a newer one before finishing is discarded.
func (v *DrinksView) Refresh(ctx context.Context) error {
	seq := v.seq.begin()
	token := v.token()

	drinks, err := v.api.ListDrinks(ctx, token, "")
	if err != nil {
		return err
	}
	categories, err := v.api.VenueCategories(ctx, token)
	if err != nil {
		return err
	}
	return v.complete(seq, drinks, categories)
}

func (v *DrinksView) complete(seq uint64, drinks []models.Drink, categories []string) error {
	if !v.seq.current(seq) {
		return nil
	}
	v.mu.Lock()
	v.categories = categories
	v.mu.Unlock()
	return v.store.Dispatch(store.Action{
		Type:  store.ActionVenueUpdate,
		Patch: &store.VenuePatch{Drinks: &drinks},
	})
}

// Items derives the filtered, sorted drink list from the store.
func (v *DrinksView) Items() []models.Drink {
	return FilterDrinks(v.store.State().Venue.Drinks, v.Filter())
}

func (v *DrinksView) Categories() []string {
	v.mu.Lock()
	defer v.mu.Unlock()
	return append([]string(nil), v.categories...)
}

func (v *DrinksView) Filter() Filter {
	v.mu.Lock()
	defer v.mu.Unlock()
	return Filter{
		Categories: append([]string(nil), v.filter.Categories...),
		Search:     v.filter.Search,
	}
}

// SelectCategory filters to one category and clears the search.
func (v *DrinksView) SelectCategory(cat string) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.filter = Filter{Categories: []string{cat}}
}

// Search filters by name substring and clears the categories.
func (v *DrinksView) Search(term string) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.filter = Filter{Search: term}
}

func (v *DrinksView) ResetFilter() {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.filter = Filter{}
}

// Editor state machine: closed -> open(create) | open(edit, drink).

func (v *DrinksView) OpenAdd() {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.adding = true
	v.editing = nil
	v.editorErrors = nil
}

// OpenEdit opens the editor pre-filled from the store's copy of the
// drink. Returns false when the id is unknown.
func (v *DrinksView) OpenEdit(id string) bool {
	for _, d := range v.store.State().Venue.Drinks {
		if d.ID == id {
			drink := d
			v.mu.Lock()
			v.adding = false
			v.editing = &drink
			v.editorErrors = nil
			v.mu.Unlock()
			return true
		}
	}
	return false
}

func (v *DrinksView) Close() {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.adding = false
	v.editing = nil
	v.editorErrors = nil
}

func (v *DrinksView) EditorOpen() bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.adding || v.editing != nil
}

func (v *DrinksView) Editing() *models.Drink {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.editing
}

func (v *DrinksView) EditorErrors() []string {
	v.mu.Lock()
	defer v.mu.Unlock()
	return append([]string(nil), v.editorErrors...)
}

func (v *DrinksView) setEditorErrors(msgs []string) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.editorErrors = msgs
}

// Submit issues the editor's mutation. On success the store is updated
// (prepend on add, replace-by-id on update, remove-by-id on delete) and
// the editor closes; on failure it stays open holding the messages.
func (v *DrinksView) Submit(ctx context.Context, kind string, in models.DrinkInput) error {
	token := v.token()
	in.Sizes = CompleteSizes(in.Sizes)

	v.mu.Lock()
	editing := v.editing
	v.mu.Unlock()

	switch kind {
	case KindAdd, KindUpdate:
		if msgs := checkInput(in); msgs != nil {
			v.setEditorErrors(msgs)
			return errValidation
		}

		var (
			drink models.Drink
			err   error
		)
		if kind == KindAdd {
			drink, err = v.api.CreateDrink(ctx, token, "", in)
		} else {
			if editing == nil {
				return errors.New("views: no drink open for update")
			}
			drink, err = v.api.UpdateDrink(ctx, token, editing.ID, in)
		}
		if err != nil {
			v.setEditorErrors(api.UserLines(err))
			return err
		}
		if err := v.store.Dispatch(store.Action{
			Type:  store.ActionVenueAddOrUpdate,
			Drink: &drink,
		}); err != nil {
			return err
		}

	case KindDelete:
		if editing == nil {
			return errors.New("views: no drink open for delete")
		}
		if err := v.api.DeleteDrink(ctx, token, editing.ID); err != nil {
			v.setEditorErrors(api.UserLines(err))
			return err
		}
		if err := v.store.Dispatch(store.Action{
			Type:  store.ActionVenueDelete,
			Drink: editing,
		}); err != nil {
			return err
		}

	default:
		return fmt.Errorf("views: unknown submit kind %q", kind)
	}

	v.Close()
	return nil
}

// EditorCategories is the global category catalog for the editor's
// category picker.
func (v *DrinksView) EditorCategories(ctx context.Context) ([]string, error) {
	return v.api.DrinkCategories(ctx)
}
