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

// SpecialsView drives the venue-wide specials page. Same shape as
// DrinksView but search-only filtering; the specials list lives in the
// store.
type SpecialsView struct {
	store *store.Store
	api   *api.Client

	mu           sync.Mutex
	seq          fetchSeq
	filter       Filter
	adding       bool
	editing      *models.Special
	editorErrors []string
}

func NewSpecialsView(st *store.Store, c *api.Client) *SpecialsView {
	return &SpecialsView{store: st, api: c}
}

func (v *SpecialsView) token() string {
	return v.store.State().User.AccessToken
}

func (v *SpecialsView) Refresh(ctx context.Context) error {
	seq := v.seq.begin()

	specials, err := v.api.ListSpecials(ctx, v.token(), "")
	if err != nil {
		return err
	}
	return v.complete(seq, specials)
}

func (v *SpecialsView) complete(seq uint64, specials []models.Special) error {
	if !v.seq.current(seq) {
		return nil
	}
	return v.store.Dispatch(store.Action{
		Type:  store.ActionVenueUpdate,
		Patch: &store.VenuePatch{Specials: &specials},
	})
}

func (v *SpecialsView) Items() []models.Special {
	return FilterSpecials(v.store.State().Venue.Specials, v.Filter())
}

func (v *SpecialsView) Filter() Filter {
	v.mu.Lock()
	defer v.mu.Unlock()
	return Filter{Search: v.filter.Search}
}

func (v *SpecialsView) Search(term string) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.filter = Filter{Search: term}
}

func (v *SpecialsView) ResetFilter() {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.filter = Filter{}
}

func (v *SpecialsView) OpenAdd() {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.adding = true
	v.editing = nil
	v.editorErrors = nil
}

func (v *SpecialsView) OpenEdit(id string) bool {
	for _, sp := range v.store.State().Venue.Specials {
		if sp.ID == id {
			special := sp
			v.mu.Lock()
			v.adding = false
			v.editing = &special
			v.editorErrors = nil
			v.mu.Unlock()
			return true
		}
	}
	return false
}

func (v *SpecialsView) Close() {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.adding = false
	v.editing = nil
	v.editorErrors = nil
}

func (v *SpecialsView) EditorOpen() bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.adding || v.editing != nil
}

func (v *SpecialsView) Editing() *models.Special {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.editing
}

func (v *SpecialsView) EditorErrors() []string {
	v.mu.Lock()
	defer v.mu.Unlock()
	return append([]string(nil), v.editorErrors...)
}

func (v *SpecialsView) setEditorErrors(msgs []string) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.editorErrors = msgs
}

func (v *SpecialsView) Submit(ctx context.Context, kind string, in models.SpecialInput) error {
	token := v.token()
	in.Options = CompleteOptions(in.Options, in.OptionsQuantity.Int())

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
			special models.Special
			err     error
		)
		if kind == KindAdd {
			special, err = v.api.CreateSpecial(ctx, token, "", in)
		} else {
			if editing == nil {
				return errors.New("views: no special open for update")
			}
			special, err = v.api.UpdateSpecial(ctx, token, editing.ID, in)
		}
		if err != nil {
			v.setEditorErrors(api.UserLines(err))
			return err
		}
		if err := v.store.Dispatch(store.Action{
			Type:    store.ActionVenueAddOrUpdate,
			Special: &special,
		}); err != nil {
			return err
		}

	case KindDelete:
		if editing == nil {
			return errors.New("views: no special open for delete")
		}
		if err := v.api.DeleteSpecial(ctx, token, editing.ID); err != nil {
			v.setEditorErrors(api.UserLines(err))
			return err
		}
		if err := v.store.Dispatch(store.Action{
			Type:    store.ActionVenueDelete,
			Special: editing,
		}); err != nil {
			return err
		}

	default:
		return fmt.Errorf("views: unknown submit kind %q", kind)
	}

	v.Close()
	return nil
}

// VenueDrinks is the option picker's drink list (the special editor
// offers the venue's drinks as options).
func (v *SpecialsView) VenueDrinks() []models.Drink {
	return v.store.State().Venue.Drinks
}
