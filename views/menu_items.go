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

// MenuDrinksView is the per-menu drinks subview. Unlike DrinksView its
// list is a menu-scoped duplicate, not venue-wide truth, so mutations
// touch only the local list and never the store.
type MenuDrinksView struct {
	store  *store.Store
	api    *api.Client
	MenuID string

	mu           sync.Mutex
	seq          fetchSeq
	drinks       []models.Drink
	categories   []string
	filter       Filter
	adding       bool
	editing      *models.Drink
	editorErrors []string
}

func NewMenuDrinksView(st *store.Store, c *api.Client, menuID string) *MenuDrinksView {
	return &MenuDrinksView{store: st, api: c, MenuID: menuID}
}

func (v *MenuDrinksView) token() string {
	return v.store.State().User.AccessToken
}

func (v *MenuDrinksView) Refresh(ctx context.Context) error {
	seq := v.seq.begin()
	token := v.token()

	drinks, err := v.api.ListDrinks(ctx, token, v.MenuID)
	if err != nil {
		return err
	}
	categories, err := v.api.MenuCategories(ctx, token, v.MenuID)
	if err != nil {
		return err
	}

	v.mu.Lock()
	defer v.mu.Unlock()
	if !v.seq.current(seq) {
		return nil
	}
	v.drinks = drinks
	v.categories = categories
	return nil
}

func (v *MenuDrinksView) Items() []models.Drink {
	v.mu.Lock()
	drinks := append([]models.Drink(nil), v.drinks...)
	f := v.filter
	v.mu.Unlock()
	return FilterDrinks(drinks, f)
}

func (v *MenuDrinksView) Categories() []string {
	v.mu.Lock()
	defer v.mu.Unlock()
	return append([]string(nil), v.categories...)
}

func (v *MenuDrinksView) Filter() Filter {
	v.mu.Lock()
	defer v.mu.Unlock()
	return Filter{
		Categories: append([]string(nil), v.filter.Categories...),
		Search:     v.filter.Search,
	}
}

func (v *MenuDrinksView) SelectCategory(cat string) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.filter = Filter{Categories: []string{cat}}
}

func (v *MenuDrinksView) Search(term string) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.filter = Filter{Search: term}
}

func (v *MenuDrinksView) ResetFilter() {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.filter = Filter{}
}

func (v *MenuDrinksView) OpenAdd() {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.adding = true
	v.editing = nil
	v.editorErrors = nil
}

func (v *MenuDrinksView) OpenEdit(id string) bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	for _, d := range v.drinks {
		if d.ID == id {
			drink := d
			v.adding = false
			v.editing = &drink
			v.editorErrors = nil
			return true
		}
	}
	return false
}

func (v *MenuDrinksView) Close() {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.adding = false
	v.editing = nil
	v.editorErrors = nil
}

func (v *MenuDrinksView) EditorOpen() bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.adding || v.editing != nil
}

func (v *MenuDrinksView) Editing() *models.Drink {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.editing
}

func (v *MenuDrinksView) EditorErrors() []string {
	v.mu.Lock()
	defer v.mu.Unlock()
	return append([]string(nil), v.editorErrors...)
}

func (v *MenuDrinksView) setEditorErrors(msgs []string) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.editorErrors = msgs
}

func (v *MenuDrinksView) Submit(ctx context.Context, kind string, in models.DrinkInput) error {
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
			drink, err = v.api.CreateDrink(ctx, token, v.MenuID, in)
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

		v.mu.Lock()
		if kind == KindAdd {
			v.drinks = append([]models.Drink{drink}, v.drinks...)
		} else {
			for i := range v.drinks {
				if v.drinks[i].ID == editing.ID {
					v.drinks[i] = drink
				}
			}
		}
		v.mu.Unlock()

	case KindDelete:
		if editing == nil {
			return errors.New("views: no drink open for delete")
		}
		if err := v.api.DeleteDrink(ctx, token, editing.ID); err != nil {
			v.setEditorErrors(api.UserLines(err))
			return err
		}
		v.mu.Lock()
		kept := v.drinks[:0]
		for _, d := range v.drinks {
			if d.ID != editing.ID {
				kept = append(kept, d)
			}
		}
		v.drinks = kept
		v.mu.Unlock()

	default:
		return fmt.Errorf("views: unknown submit kind %q", kind)
	}

	v.Close()
	return nil
}

func (v *MenuDrinksView) EditorCategories(ctx context.Context) ([]string, error) {
	return v.api.DrinkCategories(ctx)
}

// MenuSpecialsView is the per-menu specials subview; menu-scoped
// duplicate like MenuDrinksView.
type MenuSpecialsView struct {
	store  *store.Store
	api    *api.Client
	MenuID string

	mu           sync.Mutex
	seq          fetchSeq
	specials     []models.Special
	filter       Filter
	adding       bool
	editing      *models.Special
	editorErrors []string
}

func NewMenuSpecialsView(st *store.Store, c *api.Client, menuID string) *MenuSpecialsView {
	return &MenuSpecialsView{store: st, api: c, MenuID: menuID}
}

func (v *MenuSpecialsView) token() string {
	return v.store.State().User.AccessToken
}

func (v *MenuSpecialsView) Refresh(ctx context.Context) error {
	seq := v.seq.begin()

	specials, err := v.api.ListSpecials(ctx, v.token(), v.MenuID)
	if err != nil {
		return err
	}

	v.mu.Lock()
	defer v.mu.Unlock()
	if !v.seq.current(seq) {
		return nil
	}
	v.specials = specials
	return nil
}

func (v *MenuSpecialsView) Items() []models.Special {
	v.mu.Lock()
	specials := append([]models.Special(nil), v.specials...)
	f := v.filter
	v.mu.Unlock()
	return FilterSpecials(specials, f)
}

func (v *MenuSpecialsView) Filter() Filter {
	v.mu.Lock()
	defer v.mu.Unlock()
	return Filter{Search: v.filter.Search}
}

func (v *MenuSpecialsView) Search(term string) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.filter = Filter{Search: term}
}

func (v *MenuSpecialsView) ResetFilter() {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.filter = Filter{}
}

func (v *MenuSpecialsView) OpenAdd() {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.adding = true
	v.editing = nil
	v.editorErrors = nil
}

func (v *MenuSpecialsView) OpenEdit(id string) bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	for _, sp := range v.specials {
		if sp.ID == id {
			special := sp
			v.adding = false
			v.editing = &special
			v.editorErrors = nil
			return true
		}
	}
	return false
}

func (v *MenuSpecialsView) Close() {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.adding = false
	v.editing = nil
	v.editorErrors = nil
}

func (v *MenuSpecialsView) EditorOpen() bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.adding || v.editing != nil
}

func (v *MenuSpecialsView) Editing() *models.Special {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.editing
}

func (v *MenuSpecialsView) EditorErrors() []string {
	v.mu.Lock()
	defer v.mu.Unlock()
	return append([]string(nil), v.editorErrors...)
}

func (v *MenuSpecialsView) setEditorErrors(msgs []string) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.editorErrors = msgs
}

func (v *MenuSpecialsView) Submit(ctx context.Context, kind string, in models.SpecialInput) error {
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
			special, err = v.api.CreateSpecial(ctx, token, v.MenuID, in)
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

		v.mu.Lock()
		if kind == KindAdd {
			v.specials = append([]models.Special{special}, v.specials...)
		} else {
			for i := range v.specials {
				if v.specials[i].ID == editing.ID {
					v.specials[i] = special
				}
			}
		}
		v.mu.Unlock()

	case KindDelete:
		if editing == nil {
			return errors.New("views: no special open for delete")
		}
		if err := v.api.DeleteSpecial(ctx, token, editing.ID); err != nil {
			v.setEditorErrors(api.UserLines(err))
			return err
		}
		v.mu.Lock()
		kept := v.specials[:0]
		for _, sp := range v.specials {
			if sp.ID != editing.ID {
				kept = append(kept, sp)
			}
		}
		v.specials = kept
		v.mu.Unlock()

	default:
		return fmt.Errorf("views: unknown submit kind %q", kind)
	}

	v.Close()
	return nil
}

// VenueDrinks backs the option picker in the special editor.
func (v *MenuSpecialsView) VenueDrinks() []models.Drink {
	return v.store.State().Venue.Drinks
}
