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

// ErrMenuActive rejects deleting the currently active menu; the action
// is never offered for it and refused even if requested directly.
var ErrMenuActive = errors.New("views: the active menu cannot be deleted")

// MenusView drives the menu list page. The list is view-owned and
// mirrored into the store via VENUE:UPDATE so sibling views relying on
// venue-wide menu data stay consistent.
type MenusView struct {
	store *store.Store
	api   *api.Client

	mu           sync.Mutex
	seq          fetchSeq
	menus        []models.Menu
	adding       bool
	editing      *models.Menu
	editorErrors []string
}

func NewMenusView(st *store.Store, c *api.Client) *MenusView {
	return &MenusView{store: st, api: c}
}

func (v *MenusView) token() string {
	return v.store.State().User.AccessToken
}

func (v *MenusView) Refresh(ctx context.Context) error {
	seq := v.seq.begin()

	menus, err := v.api.ListMenus(ctx, v.token())
	if err != nil {
		return err
	}
	if !v.seq.current(seq) {
		return nil
	}
	return v.setMenus(menus)
}

// setMenus replaces the list and syncs it into the store.
func (v *MenusView) setMenus(menus []models.Menu) error {
	v.mu.Lock()
	v.menus = menus
	v.mu.Unlock()
	return v.store.Dispatch(store.Action{
		Type:  store.ActionVenueUpdate,
		Patch: &store.VenuePatch{Menus: &menus},
	})
}

func (v *MenusView) Menus() []models.Menu {
	v.mu.Lock()
	defer v.mu.Unlock()
	return append([]models.Menu(nil), v.menus...)
}

// Activate flips the active menu. The backend responds with the whole
// refreshed menu list, which replaces the local one.
func (v *MenusView) Activate(ctx context.Context, id string) error {
	menus, err := v.api.ActivateMenu(ctx, v.token(), id)
	if err != nil {
		return err
	}
	return v.setMenus(menus)
}

// Copy duplicates a menu; the new copy is appended to the list.
func (v *MenusView) Copy(ctx context.Context, id string) error {
	menu, err := v.api.CopyMenu(ctx, v.token(), id)
	if err != nil {
		return err
	}
	v.mu.Lock()
	menus := append(append([]models.Menu(nil), v.menus...), menu)
	v.mu.Unlock()
	return v.setMenus(menus)
}

func (v *MenusView) OpenAdd() {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.adding = true
	v.editing = nil
	v.editorErrors = nil
}

func (v *MenusView) OpenEdit(id string) bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	for _, m := range v.menus {
		if m.ID == id {
			menu := m
			v.adding = false
			v.editing = &menu
			v.editorErrors = nil
			return true
		}
	}
	return false
}

func (v *MenusView) Close() {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.adding = false
	v.editing = nil
	v.editorErrors = nil
}

func (v *MenusView) EditorOpen() bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.adding || v.editing != nil
}

func (v *MenusView) Editing() *models.Menu {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.editing
}

func (v *MenusView) EditorErrors() []string {
	v.mu.Lock()
	defer v.mu.Unlock()
	return append([]string(nil), v.editorErrors...)
}

func (v *MenusView) setEditorErrors(msgs []string) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.editorErrors = msgs
}

func (v *MenusView) Submit(ctx context.Context, kind string, in models.MenuInput) error {
	token := v.token()
	in.Drinks = CompleteOptions(in.Drinks, 0)
	in.Specials = CompleteOptions(in.Specials, 0)

	v.mu.Lock()
	editing := v.editing
	menus := append([]models.Menu(nil), v.menus...)
	v.mu.Unlock()

	switch kind {
	case KindAdd:
		if msgs := checkInput(in); msgs != nil {
			v.setEditorErrors(msgs)
			return errValidation
		}
		menu, err := v.api.CreateMenu(ctx, token, in)
		if err != nil {
			v.setEditorErrors(api.UserLines(err))
			return err
		}
		menus = append([]models.Menu{menu}, menus...)

	case KindUpdate:
		if editing == nil {
			return errors.New("views: no menu open for update")
		}
		if msgs := checkInput(in); msgs != nil {
			v.setEditorErrors(msgs)
			return errValidation
		}
		menu, err := v.api.UpdateMenu(ctx, token, editing.ID, in)
		if err != nil {
			v.setEditorErrors(api.UserLines(err))
			return err
		}
		for i := range menus {
			if menus[i].ID == editing.ID {
				menus[i] = menu
			}
		}

	case KindDelete:
		if editing == nil {
			return errors.New("views: no menu open for delete")
		}
		if editing.Active {
			v.setEditorErrors([]string{"The active menu cannot be deleted."})
			return ErrMenuActive
		}
		if err := v.api.DeleteMenu(ctx, token, editing.ID); err != nil {
			v.setEditorErrors(api.UserLines(err))
			return err
		}
		kept := menus[:0]
		for _, m := range menus {
			if m.ID != editing.ID {
				kept = append(kept, m)
			}
		}
		menus = kept

	default:
		return fmt.Errorf("views: unknown submit kind %q", kind)
	}

	if err := v.setMenus(menus); err != nil {
		return err
	}
	v.Close()
	return nil
}

// VenueDrinks and VenueSpecials back the menu editor's pickers.
func (v *MenusView) VenueDrinks() []models.Drink {
	return v.store.State().Venue.Drinks
}

func (v *MenusView) VenueSpecials() []models.Special {
	return v.store.State().Venue.Specials
}
