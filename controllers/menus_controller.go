package controllers

import (
	"log"

	"github.com/gofiber/fiber/v2"

	"github.com/qcutapp/dashboard-v2/api"
	"github.com/qcutapp/dashboard-v2/models"
	"github.com/qcutapp/dashboard-v2/views"
)

type MenusController struct{}

func NewMenusController() *MenusController {
	return &MenusController{}
}

// GET /dashboard/menus
func (mc *MenusController) Index(c *fiber.Ctx) error {
	s := currentSession(c)
	v := s.Menus

	q := c.Context().QueryArgs()
	switch {
	case q.Has("add"):
		v.OpenAdd()
	case q.Has("edit"):
		if !v.OpenEdit(c.Query("edit")) {
			v.Close()
		}
	case q.Has("close"):
		v.Close()
	}

	var flash []string
	if err := v.Refresh(c.Context()); err != nil {
		flash = api.UserLines(err)
	}

	return c.Render("menus", shellData(s, "menus", fiber.Map{
		"Menus":         v.Menus(),
		"EditorOpen":    v.EditorOpen(),
		"Editing":       v.Editing(),
		"EditorErrors":  v.EditorErrors(),
		"VenueDrinks":   v.VenueDrinks(),
		"VenueSpecials": v.VenueSpecials(),
		"Flash":         flash,
	}))
}

// POST /dashboard/menus
func (mc *MenusController) Submit(c *fiber.Ctx) error {
	s := currentSession(c)

	in := models.MenuInput{
		Name:     c.FormValue("name"),
		Drinks:   formAll(c, "drink"),
		Specials: formAll(c, "special"),
	}

	if err := s.Menus.Submit(c.Context(), c.FormValue("kind"), in); err != nil {
		log.Printf("menu %s: %v", c.FormValue("kind"), err)
	}
	return c.Redirect("/dashboard/menus")
}

// POST /dashboard/menus/:id/activate
func (mc *MenusController) Activate(c *fiber.Ctx) error {
	s := currentSession(c)
	if err := s.Menus.Activate(c.Context(), c.Params("id")); err != nil {
		log.Printf("menu activate: %v", err)
	}
	return c.Redirect("/dashboard/menus")
}

// POST /dashboard/menus/:id/copy
func (mc *MenusController) Copy(c *fiber.Ctx) error {
	s := currentSession(c)
	if err := s.Menus.Copy(c.Context(), c.Params("id")); err != nil {
		log.Printf("menu copy: %v", err)
	}
	return c.Redirect("/dashboard/menus")
}

// GET /dashboard/menus/:id/drinks is the menu-scoped drinks list. Same
// query-param protocol as the venue-wide page, but backed by the
// per-menu subview so edits here never leak into venue truth.
func (mc *MenusController) Drinks(c *fiber.Ctx) error {
	s := currentSession(c)
	menuID := c.Params("id")
	v := s.MenuDrinks(menuID)

	q := c.Context().QueryArgs()
	switch {
	case q.Has("reset"):
		v.ResetFilter()
	case q.Has("category"):
		v.SelectCategory(c.Query("category"))
	case q.Has("search"):
		v.Search(c.Query("search"))
	}
	switch {
	case q.Has("add"):
		v.OpenAdd()
	case q.Has("edit"):
		if !v.OpenEdit(c.Query("edit")) {
			v.Close()
		}
	case q.Has("close"):
		v.Close()
	}

	var flash []string
	if err := v.Refresh(c.Context()); err != nil {
		flash = api.UserLines(err)
	}

	menu, err := s.API().GetMenu(c.Context(), s.Store.State().User.AccessToken, menuID)
	if err != nil {
		flash = append(flash, api.UserLines(err)...)
	}

	var editorCategories []string
	if v.EditorOpen() {
		cats, err := v.EditorCategories(c.Context())
		if err != nil {
			flash = append(flash, api.UserLines(err)...)
		}
		editorCategories = cats
	}

	return c.Render("menu_drinks", shellData(s, "menus", fiber.Map{
		"Menu":             menu,
		"Items":            v.Items(),
		"Categories":       v.Categories(),
		"Filter":           v.Filter(),
		"EditorOpen":       v.EditorOpen(),
		"Editing":          v.Editing(),
		"EditorErrors":     v.EditorErrors(),
		"EditorCategories": editorCategories,
		"SizeOptions":      views.SizeOptions,
		"Flash":            flash,
	}))
}

// POST /dashboard/menus/:id/drinks
func (mc *MenusController) SubmitDrink(c *fiber.Ctx) error {
	s := currentSession(c)
	menuID := c.Params("id")

	in := models.DrinkInput{
		Category:  c.FormValue("category"),
		Name:      c.FormValue("name"),
		Image:     c.FormValue("image"),
		IsPopular: c.FormValue("ispopular", "yes"),
		InStock:   c.FormValue("instock", "yes"),
		Sizes:     pairSizes(formAll(c, "size"), formAll(c, "price")),
	}

	if err := s.MenuDrinks(menuID).Submit(c.Context(), c.FormValue("kind"), in); err != nil {
		log.Printf("menu drink %s: %v", c.FormValue("kind"), err)
	}
	return c.Redirect("/dashboard/menus/" + menuID + "/drinks")
}

// GET /dashboard/menus/:id/specials
func (mc *MenusController) Specials(c *fiber.Ctx) error {
	s := currentSession(c)
	menuID := c.Params("id")
	v := s.MenuSpecials(menuID)

	q := c.Context().QueryArgs()
	switch {
	case q.Has("reset"):
		v.ResetFilter()
	case q.Has("search"):
		v.Search(c.Query("search"))
	}
	switch {
	case q.Has("add"):
		v.OpenAdd()
	case q.Has("edit"):
		if !v.OpenEdit(c.Query("edit")) {
			v.Close()
		}
	case q.Has("close"):
		v.Close()
	}

	var flash []string
	if err := v.Refresh(c.Context()); err != nil {
		flash = api.UserLines(err)
	}

	menu, err := s.API().GetMenu(c.Context(), s.Store.State().User.AccessToken, menuID)
	if err != nil {
		flash = append(flash, api.UserLines(err)...)
	}

	return c.Render("menu_specials", shellData(s, "menus", fiber.Map{
		"Menu":         menu,
		"Items":        v.Items(),
		"Filter":       v.Filter(),
		"EditorOpen":   v.EditorOpen(),
		"Editing":      v.Editing(),
		"EditorErrors": v.EditorErrors(),
		"VenueDrinks":  v.VenueDrinks(),
		"Flash":        flash,
	}))
}

// POST /dashboard/menus/:id/specials
func (mc *MenusController) SubmitSpecial(c *fiber.Ctx) error {
	s := currentSession(c)
	menuID := c.Params("id")

	in := models.SpecialInput{
		Name:            c.FormValue("name"),
		Type:            c.FormValue("type"),
		Price:           models.Price(c.FormValue("price")),
		Image:           c.FormValue("image"),
		OptionsQuantity: models.Count(c.FormValue("optionsQuantity")),
		Options:         formAll(c, "option"),
		Description:     c.FormValue("description"),
	}

	if err := s.MenuSpecials(menuID).Submit(c.Context(), c.FormValue("kind"), in); err != nil {
		log.Printf("menu special %s: %v", c.FormValue("kind"), err)
	}
	return c.Redirect("/dashboard/menus/" + menuID + "/specials")
}
