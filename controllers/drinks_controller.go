package controllers

import (
	"log"

	"github.com/gofiber/fiber/v2"

	"github.com/qcutapp/dashboard-v2/api"
	"github.com/qcutapp/dashboard-v2/models"
	"github.com/qcutapp/dashboard-v2/views"
)

type DrinksController struct{}

func NewDrinksController() *DrinksController {
	return &DrinksController{}
}

// GET /dashboard/drinks
// Query params drive the transient view state: ?category= / ?search= /
// ?reset for the filter, ?add / ?edit=<id> / ?close for the editor.
func (dc *DrinksController) Index(c *fiber.Ctx) error {
	s := currentSession(c)
	v := s.Drinks

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

	// A failed fetch keeps the previous list; the error renders as a
	// flash line instead of a distinct error state.
	var flash []string
	if err := v.Refresh(c.Context()); err != nil {
		flash = api.UserLines(err)
	}

	var editorCategories []string
	if v.EditorOpen() {
		cats, err := v.EditorCategories(c.Context())
		if err != nil {
			flash = append(flash, api.UserLines(err)...)
		}
		editorCategories = cats
	}

	return c.Render("drinks", shellData(s, "drinks", fiber.Map{
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

// POST /dashboard/drinks with kind add, update or delete. Errors stay
// on the editor (it remains open with the messages); success closes it.
func (dc *DrinksController) Submit(c *fiber.Ctx) error {
	s := currentSession(c)

	in := models.DrinkInput{
		Category:  c.FormValue("category"),
		Name:      c.FormValue("name"),
		Image:     c.FormValue("image"),
		IsPopular: c.FormValue("ispopular", "yes"),
		InStock:   c.FormValue("instock", "yes"),
		Sizes:     pairSizes(formAll(c, "size"), formAll(c, "price")),
	}

	if err := s.Drinks.Submit(c.Context(), c.FormValue("kind"), in); err != nil {
		log.Printf("drink %s: %v", c.FormValue("kind"), err)
	}
	return c.Redirect("/dashboard/drinks")
}
