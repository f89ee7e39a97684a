package controllers

import (
	"log"

	"github.com/gofiber/fiber/v2"

	"github.com/qcutapp/dashboard-v2/api"
	"github.com/qcutapp/dashboard-v2/models"
)

type SpecialsController struct{}

func NewSpecialsController() *SpecialsController {
	return &SpecialsController{}
}

// GET /dashboard/specials
func (sc *SpecialsController) Index(c *fiber.Ctx) error {
	s := currentSession(c)
	v := s.Specials

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

	return c.Render("specials", shellData(s, "specials", fiber.Map{
		"Items":        v.Items(),
		"Filter":       v.Filter(),
		"EditorOpen":   v.EditorOpen(),
		"Editing":      v.Editing(),
		"EditorErrors": v.EditorErrors(),
		"VenueDrinks":  v.VenueDrinks(),
		"Flash":        flash,
	}))
}

// POST /dashboard/specials
func (sc *SpecialsController) Submit(c *fiber.Ctx) error {
	s := currentSession(c)

	in := models.SpecialInput{
		Name:            c.FormValue("name"),
		Type:            c.FormValue("type"),
		Price:           models.Price(c.FormValue("price")),
		Image:           c.FormValue("image"),
		OptionsQuantity: models.Count(c.FormValue("optionsQuantity")),
		Options:         formAll(c, "option"),
		Description:     c.FormValue("description"),
	}

	if err := s.Specials.Submit(c.Context(), c.FormValue("kind"), in); err != nil {
		log.Printf("special %s: %v", c.FormValue("kind"), err)
	}
	return c.Redirect("/dashboard/specials")
}
