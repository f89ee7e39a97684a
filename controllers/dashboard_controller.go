package controllers

import (
	"log"

	"github.com/gofiber/fiber/v2"
)

type DashboardController struct{}

func NewDashboardController() *DashboardController {
	return &DashboardController{}
}

// GET /dashboard lands on orders, the default page.
func (dc *DashboardController) Index(c *fiber.Ctx) error {
	return c.Redirect("/dashboard/orders")
}

// EnsureVenue runs before every dashboard page: it loads the venue into
// the store on the session's first visit and short-circuits to the
// "no venue" page for accounts without one.
func (dc *DashboardController) EnsureVenue(c *fiber.Ctx) error {
	s := currentSession(c)

	if !s.Dashboard.Loaded() {
		if err := s.Dashboard.Refresh(c.Context()); err != nil {
			log.Printf("venue load: %v", err)
		}
	}
	if s.Dashboard.NoVenue() {
		return c.Render("novenue", fiber.Map{})
	}
	return c.Next()
}
