package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/qcutapp/dashboard-v2/controllers"
	"github.com/qcutapp/dashboard-v2/middleware"
)

func MenusRoutes(app *fiber.App) {
	dashboardController := controllers.NewDashboardController()
	menusController := controllers.NewMenusController()

	g := app.Group("/dashboard/menus", middleware.RequireUser("/login"), dashboardController.EnsureVenue)
	g.Get("/", menusController.Index)
	g.Post("/", menusController.Submit)
	g.Post("/:id/activate", menusController.Activate)
	g.Post("/:id/copy", menusController.Copy)
	g.Get("/:id/drinks", menusController.Drinks)
	g.Post("/:id/drinks", menusController.SubmitDrink)
	g.Get("/:id/specials", menusController.Specials)
	g.Post("/:id/specials", menusController.SubmitSpecial)
}
