package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/qcutapp/dashboard-v2/controllers"
	"github.com/qcutapp/dashboard-v2/middleware"
)

func SpecialsRoutes(app *fiber.App) {
	dashboardController := controllers.NewDashboardController()
	specialsController := controllers.NewSpecialsController()

	g := app.Group("/dashboard/specials", middleware.RequireUser("/login"), dashboardController.EnsureVenue)
	g.Get("/", specialsController.Index)
	g.Post("/", specialsController.Submit)
}
