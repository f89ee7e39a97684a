package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/qcutapp/dashboard-v2/controllers"
	"github.com/qcutapp/dashboard-v2/middleware"
)

func DrinksRoutes(app *fiber.App) {
	dashboardController := controllers.NewDashboardController()
	drinksController := controllers.NewDrinksController()

	g := app.Group("/dashboard/drinks", middleware.RequireUser("/login"), dashboardController.EnsureVenue)
	g.Get("/", drinksController.Index)
	g.Post("/", drinksController.Submit)
}
