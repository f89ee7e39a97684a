package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/qcutapp/dashboard-v2/controllers"
	"github.com/qcutapp/dashboard-v2/middleware"
)

func DashboardRoutes(app *fiber.App) {
	dashboardController := controllers.NewDashboardController()

	g := app.Group("/dashboard", middleware.RequireUser("/login"), dashboardController.EnsureVenue)
	g.Get("/", dashboardController.Index)
}
