package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/qcutapp/dashboard-v2/controllers"
	"github.com/qcutapp/dashboard-v2/middleware"
)

func OrdersRoutes(app *fiber.App) {
	dashboardController := controllers.NewDashboardController()
	ordersController := controllers.NewOrdersController()

	g := app.Group("/dashboard/orders", middleware.RequireUser("/login"), dashboardController.EnsureVenue)
	g.Get("/", ordersController.Index)
	g.Get("/export", ordersController.Export)
}
