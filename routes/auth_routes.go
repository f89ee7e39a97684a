package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/qcutapp/dashboard-v2/controllers"
	"github.com/qcutapp/dashboard-v2/middleware"
)

func AuthRoutes(app *fiber.App, deps Deps) {
	authController := controllers.NewAuthController(deps.API, deps.Sessions)

	// Logged-in users have no business on the login page.
	app.Get("/login", middleware.RequirePublic("/dashboard"), authController.LoginPage)
	app.Post("/login", middleware.RequirePublic("/dashboard"), authController.Login)
	app.Post("/logout", authController.Logout)

	app.Get("/", func(c *fiber.Ctx) error {
		return c.Redirect("/dashboard")
	})
}
