package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/qcutapp/dashboard-v2/controllers"
	"github.com/qcutapp/dashboard-v2/middleware"
)

func UploadRoutes(app *fiber.App, deps Deps) {
	uploadController := controllers.NewUploadController(deps.Uploader)

	app.Post("/dashboard/upload", middleware.RequireUser("/login"), uploadController.Upload)
}
