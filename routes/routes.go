package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/qcutapp/dashboard-v2/api"
	"github.com/qcutapp/dashboard-v2/session"
	"github.com/qcutapp/dashboard-v2/upload"
)

// Deps carries the shared services the route groups hand to their
// controllers.
type Deps struct {
	API      *api.Client
	Sessions *session.Manager
	Uploader *upload.Uploader
}

func SetupRoutes(app *fiber.App, deps Deps) {
	AuthRoutes(app, deps)
	DashboardRoutes(app)
	DrinksRoutes(app)
	SpecialsRoutes(app)
	MenusRoutes(app)
	OrdersRoutes(app)
	UploadRoutes(app, deps)
}
