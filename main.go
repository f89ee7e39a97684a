package main

import (
	"embed"
	"io/fs"
	"log"
	"net/http"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/template/html/v2"

	"github.com/qcutapp/dashboard-v2/api"
	"github.com/qcutapp/dashboard-v2/config"
	"github.com/qcutapp/dashboard-v2/middleware"
	"github.com/qcutapp/dashboard-v2/routes"
	"github.com/qcutapp/dashboard-v2/session"
	"github.com/qcutapp/dashboard-v2/store"
	"github.com/qcutapp/dashboard-v2/upload"
)

//go:embed templates/*
var templates embed.FS

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	creds, err := store.OpenFileCredentials(cfg.Session.Dir)
	if err != nil {
		log.Fatalf("credential store: %v", err)
	}
	defer creds.Close()

	client := api.New(cfg.API)
	sessions := session.NewManager(client, creds)
	uploader := upload.New(cfg.Storage)

	views, err := fs.Sub(templates, "templates")
	if err != nil {
		log.Fatalf("templates: %v", err)
	}
	engine := html.NewFileSystem(http.FS(views), ".html")

	app := fiber.New(fiber.Config{
		Views:             engine,
		ViewsLayout:       "layout",
		PassLocalsToViews: true,
	})

	// Asset base for templates (logo, icons served off-box).
	app.Use(func(c *fiber.Ctx) error {
		c.Locals("PublicURL", cfg.Server.PublicURL)
		return c.Next()
	})

	app.Use(middleware.LoggerMiddleware())
	app.Use(middleware.CorsMiddleware())
	app.Use(middleware.SessionMiddleware(sessions))

	routes.SetupRoutes(app, routes.Deps{
		API:      client,
		Sessions: sessions,
		Uploader: uploader,
	})

	log.Println("dashboard listening on http://localhost:" + cfg.Server.Port)
	log.Fatal(app.Listen(":" + cfg.Server.Port))
}
