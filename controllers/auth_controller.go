package controllers

import (
	"log"

	"github.com/gofiber/fiber/v2"

	"github.com/qcutapp/dashboard-v2/api"
	"github.com/qcutapp/dashboard-v2/middleware"
	"github.com/qcutapp/dashboard-v2/models"
	"github.com/qcutapp/dashboard-v2/session"
	"github.com/qcutapp/dashboard-v2/store"
)

type AuthController struct {
	API      *api.Client
	Sessions *session.Manager
}

func NewAuthController(c *api.Client, m *session.Manager) *AuthController {
	return &AuthController{API: c, Sessions: m}
}

// GET /login
func (ac *AuthController) LoginPage(c *fiber.Ctx) error {
	return c.Render("login", fiber.Map{})
}

// POST /login
func (ac *AuthController) Login(c *fiber.Ctx) error {
	s := currentSession(c)

	in := models.LoginInput{
		Email:    c.FormValue("email"),
		Password: c.FormValue("password"),
	}

	user, err := ac.API.Login(c.Context(), in)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).Render("login", fiber.Map{
			"Errors": api.UserLines(err),
			"Email":  in.Email,
		})
	}

	if err := s.Store.Dispatch(store.Action{
		Type: store.ActionUserSet,
		User: &user,
	}); err != nil {
		log.Printf("login: %v", err)
		return c.Status(fiber.StatusInternalServerError).Render("login", fiber.Map{
			"Errors": []string{"Could not start your session. Please try again."},
			"Email":  in.Email,
		})
	}

	return c.Redirect("/dashboard")
}

// POST /logout
func (ac *AuthController) Logout(c *fiber.Ctx) error {
	s := currentSession(c)
	if err := s.Store.Dispatch(store.Action{Type: store.ActionUserUnset}); err != nil {
		log.Printf("logout: %v", err)
	}
	ac.Sessions.Drop(s.ID)
	c.ClearCookie(middleware.SessionCookie)
	return c.Redirect("/login")
}
