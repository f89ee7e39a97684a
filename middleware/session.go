package middleware

import (
	"github.com/gofiber/fiber/v2"

	"github.com/qcutapp/dashboard-v2/session"
)

const SessionCookie = "dashboard_session"

// SessionMiddleware attaches the caller's session to the request,
// creating one (and setting the cookie) for first-time visitors.
func SessionMiddleware(m *session.Manager) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var s *session.Session
		if id := c.Cookies(SessionCookie); id != "" {
			s, _ = m.Resolve(id)
		}
		if s == nil {
			s = m.Create()
			c.Cookie(&fiber.Cookie{
				Name:     SessionCookie,
				Value:    s.ID,
				Path:     "/",
				HTTPOnly: true,
				SameSite: fiber.CookieSameSiteLaxMode,
			})
		}
		c.Locals("session", s)
		return c.Next()
	}
}

// SessionFromCtx returns the session attached by SessionMiddleware.
func SessionFromCtx(c *fiber.Ctx) *session.Session {
	s, _ := c.Locals("session").(*session.Session)
	return s
}
