package middleware

import (
	"github.com/gofiber/fiber/v2"
)

// Route guard: strictly "public" or "user" routes. Unauthenticated users
// are sent away from user routes, authenticated ones away from public
// routes (login); everything else renders normally.

func RequireUser(redirect string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		s := SessionFromCtx(c)
		if s == nil || s.Store.State().User.Empty() {
			return c.Redirect(redirect)
		}
		return c.Next()
	}
}

func RequirePublic(redirect string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		s := SessionFromCtx(c)
		if s != nil && !s.Store.State().User.Empty() {
			return c.Redirect(redirect)
		}
		return c.Next()
	}
}
