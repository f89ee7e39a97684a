package controllers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/qcutapp/dashboard-v2/middleware"
	"github.com/qcutapp/dashboard-v2/models"
	"github.com/qcutapp/dashboard-v2/session"
)

func currentSession(c *fiber.Ctx) *session.Session {
	return middleware.SessionFromCtx(c)
}

// formAll collects every value posted under key (repeated row fields
// like size/price pairs).
func formAll(c *fiber.Ctx, key string) []string {
	vals := c.Context().PostArgs().PeekMulti(key)
	out := make([]string, 0, len(vals))
	for _, v := range vals {
		out = append(out, string(v))
	}
	return out
}

// pairSizes zips the posted size/price columns into rows. Incomplete
// rows survive here; the view drops them at serialization.
func pairSizes(sizes, prices []string) []models.Size {
	n := len(sizes)
	if len(prices) > n {
		n = len(prices)
	}
	out := make([]models.Size, n)
	for i := 0; i < n; i++ {
		if i < len(sizes) {
			out[i].Size = sizes[i]
		}
		if i < len(prices) {
			out[i].Price = models.Price(prices[i])
		}
	}
	return out
}

// shellData is the sidebar data every dashboard page renders: venue,
// user and today's takings.
func shellData(s *session.Session, page string, extra fiber.Map) fiber.Map {
	st := s.Store.State()
	data := fiber.Map{
		"Page":    page,
		"User":    st.User,
		"Venue":   st.Venue,
		"Takings": s.Dashboard.Takings(),
	}
	for k, v := range extra {
		data[k] = v
	}
	return data
}
