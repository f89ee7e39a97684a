package api

import (
	"context"
	"net/http"

	"github.com/qcutapp/dashboard-v2/models"
)

// Login exchanges credentials for the user record including the bearer
// access_token.
func (c *Client) Login(ctx context.Context, in models.LoginInput) (models.User, error) {
	var user models.User
	err := c.do(ctx, http.MethodPost, "/user/login", "", in, &user)
	return user, err
}
