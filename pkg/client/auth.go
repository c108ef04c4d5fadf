package client

import (
	"context"
	"net/http"

	"pcbuilder/internal/models"
)

// Register creates an account and logs in with the returned token.
func (c *Client) Register(ctx context.Context, name, email, password string) (*models.UserProfile, error) {
	in := map[string]string{"name": name, "email": email, "password": password}
	return c.authenticate(ctx, "/register", in)
}

// Login exchanges credentials for a session.
func (c *Client) Login(ctx context.Context, email, password string) (*models.UserProfile, error) {
	in := map[string]string{"email": email, "password": password}
	return c.authenticate(ctx, "/login", in)
}

func (c *Client) authenticate(ctx context.Context, path string, in any) (*models.UserProfile, error) {
	var out authBody
	if err := c.do(ctx, http.MethodPost, path, "", in, &out); err != nil {
		return nil, err
	}
	if err := c.setSession(&Session{Token: out.Token, User: out.User}); err != nil {
		return nil, err
	}
	return &out.User, nil
}

// Logout forgets the session. There is no server-side logout.
func (c *Client) Logout() error {
	return c.clearSession()
}

// UpdateProfile renames the current user. A nil name sends an empty update.
func (c *Client) UpdateProfile(ctx context.Context, name *string) (*models.UserProfile, error) {
	token, err := c.token()
	if err != nil {
		return nil, err
	}

	in := map[string]any{}
	if name != nil {
		in["name"] = *name
	}
	var out struct {
		User models.UserProfile `json:"user"`
	}
	if err := c.do(ctx, http.MethodPut, "/users/update", token, in, &out); err != nil {
		return nil, err
	}

	if s := c.Session(); s != nil {
		s.User = out.User
		if err := c.setSession(s); err != nil {
			return nil, err
		}
	}
	return &out.User, nil
}

// DeleteAccount deletes the current user and its builds, then clears the
// session.
func (c *Client) DeleteAccount(ctx context.Context) error {
	token, err := c.token()
	if err != nil {
		return err
	}
	if err := c.do(ctx, http.MethodDelete, "/users/delete", token, nil, nil); err != nil {
		return err
	}
	return c.clearSession()
}
