package client

import (
	"context"
	"net/http"
	"net/url"

	"pcbuilder/internal/models"
)

func (c *Client) AdminUsers(ctx context.Context) ([]models.User, error) {
	token, err := c.requireAdmin()
	if err != nil {
		return nil, err
	}
	var out []models.User
	if err := c.do(ctx, http.MethodGet, "/admin/users", token, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// AdminBuilds lists every build with its owner.
func (c *Client) AdminBuilds(ctx context.Context) ([]models.Build, error) {
	token, err := c.requireAdmin()
	if err != nil {
		return nil, err
	}
	var out []models.Build
	if err := c.do(ctx, http.MethodGet, "/admin/builds", token, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// AdminDeleteUser removes a user and all of its builds.
func (c *Client) AdminDeleteUser(ctx context.Context, id string) error {
	token, err := c.requireAdmin()
	if err != nil {
		return err
	}
	return c.do(ctx, http.MethodDelete, "/admin/users/"+url.PathEscape(id), token, nil, nil)
}

func (c *Client) AdminDeleteBuild(ctx context.Context, id string) error {
	token, err := c.requireAdmin()
	if err != nil {
		return err
	}
	return c.do(ctx, http.MethodDelete, "/admin/builds/"+url.PathEscape(id), token, nil, nil)
}
