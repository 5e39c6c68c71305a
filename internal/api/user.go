package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/cinevo/cinevo-cli/pkg/model"
)

// Profile fetches the authenticated account's profile.
func (c *Client) Profile(ctx context.Context) (model.UserProfile, error) {
	env, err := c.do(ctx, http.MethodGet, "/user", nil, nil)
	if err != nil {
		return model.UserProfile{}, fmt.Errorf("get profile: %w", err)
	}

	var profile model.UserProfile
	if err := results(env, &profile); err != nil {
		return model.UserProfile{}, fmt.Errorf("get profile: %w", err)
	}
	return profile, nil
}

// ProfileUpdate carries the editable profile fields. Zero fields are left
// unchanged by the server.
type ProfileUpdate struct {
	Fullname string `json:"fullname,omitempty"`
	Phone    string `json:"phone,omitempty"`
	Password string `json:"password,omitempty"`
}

// UpdateProfile patches the authenticated account's profile.
func (c *Client) UpdateProfile(ctx context.Context, update ProfileUpdate) error {
	if _, err := c.do(ctx, http.MethodPatch, "/user", nil, update); err != nil {
		return fmt.Errorf("update profile: %w", err)
	}
	return nil
}
