package api

import (
	"context"
	"fmt"
	"net/http"
)

// Login exchanges credentials for a bearer token.
func (c *Client) Login(ctx context.Context, email, password string) (string, error) {
	env, err := c.do(ctx, http.MethodPost, "/auth/login", nil, map[string]string{
		"email":    email,
		"password": password,
	})
	if err != nil {
		return "", fmt.Errorf("login: %w", err)
	}

	var token string
	if err := results(env, &token); err != nil {
		return "", fmt.Errorf("login: %w", err)
	}
	return token, nil
}

// Register creates a new account with the default user role.
func (c *Client) Register(ctx context.Context, email, password string) error {
	if _, err := c.do(ctx, http.MethodPost, "/auth/register", nil, map[string]string{
		"email":    email,
		"password": password,
	}); err != nil {
		return fmt.Errorf("register: %w", err)
	}
	return nil
}

// ForgotPassword asks the server to send a reset OTP to the account email.
func (c *Client) ForgotPassword(ctx context.Context, email string) error {
	if _, err := c.do(ctx, http.MethodPost, "/auth/forgot-password", nil, map[string]string{
		"email": email,
	}); err != nil {
		return fmt.Errorf("forgot password: %w", err)
	}
	return nil
}

// ResetPassword sets a new password using the OTP from ForgotPassword.
func (c *Client) ResetPassword(ctx context.Context, email, otp, password string) error {
	if _, err := c.do(ctx, http.MethodPost, "/auth/reset-password", nil, map[string]string{
		"email":    email,
		"otp":      otp,
		"password": password,
	}); err != nil {
		return fmt.Errorf("reset password: %w", err)
	}
	return nil
}
