package bank

import (
	"context"
	"net/url"

	"banking-console/models"
)

// TokenResponse is the login endpoint's reply.
type TokenResponse struct {
	AccessToken string `json:"access-token"`
}

// Login exchanges credentials for an access token. The backend expects
// them form-encoded.
func (c *Client) Login(ctx context.Context, username, password string) (*TokenResponse, error) {
	form := url.Values{}
	form.Set("username", username)
	form.Set("password", password)

	var out TokenResponse
	if err := c.postForm(ctx, "/auth/login", form, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ChangePassword forwards both passwords to the backend, which answers
// with a plain-text confirmation.
func (c *Client) ChangePassword(ctx context.Context, oldPassword, newPassword string) (string, error) {
	req := models.ChangePasswordRequest{
		OldPassword: oldPassword,
		NewPassword: newPassword,
	}
	var confirmation string
	if err := c.postJSON(ctx, "/auth/change-password", req, &confirmation); err != nil {
		return "", err
	}
	return confirmation, nil
}
