package api

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
)

// Login exchanges admin credentials for a bearer token. It is the one call
// that goes out without a stored session.
func (c *Client) Login(ctx context.Context, email, password string) (string, error) {
	resp, err := c.http.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(map[string]string{"Email": email, "Password": password}).
		Post("/admin/auth/login")
	if err != nil {
		return "", &Error{Message: genericMessage, Status: 0}
	}
	if resp.IsError() {
		return "", &Error{Message: messageFrom(resp.Body(), "identifiants invalides"), Status: resp.StatusCode()}
	}

	var out struct {
		Token string `json:"token"`
	}
	if err := json.Unmarshal(resp.Body(), &out); err != nil || strings.TrimSpace(out.Token) == "" {
		return "", fmt.Errorf("login response carried no token")
	}
	return out.Token, nil
}
