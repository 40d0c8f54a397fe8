package api

import (
	"context"

	"github.com/Yui-Mika/Clothing-website/internal/domain"
)

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type registerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type authResponse struct {
	Envelope
	Token string           `json:"token,omitempty"`
	User  *domain.Identity `json:"user,omitempty"`
}

// IsAuth performs the who-am-I check against the held credential.
func (c *Client) IsAuth(ctx context.Context) (*domain.Identity, error) {
	var resp authResponse
	if err := c.get(ctx, "/api/user/is-auth", &resp); err != nil {
		return nil, err
	}
	if !resp.Success || resp.User == nil {
		return nil, remoteErr(resp.Envelope)
	}
	return resp.User, nil
}

// Login exchanges credentials for an opaque bearer token. The token is NOT
// stored on the client; the session store decides when to adopt it.
func (c *Client) Login(ctx context.Context, email, password string) (string, *domain.Identity, error) {
	var resp authResponse
	if err := c.post(ctx, "/api/user/login", loginRequest{Email: email, Password: password}, &resp); err != nil {
		return "", nil, err
	}
	if !resp.Success {
		return "", nil, remoteErr(resp.Envelope)
	}
	return resp.Token, resp.User, nil
}

// Register creates an account and returns its first issued token.
func (c *Client) Register(ctx context.Context, name, email, password string) (string, *domain.Identity, error) {
	var resp authResponse
	if err := c.post(ctx, "/api/user/register", registerRequest{Name: name, Email: email, Password: password}, &resp); err != nil {
		return "", nil, err
	}
	if !resp.Success {
		return "", nil, remoteErr(resp.Envelope)
	}
	return resp.Token, resp.User, nil
}

// Logout invalidates the held token server-side. Callers treat failures as
// best-effort and proceed with local teardown regardless.
func (c *Client) Logout(ctx context.Context) (string, error) {
	var resp Envelope
	if err := c.post(ctx, "/api/user/logout", nil, &resp); err != nil {
		return "", err
	}
	if !resp.Success {
		return "", remoteErr(resp)
	}
	return resp.Message, nil
}
