package api

import (
	"context"
	"encoding/json"
	"net/http"
)

type RegisterInput struct {
	Email     string
	Username  string
	Password  string
	FirstName string
	LastName  string
}

// TokenPair is the credential pair returned by the token endpoint.
type TokenPair struct {
	Access  string `json:"access"`
	Refresh string `json:"refresh"`
}

// Register creates a new account. The backend expects the password twice.
func (c *Client) Register(ctx context.Context, input RegisterInput) error {
	body := map[string]string{
		"email":      input.Email,
		"username":   input.Username,
		"password":   input.Password,
		"password2":  input.Password,
		"first_name": input.FirstName,
		"last_name":  input.LastName,
	}
	return c.Do(ctx, http.MethodPost, "/register/", nil, body, nil)
}

// Login exchanges credentials for a token pair.
func (c *Client) Login(ctx context.Context, email, password string) (TokenPair, error) {
	body := map[string]string{"email": email, "password": password}
	var pair TokenPair
	if err := c.Do(ctx, http.MethodPost, "/token/", nil, body, &pair); err != nil {
		return TokenPair{}, err
	}
	return pair, nil
}

// Dashboard fetches the summary payload. The shape is server-defined, so
// it is returned opaque.
func (c *Client) Dashboard(ctx context.Context) (json.RawMessage, error) {
	var raw json.RawMessage
	if err := c.Do(ctx, http.MethodGet, "/dashboard/", nil, nil, &raw); err != nil {
		return nil, err
	}
	return raw, nil
}
