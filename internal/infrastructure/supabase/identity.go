package supabase

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"

	"github.com/sonnasweet/ordering-system/internal/core/domain"
	"github.com/sonnasweet/ordering-system/internal/core/ports"
)

// VerifyToken asks the hosted auth service who an access token belongs to.
// A 4xx answer means the token is not a valid hosted session; callers fall
// back to the local scheme on domain.ErrInvalidSession.
func (c *Client) VerifyToken(ctx context.Context, accessToken string) (string, error) {
	var out struct {
		ID string `json:"id"`
	}
	_, _, err := c.do(ctx, request{
		method: http.MethodGet,
		path:   "/auth/v1/user",
		bearer: accessToken,
	}, &out)
	if err != nil {
		var apiErr *APIError
		if errors.As(err, &apiErr) && apiErr.StatusCode >= 400 && apiErr.StatusCode < 500 {
			return "", fmt.Errorf("%w: %s", domain.ErrInvalidSession, apiErr.Message)
		}
		return "", err
	}
	if out.ID == "" {
		return "", domain.ErrInvalidSession
	}
	return out.ID, nil
}

// SignIn performs the password grant with the anon key tier.
func (c *Client) SignIn(ctx context.Context, email, password string) (string, string, error) {
	q := url.Values{}
	q.Set("grant_type", "password")

	var out struct {
		AccessToken string `json:"access_token"`
		User        struct {
			ID string `json:"id"`
		} `json:"user"`
	}
	_, _, err := c.do(ctx, request{
		method: http.MethodPost,
		path:   "/auth/v1/token",
		query:  q,
		bearer: c.anonKey,
		body: map[string]string{
			"email":    email,
			"password": password,
		},
	}, &out)
	if err != nil {
		var apiErr *APIError
		if errors.As(err, &apiErr) && apiErr.StatusCode >= 400 && apiErr.StatusCode < 500 {
			return "", "", fmt.Errorf("%w: %s", domain.ErrInvalidCredentials, apiErr.Message)
		}
		return "", "", err
	}
	if out.AccessToken == "" || out.User.ID == "" {
		return "", "", domain.ErrInvalidCredentials
	}
	return out.AccessToken, out.User.ID, nil
}

// CreateUser provisions an account through the privileged admin endpoint
// and returns the subject id the service assigned.
func (c *Client) CreateUser(ctx context.Context, in ports.AccountInput) (string, error) {
	var out struct {
		ID string `json:"id"`
	}
	_, _, err := c.do(ctx, request{
		method: http.MethodPost,
		path:   "/auth/v1/admin/users",
		body: map[string]any{
			"email":         in.Email,
			"password":      in.Password,
			"email_confirm": in.EmailConfirmed,
			"user_metadata": map[string]string{
				"first_name": in.FirstName,
				"last_name":  in.LastName,
				"role":       in.Role,
			},
		},
	}, &out)
	if err != nil {
		return "", fmt.Errorf("create auth user: %w", err)
	}
	if out.ID == "" {
		return "", errors.New("create auth user: service returned no subject id")
	}
	return out.ID, nil
}

// DeleteUser removes a hosted account by subject id.
func (c *Client) DeleteUser(ctx context.Context, subjectID string) error {
	_, _, err := c.do(ctx, request{
		method: http.MethodDelete,
		path:   "/auth/v1/admin/users/" + subjectID,
	}, nil)
	if err != nil {
		return fmt.Errorf("delete auth user: %w", err)
	}
	return nil
}
