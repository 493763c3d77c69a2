package supabase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/sonnasweet/ordering-system/internal/core/domain"
	"github.com/sonnasweet/ordering-system/internal/core/ports"
)

const usersTable = "users"

// UserRepository persists user profiles in the hosted "users" relation.
type UserRepository struct {
	client *Client
}

func NewUserRepository(client *Client) *UserRepository {
	return &UserRepository{client: client}
}

// userRow mirrors the users relation. Timestamps stay strings on the wire
// and are parsed into time.Time at the domain boundary.
type userRow struct {
	ID            string          `json:"id,omitempty"`
	Email         string          `json:"email"`
	FirstName     string          `json:"first_name"`
	LastName      string          `json:"last_name"`
	Role          string          `json:"role"`
	Phone         string          `json:"phone,omitempty"`
	Avatar        string          `json:"avatar,omitempty"`
	PasswordHash  string          `json:"password_hash,omitempty"`
	IsActive      bool            `json:"is_active"`
	EmailVerified bool            `json:"email_verified"`
	LastLogin     string          `json:"last_login,omitempty"`
	Preferences   json.RawMessage `json:"preferences,omitempty"`
	Address       json.RawMessage `json:"address,omitempty"`
	CreatedAt     string          `json:"created_at,omitempty"`
	UpdatedAt     string          `json:"updated_at,omitempty"`
}

func (r userRow) toDomain() *domain.User {
	u := &domain.User{
		ID:            r.ID,
		Email:         r.Email,
		FirstName:     r.FirstName,
		LastName:      r.LastName,
		Role:          r.Role,
		Phone:         r.Phone,
		Avatar:        r.Avatar,
		PasswordHash:  r.PasswordHash,
		IsActive:      r.IsActive,
		EmailVerified: r.EmailVerified,
		Preferences:   r.Preferences,
		Address:       r.Address,
		CreatedAt:     parseTimestamp(r.CreatedAt),
		UpdatedAt:     parseTimestamp(r.UpdatedAt),
	}
	if r.LastLogin != "" {
		t := parseTimestamp(r.LastLogin)
		u.LastLogin = &t
	}
	return u
}

func fromDomain(u *domain.User) userRow {
	row := userRow{
		ID:            u.ID,
		Email:         strings.ToLower(u.Email),
		FirstName:     u.FirstName,
		LastName:      u.LastName,
		Role:          u.Role,
		Phone:         u.Phone,
		Avatar:        u.Avatar,
		PasswordHash:  u.PasswordHash,
		IsActive:      u.IsActive,
		EmailVerified: u.EmailVerified,
		Preferences:   u.Preferences,
		Address:       u.Address,
		CreatedAt:     u.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt:     u.UpdatedAt.UTC().Format(time.RFC3339),
	}
	if u.LastLogin != nil {
		row.LastLogin = u.LastLogin.UTC().Format(time.RFC3339)
	}
	return row
}

func (r *UserRepository) findOne(ctx context.Context, column, value string) (*domain.User, error) {
	q := url.Values{}
	q.Set("select", "*")
	q.Set(column, "eq."+value)
	q.Set("limit", "1")

	var rows []userRow
	_, _, err := r.client.do(ctx, request{
		method: http.MethodGet,
		path:   "/rest/v1/" + usersTable,
		query:  q,
	}, &rows)
	if err != nil {
		return nil, fmt.Errorf("find user by %s: %w", column, err)
	}
	if len(rows) == 0 {
		return nil, domain.ErrUserNotFound
	}
	return rows[0].toDomain(), nil
}

func (r *UserRepository) FindByID(ctx context.Context, id string) (*domain.User, error) {
	return r.findOne(ctx, "id", id)
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	return r.findOne(ctx, "email", strings.ToLower(email))
}

func (r *UserRepository) FindAll(ctx context.Context, page, limit int, filter ports.UserFilter) (*ports.UserPage, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 20
	}

	q := url.Values{}
	q.Set("select", "*")
	q.Set("order", "created_at.desc")
	if filter.Role != "" {
		q.Set("role", "eq."+filter.Role)
	}
	if filter.IsActive != nil {
		q.Set("is_active", fmt.Sprintf("eq.%t", *filter.IsActive))
	}

	from := (page - 1) * limit
	to := from + limit - 1

	var rows []userRow
	h, _, err := r.client.do(ctx, request{
		method: http.MethodGet,
		path:   "/rest/v1/" + usersTable,
		query:  q,
		prefer: "count=exact",
		rnge:   fmt.Sprintf("%d-%d", from, to),
	}, &rows)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}

	total, err := contentRangeTotal(h)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}

	users := make([]domain.User, 0, len(rows))
	for _, row := range rows {
		users = append(users, *row.toDomain())
	}

	totalPages := int((total + int64(limit) - 1) / int64(limit))
	return &ports.UserPage{Users: users, Total: total, Page: page, TotalPages: totalPages}, nil
}

func (r *UserRepository) Insert(ctx context.Context, user *domain.User) error {
	_, _, err := r.client.do(ctx, request{
		method: http.MethodPost,
		path:   "/rest/v1/" + usersTable,
		prefer: "return=minimal",
		body:   fromDomain(user),
	}, nil)
	if err != nil {
		var apiErr *APIError
		if errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusConflict {
			return domain.ErrUserExists
		}
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

func (r *UserRepository) Update(ctx context.Context, user *domain.User) error {
	q := url.Values{}
	q.Set("id", "eq."+user.ID)

	row := fromDomain(user)
	row.ID = ""
	row.CreatedAt = ""
	row.UpdatedAt = time.Now().UTC().Format(time.RFC3339)

	_, _, err := r.client.do(ctx, request{
		method: http.MethodPatch,
		path:   "/rest/v1/" + usersTable,
		query:  q,
		prefer: "return=minimal",
		body:   row,
	}, nil)
	if err != nil {
		return fmt.Errorf("update user: %w", err)
	}
	return nil
}

func (r *UserRepository) UpdateLastLogin(ctx context.Context, id string, at time.Time) error {
	q := url.Values{}
	q.Set("id", "eq."+id)

	_, _, err := r.client.do(ctx, request{
		method: http.MethodPatch,
		path:   "/rest/v1/" + usersTable,
		query:  q,
		prefer: "return=minimal",
		body: map[string]string{
			"last_login": at.UTC().Format(time.RFC3339),
			"updated_at": at.UTC().Format(time.RFC3339),
		},
	}, nil)
	if err != nil {
		return fmt.Errorf("update last login: %w", err)
	}
	return nil
}

func (r *UserRepository) Delete(ctx context.Context, id string) error {
	q := url.Values{}
	q.Set("id", "eq."+id)

	_, _, err := r.client.do(ctx, request{
		method: http.MethodDelete,
		path:   "/rest/v1/" + usersTable,
		query:  q,
		prefer: "return=minimal",
	}, nil)
	if err != nil {
		return fmt.Errorf("delete user: %w", err)
	}
	return nil
}

func (r *UserRepository) CountByRole(ctx context.Context, role string) (int64, error) {
	q := url.Values{}
	q.Set("select", "*")
	q.Set("role", "eq."+role)

	h, _, err := r.client.do(ctx, request{
		method: http.MethodHead,
		path:   "/rest/v1/" + usersTable,
		query:  q,
		prefer: "count=exact",
	}, nil)
	if err != nil {
		return 0, fmt.Errorf("count users by role: %w", err)
	}
	return contentRangeTotal(h)
}
