package ports

import (
	"context"
	"time"

	"github.com/sonnasweet/ordering-system/internal/core/domain"
)

// UserFilter narrows FindAll results with equality matches.
type UserFilter struct {
	Role     string
	IsActive *bool
}

// UserPage is one page of users plus pagination metadata.
type UserPage struct {
	Users      []domain.User
	Total      int64
	Page       int
	TotalPages int
}

// UserRepository defines persistence for user profile records.
type UserRepository interface {
	FindByID(ctx context.Context, id string) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindAll(ctx context.Context, page, limit int, filter UserFilter) (*UserPage, error)
	Insert(ctx context.Context, user *domain.User) error
	Update(ctx context.Context, user *domain.User) error
	UpdateLastLogin(ctx context.Context, id string, at time.Time) error
	Delete(ctx context.Context, id string) error
	CountByRole(ctx context.Context, role string) (int64, error)
}
