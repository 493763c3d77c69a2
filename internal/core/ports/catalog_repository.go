package ports

import (
	"context"

	"github.com/sonnasweet/ordering-system/internal/core/domain"
)

// CategoryRef is the name→id projection used to wire menu items to their
// categories during seeding.
type CategoryRef struct {
	ID   string
	Name string
}

// CatalogRepository defines persistence for the menu reference data.
// Upserts key on the name column so reseeding is idempotent.
type CatalogRepository interface {
	UpsertCategory(ctx context.Context, category *domain.Category) error
	UpsertMenuItem(ctx context.Context, item *domain.MenuItem) error
	ListCategoryRefs(ctx context.Context) ([]CategoryRef, error)
	CountCategories(ctx context.Context) (int64, error)
	CountMenuItems(ctx context.Context) (int64, error)
}
