package supabase

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/sonnasweet/ordering-system/internal/core/domain"
	"github.com/sonnasweet/ordering-system/internal/core/ports"
)

const (
	categoriesTable = "categories"
	menuItemsTable  = "menu_items"
)

// CatalogRepository persists menu reference data. Upserts key on the name
// column (on_conflict) so reseeding merges instead of duplicating.
type CatalogRepository struct {
	client *Client
}

func NewCatalogRepository(client *Client) *CatalogRepository {
	return &CatalogRepository{client: client}
}

type categoryRow struct {
	ID          string `json:"id,omitempty"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	ImageURL    string `json:"image_url,omitempty"`
	SortOrder   int    `json:"sort_order"`
	IsActive    bool   `json:"is_active"`
}

type menuItemRow struct {
	ID              string   `json:"id,omitempty"`
	Name            string   `json:"name"`
	Description     string   `json:"description"`
	Price           float64  `json:"price"`
	Category        string   `json:"category"`
	ImageURL        string   `json:"image_url,omitempty"`
	IsAvailable     bool     `json:"is_available"`
	Ingredients     []string `json:"ingredients,omitempty"`
	Allergens       []string `json:"allergens,omitempty"`
	PreparationTime int      `json:"preparation_time,omitempty"`
}

func (r *CatalogRepository) upsert(ctx context.Context, table string, body any) error {
	q := url.Values{}
	q.Set("on_conflict", "name")

	_, _, err := r.client.do(ctx, request{
		method: http.MethodPost,
		path:   "/rest/v1/" + table,
		query:  q,
		prefer: "resolution=merge-duplicates,return=minimal",
		body:   body,
	}, nil)
	return err
}

func (r *CatalogRepository) UpsertCategory(ctx context.Context, category *domain.Category) error {
	row := categoryRow{
		Name:        category.Name,
		Description: category.Description,
		ImageURL:    category.ImageURL,
		SortOrder:   category.SortOrder,
		IsActive:    category.IsActive,
	}
	if err := r.upsert(ctx, categoriesTable, row); err != nil {
		return fmt.Errorf("upsert category %q: %w", category.Name, err)
	}
	return nil
}

func (r *CatalogRepository) UpsertMenuItem(ctx context.Context, item *domain.MenuItem) error {
	row := menuItemRow{
		Name:            item.Name,
		Description:     item.Description,
		Price:           item.Price,
		Category:        item.CategoryID,
		ImageURL:        item.ImageURL,
		IsAvailable:     item.IsAvailable,
		Ingredients:     item.Ingredients,
		Allergens:       item.Allergens,
		PreparationTime: item.PreparationTime,
	}
	if err := r.upsert(ctx, menuItemsTable, row); err != nil {
		return fmt.Errorf("upsert menu item %q: %w", item.Name, err)
	}
	return nil
}

func (r *CatalogRepository) ListCategoryRefs(ctx context.Context) ([]ports.CategoryRef, error) {
	q := url.Values{}
	q.Set("select", "id,name")

	var rows []struct {
		ID   string `json:"id"`
		Name string `json:"name"`
	}
	_, _, err := r.client.do(ctx, request{
		method: http.MethodGet,
		path:   "/rest/v1/" + categoriesTable,
		query:  q,
	}, &rows)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}

	refs := make([]ports.CategoryRef, 0, len(rows))
	for _, row := range rows {
		refs = append(refs, ports.CategoryRef{ID: row.ID, Name: row.Name})
	}
	return refs, nil
}

func (r *CatalogRepository) CountCategories(ctx context.Context) (int64, error) {
	return r.client.CountRows(ctx, categoriesTable)
}

func (r *CatalogRepository) CountMenuItems(ctx context.Context) (int64, error) {
	return r.client.CountRows(ctx, menuItemsTable)
}
