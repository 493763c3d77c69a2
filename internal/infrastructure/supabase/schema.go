package supabase

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/sonnasweet/ordering-system/internal/core/domain"
)

// CreateTable invokes a schema-creation procedure through the RPC endpoint.
// The target schema may already have been established through an external
// channel (manually run SQL), so "already exists" answers map to
// domain.ErrAlreadyExists and are advisory to callers.
func (c *Client) CreateTable(ctx context.Context, procedure string) error {
	_, _, err := c.do(ctx, request{
		method: http.MethodPost,
		path:   "/rest/v1/rpc/" + procedure,
		body:   map[string]any{},
	}, nil)
	if err != nil {
		var apiErr *APIError
		if errors.As(err, &apiErr) && strings.Contains(apiErr.Message, "already exists") {
			return fmt.Errorf("%w: %s", domain.ErrAlreadyExists, apiErr.Message)
		}
		return fmt.Errorf("rpc %s: %w", procedure, err)
	}
	return nil
}

// ListBuckets enumerates the storage buckets visible to the service key.
func (c *Client) ListBuckets(ctx context.Context) ([]string, error) {
	var rows []struct {
		Name string `json:"name"`
	}
	_, _, err := c.do(ctx, request{
		method: http.MethodGet,
		path:   "/storage/v1/bucket",
	}, &rows)
	if err != nil {
		return nil, fmt.Errorf("list buckets: %w", err)
	}

	names := make([]string, 0, len(rows))
	for _, row := range rows {
		names = append(names, row.Name)
	}
	return names, nil
}
