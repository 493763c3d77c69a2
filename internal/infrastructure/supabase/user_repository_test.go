package supabase

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/sonnasweet/ordering-system/internal/core/domain"
	"github.com/sonnasweet/ordering-system/internal/core/ports"
)

func TestFindByIDNotFound(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("id"); got != "eq.ghost" {
			t.Errorf("unexpected id filter %q", got)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[]`))
	})

	_, err := NewUserRepository(client).FindByID(context.Background(), "ghost")
	if !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestFindByEmailNormalisesAndParses(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("email"); got != "eq.jane@example.com" {
			t.Errorf("email filter must be lowercased, got %q", got)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[{
			"id": "sub-1",
			"email": "jane@example.com",
			"first_name": "Jane",
			"last_name": "Doe",
			"role": "customer",
			"is_active": true,
			"last_login": "2026-08-30T12:00:00Z",
			"created_at": "2026-08-01T09:30:00.123456"
		}]`))
	})

	user, err := NewUserRepository(client).FindByEmail(context.Background(), "Jane@Example.com")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if user.ID != "sub-1" || user.Role != domain.RoleCustomer {
		t.Fatalf("unexpected user: %+v", user)
	}
	if user.LastLogin == nil || !user.LastLogin.Equal(time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)) {
		t.Fatalf("last login not parsed: %v", user.LastLogin)
	}
	if user.CreatedAt.IsZero() {
		t.Fatal("created_at not parsed")
	}
}

func TestInsertConflictMapsToUserExists(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusConflict)
		w.Write([]byte(`{"message":"duplicate key value violates unique constraint"}`))
	})

	err := NewUserRepository(client).Insert(context.Background(), &domain.User{
		ID:    "sub-1",
		Email: "jane@example.com",
	})
	if !errors.Is(err, domain.ErrUserExists) {
		t.Fatalf("expected ErrUserExists, got %v", err)
	}
}

func TestInsertLowercasesEmailAtRest(t *testing.T) {
	var captured userRow
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if err := json.NewDecoder(r.Body).Decode(&captured); err != nil {
			t.Errorf("decode body: %v", err)
		}
		w.WriteHeader(http.StatusCreated)
	})

	err := NewUserRepository(client).Insert(context.Background(), &domain.User{
		ID:    "sub-1",
		Email: "Jane@Example.com",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if captured.Email != "jane@example.com" {
		t.Fatalf("email not lowercased at rest: %q", captured.Email)
	}
}

func TestFindAllPagination(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Range"); got != "20-39" {
			t.Errorf("unexpected Range header %q", got)
		}
		if got := r.URL.Query().Get("role"); got != "eq.customer" {
			t.Errorf("unexpected role filter %q", got)
		}
		if got := r.URL.Query().Get("order"); got != "created_at.desc" {
			t.Errorf("unexpected order %q", got)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Header().Set("Content-Range", "20-39/45")
		w.Write([]byte(`[{"id":"sub-21","email":"a@example.com","role":"customer","is_active":true}]`))
	})

	page, err := NewUserRepository(client).FindAll(context.Background(), 2, 20, ports.UserFilter{Role: domain.RoleCustomer})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if page.Total != 45 || page.Page != 2 || page.TotalPages != 3 {
		t.Fatalf("unexpected page metadata: %+v", page)
	}
	if len(page.Users) != 1 || page.Users[0].ID != "sub-21" {
		t.Fatalf("unexpected rows: %+v", page.Users)
	}
}

func TestCountByRole(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodHead {
			t.Errorf("expected HEAD, got %s", r.Method)
		}
		if got := r.URL.Query().Get("role"); got != "eq.admin" {
			t.Errorf("unexpected role filter %q", got)
		}
		w.Header().Set("Content-Range", "*/1")
		w.WriteHeader(http.StatusOK)
	})

	n, err := NewUserRepository(client).CountByRole(context.Background(), domain.RoleAdmin)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n != 1 {
		t.Fatalf("expected 1 admin, got %d", n)
	}
}
