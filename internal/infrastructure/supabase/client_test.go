package supabase

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/sonnasweet/ordering-system/internal/core/domain"
	"github.com/sonnasweet/ordering-system/internal/core/ports"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) (*Client, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	client, err := New(Config{
		URL:            srv.URL,
		AnonKey:        "anon-key",
		ServiceRoleKey: "service-key",
	})
	if err != nil {
		t.Fatalf("new client: %v", err)
	}
	return client, srv
}

func TestNewRequiresURLAndServiceKey(t *testing.T) {
	if _, err := New(Config{ServiceRoleKey: "svc"}); err == nil {
		t.Fatal("expected error without url")
	}
	if _, err := New(Config{URL: "http://localhost"}); err == nil {
		t.Fatal("expected error without service role key")
	}
}

func TestCountRows(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodHead {
			t.Errorf("expected HEAD, got %s", r.Method)
		}
		if r.URL.Path != "/rest/v1/users" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if got := r.Header.Get("Prefer"); got != "count=exact" {
			t.Errorf("unexpected Prefer header %q", got)
		}
		if got := r.Header.Get("apikey"); got != "service-key" {
			t.Errorf("unexpected apikey header %q", got)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer service-key" {
			t.Errorf("unexpected Authorization header %q", got)
		}
		w.Header().Set("Content-Range", "0-9/42")
		w.WriteHeader(http.StatusOK)
	})

	n, err := client.CountRows(context.Background(), "users")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n != 42 {
		t.Fatalf("expected 42 rows, got %d", n)
	}
}

func TestCountRowsMissingTable(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	if _, err := client.CountRows(context.Background(), "ghosts"); err == nil {
		t.Fatal("expected error for missing table")
	}
}

func TestContentRangeTotal(t *testing.T) {
	cases := []struct {
		header  string
		want    int64
		wantErr bool
	}{
		{"0-9/42", 42, false},
		{"*/7", 7, false},
		{"*/*", 0, false},
		{"", 0, true},
		{"0-9", 0, true},
	}
	for _, tc := range cases {
		h := http.Header{}
		if tc.header != "" {
			h.Set("Content-Range", tc.header)
		}
		got, err := contentRangeTotal(h)
		if tc.wantErr {
			if err == nil {
				t.Errorf("header %q: expected error", tc.header)
			}
			continue
		}
		if err != nil {
			t.Errorf("header %q: unexpected error %v", tc.header, err)
			continue
		}
		if got != tc.want {
			t.Errorf("header %q: expected %d, got %d", tc.header, tc.want, got)
		}
	}
}

func TestVerifyTokenUsesCallerCredential(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/auth/v1/user" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer caller-token" {
			t.Errorf("unexpected Authorization header %q", got)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"id":"sub-7","email":"jane@example.com"}`))
	})

	id, err := client.VerifyToken(context.Background(), "caller-token")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if id != "sub-7" {
		t.Fatalf("expected subject sub-7, got %q", id)
	}
}

func TestVerifyTokenRejection(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"msg":"invalid JWT"}`))
	})

	_, err := client.VerifyToken(context.Background(), "garbage")
	if !errors.Is(err, domain.ErrInvalidSession) {
		t.Fatalf("expected ErrInvalidSession, got %v", err)
	}
}

func TestSignIn(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/auth/v1/token" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if got := r.URL.Query().Get("grant_type"); got != "password" {
			t.Errorf("unexpected grant_type %q", got)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer anon-key" {
			t.Errorf("password grant must use the anon tier, got %q", got)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"access_token":"session-token","user":{"id":"sub-7"}}`))
	})

	token, subjectID, err := client.SignIn(context.Background(), "jane@example.com", "hunter22")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if token != "session-token" || subjectID != "sub-7" {
		t.Fatalf("unexpected result: token=%q subject=%q", token, subjectID)
	}
}

func TestSignInRejection(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"error_description":"Invalid login credentials"}`))
	})

	_, _, err := client.SignIn(context.Background(), "jane@example.com", "wrong")
	if !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestCreateUser(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/auth/v1/admin/users" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer service-key" {
			t.Errorf("admin api must use the service tier, got %q", got)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"id":"sub-new"}`))
	})

	id, err := client.CreateUser(context.Background(), ports.AccountInput{
		Email:          "admin@sonnasweet.com",
		Password:       "s3cret",
		EmailConfirmed: true,
		Role:           domain.RoleAdmin,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if id != "sub-new" {
		t.Fatalf("expected subject sub-new, got %q", id)
	}
}

func TestCreateTableAlreadyExists(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/rest/v1/rpc/create_users_table" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusConflict)
		w.Write([]byte(`{"message":"relation \"users\" already exists"}`))
	})

	err := client.CreateTable(context.Background(), "create_users_table")
	if !errors.Is(err, domain.ErrAlreadyExists) {
		t.Fatalf("expected ErrAlreadyExists, got %v", err)
	}
}

func TestListBuckets(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/storage/v1/bucket" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[{"name":"menu-images"},{"name":"avatars"}]`))
	})

	buckets, err := client.ListBuckets(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(buckets) != 2 || buckets[0] != "menu-images" || buckets[1] != "avatars" {
		t.Fatalf("unexpected buckets: %v", buckets)
	}
}
