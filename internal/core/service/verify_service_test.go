package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func healthyProber() *fakeProber {
	return &fakeProber{counts: map[string]int64{
		"users":       1,
		"categories":  6,
		"menu_items":  7,
		"orders":      0,
		"order_items": 0,
	}}
}

func TestVerifyProvisionedSystem(t *testing.T) {
	catalog := &fakeCatalog{categoryCount: 6, itemCount: 7}
	users := newFakeUserRepo()
	users.adminCount = 1
	storage := &fakeStorage{buckets: append([]string{}, expectedBuckets...)}

	svc := NewVerifyService(healthyProber(), catalog, users, storage, zerolog.Nop())
	report, err := svc.Run(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if warnings := report.Warnings(); len(warnings) != 0 {
		t.Fatalf("expected no warnings, got %v", warnings)
	}
}

func TestVerifyMissingTableIsFatal(t *testing.T) {
	prober := healthyProber()
	prober.errs = map[string]error{"orders": errors.New("relation does not exist")}

	svc := NewVerifyService(prober, &fakeCatalog{}, newFakeUserRepo(), &fakeStorage{}, zerolog.Nop())
	_, err := svc.Run(context.Background())
	if err == nil {
		t.Fatal("expected error for missing table")
	}
	if !strings.Contains(err.Error(), "table orders not found") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestVerifyConnectivityFailureIsFatal(t *testing.T) {
	prober := &fakeProber{errs: map[string]error{"users": errors.New("dial tcp: timeout")}}

	svc := NewVerifyService(prober, &fakeCatalog{}, newFakeUserRepo(), &fakeStorage{}, zerolog.Nop())
	_, err := svc.Run(context.Background())
	if err == nil {
		t.Fatal("expected connectivity error")
	}
	if !strings.Contains(err.Error(), "connection failed") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestVerifyUnseededSystemWarns(t *testing.T) {
	users := newFakeUserRepo()
	storage := &fakeStorage{buckets: append([]string{}, expectedBuckets...)}

	svc := NewVerifyService(healthyProber(), &fakeCatalog{}, users, storage, zerolog.Nop())
	report, err := svc.Run(context.Background())
	if err != nil {
		t.Fatalf("empty seeds must not be fatal: %v", err)
	}

	warnings := strings.Join(report.Warnings(), "\n")
	for _, want := range []string{
		"no categories seeded - run migration first",
		"no menu items seeded - run migration first",
		"admin user not found - run migration first",
	} {
		if !strings.Contains(warnings, want) {
			t.Fatalf("expected warning %q, got:\n%s", want, warnings)
		}
	}
}

func TestVerifyMissingBucketWarns(t *testing.T) {
	catalog := &fakeCatalog{categoryCount: 6, itemCount: 7}
	users := newFakeUserRepo()
	users.adminCount = 1
	storage := &fakeStorage{buckets: []string{"menu-images", "avatars"}}

	svc := NewVerifyService(healthyProber(), catalog, users, storage, zerolog.Nop())
	report, err := svc.Run(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	warnings := report.Warnings()
	if len(warnings) != 1 {
		t.Fatalf("expected one warning, got %v", warnings)
	}
	if !strings.Contains(warnings[0], "order-attachments") {
		t.Fatalf("unexpected warning: %s", warnings[0])
	}
}

func TestVerifyStorageFailureIsNotFatal(t *testing.T) {
	catalog := &fakeCatalog{categoryCount: 6, itemCount: 7}
	users := newFakeUserRepo()
	users.adminCount = 1
	storage := &fakeStorage{err: errors.New("storage api down")}

	svc := NewVerifyService(healthyProber(), catalog, users, storage, zerolog.Nop())
	report, err := svc.Run(context.Background())
	if err != nil {
		t.Fatalf("storage failure must not be fatal: %v", err)
	}
	if len(report.Warnings()) != 1 {
		t.Fatalf("expected a storage warning, got %v", report.Warnings())
	}
}
