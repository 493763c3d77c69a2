package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/sonnasweet/ordering-system/internal/core/domain"
	"github.com/sonnasweet/ordering-system/internal/core/ports"
)

// CheckResult is one entry in the verification checklist.
type CheckResult struct {
	Name    string
	OK      bool
	Warning string
}

// VerifyReport is the outcome of a verification run.
type VerifyReport struct {
	Checks []CheckResult
}

// Warnings lists the non-fatal divergences found.
func (r *VerifyReport) Warnings() []string {
	var out []string
	for _, c := range r.Checks {
		if c.Warning != "" {
			out = append(out, c.Warning)
		}
	}
	return out
}

func (r *VerifyReport) pass(name string) {
	r.Checks = append(r.Checks, CheckResult{Name: name, OK: true})
}

func (r *VerifyReport) warn(name, warning string) {
	r.Checks = append(r.Checks, CheckResult{Name: name, Warning: warning})
}

var verifyTables = []string{"users", "categories", "menu_items", "orders", "order_items"}

// VerifyService audits the provisioned state without mutating it. Safe to
// run repeatedly and concurrently with traffic. Only the connectivity and
// table-existence checks are fatal; everything else accumulates warnings.
type VerifyService struct {
	prober  ports.TableProber
	catalog ports.CatalogRepository
	users   ports.UserRepository
	storage ports.StorageBrowser
	log     zerolog.Logger
}

func NewVerifyService(
	prober ports.TableProber,
	catalog ports.CatalogRepository,
	users ports.UserRepository,
	storage ports.StorageBrowser,
	log zerolog.Logger,
) *VerifyService {
	return &VerifyService{
		prober:  prober,
		catalog: catalog,
		users:   users,
		storage: storage,
		log:     log,
	}
}

// Run executes the checklist. The report is returned even on failure so
// callers can see how far verification got.
func (s *VerifyService) Run(ctx context.Context) (*VerifyReport, error) {
	report := &VerifyReport{}

	// Connectivity probe doubles as the first table check.
	if _, err := s.prober.CountRows(ctx, "users"); err != nil {
		return report, fmt.Errorf("connection failed: %w", err)
	}
	report.pass("connection")
	s.log.Info().Msg("database connection successful")

	for _, table := range verifyTables {
		if _, err := s.prober.CountRows(ctx, table); err != nil {
			return report, fmt.Errorf("table %s not found: %w", table, err)
		}
		report.pass("table:" + table)
		s.log.Info().Str("table", table).Msg("table exists")
	}

	categories, err := s.catalog.CountCategories(ctx)
	if err != nil {
		return report, fmt.Errorf("categories check failed: %w", err)
	}
	if categories == 0 {
		report.warn("seed:categories", "no categories seeded - run migration first")
	} else {
		report.pass("seed:categories")
	}

	menuItems, err := s.catalog.CountMenuItems(ctx)
	if err != nil {
		return report, fmt.Errorf("menu items check failed: %w", err)
	}
	if menuItems == 0 {
		report.warn("seed:menu_items", "no menu items seeded - run migration first")
	} else {
		report.pass("seed:menu_items")
	}

	admins, err := s.users.CountByRole(ctx, domain.RoleAdmin)
	if err != nil || admins == 0 {
		s.log.Warn().Msg("admin user not found - run migration first")
		report.warn("admin", "admin user not found - run migration first")
	} else {
		report.pass("admin")
	}

	buckets, err := s.storage.ListBuckets(ctx)
	if err != nil {
		s.log.Warn().Err(err).Msg("storage check failed")
		report.warn("storage", fmt.Sprintf("storage check failed: %v", err))
		return report, nil
	}
	existing := make(map[string]struct{}, len(buckets))
	for _, b := range buckets {
		existing[b] = struct{}{}
	}
	for _, want := range expectedBuckets {
		if _, ok := existing[want]; ok {
			report.pass("bucket:" + want)
			continue
		}
		s.log.Warn().Str("bucket", want).Msg("storage bucket missing")
		report.warn("bucket:"+want, fmt.Sprintf("storage bucket %q missing", want))
	}

	return report, nil
}
