package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/sonnasweet/ordering-system/internal/core/domain"
	"github.com/sonnasweet/ordering-system/internal/core/ports"
)

// Outcome classifies the result of one provisioning operation.
type Outcome string

const (
	OutcomeOK       Outcome = "ok"
	OutcomeAdvisory Outcome = "advisory"
	OutcomeFatal    Outcome = "fatal"
	OutcomeSkipped  Outcome = "skipped"
)

// OpResult records a single provisioning operation.
type OpResult struct {
	Op      string
	Outcome Outcome
	Err     error
}

// StepReport aggregates the operations of one setup step.
type StepReport struct {
	Name    string
	Results []OpResult
}

func (r *StepReport) add(op string, outcome Outcome, err error) {
	r.Results = append(r.Results, OpResult{Op: op, Outcome: outcome, Err: err})
}

// Advisories returns the number of advisory failures in the step.
func (r *StepReport) Advisories() int {
	n := 0
	for _, res := range r.Results {
		if res.Outcome == OutcomeAdvisory {
			n++
		}
	}
	return n
}

// SetupReport is the full account of a provisioning run.
type SetupReport struct {
	Steps        []StepReport
	AdminCreated bool
}

// AdminConfig holds the credentials for the privileged identity the
// provisioner establishes.
type AdminConfig struct {
	Email     string
	Password  string
	FirstName string
	LastName  string
}

// ProvisionService brings the hosted service to a known-good baseline:
// schema objects, seeded reference data, and exactly one admin identity.
// Safe to re-run; schema and seed failures are advisory, admin failures are
// fatal.
type ProvisionService struct {
	schema   ports.SchemaRunner
	catalog  ports.CatalogRepository
	users    ports.UserRepository
	identity ports.IdentityProvider
	admin    AdminConfig
	log      zerolog.Logger
}

func NewProvisionService(
	schema ports.SchemaRunner,
	catalog ports.CatalogRepository,
	users ports.UserRepository,
	identity ports.IdentityProvider,
	admin AdminConfig,
	log zerolog.Logger,
) *ProvisionService {
	if admin.FirstName == "" {
		admin.FirstName = "Admin"
	}
	if admin.LastName == "" {
		admin.LastName = "User"
	}
	return &ProvisionService{
		schema:   schema,
		catalog:  catalog,
		users:    users,
		identity: identity,
		admin:    admin,
		log:      log,
	}
}

// Run executes the setup sequence. Schema and seed steps never fail the
// run; an admin-provisioning failure does, because a missing administrator
// blocks every administrative operation downstream. The report is returned
// even when the run fails.
func (s *ProvisionService) Run(ctx context.Context) (*SetupReport, error) {
	report := &SetupReport{}

	report.Steps = append(report.Steps, s.runSchemaStep(ctx))
	report.Steps = append(report.Steps, s.runSeedStep(ctx))

	adminStep, created, err := s.runAdminStep(ctx)
	report.Steps = append(report.Steps, adminStep)
	report.AdminCreated = created
	if err != nil {
		return report, err
	}

	s.log.Info().
		Int("steps", len(report.Steps)).
		Bool("admin_created", created).
		Msg("database setup completed")
	return report, nil
}

// Seed runs only the reference-data step. Used by the database tool when
// the schema is already in place.
func (s *ProvisionService) Seed(ctx context.Context) StepReport {
	return s.runSeedStep(ctx)
}

// runSchemaStep invokes each schema-creation procedure. Schema creation is
// advisory, not authoritative: the target schema may already exist from
// manually run SQL, so every failure is logged and the step continues.
func (s *ProvisionService) runSchemaStep(ctx context.Context) StepReport {
	step := StepReport{Name: "schema"}
	for _, proc := range schemaProcedures {
		err := s.schema.CreateTable(ctx, proc)
		switch {
		case err == nil:
			step.add(proc, OutcomeOK, nil)
		case errors.Is(err, domain.ErrAlreadyExists):
			s.log.Debug().Str("procedure", proc).Msg("schema object already exists")
			step.add(proc, OutcomeAdvisory, err)
		default:
			s.log.Warn().Err(err).Str("procedure", proc).Msg("schema creation failed")
			step.add(proc, OutcomeAdvisory, err)
		}
	}
	return step
}

// runSeedStep upserts the reference catalog. Per-row failures are logged
// and skipped so one bad row does not block the rest. Menu items are seeded
// only when at least one category row exists to resolve against.
func (s *ProvisionService) runSeedStep(ctx context.Context) StepReport {
	step := StepReport{Name: "seed"}

	for i := range seedCategories {
		cat := seedCategories[i]
		if err := s.catalog.UpsertCategory(ctx, &cat); err != nil {
			s.log.Warn().Err(err).Str("category", cat.Name).Msg("category seed failed")
			step.add("category:"+cat.Name, OutcomeAdvisory, err)
			continue
		}
		step.add("category:"+cat.Name, OutcomeOK, nil)
	}

	refs, err := s.catalog.ListCategoryRefs(ctx)
	if err != nil {
		s.log.Warn().Err(err).Msg("category lookup failed, skipping menu item seed")
		step.add("menu_items", OutcomeAdvisory, err)
		return step
	}
	if len(refs) == 0 {
		s.log.Info().Msg("no categories present, skipping menu item seed")
		step.add("menu_items", OutcomeSkipped, nil)
		return step
	}

	byName := make(map[string]string, len(refs))
	for _, ref := range refs {
		byName[ref.Name] = ref.ID
	}

	for _, seed := range seedMenuItems {
		item := seed.item
		item.CategoryID = byName[seed.category]
		if err := s.catalog.UpsertMenuItem(ctx, &item); err != nil {
			s.log.Warn().Err(err).Str("item", item.Name).Msg("menu item seed failed")
			step.add("item:"+item.Name, OutcomeAdvisory, err)
			continue
		}
		step.add("item:"+item.Name, OutcomeOK, nil)
	}
	return step
}

// runAdminStep provisions the single privileged identity. Idempotent: an
// existing profile with the admin email means nothing is written. Failures
// past the existence check are fatal. The gap between the existence check
// and the create call is unguarded; the identity service's unique-email
// constraint makes a concurrent duplicate fail-by-rejection.
func (s *ProvisionService) runAdminStep(ctx context.Context) (StepReport, bool, error) {
	step := StepReport{Name: "admin"}

	existing, err := s.users.FindByEmail(ctx, s.admin.Email)
	if err == nil && existing != nil {
		s.log.Info().Str("email", s.admin.Email).Msg("admin user already exists")
		step.add("check_existing", OutcomeOK, nil)
		return step, false, nil
	}
	if !errors.Is(err, domain.ErrUserNotFound) {
		step.add("check_existing", OutcomeFatal, err)
		return step, false, fmt.Errorf("check existing admin: %w", err)
	}
	step.add("check_existing", OutcomeOK, nil)

	subjectID, err := s.identity.CreateUser(ctx, ports.AccountInput{
		Email:          s.admin.Email,
		Password:       s.admin.Password,
		EmailConfirmed: true,
		FirstName:      s.admin.FirstName,
		LastName:       s.admin.LastName,
		Role:           domain.RoleAdmin,
	})
	if err != nil {
		step.add("create_auth_user", OutcomeFatal, err)
		return step, false, fmt.Errorf("create admin auth user: %w", err)
	}
	step.add("create_auth_user", OutcomeOK, nil)

	now := time.Now().UTC()
	profile := &domain.User{
		ID:            subjectID,
		Email:         s.admin.Email,
		FirstName:     s.admin.FirstName,
		LastName:      s.admin.LastName,
		Role:          domain.RoleAdmin,
		IsActive:      true,
		EmailVerified: true,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := s.users.Insert(ctx, profile); err != nil {
		// A hosted account now exists with no profile; the caller must know
		// immediately.
		step.add("create_profile", OutcomeFatal, err)
		return step, false, fmt.Errorf("create admin profile: %w", err)
	}
	step.add("create_profile", OutcomeOK, nil)

	s.log.Info().Str("email", s.admin.Email).Msg("admin user created")
	return step, true, nil
}
