// Command dbtool provisions and audits the hosted database: schema
// procedures, seed data, the admin account, and a read-only verification
// checklist.
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/sonnasweet/ordering-system/internal/core/service"
	"github.com/sonnasweet/ordering-system/internal/infrastructure/config"
	"github.com/sonnasweet/ordering-system/internal/infrastructure/supabase"
	"github.com/sonnasweet/ordering-system/pkg/logger"
)

const runTimeout = 2 * time.Minute

func main() {
	root := &cobra.Command{
		Use:           "dbtool",
		Short:         "Database provisioning and verification for the ordering system",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(migrateCmd(), seedCmd(), verifyCmd())

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

// bootstrap wires the shared dependencies every subcommand needs.
func bootstrap() (*supabase.Client, *config.Config, zerolog.Logger, error) {
	cfg := config.Load()
	log := logger.Init(logger.Options{Level: cfg.LogLevel, Pretty: true})

	sb, err := supabase.New(supabase.Config{
		URL:            cfg.Supabase.URL,
		AnonKey:        cfg.Supabase.AnonKey,
		ServiceRoleKey: cfg.Supabase.ServiceRoleKey,
	})
	if err != nil {
		return nil, nil, log, err
	}
	return sb, cfg, logger.With("dbtool"), nil
}

func newProvisioner(sb *supabase.Client, cfg *config.Config, log zerolog.Logger) *service.ProvisionService {
	return service.NewProvisionService(
		sb,
		supabase.NewCatalogRepository(sb),
		supabase.NewUserRepository(sb),
		sb,
		service.AdminConfig{
			Email:    cfg.Admin.Email,
			Password: cfg.Admin.Password,
		},
		log,
	)
}

func migrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create schema objects, seed reference data, and provision the admin account",
		RunE: func(cmd *cobra.Command, args []string) error {
			sb, cfg, log, err := bootstrap()
			if err != nil {
				return err
			}

			ctx, cancel := context.WithTimeout(cmd.Context(), runTimeout)
			defer cancel()

			report, err := newProvisioner(sb, cfg, log).Run(ctx)
			printSetupReport(report)
			if err != nil {
				log.Error().Err(err).Msg("setup failed")
				fmt.Fprintln(os.Stderr, "If schema procedures are missing, run the SQL files against the hosted database manually and retry.")
				// Outside production a failed setup is survivable; the server
				// can still start against a partially provisioned database.
				if cfg.IsProduction() {
					return err
				}
				log.Warn().Msg("continuing despite setup failure (non-production environment)")
			}
			return nil
		},
	}
}

func seedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Upsert the reference categories and menu items",
		RunE: func(cmd *cobra.Command, args []string) error {
			sb, cfg, log, err := bootstrap()
			if err != nil {
				return err
			}

			ctx, cancel := context.WithTimeout(cmd.Context(), runTimeout)
			defer cancel()

			step := newProvisioner(sb, cfg, log).Seed(ctx)
			printStep(step)
			if n := step.Advisories(); n > 0 {
				fmt.Printf("seed finished with %d advisory failure(s)\n", n)
			}
			return nil
		},
	}
}

func verifyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "verify",
		Short: "Audit the provisioned state without mutating it",
		RunE: func(cmd *cobra.Command, args []string) error {
			sb, _, log, err := bootstrap()
			if err != nil {
				return err
			}

			ctx, cancel := context.WithTimeout(cmd.Context(), runTimeout)
			defer cancel()

			verifier := service.NewVerifyService(
				sb,
				supabase.NewCatalogRepository(sb),
				supabase.NewUserRepository(sb),
				sb,
				log,
			)
			report, err := verifier.Run(ctx)
			for _, check := range report.Checks {
				if check.OK {
					fmt.Printf("  ok    %s\n", check.Name)
				} else {
					fmt.Printf("  warn  %s: %s\n", check.Name, check.Warning)
				}
			}
			if err != nil {
				return err
			}
			if warnings := report.Warnings(); len(warnings) > 0 {
				fmt.Printf("verification passed with %d warning(s)\n", len(warnings))
			} else {
				fmt.Println("verification passed")
			}
			return nil
		},
	}
}

func printSetupReport(report *service.SetupReport) {
	if report == nil {
		return
	}
	for _, step := range report.Steps {
		printStep(step)
	}
	if report.AdminCreated {
		fmt.Println("admin account created")
	}
}

func printStep(step service.StepReport) {
	fmt.Printf("step %s:\n", step.Name)
	for _, res := range step.Results {
		if res.Err != nil {
			fmt.Printf("  %-8s %s: %v\n", res.Outcome, res.Op, res.Err)
			continue
		}
		fmt.Printf("  %-8s %s\n", res.Outcome, res.Op)
	}
}
