package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/frontdesk/clinic/internal/config"
	"github.com/frontdesk/clinic/internal/platform/db"
	"github.com/frontdesk/clinic/internal/platform/persistence"
)

func storeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "store",
		Short: "Inspect and prepare the configured store",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "migrate",
		Short: "Create the kv_store table (postgres backend)",
		RunE: withApp(func(cmd *cobra.Command, args []string, a *app) error {
			if a.cfg.StoreBackend != config.BackendPostgres {
				fmt.Fprintf(cmd.OutOrStdout(), "Nothing to migrate for the %s backend.\n", a.cfg.StoreBackend)
				return nil
			}
			// openApp has already applied the schema; this reports it.
			stats, err := db.Check(cmd.Context(), a.pool)
			if err != nil {
				return fmt.Errorf("database unhealthy: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "kv_store ready (%d/%d connections)\n", stats.TotalConns, stats.MaxConns)
			return nil
		}),
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "status",
		Short: "Show backend and collection sizes",
		RunE: withApp(func(cmd *cobra.Command, args []string, a *app) error {
			ctx := cmd.Context()
			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "Backend: %s\n", a.cfg.StoreBackend)

			patients, err := a.registry.List(ctx)
			if err != nil {
				fmt.Fprintf(w, "%s: %v\n", persistence.Patients, err)
			} else {
				fmt.Fprintf(w, "%s: %d\n", persistence.Patients, len(patients))
			}
			exams, err := a.intake.List(ctx)
			if err != nil {
				fmt.Fprintf(w, "%s: %v\n", persistence.Examinations, err)
			} else {
				fmt.Fprintf(w, "%s: %d\n", persistence.Examinations, len(exams))
			}
			return nil
		}),
	})

	return cmd
}
