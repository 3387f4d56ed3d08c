package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/m04kA/SMC-SchedulingService/internal/config"
	"github.com/m04kA/SMC-SchedulingService/migrations"
	"github.com/m04kA/SMC-SchedulingService/pkg/migrator"
)

func migrateCmd(configPath *string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Database migration commands",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "up",
		Short: "Apply pending migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			m, closeDB, err := newMigrator(*configPath)
			if err != nil {
				return err
			}
			defer closeDB()

			applied, err := m.Up(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Applied %d migration(s)\n", applied)
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "status",
		Short: "Show applied and pending migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			m, closeDB, err := newMigrator(*configPath)
			if err != nil {
				return err
			}
			defer closeDB()

			statuses, err := m.Status(cmd.Context())
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%-8s %-30s %s\n", "VERSION", "NAME", "APPLIED AT")
			for _, s := range statuses {
				appliedAt := "pending"
				if s.Applied && s.AppliedAt != nil {
					appliedAt = s.AppliedAt.Format("2006-01-02 15:04:05")
				}
				fmt.Fprintf(out, "%-8d %-30s %s\n", s.Version, s.Name, appliedAt)
			}
			return nil
		},
	})

	return cmd
}

func newMigrator(configPath string) (*migrator.Migrator, func(), error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, nil, err
	}

	db, err := openDB(cfg.Database)
	if err != nil {
		return nil, nil, err
	}

	return migrator.New(db, migrations.FS), func() { _ = db.Close() }, nil
}
