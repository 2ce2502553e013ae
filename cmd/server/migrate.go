package main

import (
	"os"
	"strings"

	"github.com/samber/oops"
	"github.com/spf13/cobra"

	"github.com/hongminglow/accounts-be/internal/storage/postgres"
)

// NewMigrateCmd creates the migrate subcommand.
func NewMigrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Run database migrations",
		Long:  `Apply all pending migrations to the database named by DATABASE_URL, then exit.`,
		RunE:  runMigrate,
	}
}

func runMigrate(cmd *cobra.Command, _ []string) error {
	loadLocalEnv()

	databaseURL := strings.TrimSpace(os.Getenv("DATABASE_URL"))
	if databaseURL == "" {
		return oops.Code("CONFIG_INVALID").Errorf("DATABASE_URL environment variable is required")
	}

	ctx := cmd.Context()
	pool, err := postgres.Connect(ctx, databaseURL)
	if err != nil {
		return oops.Code("MIGRATION_FAILED").Wrapf(err, "connect")
	}
	defer pool.Close()

	if err := postgres.Migrate(ctx, pool); err != nil {
		return oops.Code("MIGRATION_FAILED").Wrapf(err, "apply migrations")
	}
	cmd.Println("migrations applied")
	return nil
}
