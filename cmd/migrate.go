package cmd

import (
	"fmt"

	"github.com/frahmantamala/employee-directory/db"
	"github.com/pressly/goose/v3"
	"github.com/spf13/cobra"
)

const migrationTable = "schema_migrations"

var (
	migrateCmd = &cobra.Command{
		RunE:  runMigration,
		Use:   "migrate",
		Short: "Apply the departments and employees schema migrations",
		Long: `Apply the SQL migrations embedded from db/migrations.
Use --rollback to revert the latest version and --status to list what is applied.`,
	}
	migrateRollback bool
	migrateStatus   bool
	migrateDir      string
)

func init() {
	migrateCmd.Flags().BoolVarP(&migrateRollback, "rollback", "r", false, "roll back the latest applied migration")
	migrateCmd.Flags().BoolVarP(&migrateStatus, "status", "s", false, "print the status of every migration")
	migrateCmd.PersistentFlags().StringVarP(&migrateDir, "dir", "d", "", "read migrations from this directory instead of the embedded ones")
	migrateCmd.MarkFlagsMutuallyExclusive("rollback", "status")
}

// migrationCommand maps the flags onto a goose command name.
func migrationCommand(rollback, status bool) string {
	switch {
	case rollback:
		return "down"
	case status:
		return "status"
	default:
		return "up"
	}
}

func runMigration(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(".")
	if err != nil {
		return err
	}

	sqlDB, err := goose.OpenDBWithDriver("pgx", cfg.Database.GetDSN())
	if err != nil {
		return fmt.Errorf("goose: open database: %w", err)
	}
	defer sqlDB.Close()

	goose.SetTableName(migrationTable)

	dir := migrateDir
	if dir == "" {
		goose.SetBaseFS(db.Migrations)
		dir = db.MigrationsDir
	}

	command := migrationCommand(migrateRollback, migrateStatus)
	if err := goose.RunContext(cmd.Context(), command, sqlDB, dir); err != nil {
		return fmt.Errorf("goose %s: %w", command, err)
	}
	return nil
}
