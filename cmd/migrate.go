package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/fieldtally/observer-api/internal/database"
	"github.com/fieldtally/observer-api/internal/models"
	"github.com/fieldtally/observer-api/pkg/config"
)

// migrateCmd represents the migrate command
var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Run database migrations",
	Long: `Manage database migrations for the Observer API.

The schema is managed with GORM AutoMigrate, which creates missing
tables, columns and indexes. AutoMigrate is additive only: it never
drops columns or tables.

Available subcommands:
  up      - Apply the current schema to the database
  status  - Show which tables exist`,
}

// migrateUpCmd applies the schema
var migrateUpCmd = &cobra.Command{
	Use:   "up",
	Short: "Apply the current schema",
	Long: `Apply all pending database migrations.

This runs GORM AutoMigrate for every registered model, creating
missing tables, columns and indexes.`,
	RunE: runMigrateUp,
}

// migrateStatusCmd shows which tables exist
var migrateStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show migration status",
	Long: `Display the current status of the database schema.

This command shows each registered model and whether its table
exists in the configured database.`,
	RunE: runMigrateStatus,
}

func init() {
	rootCmd.AddCommand(migrateCmd)
	migrateCmd.AddCommand(migrateUpCmd)
	migrateCmd.AddCommand(migrateStatusCmd)

	migrateUpCmd.Flags().Bool("dry-run", false, "list what would be migrated without making changes")
}

func openDatabase() (*database.DB, error) {
	cfg, err := config.GetConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if cfg.Database.Path == "" {
		return nil, fmt.Errorf("no database path configured")
	}
	return database.Initialize(cfg.Database)
}

func runMigrateUp(cmd *cobra.Command, args []string) error {
	dryRun, _ := cmd.Flags().GetBool("dry-run")

	if dryRun {
		fmt.Fprintln(cmd.OutOrStdout(), "Dry run mode - no changes will be made")
		for _, model := range models.AllModels() {
			fmt.Fprintf(cmd.OutOrStdout(), "  would migrate %T\n", model)
		}
		return nil
	}

	db, err := openDatabase()
	if err != nil {
		return err
	}
	defer func() { _ = db.Close() }()

	if err := db.AutoMigrate(models.AllModels()...); err != nil {
		return fmt.Errorf("migration failed: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Migrated %d models\n", len(models.AllModels()))
	return nil
}

func runMigrateStatus(cmd *cobra.Command, args []string) error {
	db, err := openDatabase()
	if err != nil {
		return err
	}
	defer func() { _ = db.Close() }()

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, "Database Migration Status")
	fmt.Fprintln(out, strings.Repeat("=", 40))

	migrator := db.Migrator()
	for _, model := range models.AllModels() {
		state := "missing"
		if migrator.HasTable(model) {
			state = "present"
		}
		fmt.Fprintf(out, "  %-30T %s\n", model, state)
	}

	return nil
}
