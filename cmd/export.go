package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/fieldtally/observer-api/internal/engine"
	"github.com/fieldtally/observer-api/internal/export"
	"github.com/fieldtally/observer-api/internal/models"
	sessionsService "github.com/fieldtally/observer-api/internal/services/sessions"
	"github.com/fieldtally/observer-api/pkg/config"
)

var exportOutput string

// exportCmd represents the export command
var exportCmd = &cobra.Command{
	Use:   "export <saved-session-uuid>",
	Short: "Export a saved session's annotations as CSV",
	Long: `Export the annotation list of a saved session as CSV.

The session is loaded from the configured database, its display
fields are re-derived, and the ordered annotation list is written
to a file (or stdout with --output -).

Example:
  observer-api export 2f1c... --output annotations.csv
  observer-api export 2f1c... --output -`,
	Args: cobra.ExactArgs(1),
	RunE: runExport,
}

func init() {
	rootCmd.AddCommand(exportCmd)
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "output file (default derived from session name, - for stdout)")
}

func runExport(cmd *cobra.Command, args []string) error {
	cfg, err := config.GetConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	db, err := openDatabase()
	if err != nil {
		return err
	}
	defer func() { _ = db.Close() }()

	if err := db.AutoMigrate(models.AllModels()...); err != nil {
		return fmt.Errorf("failed to auto-migrate database: %w", err)
	}

	service := sessionsService.NewService(sessionsService.NewRepository(db.DB))
	snap, err := service.LoadSnapshot(context.Background(), args[0])
	if err != nil {
		return fmt.Errorf("failed to load saved session %s: %w", args[0], err)
	}

	// Rebuild the session so cached display fields come out populated
	session := engine.NewSession(snap.Name, engine.Options{})
	if err := session.Restore(snap); err != nil {
		return fmt.Errorf("failed to restore session: %w", err)
	}

	delimiter := cfg.Export.Delimiter
	if delimiter == "" {
		delimiter = ","
	}

	if exportOutput == "-" {
		return export.WriteCSV(cmd.OutOrStdout(), session.Annotations(), delimiter)
	}

	path := exportOutput
	if path == "" {
		path = export.Filename(session.Name)
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer func() { _ = file.Close() }()

	if err := export.WriteCSV(file, session.Annotations(), delimiter); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Exported %d annotations to %s\n", len(session.Annotations()), path)
	return nil
}
