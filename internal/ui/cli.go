// Package ui implements the hallbook command line interface.
package ui

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/ndri/hallbook/internal/booking"
	"github.com/ndri/hallbook/internal/config"
	"github.com/ndri/hallbook/internal/db"
	"github.com/ndri/hallbook/internal/tui"
)

var (
	// Version is set at build time
	Version = "dev"
	// Commit is set at build time
	Commit = "none"
)

// App holds the CLI application state.
type App struct {
	repo    booking.Repository
	service *booking.Service
	config  *config.Config
	root    *cobra.Command
	noColor bool
}

// NewApp creates a new CLI application with the given repository and config.
// A nil repository is opened lazily from the configured database path, so
// commands that never touch the store (version, config) work without one.
func NewApp(repo booking.Repository, cfg *config.Config) *App {
	a := &App{repo: repo, config: cfg}
	if repo != nil {
		a.service = booking.NewService(repo)
	}

	a.root = &cobra.Command{
		Use:   "hallbook",
		Short: "Reserve the meeting hall",
		Long: `Hallbook manages reservations of a single shared meeting hall.

Bookings occupy half-open time windows on calendar dates; two bookings
may touch back to back but never overlap. Run without arguments for the
interactive day view.`,
		RunE: func(_ *cobra.Command, _ []string) error {
			if err := a.ensureService(); err != nil {
				return err
			}
			return tui.Run(a.service, a.config)
		},
	}

	a.root.PersistentFlags().BoolVar(&a.noColor, "no-color", false, "Disable colored output")
	a.root.PersistentPreRun = func(_ *cobra.Command, _ []string) {
		if a.noColor {
			DisableColor()
		}
	}

	a.root.AddCommand(a.versionCmd())
	a.root.AddCommand(a.configCmd())
	a.root.AddCommand(a.bookCmd())
	a.root.AddCommand(a.cancelCmd())
	a.root.AddCommand(a.listCmd())
	a.root.AddCommand(a.slotsCmd())
	a.root.AddCommand(a.reportCmd())

	return a
}

// ensureService opens the configured database on first use.
func (a *App) ensureService() error {
	if a.service != nil {
		return nil
	}

	dbPath := a.config.Storage.DBPath
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return fmt.Errorf("creating data directory: %w", err)
	}

	repo, err := db.New(dbPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}

	a.repo = repo
	a.service = booking.NewService(repo)
	return nil
}

func (a *App) versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number",
		Run: func(_ *cobra.Command, _ []string) {
			fmt.Printf("hallbook %s (commit: %s)\n", Version, Commit)
		},
	}
}

// Execute runs the CLI application.
func (a *App) Execute() error {
	return a.root.Execute()
}

// Close releases the repository if one was opened.
func (a *App) Close() error {
	if a.repo == nil {
		return nil
	}
	return a.repo.Close()
}
