package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"localconnect/internal/config"
	"localconnect/internal/database"
	"localconnect/internal/database/repository"
	"localconnect/internal/tui"
)

func main() {
	root := &cobra.Command{
		Use:          "localconnect",
		Short:        "Browse and book trusted local service providers",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTUI()
		},
	}

	root.AddCommand(&cobra.Command{
		Use:   "validate",
		Short: "Run a headless end-to-end check against a throwaway database",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := runValidation(); err != nil {
				return err
			}
			fmt.Println("validation ok")
			return nil
		},
	})

	root.AddCommand(&cobra.Command{
		Use:   "config-path",
		Short: "Print the resolved config file location",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println(config.Path())
		},
	})

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func runTUI() error {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}

	if debug := os.Getenv("LOCALCONNECT_DEBUG"); debug != "" {
		f, err := tea.LogToFile(debug, "localconnect")
		if err != nil {
			return fmt.Errorf("debug log: %w", err)
		}
		defer f.Close()
	} else {
		// submissions are logged for diagnostics; without a debug file the
		// log must not bleed into the TUI
		log.SetOutput(io.Discard)
	}

	if err := os.MkdirAll(filepath.Dir(cfg.Database.Path), 0o755); err != nil {
		return fmt.Errorf("mkdir db dir: %w", err)
	}

	db, err := database.Open(cfg.Database.Path)
	if err != nil {
		return fmt.Errorf("open db: %w", err)
	}
	defer db.Close()

	if err := database.RunMigrations(db); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}
	if err := database.Seed(ctx, db); err != nil {
		return fmt.Errorf("seed roster: %w", err)
	}

	repos := tui.Repos{
		Providers: repository.NewProviderRepo(db),
		Reviews:   repository.NewReviewRepo(db),
	}

	p := tea.NewProgram(tui.New(ctx, cfg, repos), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run: %w", err)
	}
	return nil
}
