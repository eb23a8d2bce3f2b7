package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	"localconnect/internal/database"
	"localconnect/internal/database/repository"
	"localconnect/internal/directory"
	"localconnect/internal/submit"

	"golang.org/x/text/language"
)

// runValidation executes a non-TUI smoke check: migrate and seed a temporary
// database, derive a few listing views, and walk the submission state
// machine end to end.
func runValidation() error {
	log.SetOutput(io.Discard)

	dir, err := os.MkdirTemp("", "localconnect-validate-")
	if err != nil {
		return fmt.Errorf("create temp dir: %w", err)
	}
	defer os.RemoveAll(dir)

	ctx := context.Background()
	db, err := database.Open(filepath.Join(dir, "validate.db"))
	if err != nil {
		return fmt.Errorf("open db: %w", err)
	}
	defer db.Close()

	if err := database.RunMigrations(db); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}
	if err := database.Seed(ctx, db); err != nil {
		return fmt.Errorf("seed: %w", err)
	}

	providers, err := repository.NewProviderRepo(db).Snapshot(ctx)
	if err != nil {
		return fmt.Errorf("snapshot: %w", err)
	}
	if len(providers) == 0 {
		return fmt.Errorf("seeded roster is empty")
	}

	engine := directory.NewEngine(language.English)
	all := engine.DeriveView(providers, directory.Params{})
	if len(all) != len(providers) {
		return fmt.Errorf("identity query returned %d of %d providers", len(all), len(providers))
	}
	plumbers := engine.DeriveView(providers, directory.Params{Search: "plu"})
	if len(plumbers) == 0 {
		return fmt.Errorf("substring search found no plumbers in seed roster")
	}
	if locs := directory.Locations(providers); len(locs) == 0 {
		return fmt.Errorf("no distinct locations derived")
	}

	ctrl := &submit.Controller{}
	gen, ok := ctrl.Submit(submit.BookingRequest{
		ProviderID:    providers[0].ID,
		CustomerName:  "Validation Run",
		CustomerPhone: "000",
		Service:       "smoke check",
	})
	if !ok {
		return fmt.Errorf("valid booking rejected: %s", ctrl.Reason())
	}
	if !ctrl.Resolve(gen) {
		return fmt.Errorf("resolve did not apply")
	}
	if !ctrl.Finish(gen) {
		return fmt.Errorf("auto-close did not apply")
	}
	if ctrl.Resolve(gen) || ctrl.Finish(gen) {
		return fmt.Errorf("terminal controller accepted further transitions")
	}
	return nil
}
