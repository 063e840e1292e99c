package main

import (
	"context"
	"fmt"
	"io"

	"gorm.io/gorm"

	"github.com/castleclothing/storefront/internal/config"
	"github.com/castleclothing/storefront/internal/events"
	"github.com/castleclothing/storefront/internal/imagehost"
	"github.com/castleclothing/storefront/internal/service"
	pkgdb "github.com/castleclothing/storefront/pkg/db"
	"github.com/castleclothing/storefront/pkg/logging"
)

func runSeedAdmin(parent context.Context, out io.Writer, envFile string) error {
	cfg, logger := setup(envFile)
	ctx := logging.IntoContext(parent, logger)

	db, err := openStore(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer pkgdb.Close(db)

	return seedAdmin(ctx, newSeedApp(cfg, db).auth, out)
}

// newSeedApp wires only what seeding needs. Uploads fail and no events are
// published.
func newSeedApp(cfg *config.Config, db *gorm.DB) *app {
	return newApp(cfg, db, imagehost.Unavailable{}, newMailer(cfg.Mail), events.Noop{})
}

func seedAdmin(ctx context.Context, auth *service.AuthService, out io.Writer) error {
	created, err := auth.SeedAdmin(ctx)
	if err != nil {
		return err
	}
	if created {
		fmt.Fprintf(out, "admin account %q created\n", service.AdminUsername)
		return nil
	}
	fmt.Fprintf(out, "admin account %q already exists\n", service.AdminUsername)
	return nil
}
