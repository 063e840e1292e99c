package main

import (
	"context"
	"fmt"
	"log/slog"

	"gorm.io/gorm"

	"github.com/castleclothing/storefront/internal/config"
	"github.com/castleclothing/storefront/internal/events"
	"github.com/castleclothing/storefront/internal/httpserver"
	"github.com/castleclothing/storefront/internal/imagehost"
	"github.com/castleclothing/storefront/internal/mailer"
	"github.com/castleclothing/storefront/internal/models"
	"github.com/castleclothing/storefront/internal/repo"
	"github.com/castleclothing/storefront/internal/service"
	pkgdb "github.com/castleclothing/storefront/pkg/db"
	"github.com/castleclothing/storefront/pkg/logging"
)

func setup(envFile string) (*config.Config, *slog.Logger) {
	config.LoadDotEnv(envFile)
	cfg := config.Load()

	logger := logging.New(cfg.LogLevel).With("service", "storefront")
	slog.SetDefault(logger)

	if missing := cfg.Missing(); len(missing) > 0 {
		logger.Warn("config_incomplete", "missing", missing)
	}
	return cfg, logger
}

// openStore connects the pool. An unreachable server is logged, not fatal;
// queries fail until it comes up.
func openStore(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*gorm.DB, error) {
	db, err := pkgdb.Open(cfg.DB)
	if err != nil {
		return nil, fmt.Errorf("open %s store: %w", cfg.DB.Driver, err)
	}

	if err := pkgdb.Ping(ctx, db); err != nil {
		logger.Error("db_ping_failed", "driver", cfg.DB.Driver, "host", cfg.DB.Host, "error", err)
	} else {
		logger.Info("db_connected", "driver", cfg.DB.Driver, "host", cfg.DB.Host, "database", cfg.DB.Name)
	}

	if cfg.AutoMigrate {
		if err := db.WithContext(ctx).AutoMigrate(models.All()...); err != nil {
			logger.Error("db_migrate_failed", "error", err)
		}
	}
	return db, nil
}

func newImageHost(cfg config.Cloudinary, logger *slog.Logger) imagehost.Uploader {
	host, err := imagehost.NewCloudinary(cfg.CloudName, cfg.APIKey, cfg.APISecret, cfg.Folder)
	if err != nil {
		logger.Error("image_host_unavailable", "error", err)
		return imagehost.Unavailable{Err: err}
	}
	return host
}

func newMailer(cfg config.Mail) mailer.Mailer {
	if cfg.Provider == config.MailSendGrid {
		return mailer.NewSendGrid(cfg.SendGridAPIKey, cfg.FromName, cfg.From)
	}
	return mailer.NewSMTP(mailer.SMTPConfig{
		Host:       cfg.Host,
		Port:       cfg.Port,
		Username:   cfg.Username,
		Password:   cfg.Password,
		Auth:       cfg.Auth,
		Encryption: cfg.Encryption,
		NoTLSCheck: cfg.SkipTLSVerify,
		FromName:   cfg.FromName,
		From:       cfg.From,
	})
}

type app struct {
	deps      *httpserver.Deps
	auth      *service.AuthService
	publisher events.Publisher
}

func newApp(cfg *config.Config, db *gorm.DB, images imagehost.Uploader, mail mailer.Mailer, publisher events.Publisher) *app {
	r := &repo.GormRepo{DB: db}

	authSvc := &service.AuthService{Repo: r, AdminPassword: cfg.AdminPassword}
	catalogSvc := &service.CatalogService{Repo: r, Images: images, Events: publisher}
	receiptSvc := &service.ReceiptService{Mailer: mail}

	return &app{
		auth:      authSvc,
		publisher: publisher,
		deps: &httpserver.Deps{
			AuthHandler:    &httpserver.AuthHTTP{Svc: authSvc},
			CatalogHandler: &httpserver.CatalogHTTP{Svc: catalogSvc},
			ReceiptHandler: &httpserver.ReceiptHTTP{Svc: receiptSvc},
		},
	}
}
