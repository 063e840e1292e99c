package service

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/castleclothing/storefront/internal/models"
	"github.com/castleclothing/storefront/internal/repo"
	pkg_hash "github.com/castleclothing/storefront/pkg/hash"
	"github.com/castleclothing/storefront/pkg/logging"
)

const (
	AdminUsername        = "admin"
	DefaultAdminPassword = "admin123"
)

type AuthService struct {
	Repo          *repo.GormRepo
	AdminPassword string
}

// Login checks username and password against the credential store. Nothing
// is issued on success.
func (s *AuthService) Login(ctx context.Context, username, password string) error {
	l := logging.FromContext(ctx).With("svc", "auth.login", "username", username)

	if username == "" || password == "" {
		return fmt.Errorf("%w: username and password required", ErrValidation)
	}

	user, err := s.Repo.FindUser(ctx, username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%w: user %q", ErrNotFound, username)
		}
		return fmt.Errorf("find user: %w", err)
	}

	ok, err := pkg_hash.CheckPassword(user.PasswordHash, password)
	if err != nil {
		l.Error("login_error", "reason", "stored hash unreadable", "error", err)
		return fmt.Errorf("check password: %w", err)
	}
	if !ok {
		return ErrInvalidCredential
	}
	return nil
}

// SeedAdmin creates the admin account when it does not exist yet and reports
// whether it did. The existence check and the insert are separate statements,
// so two processes booting at once can both insert unless usuarios.username
// carries a unique index.
func (s *AuthService) SeedAdmin(ctx context.Context) (bool, error) {
	exists, err := s.Repo.UserExists(ctx, AdminUsername)
	if err != nil {
		return false, fmt.Errorf("check admin: %w", err)
	}
	if exists {
		return false, nil
	}

	password := s.AdminPassword
	if password == "" {
		password = DefaultAdminPassword
	}
	pwHash, err := pkg_hash.HashPassword(password)
	if err != nil {
		return false, fmt.Errorf("hash admin password: %w", err)
	}

	if err := s.Repo.CreateUser(ctx, &models.User{Username: AdminUsername, PasswordHash: pwHash}); err != nil {
		return false, fmt.Errorf("create admin: %w", err)
	}
	return true, nil
}

// Bootstrap runs SeedAdmin and only logs the outcome. Startup must go on even
// when the store is unavailable.
func (s *AuthService) Bootstrap(ctx context.Context) {
	l := logging.FromContext(ctx).With("svc", "auth.bootstrap")

	created, err := s.SeedAdmin(ctx)
	switch {
	case err != nil:
		l.Error("seed_admin_failed", "error", err)
	case created:
		l.Info("seed_admin_created", "username", AdminUsername)
	default:
		l.Info("seed_admin_skipped", "reason", "already exists")
	}
}
