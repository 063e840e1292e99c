// Package testdb opens an in-memory sqlite store with the storefront schema
// for package tests.
package testdb

import (
	"testing"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"

	"github.com/castleclothing/storefront/internal/models"
	pkgdb "github.com/castleclothing/storefront/pkg/db"
)

func Open(t *testing.T) *gorm.DB {
	t.Helper()

	// one connection: every new sqlite ":memory:" connection is an empty database
	db, err := pkgdb.OpenDialector(sqlite.Open(":memory:"), 1)
	if err != nil {
		t.Fatalf("failed to open in-memory db: %v", err)
	}
	if err := db.AutoMigrate(models.All()...); err != nil {
		t.Fatalf("failed to migrate tables: %v", err)
	}

	t.Cleanup(func() {
		_ = pkgdb.Close(db)
	})
	return db
}
