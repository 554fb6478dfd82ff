// Package testdb provides an in-memory database for package tests, migrated
// with the full model set so cross-package queries (joins over players,
// teams, events) behave like they do against the real schema.
package testdb

import (
	"fmt"
	"strings"
	"testing"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/apogee-dev/firewallz/internal/auth"
	"github.com/apogee-dev/firewallz/internal/college"
	"github.com/apogee-dev/firewallz/internal/payment"
	"github.com/apogee-dev/firewallz/internal/player"
	"github.com/apogee-dev/firewallz/internal/sport"
	"github.com/apogee-dev/firewallz/internal/team"
)

// Open returns a migrated in-memory database scoped to the calling test.
// Each test gets its own database; the shared cache keeps it alive across
// the connection pool for the test's duration.
func Open(t *testing.T) *gorm.DB {
	t.Helper()

	name := strings.ReplaceAll(t.Name(), "/", "_")
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", name)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open test database: %v", err)
	}

	err = db.AutoMigrate(
		&auth.Account{},
		&college.College{}, &college.Group{}, &college.GroupPlayer{},
		&sport.Sport{}, &sport.Event{},
		&player.Player{},
		&team.Team{}, &team.TeamPlayer{},
		&payment.Transaction{}, &payment.BasePayment{}, &payment.SportPayment{},
	)
	if err != nil {
		t.Fatalf("migrate test database: %v", err)
	}
	return db
}
