// Package testutil provides an in-memory store for package tests.
package testutil

import (
	"testing"

	models "fleet-waitlist/backend/internal/models/gorm"

	"github.com/jmoiron/sqlx"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewTestDB opens a migrated in-memory SQLite database and returns it through both GORM and
// sqlx. The pool is limited to one connection so every query sees the same database.
func NewTestDB(t *testing.T) (*gorm.DB, *sqlx.DB) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("Failed to get sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	if err := db.AutoMigrate(models.All()...); err != nil {
		t.Fatalf("Failed to migrate: %v", err)
	}

	return db, sqlx.NewDb(sqlDB, "sqlite3")
}

// Seeder inserts fixtures and fails the test on error.
type Seeder struct {
	t  *testing.T
	db *gorm.DB
}

func NewSeeder(t *testing.T, db *gorm.DB) *Seeder {
	return &Seeder{t: t, db: db}
}

func (s *Seeder) create(value any) {
	s.t.Helper()
	if err := s.db.Create(value).Error; err != nil {
		s.t.Fatalf("Failed to seed %T: %v", value, err)
	}
}

func (s *Seeder) Character(id int64, name string) *Seeder {
	s.t.Helper()
	s.create(&models.Character{ID: id, Name: name, CorporationID: 98000001})
	return s
}

func (s *Seeder) Alt(accountID, altID int64) *Seeder {
	s.t.Helper()
	s.create(&models.AltCharacter{AccountID: accountID, AltID: altID})
	return s
}

func (s *Seeder) Admin(characterID int64, role string) *Seeder {
	s.t.Helper()
	s.create(&models.Admin{CharacterID: characterID, Role: role})
	return s
}

// Badge assigns the named badge, creating it on first use.
func (s *Seeder) Badge(characterID int64, name string) *Seeder {
	s.t.Helper()
	var badge models.Badge
	if err := s.db.Where(models.Badge{Name: name}).FirstOrCreate(&badge).Error; err != nil {
		s.t.Fatalf("Failed to seed badge %q: %v", name, err)
	}
	s.create(&models.BadgeAssignment{CharacterID: characterID, BadgeID: badge.ID})
	return s
}

func (s *Seeder) Session(characterID, hull, firstSeen, lastSeen int64) *Seeder {
	s.t.Helper()
	s.create(&models.FleetActivity{CharacterID: characterID, Hull: hull, FirstSeen: firstSeen, LastSeen: lastSeen})
	return s
}
