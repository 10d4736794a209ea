package schema

import (
	"fmt"
	"time"

	"github.com/jinzhu/gorm"
)

// Migration is one row of the migrations ledger. The ledger is append-only:
// a name is recorded once when its migration is applied and never rewritten.
type Migration struct {
	ID         int64     `gorm:"primary_key"`
	Name       string    `gorm:"type:varchar(255);unique;not null"`
	ExecutedAt time.Time `sql:"default:now()"`
}

// NamedMigration pairs a unique migration name with the statement(s) it runs.
type NamedMigration struct {
	Name string
	Run  func(db *gorm.DB) error
}

// Migrations lists every schema migration in the order it must be applied.
var Migrations = []NamedMigration{
	{
		Name: "add_has_pets_column",
		Run: func(db *gorm.DB) error {
			return db.Exec(
				`ALTER TABLE help_requests ADD COLUMN IF NOT EXISTS has_pets BOOLEAN NOT NULL DEFAULT FALSE`,
			).Error
		},
	},
}

// RunMigrations applies every migration whose name is not yet recorded in
// the ledger, recording each one as it completes.
func RunMigrations(db *gorm.DB) error {
	if err := db.AutoMigrate(&Migration{}).Error; err != nil {
		return fmt.Errorf("create migrations ledger: %s", err)
	}

	for _, m := range Migrations {
		var count int
		if err := db.Model(Migration{}).Where("name = ?", m.Name).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			continue
		}

		if err := m.Run(db); err != nil {
			return fmt.Errorf("migration %s: %s", m.Name, err)
		}

		if err := db.Create(&Migration{Name: m.Name}).Error; err != nil {
			return fmt.Errorf("record migration %s: %s", m.Name, err)
		}
	}

	return nil
}
