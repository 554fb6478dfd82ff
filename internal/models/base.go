// internal/models/base.go
package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Base is embedded by every entity. Primary keys are random UUIDs so row
// identifiers cannot be guessed. Rows are never hard-deleted: is_deleted
// flips and default queries exclude the row.
type Base struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	IsDeleted bool      `json:"is_deleted" gorm:"default:false;index"`
}

func (b *Base) BeforeCreate(tx *gorm.DB) error {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	return nil
}

// Active restricts a query to rows that have not been soft-deleted. This is
// the default view for all reads and writes.
func Active(db *gorm.DB) *gorm.DB {
	return db.Where("is_deleted = ?", false)
}

// All returns the unrestricted view, including soft-deleted rows. Used by
// auditing and integrity re-checks such as captain lookup.
func All(db *gorm.DB) *gorm.DB {
	return db
}
