// college/model.go
package college

import (
	"time"

	"github.com/apogee-dev/firewallz/internal/models"
	"github.com/google/uuid"
)

// College represents a participating college.
//
// RepresentativeID is a weak reference: deleting the player nulls it out,
// it never cascades into the college row.
type College struct {
	models.Base
	Name             string     `json:"name" gorm:"size:100;uniqueIndex;not null"`
	Address          string     `json:"address" gorm:"size:200"`
	City             string     `json:"city" gorm:"size:50"`
	State            string     `json:"state" gorm:"size:50"`
	RepresentativeID *uuid.UUID `json:"representative_id" gorm:"type:uuid"`
	PcrNotes         string     `json:"pcr_notes"`
	LetterCode       *string    `json:"letter_code" gorm:"size:4;uniqueIndex"`
	IsCaptainsLocked bool       `json:"is_captains_locked" gorm:"default:false"`
	IsFormVisible    bool       `json:"is_form_visible" gorm:"default:false"`
}

// Group is an admin-curated set of players within one college, e.g. for
// batched PCr approval. MaxSize of zero means unlimited.
type Group struct {
	models.Base
	Name        string    `json:"name" gorm:"size:100;uniqueIndex;not null"`
	Description string    `json:"description"`
	CollegeID   uuid.UUID `json:"college_id" gorm:"type:uuid;not null;index"`
	College     College   `json:"college"`
	MaxSize     int       `json:"max_size" gorm:"default:0"`
	IsLocked    bool      `json:"is_locked" gorm:"default:false"`
}

// GroupPlayer links a player into a group. Plain identifier columns keep the
// college package free of a dependency on the player package.
type GroupPlayer struct {
	GroupID   uuid.UUID `json:"group_id" gorm:"type:uuid;primaryKey"`
	PlayerID  uuid.UUID `json:"player_id" gorm:"type:uuid;primaryKey"`
	CreatedAt time.Time `json:"created_at"`
}

type CreateCollegeRequest struct {
	Name       string  `json:"name" binding:"required,max=100"`
	Address    string  `json:"address" binding:"max=200"`
	City       string  `json:"city" binding:"max=50"`
	State      string  `json:"state" binding:"max=50"`
	LetterCode *string `json:"letter_code" binding:"omitempty,min=1,max=4"`
	PcrNotes   string  `json:"pcr_notes"`
}

type SetRepresentativeRequest struct {
	PlayerID uuid.UUID `json:"player_id" binding:"required"`
}

type CreateGroupRequest struct {
	Name        string    `json:"name" binding:"required,max=100"`
	Description string    `json:"description"`
	CollegeID   uuid.UUID `json:"college_id" binding:"required"`
	MaxSize     int       `json:"max_size" binding:"gte=0"`
}

type AddGroupPlayerRequest struct {
	PlayerID uuid.UUID `json:"player_id" binding:"required"`
}
