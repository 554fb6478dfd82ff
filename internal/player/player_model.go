// player/model.go
package player

import (
	"github.com/apogee-dev/firewallz/internal/college"
	"github.com/apogee-dev/firewallz/internal/models"
	"github.com/google/uuid"
)

// Player is a participant profile tied one-to-one to a login account.
// Coaches are players with IsCoach set; they never join teams.
type Player struct {
	models.Base
	AccountID           uuid.UUID       `json:"account_id" gorm:"type:uuid;uniqueIndex;not null"`
	Name                string          `json:"name" gorm:"not null"`
	Email               string          `json:"email" gorm:"uniqueIndex;not null"`
	PhoneNumber         string          `json:"phone_number" gorm:"size:10"`
	Gender              string          `json:"gender" gorm:"size:10;not null"`
	CollegeID           uuid.UUID       `json:"college_id" gorm:"type:uuid;not null;index"`
	College             college.College `json:"college"`
	Status              string          `json:"status" gorm:"default:'pcr_unconfirmed'"`
	IsCoach             bool            `json:"is_coach" gorm:"default:false"`
	SportsIfCoach       string          `json:"sports_if_coach"`
	VerifiedByFirewallz bool            `json:"verified_by_firewallz" gorm:"default:false"`
	VerifiedByControls  bool            `json:"verified_by_controls" gorm:"default:false"`
	IsOnspot            bool            `json:"is_onspot" gorm:"default:false"`
	PcrDiscount         int             `json:"pcr_discount" gorm:"default:0"`
}

type CreatePlayerRequest struct {
	Name          string    `json:"name" binding:"required"`
	Email         string    `json:"email" binding:"required,email"`
	PhoneNumber   string    `json:"phone_number" binding:"required,len=10,numeric"`
	Gender        string    `json:"gender" binding:"required,oneof=Male Female"`
	CollegeID     uuid.UUID `json:"college_id" binding:"required"`
	IsCoach       bool      `json:"is_coach"`
	SportsIfCoach string    `json:"sports_if_coach"`
}
