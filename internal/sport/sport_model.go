// sport/model.go
package sport

import (
	"github.com/apogee-dev/firewallz/internal/models"
	"github.com/google/uuid"
)

// Sport represents one sport category offered at the tournament. The same
// sport name can appear once per gender category, so (name, gender) is the
// natural key.
type Sport struct {
	models.Base
	Name         string `json:"name" gorm:"size:30;not null;uniqueIndex:idx_sports_name_gender"`
	Gender       string `json:"gender" gorm:"size:10;not null;uniqueIndex:idx_sports_name_gender"`
	IsActive     bool   `json:"is_active" gorm:"default:true"`
	RulebookLink string `json:"rulebook_link"`
	MinPlayers   int    `json:"min_players" gorm:"default:0"`
	MaxPlayers   int    `json:"max_players" gorm:"default:1"`
}

// Event is a competition within a sport (e.g. Athletics 200M and 400M).
// The name may be empty for sports with a single default event; it is unique
// within its sport either way.
type Event struct {
	models.Base
	Name           string    `json:"name" gorm:"size:30;uniqueIndex:idx_events_sport_name"`
	SportID        uuid.UUID `json:"sport_id" gorm:"type:uuid;not null;uniqueIndex:idx_events_sport_name;index"`
	Sport          Sport     `json:"sport"`
	IsTwoTeamEvent bool      `json:"is_two_team_event" gorm:"default:false"`
	IsPlayerwise   bool      `json:"is_playerwise" gorm:"default:false"`
}

type CreateSportRequest struct {
	Name         string `json:"name" binding:"required,max=30"`
	Gender       string `json:"gender" binding:"required,oneof=Male Female Mixed"`
	MinPlayers   int    `json:"min_players" binding:"gte=0"`
	MaxPlayers   int    `json:"max_players" binding:"required,gte=1,gtefield=MinPlayers"`
	RulebookLink string `json:"rulebook_link" binding:"omitempty,url"`
}

type CreateEventRequest struct {
	Name           string `json:"name" binding:"max=30"`
	IsTwoTeamEvent bool   `json:"is_two_team_event"`
	IsPlayerwise   bool   `json:"is_playerwise"`
}
