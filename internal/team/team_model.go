// team/model.go
package team

import (
	"github.com/apogee-dev/firewallz/internal/college"
	"github.com/apogee-dev/firewallz/internal/models"
	"github.com/apogee-dev/firewallz/internal/player"
	"github.com/apogee-dev/firewallz/internal/sport"
	"github.com/google/uuid"
)

// Team is the single roster a college fields for a sport; (sport, college)
// is the natural key. CaptainID is a weak reference and unique system-wide:
// a player captains at most one team.
type Team struct {
	models.Base
	TeamCode              string          `json:"team_code" gorm:"uniqueIndex;not null"`
	CollegeID             uuid.UUID       `json:"college_id" gorm:"type:uuid;not null;uniqueIndex:idx_teams_sport_college;index"`
	College               college.College `json:"college"`
	SportID               uuid.UUID       `json:"sport_id" gorm:"type:uuid;not null;uniqueIndex:idx_teams_sport_college;index"`
	Sport                 sport.Sport     `json:"sport"`
	CaptainID             *uuid.UUID      `json:"captain_id" gorm:"type:uuid;uniqueIndex"`
	IsLocked              bool            `json:"is_locked" gorm:"default:false"`
	IsVerifiedByFirewallz bool            `json:"is_verified_by_firewallz" gorm:"default:false"`
}

// TeamPlayer is one player's participation record within one team, carrying
// the events of that sport the player competes in. IsPlaying marks captain
// confirmation of the membership.
type TeamPlayer struct {
	models.Base
	PlayerID  uuid.UUID     `json:"player_id" gorm:"type:uuid;not null;uniqueIndex:idx_team_players_player_team;index"`
	Player    player.Player `json:"player"`
	TeamID    uuid.UUID     `json:"team_id" gorm:"type:uuid;not null;uniqueIndex:idx_team_players_player_team;index"`
	Team      Team          `json:"team"`
	Events    []sport.Event `json:"events" gorm:"many2many:team_player_events"`
	Status    string        `json:"status" gorm:"default:'pcr_unapproved'"`
	IsPlaying bool          `json:"is_playing" gorm:"default:false;index"`
}

// IsCaptain reports whether this row belongs to the team's captain.
// Requires Team to be loaded.
func (tp *TeamPlayer) IsCaptain() bool {
	return tp.Team.CaptainID != nil && *tp.Team.CaptainID == tp.PlayerID
}
