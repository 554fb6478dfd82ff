package player

import (
	"github.com/apogee-dev/firewallz/internal/models"
	"github.com/apogee-dev/firewallz/pkg/apperrors"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CountEvents returns the total number of events a player is registered for
// across all their team-player rows. One aggregate query over the join
// table, not a per-row loop.
func CountEvents(db *gorm.DB, playerID uuid.UUID) (int64, error) {
	var count int64
	err := db.Table("team_player_events").
		Joins("JOIN team_players ON team_players.id = team_player_events.team_player_id").
		Where("team_players.player_id = ? AND team_players.is_deleted = ?", playerID, false).
		Count(&count).Error
	return count, err
}

// Validate runs the player invariants against the candidate state. Runs on
// every save: flipping a flag on an already-valid row can re-violate the
// verification ladder.
func Validate(db *gorm.DB, p *Player, maxEvents int) error {
	if !models.ValidPlayerGender(p.Gender) {
		return apperrors.Validation("player gender must be Male or Female")
	}
	if p.Status != models.PlayerStatusConfirmed && p.Status != models.PlayerStatusUnconfirmed {
		return apperrors.Validation("invalid player status %q", p.Status)
	}
	if p.PcrDiscount < 0 || p.PcrDiscount > 500 {
		return apperrors.Validation("pcr discount must be between 0 and 500")
	}
	if p.Status == models.PlayerStatusUnconfirmed && (p.VerifiedByControls || p.VerifiedByFirewallz) {
		return apperrors.Validation("cannot be verified by controls or firewallz without being confirmed")
	}
	if p.VerifiedByControls && !p.VerifiedByFirewallz {
		return apperrors.Validation("cannot be verified by controls without being verified by firewallz")
	}

	count, err := CountEvents(db, p.ID)
	if err != nil {
		return err
	}
	if count > int64(maxEvents) {
		return apperrors.Validation("cannot register for more than %d events", maxEvents)
	}
	return nil
}
