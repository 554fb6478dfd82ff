package registration

import (
	"github.com/apogee-dev/firewallz/internal/models"
	"github.com/apogee-dev/firewallz/internal/player"
	"github.com/apogee-dev/firewallz/internal/sport"
	"github.com/apogee-dev/firewallz/pkg/apperrors"
	"gorm.io/gorm"
)

// CheckEligibility decides whether p may take up ev within sp. It runs the
// five checks in a fixed order against committed state only and performs no
// mutation; the first failed check aborts with the specific reason. Callers
// run it inside the registration transaction so the decision and the write
// see the same snapshot.
func CheckEligibility(db *gorm.DB, p *player.Player, sp *sport.Sport, ev *sport.Event, maxEvents int) error {
	// 1. Duplicate: one registration per sport per player.
	var dup int64
	err := db.Table("team_player_events").
		Joins("JOIN team_players ON team_players.id = team_player_events.team_player_id").
		Joins("JOIN events ON events.id = team_player_events.event_id").
		Where("team_players.player_id = ? AND team_players.is_deleted = ? AND events.sport_id = ?",
			p.ID, false, sp.ID).
		Count(&dup).Error
	if err != nil {
		return err
	}
	if dup > 0 {
		return apperrors.Validation("you are already enrolled in this sport")
	}

	// 2. Role.
	if p.IsCoach {
		return apperrors.Validation("coaches cannot register for sports as players")
	}

	// 3. Gender.
	if sp.Gender != models.GenderMixed && sp.Gender != p.Gender {
		return apperrors.Validation("you cannot register for a sport with a different gender category")
	}

	// 4. Capacity: seats for this event are counted per college. The count
	// takes no row lock; at read-committed two concurrent registrations can
	// both see the last free seat.
	var taken int64
	err = db.Table("team_player_events").
		Joins("JOIN team_players ON team_players.id = team_player_events.team_player_id").
		Joins("JOIN players ON players.id = team_players.player_id").
		Where("team_player_events.event_id = ? AND team_players.is_deleted = ? AND players.college_id = ?",
			ev.ID, false, p.CollegeID).
		Count(&taken).Error
	if err != nil {
		return err
	}
	if taken >= int64(sp.MaxPlayers) {
		return apperrors.Validation("your college has already fulfilled the required number of participants for this sport")
	}

	// 5. Aggregate cap across all of the player's team-player rows.
	total, err := player.CountEvents(db, p.ID)
	if err != nil {
		return err
	}
	if total+1 > int64(maxEvents) {
		return apperrors.Validation("cannot register for more than %d events", maxEvents)
	}

	return nil
}
