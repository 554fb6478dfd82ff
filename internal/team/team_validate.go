package team

import (
	"errors"

	"github.com/apogee-dev/firewallz/internal/models"
	"github.com/apogee-dev/firewallz/internal/player"
	"github.com/apogee-dev/firewallz/internal/sport"
	"github.com/apogee-dev/firewallz/pkg/apperrors"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Validate runs the team invariants against the candidate state.
func Validate(db *gorm.DB, t *Team) error {
	if t.CaptainID == nil {
		return nil
	}

	var c struct{ RepresentativeID *uuid.UUID }
	err := db.Table("colleges").
		Select("representative_id").
		Where("id = ? AND is_deleted = ?", t.CollegeID, false).
		Take(&c).Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	if c.RepresentativeID != nil && *c.RepresentativeID == *t.CaptainID {
		return apperrors.Validation("college representative cannot be a captain")
	}

	// A player captains at most one team; the unique index on captain_id is
	// the backstop, this check is the typed failure.
	var otherTeams int64
	if err := db.Table("teams").
		Where("captain_id = ? AND is_deleted = ? AND id <> ?", *t.CaptainID, false, t.ID).
		Count(&otherTeams).Error; err != nil {
		return err
	}
	if otherTeams > 0 {
		return apperrors.Validation("player already captains another team")
	}

	// Captain lookup deliberately uses the all-rows view: a soft-deleted
	// membership still pins the historical captain record.
	var tp TeamPlayer
	err = models.All(db).
		Where("player_id = ? AND team_id = ?", *t.CaptainID, t.ID).
		First(&tp).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apperrors.Validation("team player for captain doesn't exist")
	}
	if err != nil {
		return err
	}
	return nil
}

// ValidateTeamPlayer runs the team-player invariants against the candidate
// row and its candidate event set. The events slice is the post-mutation
// set, including any event being attached in the same operation, so checks
// see relations not yet flushed to storage.
func ValidateTeamPlayer(db *gorm.DB, tp *TeamPlayer, events []sport.Event, maxEvents int) error {
	var p player.Player
	err := models.Active(db).First(&p, "id = ?", tp.PlayerID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apperrors.NotFound("Player")
	}
	if err != nil {
		return err
	}

	var t Team
	err = models.Active(db).First(&t, "id = ?", tp.TeamID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apperrors.NotFound("Team")
	}
	if err != nil {
		return err
	}

	if p.CollegeID != t.CollegeID {
		return apperrors.Validation("selected team's college does not match player's college")
	}
	if p.IsCoach {
		return apperrors.Validation("coaches cannot join teams")
	}

	for _, ev := range events {
		var sp sport.Sport
		if ev.Sport.ID == ev.SportID && ev.Sport.Gender != "" {
			sp = ev.Sport
		} else if err := models.Active(db).First(&sp, "id = ?", ev.SportID).Error; err != nil {
			return err
		}
		if sp.Gender != models.GenderMixed && sp.Gender != p.Gender {
			return apperrors.Validation("team player's gender does not match the registered event type")
		}
	}

	isCaptain := t.CaptainID != nil && *t.CaptainID == tp.PlayerID
	if isCaptain {
		var repCount int64
		if err := db.Table("colleges").
			Where("representative_id = ? AND is_deleted = ?", tp.PlayerID, false).
			Count(&repCount).Error; err != nil {
			return err
		}
		if repCount > 0 {
			return apperrors.Validation("college representative cannot be a captain")
		}
		if !tp.IsPlaying {
			return apperrors.Validation("captain must be playing in the team")
		}
	}

	if tp.Status == models.TeamPlayerApproved && !tp.IsPlaying {
		return apperrors.Validation("cannot approve a player who is not playing in the team")
	}
	if tp.Status != models.TeamPlayerApproved && tp.Status != models.TeamPlayerUnapproved {
		return apperrors.Validation("invalid team player status %q", tp.Status)
	}

	// Aggregate cap: events on the player's other rows (committed state)
	// plus this row's candidate set.
	var otherEvents int64
	err = db.Table("team_player_events").
		Joins("JOIN team_players ON team_players.id = team_player_events.team_player_id").
		Where("team_players.player_id = ? AND team_players.is_deleted = ? AND team_players.id <> ?",
			tp.PlayerID, false, tp.ID).
		Count(&otherEvents).Error
	if err != nil {
		return err
	}
	if otherEvents+int64(len(events)) > int64(maxEvents) {
		return apperrors.Validation("cannot register for more than %d events", maxEvents)
	}
	return nil
}
