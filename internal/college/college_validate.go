package college

import (
	"errors"

	"github.com/apogee-dev/firewallz/pkg/apperrors"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// repRow is the subset of the players table the representative checks need.
// Queried by table name to keep this package below the player package.
type repRow struct {
	CollegeID uuid.UUID
	IsCoach   bool
}

// Validate runs the college invariants against the candidate state. Called
// before every save, not only on creation.
func Validate(db *gorm.DB, c *College) error {
	if c.Name == "" {
		return apperrors.Validation("college name is required")
	}
	if c.LetterCode != nil && len(*c.LetterCode) > 4 {
		return apperrors.Validation("letter code must be at most 4 characters")
	}
	if c.RepresentativeID == nil {
		return nil
	}

	var rep repRow
	err := db.Table("players").
		Select("college_id, is_coach").
		Where("id = ? AND is_deleted = ?", *c.RepresentativeID, false).
		Take(&rep).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apperrors.NotFound("Representative player")
	}
	if err != nil {
		return err
	}

	if rep.CollegeID != c.ID {
		return apperrors.Validation("representative must belong to the college")
	}
	if rep.IsCoach {
		return apperrors.Validation("the college representative cannot be a coach")
	}

	var captainCount int64
	if err := db.Table("teams").
		Where("captain_id = ? AND is_deleted = ?", *c.RepresentativeID, false).
		Count(&captainCount).Error; err != nil {
		return err
	}
	if captainCount > 0 {
		return apperrors.Validation("the college representative is already a captain")
	}
	return nil
}

// ValidateGroupMember checks that adding playerID to g is permitted: the
// group is open, has room, and the player belongs to the group's college.
func ValidateGroupMember(db *gorm.DB, g *Group, playerID uuid.UUID) error {
	if g.IsLocked {
		return apperrors.State("group %q is locked", g.Name)
	}

	if g.MaxSize > 0 {
		var members int64
		if err := db.Model(&GroupPlayer{}).Where("group_id = ?", g.ID).Count(&members).Error; err != nil {
			return err
		}
		if members >= int64(g.MaxSize) {
			return apperrors.Validation("group %q is full (max %d players)", g.Name, g.MaxSize)
		}
	}

	var member repRow
	err := db.Table("players").
		Select("college_id, is_coach").
		Where("id = ? AND is_deleted = ?", playerID, false).
		Take(&member).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apperrors.NotFound("Player")
	}
	if err != nil {
		return err
	}
	if member.CollegeID != g.CollegeID {
		return apperrors.Validation("player does not belong to the group's college")
	}
	return nil
}
