package team

import (
	"fmt"
	"strings"

	"github.com/apogee-dev/firewallz/internal/college"
	"github.com/apogee-dev/firewallz/internal/models"
	"github.com/apogee-dev/firewallz/internal/sport"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// TeamRepository defines the interface for team and team-player data operations
type TeamRepository interface {
	// GetOrCreateTeam resolves the college's team for a sport, creating it
	// when absent. Two identical concurrent calls converge on one row: the
	// (sport_id, college_id) unique index absorbs the losing insert and the
	// follow-up lookup resolves it.
	GetOrCreateTeam(c *college.College, sp *sport.Sport) (*Team, error)
	GetTeamByID(id uuid.UUID) (*Team, error)
	UpdateTeam(team *Team) error

	GetOrCreateTeamPlayer(candidate *TeamPlayer) (*TeamPlayer, error)
	GetTeamPlayerByID(id uuid.UUID) (*TeamPlayer, error)
	// GetTeamPlayerAny looks up a membership in the all-rows view, soft
	// deleted included; used for captain integrity checks.
	GetTeamPlayerAny(playerID, teamID uuid.UUID) (*TeamPlayer, error)
	ListTeamPlayers(teamID uuid.UUID) ([]TeamPlayer, error)
	UpdateTeamPlayer(tp *TeamPlayer, events []sport.Event, maxEvents int) error
	AppendEvent(tp *TeamPlayer, event *sport.Event) error

	// HasEventInSport reports whether the player already holds any event of
	// the given sport across their team-player rows (duplicate check).
	HasEventInSport(playerID, sportID uuid.UUID) (bool, error)
	// CountCollegeEventLinks counts registrations for an event restricted to
	// one college (capacity check).
	CountCollegeEventLinks(eventID, collegeID uuid.UUID) (int64, error)
	CountPlaying(teamID uuid.UUID) (int64, error)

	WithTransaction(txFunc func(TeamRepository) error) error
}

type teamRepository struct {
	db *gorm.DB
}

// NewTeamRepository creates a new instance of TeamRepository
func NewTeamRepository(db *gorm.DB) TeamRepository {
	return &teamRepository{db: db}
}

// teamCode builds the human-readable team identifier, e.g. "PLI-CRICKET".
func teamCode(c *college.College, sp *sport.Sport) string {
	prefix := strings.ToUpper(strings.ReplaceAll(c.Name, " ", ""))
	if len(prefix) > 8 {
		prefix = prefix[:8]
	}
	if c.LetterCode != nil && *c.LetterCode != "" {
		prefix = strings.ToUpper(*c.LetterCode)
	}
	return fmt.Sprintf("%s-%s-%s", prefix, strings.ToUpper(strings.ReplaceAll(sp.Name, " ", "")), strings.ToUpper(sp.Gender))
}

func (r *teamRepository) GetOrCreateTeam(c *college.College, sp *sport.Sport) (*Team, error) {
	candidate := Team{
		TeamCode:  teamCode(c, sp),
		CollegeID: c.ID,
		SportID:   sp.ID,
	}
	if err := r.db.Clauses(clause.OnConflict{DoNothing: true}).Create(&candidate).Error; err != nil {
		return nil, err
	}

	var team Team
	err := models.Active(r.db).Preload("College").Preload("Sport").
		Where("college_id = ? AND sport_id = ?", c.ID, sp.ID).
		First(&team).Error
	if err != nil {
		return nil, err
	}
	return &team, nil
}

func (r *teamRepository) GetTeamByID(id uuid.UUID) (*Team, error) {
	var team Team
	err := models.Active(r.db).Preload("College").Preload("Sport").First(&team, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &team, nil
}

func (r *teamRepository) UpdateTeam(team *Team) error {
	if err := Validate(r.db, team); err != nil {
		return err
	}
	return r.db.Save(team).Error
}

func (r *teamRepository) GetOrCreateTeamPlayer(candidate *TeamPlayer) (*TeamPlayer, error) {
	if err := r.db.Omit("Events", "Player", "Team").
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(candidate).Error; err != nil {
		return nil, err
	}

	var tp TeamPlayer
	err := models.Active(r.db).Preload("Events").
		Where("player_id = ? AND team_id = ?", candidate.PlayerID, candidate.TeamID).
		First(&tp).Error
	if err != nil {
		return nil, err
	}
	return &tp, nil
}

func (r *teamRepository) GetTeamPlayerByID(id uuid.UUID) (*TeamPlayer, error) {
	var tp TeamPlayer
	err := models.Active(r.db).
		Preload("Player").Preload("Team").Preload("Team.Sport").Preload("Team.College").
		Preload("Events").
		First(&tp, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &tp, nil
}

func (r *teamRepository) GetTeamPlayerAny(playerID, teamID uuid.UUID) (*TeamPlayer, error) {
	var tp TeamPlayer
	err := models.All(r.db).Preload("Events").
		Where("player_id = ? AND team_id = ?", playerID, teamID).
		First(&tp).Error
	if err != nil {
		return nil, err
	}
	return &tp, nil
}

func (r *teamRepository) ListTeamPlayers(teamID uuid.UUID) ([]TeamPlayer, error) {
	var tps []TeamPlayer
	err := models.Active(r.db).Preload("Player").Preload("Events").
		Where("team_id = ?", teamID).
		Order("created_at asc").
		Find(&tps).Error
	if err != nil {
		return nil, err
	}
	return tps, nil
}

func (r *teamRepository) UpdateTeamPlayer(tp *TeamPlayer, events []sport.Event, maxEvents int) error {
	if err := ValidateTeamPlayer(r.db, tp, events, maxEvents); err != nil {
		return err
	}
	return r.db.Omit("Events", "Player", "Team").Save(tp).Error
}

func (r *teamRepository) AppendEvent(tp *TeamPlayer, event *sport.Event) error {
	return r.db.Model(tp).Association("Events").Append(event)
}

func (r *teamRepository) HasEventInSport(playerID, sportID uuid.UUID) (bool, error) {
	var count int64
	err := r.db.Table("team_player_events").
		Joins("JOIN team_players ON team_players.id = team_player_events.team_player_id").
		Joins("JOIN events ON events.id = team_player_events.event_id").
		Where("team_players.player_id = ? AND team_players.is_deleted = ? AND events.sport_id = ?",
			playerID, false, sportID).
		Count(&count).Error
	return count > 0, err
}

func (r *teamRepository) CountCollegeEventLinks(eventID, collegeID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.Table("team_player_events").
		Joins("JOIN team_players ON team_players.id = team_player_events.team_player_id").
		Joins("JOIN players ON players.id = team_players.player_id").
		Where("team_player_events.event_id = ? AND team_players.is_deleted = ? AND players.college_id = ?",
			eventID, false, collegeID).
		Count(&count).Error
	return count, err
}

func (r *teamRepository) CountPlaying(teamID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.Model(&TeamPlayer{}).
		Where("team_id = ? AND is_playing = ? AND is_deleted = ?", teamID, true, false).
		Count(&count).Error
	return count, err
}

func (r *teamRepository) WithTransaction(txFunc func(TeamRepository) error) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		return txFunc(&teamRepository{db: tx})
	})
}
