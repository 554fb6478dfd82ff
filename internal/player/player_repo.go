package player

import (
	"github.com/apogee-dev/firewallz/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PlayerRepository defines the interface for player data operations
type PlayerRepository interface {
	Create(player *Player, maxEvents int) error
	GetByID(id uuid.UUID) (*Player, error)
	GetByAccountID(accountID uuid.UUID) (*Player, error)
	ListByCollege(collegeID uuid.UUID) ([]Player, error)
	Update(player *Player, maxEvents int) error
	CountEvents(playerID uuid.UUID) (int64, error)
}

type playerRepository struct {
	db *gorm.DB
}

// NewPlayerRepository creates a new instance of PlayerRepository
func NewPlayerRepository(db *gorm.DB) PlayerRepository {
	return &playerRepository{db: db}
}

func (r *playerRepository) Create(player *Player, maxEvents int) error {
	if err := Validate(r.db, player, maxEvents); err != nil {
		return err
	}
	return r.db.Create(player).Error
}

func (r *playerRepository) GetByID(id uuid.UUID) (*Player, error) {
	var player Player
	if err := models.Active(r.db).Preload("College").First(&player, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &player, nil
}

func (r *playerRepository) GetByAccountID(accountID uuid.UUID) (*Player, error) {
	var player Player
	if err := models.Active(r.db).Preload("College").First(&player, "account_id = ?", accountID).Error; err != nil {
		return nil, err
	}
	return &player, nil
}

func (r *playerRepository) ListByCollege(collegeID uuid.UUID) ([]Player, error) {
	var players []Player
	err := models.Active(r.db).
		Where("college_id = ? AND is_coach = ?", collegeID, false).
		Order("name asc").
		Find(&players).Error
	if err != nil {
		return nil, err
	}
	return players, nil
}

func (r *playerRepository) Update(player *Player, maxEvents int) error {
	if err := Validate(r.db, player, maxEvents); err != nil {
		return err
	}
	return r.db.Save(player).Error
}

func (r *playerRepository) CountEvents(playerID uuid.UUID) (int64, error) {
	return CountEvents(r.db, playerID)
}
