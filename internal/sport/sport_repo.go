package sport

import (
	"github.com/apogee-dev/firewallz/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// SportRepository defines the interface for sport and event data operations
type SportRepository interface {
	CreateSport(sport *Sport) error
	GetSportByID(id uuid.UUID) (*Sport, error)
	ListActiveSports() ([]Sport, error)
	UpdateSport(sport *Sport) error

	CreateEvent(event *Event) error
	GetEventByID(id uuid.UUID) (*Event, error)
	ListEventsForSport(sportID uuid.UUID) ([]Event, error)
	// GetOrCreateDefaultEvent resolves the sport's first event, creating an
	// unnamed one when the sport has none yet. Safe under concurrent calls:
	// the (sport_id, name) unique index collapses duplicate creates.
	GetOrCreateDefaultEvent(sportID uuid.UUID) (*Event, error)
}

type sportRepository struct {
	db *gorm.DB
}

// NewSportRepository creates a new instance of SportRepository
func NewSportRepository(db *gorm.DB) SportRepository {
	return &sportRepository{db: db}
}

func (r *sportRepository) CreateSport(sport *Sport) error {
	return r.db.Create(sport).Error
}

func (r *sportRepository) GetSportByID(id uuid.UUID) (*Sport, error) {
	var sport Sport
	if err := models.Active(r.db).First(&sport, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &sport, nil
}

func (r *sportRepository) ListActiveSports() ([]Sport, error) {
	var sports []Sport
	err := models.Active(r.db).Where("is_active = ?", true).Order("name asc").Find(&sports).Error
	if err != nil {
		return nil, err
	}
	return sports, nil
}

func (r *sportRepository) UpdateSport(sport *Sport) error {
	return r.db.Save(sport).Error
}

func (r *sportRepository) CreateEvent(event *Event) error {
	return r.db.Create(event).Error
}

func (r *sportRepository) GetEventByID(id uuid.UUID) (*Event, error) {
	var event Event
	if err := models.Active(r.db).Preload("Sport").First(&event, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &event, nil
}

func (r *sportRepository) ListEventsForSport(sportID uuid.UUID) ([]Event, error) {
	var events []Event
	err := models.Active(r.db).Where("sport_id = ?", sportID).Order("name asc").Find(&events).Error
	if err != nil {
		return nil, err
	}
	return events, nil
}

func (r *sportRepository) GetOrCreateDefaultEvent(sportID uuid.UUID) (*Event, error) {
	var event Event
	err := models.Active(r.db).Preload("Sport").
		Where("sport_id = ?", sportID).
		Order("created_at asc").
		First(&event).Error
	if err == nil {
		return &event, nil
	}
	if err != gorm.ErrRecordNotFound {
		return nil, err
	}

	candidate := Event{SportID: sportID}
	if err := r.db.Clauses(clause.OnConflict{DoNothing: true}).Create(&candidate).Error; err != nil {
		return nil, err
	}
	// Re-read in case a concurrent create won the race.
	if err := models.Active(r.db).Preload("Sport").
		Where("sport_id = ? AND name = ?", sportID, "").
		First(&event).Error; err != nil {
		return nil, err
	}
	return &event, nil
}
