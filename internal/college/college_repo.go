package college

import (
	"github.com/apogee-dev/firewallz/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CollegeRepository defines the interface for college data operations
type CollegeRepository interface {
	Create(college *College) error
	GetByID(id uuid.UUID) (*College, error)
	GetByName(name string) (*College, error)
	List() ([]College, error)
	Update(college *College) error

	CreateGroup(group *Group) error
	GetGroupByID(id uuid.UUID) (*Group, error)
	AddPlayerToGroup(group *Group, playerID uuid.UUID) error
	CountGroupPlayers(groupID uuid.UUID) (int64, error)

	WithTransaction(txFunc func(CollegeRepository) error) error
}

type collegeRepository struct {
	db *gorm.DB
}

// NewCollegeRepository creates a new instance of CollegeRepository
func NewCollegeRepository(db *gorm.DB) CollegeRepository {
	return &collegeRepository{db: db}
}

func (r *collegeRepository) Create(college *College) error {
	if err := Validate(r.db, college); err != nil {
		return err
	}
	return r.db.Create(college).Error
}

func (r *collegeRepository) GetByID(id uuid.UUID) (*College, error) {
	var college College
	if err := models.Active(r.db).First(&college, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &college, nil
}

func (r *collegeRepository) GetByName(name string) (*College, error) {
	var college College
	if err := models.Active(r.db).First(&college, "name = ?", name).Error; err != nil {
		return nil, err
	}
	return &college, nil
}

func (r *collegeRepository) List() ([]College, error) {
	var colleges []College
	if err := models.Active(r.db).Order("name asc").Find(&colleges).Error; err != nil {
		return nil, err
	}
	return colleges, nil
}

func (r *collegeRepository) Update(college *College) error {
	if err := Validate(r.db, college); err != nil {
		return err
	}
	return r.db.Save(college).Error
}

func (r *collegeRepository) CreateGroup(group *Group) error {
	return r.db.Create(group).Error
}

func (r *collegeRepository) GetGroupByID(id uuid.UUID) (*Group, error) {
	var group Group
	if err := models.Active(r.db).Preload("College").First(&group, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &group, nil
}

func (r *collegeRepository) AddPlayerToGroup(group *Group, playerID uuid.UUID) error {
	if err := ValidateGroupMember(r.db, group, playerID); err != nil {
		return err
	}
	return r.db.Create(&GroupPlayer{GroupID: group.ID, PlayerID: playerID}).Error
}

func (r *collegeRepository) CountGroupPlayers(groupID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.Model(&GroupPlayer{}).Where("group_id = ?", groupID).Count(&count).Error
	return count, err
}

func (r *collegeRepository) WithTransaction(txFunc func(CollegeRepository) error) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		return txFunc(&collegeRepository{db: tx})
	})
}
