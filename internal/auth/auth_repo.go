package auth

import (
	"github.com/apogee-dev/firewallz/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AuthRepository defines the interface for account data operations
type AuthRepository interface {
	CreateAccount(account *Account) error
	GetAccountByID(id uuid.UUID) (*Account, error)
	GetAccountByEmail(email string) (*Account, error)
}

type authRepository struct {
	db *gorm.DB
}

// NewAuthRepository creates a new instance of AuthRepository
func NewAuthRepository(db *gorm.DB) AuthRepository {
	return &authRepository{db: db}
}

func (r *authRepository) CreateAccount(account *Account) error {
	return r.db.Create(account).Error
}

func (r *authRepository) GetAccountByID(id uuid.UUID) (*Account, error) {
	var account Account
	if err := models.Active(r.db).First(&account, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &account, nil
}

func (r *authRepository) GetAccountByEmail(email string) (*Account, error) {
	var account Account
	if err := models.Active(r.db).First(&account, "email = ?", email).Error; err != nil {
		return nil, err
	}
	return &account, nil
}
