package payment

import (
	"github.com/apogee-dev/firewallz/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PaymentRepository defines the interface for payment data operations
type PaymentRepository interface {
	CreateTransaction(txn *Transaction) error
	UpdateTransaction(txn *Transaction) error
	GetTransactionByID(id uuid.UUID) (*Transaction, error)
	ListTransactionsForPlayer(playerID uuid.UUID) ([]Transaction, error)

	CreateBasePayment(bp *BasePayment) error
	GetBasePaymentForPlayer(playerID uuid.UUID) (*BasePayment, error)

	CreateSportPayment(sp *SportPayment) error
	// HasSuccessfulSportPayment reports whether the team-player row is
	// already settled for the current payment cycle.
	HasSuccessfulSportPayment(teamPlayerID uuid.UUID) (bool, error)

	WithTransaction(txFunc func(PaymentRepository) error) error
}

type paymentRepository struct {
	db *gorm.DB
}

// NewPaymentRepository creates a new instance of PaymentRepository
func NewPaymentRepository(db *gorm.DB) PaymentRepository {
	return &paymentRepository{db: db}
}

func (r *paymentRepository) CreateTransaction(txn *Transaction) error {
	if err := ValidateTransaction(r.db, txn); err != nil {
		return err
	}
	return r.db.Omit("PaidFor", "PaidBy").Create(txn).Error
}

func (r *paymentRepository) UpdateTransaction(txn *Transaction) error {
	if err := ValidateTransaction(r.db, txn); err != nil {
		return err
	}
	return r.db.Omit("PaidFor", "PaidBy").Save(txn).Error
}

func (r *paymentRepository) GetTransactionByID(id uuid.UUID) (*Transaction, error) {
	var txn Transaction
	if err := models.Active(r.db).First(&txn, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &txn, nil
}

func (r *paymentRepository) ListTransactionsForPlayer(playerID uuid.UUID) ([]Transaction, error) {
	var txns []Transaction
	err := models.Active(r.db).
		Where("paid_for_id = ?", playerID).
		Order("created_at desc").
		Find(&txns).Error
	if err != nil {
		return nil, err
	}
	return txns, nil
}

func (r *paymentRepository) CreateBasePayment(bp *BasePayment) error {
	return r.db.Omit("Transaction").Create(bp).Error
}

func (r *paymentRepository) GetBasePaymentForPlayer(playerID uuid.UUID) (*BasePayment, error) {
	var bp BasePayment
	err := models.Active(r.db).Preload("Transaction").
		Where("player_id = ?", playerID).
		First(&bp).Error
	if err != nil {
		return nil, err
	}
	return &bp, nil
}

func (r *paymentRepository) CreateSportPayment(sp *SportPayment) error {
	return r.db.Omit("Transaction", "TeamPlayer").Create(sp).Error
}

func (r *paymentRepository) HasSuccessfulSportPayment(teamPlayerID uuid.UUID) (bool, error) {
	var count int64
	err := r.db.Model(&SportPayment{}).
		Where("team_player_id = ? AND transaction_status = ? AND is_deleted = ?",
			teamPlayerID, models.TxnSuccess, false).
		Count(&count).Error
	return count > 0, err
}

func (r *paymentRepository) WithTransaction(txFunc func(PaymentRepository) error) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		return txFunc(&paymentRepository{db: tx})
	})
}
