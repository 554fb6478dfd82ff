package payment

import (
	"github.com/apogee-dev/firewallz/internal/models"
	"github.com/apogee-dev/firewallz/pkg/apperrors"
	"gorm.io/gorm"
)

// ValidateTransaction enforces the dedup invariant: no two non-deleted
// transactions may share (reference_no, paid_for, status). Soft-deleted
// rows are excluded, so a reversed transaction frees its reference.
func ValidateTransaction(db *gorm.DB, txn *Transaction) error {
	if txn.Amount < 0 {
		return apperrors.Validation("transaction amount cannot be negative")
	}
	switch txn.Status {
	case models.TxnPending, models.TxnSuccess, models.TxnFailed, models.TxnTimeout:
	default:
		return apperrors.Validation("invalid transaction status %q", txn.Status)
	}
	switch txn.Type {
	case models.TxnTypePCR, models.TxnTypeSWD, models.TxnTypeCR, models.TxnTypeTeamCaptain, models.TxnTypePlayer:
	default:
		return apperrors.Validation("invalid transaction type %q", txn.Type)
	}

	var count int64
	err := db.Model(&Transaction{}).
		Where("reference_no = ? AND paid_for_id = ? AND status = ? AND is_deleted = ? AND id <> ?",
			txn.ReferenceNo, txn.PaidForID, txn.Status, false, txn.ID).
		Count(&count).Error
	if err != nil {
		return err
	}
	if count > 0 {
		return apperrors.Validation("a non-deleted transaction with this reference_no and paid_for already exists")
	}
	return nil
}
