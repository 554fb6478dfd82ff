package payment_test

import (
	"testing"

	"github.com/apogee-dev/firewallz/internal/models"
	"github.com/apogee-dev/firewallz/internal/payment"
	"github.com/apogee-dev/firewallz/internal/testdb"
	"github.com/apogee-dev/firewallz/pkg/apperrors"
	"github.com/apogee-dev/firewallz/pkg/utils"
	"github.com/google/uuid"
)

func baseTxn() *payment.Transaction {
	return &payment.Transaction{
		PaidForID:   uuid.New(),
		PaidByID:    uuid.New(),
		ReferenceNo: utils.GenerateReferenceNo(),
		Amount:      1300,
		Status:      models.TxnSuccess,
		Type:        models.TxnTypePlayer,
	}
}

func TestValidateTransaction(t *testing.T) {
	db := testdb.Open(t)

	cases := []struct {
		name    string
		mutate  func(*payment.Transaction)
		wantErr bool
	}{
		{"valid", func(txn *payment.Transaction) {}, false},
		{"zero amount", func(txn *payment.Transaction) { txn.Amount = 0 }, false},
		{"negative amount", func(txn *payment.Transaction) { txn.Amount = -1 }, true},
		{"unknown status", func(txn *payment.Transaction) { txn.Status = "DONE" }, true},
		{"unknown type", func(txn *payment.Transaction) { txn.Type = "UPI" }, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			txn := baseTxn()
			tc.mutate(txn)
			err := payment.ValidateTransaction(db, txn)
			if tc.wantErr && !apperrors.IsValidation(err) {
				t.Errorf("got %v, want validation error", err)
			}
			if !tc.wantErr && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestTransactionDedup(t *testing.T) {
	db := testdb.Open(t)
	repo := payment.NewPaymentRepository(db)

	txn := baseTxn()
	if err := repo.CreateTransaction(txn); err != nil {
		t.Fatalf("first transaction: %v", err)
	}

	dup := baseTxn()
	dup.ReferenceNo = txn.ReferenceNo
	dup.PaidForID = txn.PaidForID
	if err := repo.CreateTransaction(dup); !apperrors.IsValidation(err) {
		t.Fatalf("duplicate (reference, paid_for, status): got %v, want validation", err)
	}

	// A different status on the same reference is a legitimate retry record.
	dup.Status = models.TxnFailed
	if err := repo.CreateTransaction(dup); err != nil {
		t.Fatalf("same reference with different status: %v", err)
	}

	// Soft-deleting the original frees the reference.
	if err := db.Model(txn).Update("is_deleted", true).Error; err != nil {
		t.Fatalf("soft delete: %v", err)
	}
	again := baseTxn()
	again.ReferenceNo = txn.ReferenceNo
	again.PaidForID = txn.PaidForID
	if err := repo.CreateTransaction(again); err != nil {
		t.Fatalf("reference freed by soft delete: %v", err)
	}
}

func TestHasSuccessfulSportPayment(t *testing.T) {
	db := testdb.Open(t)
	repo := payment.NewPaymentRepository(db)

	tpID := uuid.New()
	ok, err := repo.HasSuccessfulSportPayment(tpID)
	if err != nil {
		t.Fatalf("HasSuccessfulSportPayment: %v", err)
	}
	if ok {
		t.Fatalf("reported settled with no payments")
	}

	txn := baseTxn()
	if err := repo.CreateTransaction(txn); err != nil {
		t.Fatalf("create transaction: %v", err)
	}
	sp := &payment.SportPayment{
		TeamPlayerID:      tpID,
		Amount:            400,
		TransactionID:     txn.ID,
		TransactionStatus: models.TxnSuccess,
	}
	if err := repo.CreateSportPayment(sp); err != nil {
		t.Fatalf("create sport payment: %v", err)
	}

	ok, err = repo.HasSuccessfulSportPayment(tpID)
	if err != nil {
		t.Fatalf("HasSuccessfulSportPayment: %v", err)
	}
	if !ok {
		t.Errorf("settled payment not reported")
	}
}
