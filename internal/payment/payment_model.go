// payment/model.go
package payment

import (
	"github.com/apogee-dev/firewallz/internal/models"
	"github.com/apogee-dev/firewallz/internal/player"
	"github.com/apogee-dev/firewallz/internal/team"
	"github.com/google/uuid"
)

// Transaction records one payment attempt. PaidBy and PaidFor differ when a
// college representative or team captain settles on a player's behalf.
type Transaction struct {
	models.Base
	PaidForID          uuid.UUID     `json:"paid_for_id" gorm:"type:uuid;not null;index"`
	PaidFor            player.Player `json:"paid_for" gorm:"foreignKey:PaidForID"`
	PaidByID           uuid.UUID     `json:"paid_by_id" gorm:"type:uuid;not null;index"`
	PaidBy             player.Player `json:"paid_by" gorm:"foreignKey:PaidByID"`
	ReferenceNo        string        `json:"reference_no" gorm:"size:100;not null;index"`
	Checksum           string        `json:"checksum" gorm:"size:255"`
	PaymentURL         string        `json:"payment_url"`
	Amount             int           `json:"amount" gorm:"not null"`
	AppliedPcrDiscount int           `json:"applied_pcr_discount" gorm:"default:0"`
	Metadata           string        `json:"metadata"`
	Status             string        `json:"status" gorm:"default:'PENDING';index"`
	Type               string        `json:"type" gorm:"size:20;not null;index"`
}

// BasePayment is the flat tournament entry fee, held at most once per
// player. Its status mirrors the backing transaction.
type BasePayment struct {
	models.Base
	PlayerID          uuid.UUID   `json:"player_id" gorm:"type:uuid;not null;index"`
	Amount            int         `json:"amount" gorm:"not null"`
	TransactionID     uuid.UUID   `json:"transaction_id" gorm:"type:uuid;not null;index"`
	Transaction       Transaction `json:"transaction"`
	TransactionStatus string      `json:"transaction_status" gorm:"default:'PENDING';index"`
	HalfPayment       bool        `json:"half_payment" gorm:"default:false"`
}

// SportPayment settles all pending events of one team-player row at once;
// amount is the per-event fee times the event count at payment time.
type SportPayment struct {
	models.Base
	TeamPlayerID      uuid.UUID       `json:"team_player_id" gorm:"type:uuid;not null;index"`
	TeamPlayer        team.TeamPlayer `json:"team_player"`
	Amount            int             `json:"amount" gorm:"not null"`
	TransactionID     uuid.UUID       `json:"transaction_id" gorm:"type:uuid;not null;index"`
	Transaction       Transaction     `json:"transaction"`
	TransactionStatus string          `json:"transaction_status" gorm:"default:'PENDING';index"`
}
