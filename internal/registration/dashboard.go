package registration

import (
	"errors"

	"github.com/apogee-dev/firewallz/internal/models"
	"github.com/apogee-dev/firewallz/internal/payment"
	"github.com/apogee-dev/firewallz/internal/player"
	"github.com/apogee-dev/firewallz/internal/sport"
	"github.com/apogee-dev/firewallz/internal/team"
	"github.com/apogee-dev/firewallz/pkg/apperrors"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Dashboard is the player-facing view of their registration state: profile,
// base-payment standing and one row per team membership with its events and
// whether the sport fee for that row has been settled.
type Dashboard struct {
	Player          player.Player   `json:"player"`
	BasePaymentDone bool            `json:"base_payment_done"`
	BasePayment     *BasePaymentRow `json:"base_payment,omitempty"`
	Registrations   []Registration  `json:"registrations"`
}

type BasePaymentRow struct {
	Amount      int    `json:"amount"`
	HalfPayment bool   `json:"half_payment"`
	ReferenceNo string `json:"reference_no"`
	Status      string `json:"status"`
}

type Registration struct {
	TeamPlayerID uuid.UUID     `json:"team_player_id"`
	TeamCode     string        `json:"team_code"`
	SportName    string        `json:"sport_name"`
	Status       string        `json:"status"`
	IsPlaying    bool          `json:"is_playing"`
	IsCaptain    bool          `json:"is_captain"`
	Events       []sport.Event `json:"events"`
	IsPaid       bool          `json:"is_paid"`
	AmountDue    int           `json:"amount_due"`
}

// GetDashboard assembles the dashboard for one player. Reads only.
func (s *Service) GetDashboard(playerID uuid.UUID) (*Dashboard, error) {
	playerRepo := player.NewPlayerRepository(s.db)
	p, err := playerRepo.GetByID(playerID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.NotFound("Player")
	}
	if err != nil {
		return nil, err
	}

	d := &Dashboard{Player: *p, Registrations: []Registration{}}

	paymentRepo := payment.NewPaymentRepository(s.db)
	if bp, err := paymentRepo.GetBasePaymentForPlayer(p.ID); err == nil {
		d.BasePaymentDone = bp.TransactionStatus == models.TxnSuccess
		d.BasePayment = &BasePaymentRow{
			Amount:      bp.Amount,
			HalfPayment: bp.HalfPayment,
			ReferenceNo: bp.Transaction.ReferenceNo,
			Status:      bp.TransactionStatus,
		}
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	var tps []team.TeamPlayer
	err = s.db.Where("player_id = ? AND is_deleted = ?", p.ID, false).
		Preload("Team").Preload("Team.Sport").Preload("Events").
		Order("created_at asc").
		Find(&tps).Error
	if err != nil {
		return nil, err
	}

	for i := range tps {
		tp := &tps[i]
		paid, err := paymentRepo.HasSuccessfulSportPayment(tp.ID)
		if err != nil {
			return nil, err
		}
		row := Registration{
			TeamPlayerID: tp.ID,
			TeamCode:     tp.Team.TeamCode,
			SportName:    tp.Team.Sport.Name,
			Status:       tp.Status,
			IsPlaying:    tp.IsPlaying,
			IsCaptain:    tp.IsCaptain(),
			Events:       tp.Events,
			IsPaid:       paid,
		}
		if !paid {
			row.AmountDue = len(tp.Events) * s.cfg.Fees.PerEventAmount
		}
		d.Registrations = append(d.Registrations, row)
	}
	return d, nil
}

// Stats is the aggregate admin snapshot across the whole event cycle.
type Stats struct {
	Players struct {
		Total     int64 `json:"total"`
		Confirmed int64 `json:"confirmed"`
		Approved  int64 `json:"approved"`
		Coaches   int64 `json:"coaches"`
	} `json:"players"`
	Teams struct {
		Total    int64 `json:"total"`
		Locked   int64 `json:"locked"`
		Verified int64 `json:"verified"`
	} `json:"teams"`
	Payments struct {
		BaseCount    int64 `json:"base_count"`
		BaseRevenue  int64 `json:"base_revenue"`
		SportCount   int64 `json:"sport_count"`
		SportRevenue int64 `json:"sport_revenue"`
	} `json:"payments"`
	Registrations struct {
		TeamPlayers int64 `json:"team_players"`
		EventLinks  int64 `json:"event_links"`
	} `json:"registrations"`
}

// GetStats computes the admin snapshot. Reads only.
func (s *Service) GetStats() (*Stats, error) {
	st := &Stats{}
	active := "is_deleted = ?"

	type q struct {
		dst   *int64
		query *gorm.DB
	}
	counts := []q{
		{&st.Players.Total, s.db.Model(&player.Player{}).Where(active, false)},
		{&st.Players.Confirmed, s.db.Model(&player.Player{}).Where(active+" AND status = ?", false, models.PlayerStatusConfirmed)},
		{&st.Players.Approved, s.db.Model(&player.Player{}).Where(active+" AND verified_by_firewallz = ?", false, true)},
		{&st.Players.Coaches, s.db.Model(&player.Player{}).Where(active+" AND is_coach = ?", false, true)},
		{&st.Teams.Total, s.db.Model(&team.Team{}).Where(active, false)},
		{&st.Teams.Locked, s.db.Model(&team.Team{}).Where(active+" AND is_locked = ?", false, true)},
		{&st.Teams.Verified, s.db.Model(&team.Team{}).Where(active+" AND is_verified_by_firewallz = ?", false, true)},
		{&st.Registrations.TeamPlayers, s.db.Model(&team.TeamPlayer{}).Where(active, false)},
		{&st.Registrations.EventLinks, s.db.Table("team_player_events").
			Joins("JOIN team_players ON team_players.id = team_player_events.team_player_id").
			Where("team_players.is_deleted = ?", false)},
	}
	for _, c := range counts {
		if err := c.query.Count(c.dst).Error; err != nil {
			return nil, err
		}
	}

	type sum struct{ Count, Total int64 }
	var base, sportSum sum
	err := s.db.Model(&payment.BasePayment{}).
		Select("COUNT(*) AS count, COALESCE(SUM(amount), 0) AS total").
		Where("is_deleted = ? AND transaction_status = ?", false, models.TxnSuccess).
		Scan(&base).Error
	if err != nil {
		return nil, err
	}
	err = s.db.Model(&payment.SportPayment{}).
		Select("COUNT(*) AS count, COALESCE(SUM(amount), 0) AS total").
		Where("is_deleted = ? AND transaction_status = ?", false, models.TxnSuccess).
		Scan(&sportSum).Error
	if err != nil {
		return nil, err
	}
	st.Payments.BaseCount = base.Count
	st.Payments.BaseRevenue = base.Total
	st.Payments.SportCount = sportSum.Count
	st.Payments.SportRevenue = sportSum.Total
	return st, nil
}
