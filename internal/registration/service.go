package registration

import (
	"errors"

	"github.com/apogee-dev/firewallz/config"
	"github.com/apogee-dev/firewallz/internal/college"
	"github.com/apogee-dev/firewallz/internal/models"
	"github.com/apogee-dev/firewallz/internal/payment"
	"github.com/apogee-dev/firewallz/internal/player"
	"github.com/apogee-dev/firewallz/internal/sport"
	"github.com/apogee-dev/firewallz/internal/team"
	"github.com/apogee-dev/firewallz/pkg/apperrors"
	"github.com/apogee-dev/firewallz/pkg/utils"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Service orchestrates the registration workflow: player creation, the base
// payment gate, event registration and sport payments, plus the admin
// transitions (captain promotion, verification, locking). Every multi-entity
// write runs inside one storage transaction; a failure anywhere rolls the
// whole mutation back.
type Service struct {
	db  *gorm.DB
	cfg *config.Config
}

func NewService(db *gorm.DB, cfg *config.Config) *Service {
	return &Service{db: db, cfg: cfg}
}

// CreatePlayer creates the player profile for an account (workflow gate 1).
// Coaches must name the sports they coach.
func (s *Service) CreatePlayer(accountID uuid.UUID, req player.CreatePlayerRequest) (*player.Player, error) {
	if req.IsCoach && req.SportsIfCoach == "" {
		return nil, apperrors.Validation("coaches must specify the sports they coach")
	}

	var created *player.Player
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var col college.College
		if err := models.Active(tx).First(&col, "id = ?", req.CollegeID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.NotFound("College")
			}
			return err
		}

		playerRepo := player.NewPlayerRepository(tx)
		if _, err := playerRepo.GetByAccountID(accountID); err == nil {
			return apperrors.Conflict("player profile already exists for this account")
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		p := &player.Player{
			AccountID:     accountID,
			Name:          req.Name,
			Email:         req.Email,
			PhoneNumber:   req.PhoneNumber,
			Gender:        req.Gender,
			CollegeID:     col.ID,
			Status:        models.PlayerStatusUnconfirmed,
			IsCoach:       req.IsCoach,
			SportsIfCoach: req.SportsIfCoach,
		}
		if err := playerRepo.Create(p, s.cfg.Registration.MaxEventsPerPlayer); err != nil {
			return err
		}
		p.College = col
		created = p
		return nil
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

// RecordBasePayment settles the flat entry fee (workflow gate 2), at most
// once per player. The player's PCr discount is applied and recorded on the
// transaction. paidBy identifies who settles; for self-payment it equals
// playerID.
func (s *Service) RecordBasePayment(playerID, paidByID uuid.UUID, half bool) (*payment.BasePayment, error) {
	return s.recordBase(playerID, paidByID, half, models.TxnTypePlayer)
}

// MarkBasePaid records a base payment settled outside the portal, e.g. cash
// collected at the desk. The transaction is tagged with the SWD type so it
// stays distinguishable from self-service payments.
func (s *Service) MarkBasePaid(playerID uuid.UUID, half bool) (*payment.BasePayment, error) {
	return s.recordBase(playerID, playerID, half, models.TxnTypeSWD)
}

func (s *Service) recordBase(playerID, paidByID uuid.UUID, half bool, txnType string) (*payment.BasePayment, error) {
	var created *payment.BasePayment
	err := s.db.Transaction(func(tx *gorm.DB) error {
		playerRepo := player.NewPlayerRepository(tx)
		p, err := playerRepo.GetByID(playerID)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.NotFound("Player")
		}
		if err != nil {
			return err
		}

		paymentRepo := payment.NewPaymentRepository(tx)
		if _, err := paymentRepo.GetBasePaymentForPlayer(p.ID); err == nil {
			return apperrors.Conflict("base payment already exists for this player")
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		amount := s.cfg.Fees.BaseAmount
		if half {
			amount = s.cfg.Fees.HalfAmount
		}
		discount := p.PcrDiscount
		if discount > amount {
			discount = amount
		}
		amount -= discount

		txn := &payment.Transaction{
			PaidForID:          p.ID,
			PaidByID:           paidByID,
			ReferenceNo:        utils.GenerateReferenceNo(),
			Amount:             amount,
			AppliedPcrDiscount: discount,
			Status:             models.TxnSuccess,
			Type:               txnType,
		}
		if err := paymentRepo.CreateTransaction(txn); err != nil {
			return err
		}

		bp := &payment.BasePayment{
			PlayerID:          p.ID,
			Amount:            amount,
			TransactionID:     txn.ID,
			TransactionStatus: txn.Status,
			HalfPayment:       half,
		}
		if err := paymentRepo.CreateBasePayment(bp); err != nil {
			return err
		}
		bp.Transaction = *txn
		created = bp
		return nil
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

// RegisterForEvent is workflow gate 3: resolve (or create) the college's
// team for the sport, resolve (or create) the player's membership row, and
// attach the event. Idempotent at the boundary: repeating the call resolves
// the existing rows and the duplicate check rejects with "already enrolled"
// rather than duplicating anything.
func (s *Service) RegisterForEvent(playerID, sportID uuid.UUID, eventID *uuid.UUID) (*team.TeamPlayer, error) {
	var result *team.TeamPlayer
	err := s.db.Transaction(func(tx *gorm.DB) error {
		playerRepo := player.NewPlayerRepository(tx)
		p, err := playerRepo.GetByID(playerID)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.NotFound("Player")
		}
		if err != nil {
			return err
		}

		// Base payment gates event registration.
		paymentRepo := payment.NewPaymentRepository(tx)
		if _, err := paymentRepo.GetBasePaymentForPlayer(p.ID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.State("base payment is required before event registration")
			}
			return err
		}

		sportRepo := sport.NewSportRepository(tx)
		sp, err := sportRepo.GetSportByID(sportID)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.NotFound("Sport")
		}
		if err != nil {
			return err
		}
		if !sp.IsActive {
			return apperrors.Validation("sport %q is not open for registration", sp.Name)
		}

		var ev *sport.Event
		if eventID != nil {
			ev, err = sportRepo.GetEventByID(*eventID)
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.NotFound("Event")
			}
			if err != nil {
				return err
			}
			if ev.SportID != sp.ID {
				return apperrors.Validation("event does not belong to the selected sport")
			}
		} else {
			ev, err = sportRepo.GetOrCreateDefaultEvent(sp.ID)
			if err != nil {
				return err
			}
		}

		if err := CheckEligibility(tx, p, sp, ev, s.cfg.Registration.MaxEventsPerPlayer); err != nil {
			return err
		}

		teamRepo := team.NewTeamRepository(tx)
		t, err := teamRepo.GetOrCreateTeam(&p.College, sp)
		if err != nil {
			return err
		}
		if t.IsLocked {
			return apperrors.State("team %s is locked", t.TeamCode)
		}

		status := models.TeamPlayerUnapproved
		if s.cfg.Registration.AutoApprove {
			status = models.TeamPlayerApproved
		}
		tp, err := teamRepo.GetOrCreateTeamPlayer(&team.TeamPlayer{
			PlayerID:  p.ID,
			TeamID:    t.ID,
			Status:    status,
			IsPlaying: true,
		})
		if err != nil {
			return err
		}

		// Validate against the candidate event set, including the event
		// being attached in this same operation.
		candidate := append(append([]sport.Event{}, tp.Events...), *ev)
		if err := team.ValidateTeamPlayer(tx, tp, candidate, s.cfg.Registration.MaxEventsPerPlayer); err != nil {
			return err
		}
		if err := teamRepo.AppendEvent(tp, ev); err != nil {
			return err
		}

		result, err = teamRepo.GetTeamPlayerByID(tp.ID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// RecordSportPayment settles all events currently on a team-player row
// (workflow gate 4). Zero registered events is an ordering error, and a row
// already settled in this cycle cannot be paid again.
func (s *Service) RecordSportPayment(teamPlayerID, actorPlayerID uuid.UUID) (*payment.SportPayment, error) {
	var created *payment.SportPayment
	err := s.db.Transaction(func(tx *gorm.DB) error {
		teamRepo := team.NewTeamRepository(tx)
		tp, err := teamRepo.GetTeamPlayerByID(teamPlayerID)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.NotFound("Team player")
		}
		if err != nil {
			return err
		}
		if tp.PlayerID != actorPlayerID {
			return apperrors.NotFound("Team player")
		}

		eventsCount := len(tp.Events)
		if eventsCount == 0 {
			return apperrors.State("no events registered for this team player")
		}

		paymentRepo := payment.NewPaymentRepository(tx)
		settled, err := paymentRepo.HasSuccessfulSportPayment(tp.ID)
		if err != nil {
			return err
		}
		if settled {
			return apperrors.Conflict("sport payment already recorded for this registration")
		}

		amount := eventsCount * s.cfg.Fees.PerEventAmount
		txn := &payment.Transaction{
			PaidForID:   tp.PlayerID,
			PaidByID:    actorPlayerID,
			ReferenceNo: utils.GenerateReferenceNo(),
			Amount:      amount,
			Status:      models.TxnSuccess,
			Type:        models.TxnTypePlayer,
		}
		if err := paymentRepo.CreateTransaction(txn); err != nil {
			return err
		}

		sp := &payment.SportPayment{
			TeamPlayerID:      tp.ID,
			Amount:            amount,
			TransactionID:     txn.ID,
			TransactionStatus: txn.Status,
		}
		if err := paymentRepo.CreateSportPayment(sp); err != nil {
			return err
		}
		sp.Transaction = *txn
		created = sp
		return nil
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

// PromoteToCaptain elevates an already-registered player to team captain.
// Absence of the membership row is a hard precondition failure, never an
// implicit creation. Promotion forces the captain's own row to playing.
func (s *Service) PromoteToCaptain(teamID, playerID uuid.UUID) (*team.Team, error) {
	var promoted *team.Team
	err := s.db.Transaction(func(tx *gorm.DB) error {
		teamRepo := team.NewTeamRepository(tx)
		t, err := teamRepo.GetTeamByID(teamID)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.NotFound("Team")
		}
		if err != nil {
			return err
		}

		if t.College.IsCaptainsLocked {
			return apperrors.State("college %s has locked captain assignments", t.College.Name)
		}

		tp, err := teamRepo.GetTeamPlayerAny(playerID, t.ID)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.State("player must be registered in the team before becoming captain")
		}
		if err != nil {
			return err
		}

		if !tp.IsPlaying {
			tp.IsPlaying = true
			if err := teamRepo.UpdateTeamPlayer(tp, tp.Events, s.cfg.Registration.MaxEventsPerPlayer); err != nil {
				return err
			}
		}

		t.CaptainID = &playerID
		if err := teamRepo.UpdateTeam(t); err != nil {
			return err
		}
		promoted = t
		return nil
	})
	if err != nil {
		return nil, err
	}
	return promoted, nil
}

// ConfirmPlayer moves a player out of the unconfirmed PCr state. This is
// the precondition for either verification flag.
func (s *Service) ConfirmPlayer(playerID uuid.UUID) (*player.Player, error) {
	return s.updatePlayer(playerID, func(p *player.Player) error {
		if p.Status == models.PlayerStatusConfirmed {
			return apperrors.Conflict("player is already confirmed")
		}
		p.Status = models.PlayerStatusConfirmed
		return nil
	})
}

// ApprovePlayer sets the Firewallz verification flag. The validation engine
// rejects the flip for players still in the unconfirmed PCr state.
func (s *Service) ApprovePlayer(playerID uuid.UUID) (*player.Player, error) {
	return s.updatePlayer(playerID, func(p *player.Player) error {
		if p.VerifiedByFirewallz {
			return apperrors.Conflict("player is already approved")
		}
		p.VerifiedByFirewallz = true
		return nil
	})
}

func (s *Service) updatePlayer(playerID uuid.UUID, mutate func(*player.Player) error) (*player.Player, error) {
	var updated *player.Player
	err := s.db.Transaction(func(tx *gorm.DB) error {
		playerRepo := player.NewPlayerRepository(tx)
		p, err := playerRepo.GetByID(playerID)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.NotFound("Player")
		}
		if err != nil {
			return err
		}
		if err := mutate(p); err != nil {
			return err
		}
		if err := playerRepo.Update(p, s.cfg.Registration.MaxEventsPerPlayer); err != nil {
			return err
		}
		updated = p
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// ApproveTeamPlayer is the manual approval path used when auto-approval is
// switched off. Approval requires the captain to have confirmed the player.
func (s *Service) ApproveTeamPlayer(teamPlayerID uuid.UUID) (*team.TeamPlayer, error) {
	var updated *team.TeamPlayer
	err := s.db.Transaction(func(tx *gorm.DB) error {
		teamRepo := team.NewTeamRepository(tx)
		tp, err := teamRepo.GetTeamPlayerByID(teamPlayerID)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.NotFound("Team player")
		}
		if err != nil {
			return err
		}
		if tp.Status == models.TeamPlayerApproved {
			return apperrors.Conflict("team player is already approved")
		}
		tp.Status = models.TeamPlayerApproved
		if err := teamRepo.UpdateTeamPlayer(tp, tp.Events, s.cfg.Registration.MaxEventsPerPlayer); err != nil {
			return err
		}
		updated = tp
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// ApproveTeam marks a whole team as Firewallz-verified. Every member must
// already hold the player-level verification.
func (s *Service) ApproveTeam(teamID uuid.UUID) (*team.Team, error) {
	var approved *team.Team
	err := s.db.Transaction(func(tx *gorm.DB) error {
		teamRepo := team.NewTeamRepository(tx)
		t, err := teamRepo.GetTeamByID(teamID)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.NotFound("Team")
		}
		if err != nil {
			return err
		}
		if t.IsVerifiedByFirewallz {
			return apperrors.Conflict("team is already approved")
		}

		tps, err := teamRepo.ListTeamPlayers(t.ID)
		if err != nil {
			return err
		}
		for _, tp := range tps {
			if !tp.Player.VerifiedByFirewallz {
				return apperrors.Validation("cannot approve team: player %s is not approved yet", tp.Player.Name)
			}
		}

		t.IsVerifiedByFirewallz = true
		if err := teamRepo.UpdateTeam(t); err != nil {
			return err
		}
		approved = t
		return nil
	})
	if err != nil {
		return nil, err
	}
	return approved, nil
}

// LockTeam freezes a roster after checking it against the sport's player
// bounds. Locked teams reject further registrations.
func (s *Service) LockTeam(teamID uuid.UUID) (*team.Team, error) {
	var locked *team.Team
	err := s.db.Transaction(func(tx *gorm.DB) error {
		teamRepo := team.NewTeamRepository(tx)
		t, err := teamRepo.GetTeamByID(teamID)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.NotFound("Team")
		}
		if err != nil {
			return err
		}
		if t.IsLocked {
			return apperrors.Conflict("team is already locked")
		}

		playing, err := teamRepo.CountPlaying(t.ID)
		if err != nil {
			return err
		}
		if playing < int64(t.Sport.MinPlayers) {
			return apperrors.Validation("sport requires a minimum of %d players", t.Sport.MinPlayers)
		}
		if playing > int64(t.Sport.MaxPlayers) {
			return apperrors.Validation("sport player limit exceeds the max of %d players", t.Sport.MaxPlayers)
		}

		t.IsLocked = true
		if err := teamRepo.UpdateTeam(t); err != nil {
			return err
		}
		locked = t
		return nil
	})
	if err != nil {
		return nil, err
	}
	return locked, nil
}
