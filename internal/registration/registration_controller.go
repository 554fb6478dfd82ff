package registration

import (
	"errors"
	"net/http"

	"github.com/apogee-dev/firewallz/internal/middleware"
	"github.com/apogee-dev/firewallz/internal/player"
	"github.com/apogee-dev/firewallz/pkg/responses"
	"github.com/apogee-dev/firewallz/pkg/validator"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// RegistrationController handles the registration workflow HTTP requests
type RegistrationController struct {
	service    *Service
	playerRepo player.PlayerRepository
}

// NewRegistrationController creates a new registration controller
func NewRegistrationController(service *Service, playerRepo player.PlayerRepository) *RegistrationController {
	return &RegistrationController{service: service, playerRepo: playerRepo}
}

type RegisterEventRequest struct {
	SportID uuid.UUID  `json:"sport_id" binding:"required"`
	EventID *uuid.UUID `json:"event_id"`
}

type BasePaymentRequest struct {
	HalfPayment bool `json:"half_payment"`
}

type PromoteCaptainRequest struct {
	PlayerID uuid.UUID `json:"player_id" binding:"required"`
}

// currentPlayer resolves the authenticated account's player profile. Writes
// the error response itself when resolution fails.
func (rc *RegistrationController) currentPlayer(c *gin.Context) (*player.Player, bool) {
	accountID, err := middleware.GetAccountIDFromContext(c)
	if err != nil {
		responses.Unauthorized(c, "Invalid authentication context")
		return nil, false
	}
	p, err := rc.playerRepo.GetByAccountID(accountID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		responses.NotFound(c, "Player profile")
		return nil, false
	}
	if err != nil {
		responses.InternalServerError(c, "Failed to resolve player profile")
		return nil, false
	}
	return p, true
}

// CreatePlayer godoc
// @Summary      Create player profile
// @Description  Creates the player profile for the authenticated account. One profile per account.
// @Tags         Registration
// @Accept       json
// @Produce      json
// @Param        player  body  player.CreatePlayerRequest  true  "Player details"
// @Success      201  {object}  responses.SuccessResponse{data=player.Player}
// @Failure      409  {object}  responses.ErrorResponse "Profile already exists"
// @Security     ApiKeyAuth
// @Router       /players [post]
func (rc *RegistrationController) CreatePlayer(c *gin.Context) {
	accountID, err := middleware.GetAccountIDFromContext(c)
	if err != nil {
		responses.Unauthorized(c, "Invalid authentication context")
		return
	}

	var req player.CreatePlayerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"errors": validator.ParseError(err)})
		return
	}

	p, err := rc.service.CreatePlayer(accountID, req)
	if err != nil {
		responses.FromError(c, err)
		return
	}
	responses.SendSuccess(c, http.StatusCreated, "Player created successfully", p)
}

// GetDashboard godoc
// @Summary      Player dashboard
// @Description  Returns the player's registration state: profile, base payment standing and all team memberships with their events and payment status.
// @Tags         Registration
// @Produce      json
// @Success      200  {object}  responses.SuccessResponse{data=Dashboard}
// @Security     ApiKeyAuth
// @Router       /players/me/dashboard [get]
func (rc *RegistrationController) GetDashboard(c *gin.Context) {
	p, ok := rc.currentPlayer(c)
	if !ok {
		return
	}
	d, err := rc.service.GetDashboard(p.ID)
	if err != nil {
		responses.FromError(c, err)
		return
	}
	responses.SendSuccess(c, http.StatusOK, "", d)
}

// RecordBasePayment godoc
// @Summary      Pay the base fee
// @Description  Settles the flat entry fee for the authenticated player, applying any PCr discount. At most one base payment per player.
// @Tags         Payments
// @Accept       json
// @Produce      json
// @Param        body  body  BasePaymentRequest  true  "Payment options"
// @Success      201  {object}  responses.SuccessResponse{data=payment.BasePayment}
// @Failure      409  {object}  responses.ErrorResponse "Base payment already recorded"
// @Security     ApiKeyAuth
// @Router       /payments/base [post]
func (rc *RegistrationController) RecordBasePayment(c *gin.Context) {
	p, ok := rc.currentPlayer(c)
	if !ok {
		return
	}

	var req BasePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"errors": validator.ParseError(err)})
		return
	}

	bp, err := rc.service.RecordBasePayment(p.ID, p.ID, req.HalfPayment)
	if err != nil {
		responses.FromError(c, err)
		return
	}
	responses.SendSuccess(c, http.StatusCreated, "Base payment recorded successfully", bp)
}

// RegisterForEvent godoc
// @Summary      Register for an event
// @Description  Registers the authenticated player for an event of a sport. Omitting event_id targets the sport's default event. Requires a settled base payment.
// @Tags         Registration
// @Accept       json
// @Produce      json
// @Param        body  body  RegisterEventRequest  true  "Sport and optional event"
// @Success      201  {object}  responses.SuccessResponse{data=team.TeamPlayer}
// @Failure      409  {object}  responses.ErrorResponse "Out of sequence or team locked"
// @Failure      422  {object}  responses.ErrorResponse "Eligibility check failed"
// @Security     ApiKeyAuth
// @Router       /registrations [post]
func (rc *RegistrationController) RegisterForEvent(c *gin.Context) {
	p, ok := rc.currentPlayer(c)
	if !ok {
		return
	}

	var req RegisterEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"errors": validator.ParseError(err)})
		return
	}

	tp, err := rc.service.RegisterForEvent(p.ID, req.SportID, req.EventID)
	if err != nil {
		responses.FromError(c, err)
		return
	}
	responses.SendSuccess(c, http.StatusCreated, "Registered successfully", tp)
}

// RecordSportPayment godoc
// @Summary      Pay the per-event fees
// @Description  Settles the fees for all events currently on one of the player's team memberships.
// @Tags         Payments
// @Produce      json
// @Param        team_player_id  path  string  true  "Team player ID"
// @Success      201  {object}  responses.SuccessResponse{data=payment.SportPayment}
// @Failure      409  {object}  responses.ErrorResponse "No events or already paid"
// @Security     ApiKeyAuth
// @Router       /payments/sport/{team_player_id} [post]
func (rc *RegistrationController) RecordSportPayment(c *gin.Context) {
	p, ok := rc.currentPlayer(c)
	if !ok {
		return
	}

	teamPlayerID, err := uuid.Parse(c.Param("team_player_id"))
	if err != nil {
		responses.BadRequest(c, "Invalid team player ID")
		return
	}

	sp, err := rc.service.RecordSportPayment(teamPlayerID, p.ID)
	if err != nil {
		responses.FromError(c, err)
		return
	}
	responses.SendSuccess(c, http.StatusCreated, "Sport payment recorded successfully", sp)
}

// PromoteToCaptain godoc
// @Summary      Promote a player to captain
// @Description  Makes an already-registered player the team captain. Admin only. Fails when the college has locked captain assignments.
// @Tags         Admin
// @Accept       json
// @Produce      json
// @Param        team_id  path  string  true  "Team ID"
// @Param        body  body  PromoteCaptainRequest  true  "Player"
// @Success      200  {object}  responses.SuccessResponse{data=team.Team}
// @Failure      409  {object}  responses.ErrorResponse "Not registered in the team or captains locked"
// @Security     ApiKeyAuth
// @Router       /admin/teams/{team_id}/captain [post]
func (rc *RegistrationController) PromoteToCaptain(c *gin.Context) {
	teamID, err := uuid.Parse(c.Param("team_id"))
	if err != nil {
		responses.BadRequest(c, "Invalid team ID")
		return
	}

	var req PromoteCaptainRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"errors": validator.ParseError(err)})
		return
	}

	t, err := rc.service.PromoteToCaptain(teamID, req.PlayerID)
	if err != nil {
		responses.FromError(c, err)
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Captain promoted successfully", t)
}

// MarkBasePaid godoc
// @Summary      Mark a player's base fee as paid
// @Description  Records a base payment settled outside the portal (e.g. cash at the desk). Admin only.
// @Tags         Admin
// @Accept       json
// @Produce      json
// @Param        player_id  path  string  true  "Player ID"
// @Param        body  body  BasePaymentRequest  true  "Payment options"
// @Success      201  {object}  responses.SuccessResponse{data=payment.BasePayment}
// @Failure      409  {object}  responses.ErrorResponse "Base payment already recorded"
// @Security     ApiKeyAuth
// @Router       /admin/players/{player_id}/mark-paid [post]
func (rc *RegistrationController) MarkBasePaid(c *gin.Context) {
	playerID, err := uuid.Parse(c.Param("player_id"))
	if err != nil {
		responses.BadRequest(c, "Invalid player ID")
		return
	}

	var req BasePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"errors": validator.ParseError(err)})
		return
	}

	bp, err := rc.service.MarkBasePaid(playerID, req.HalfPayment)
	if err != nil {
		responses.FromError(c, err)
		return
	}
	responses.SendSuccess(c, http.StatusCreated, "Base payment recorded successfully", bp)
}

// ConfirmPlayer godoc
// @Summary      Confirm a player
// @Description  Moves a player out of the unconfirmed PCr state. Admin only.
// @Tags         Admin
// @Produce      json
// @Param        player_id  path  string  true  "Player ID"
// @Success      200  {object}  responses.SuccessResponse{data=player.Player}
// @Security     ApiKeyAuth
// @Router       /admin/players/{player_id}/confirm [post]
func (rc *RegistrationController) ConfirmPlayer(c *gin.Context) {
	playerID, err := uuid.Parse(c.Param("player_id"))
	if err != nil {
		responses.BadRequest(c, "Invalid player ID")
		return
	}

	p, err := rc.service.ConfirmPlayer(playerID)
	if err != nil {
		responses.FromError(c, err)
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Player confirmed successfully", p)
}

// ApprovePlayer godoc
// @Summary      Approve a player
// @Description  Sets the Firewallz verification flag. The player must be confirmed first. Admin only.
// @Tags         Admin
// @Produce      json
// @Param        player_id  path  string  true  "Player ID"
// @Success      200  {object}  responses.SuccessResponse{data=player.Player}
// @Failure      422  {object}  responses.ErrorResponse "Player not confirmed"
// @Security     ApiKeyAuth
// @Router       /admin/players/{player_id}/approve [post]
func (rc *RegistrationController) ApprovePlayer(c *gin.Context) {
	playerID, err := uuid.Parse(c.Param("player_id"))
	if err != nil {
		responses.BadRequest(c, "Invalid player ID")
		return
	}

	p, err := rc.service.ApprovePlayer(playerID)
	if err != nil {
		responses.FromError(c, err)
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Player approved successfully", p)
}

// ApproveTeamPlayer godoc
// @Summary      Approve a team player
// @Description  Manually approves one team membership. Used when auto-approval is switched off. Admin only.
// @Tags         Admin
// @Produce      json
// @Param        team_player_id  path  string  true  "Team player ID"
// @Success      200  {object}  responses.SuccessResponse{data=team.TeamPlayer}
// @Security     ApiKeyAuth
// @Router       /admin/team-players/{team_player_id}/approve [post]
func (rc *RegistrationController) ApproveTeamPlayer(c *gin.Context) {
	teamPlayerID, err := uuid.Parse(c.Param("team_player_id"))
	if err != nil {
		responses.BadRequest(c, "Invalid team player ID")
		return
	}

	tp, err := rc.service.ApproveTeamPlayer(teamPlayerID)
	if err != nil {
		responses.FromError(c, err)
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Team player approved successfully", tp)
}

// ApproveTeam godoc
// @Summary      Approve a team
// @Description  Marks the team Firewallz-verified. Every member must already be approved. Admin only.
// @Tags         Admin
// @Produce      json
// @Param        team_id  path  string  true  "Team ID"
// @Success      200  {object}  responses.SuccessResponse{data=team.Team}
// @Failure      422  {object}  responses.ErrorResponse "A member is not approved"
// @Security     ApiKeyAuth
// @Router       /admin/teams/{team_id}/approve [post]
func (rc *RegistrationController) ApproveTeam(c *gin.Context) {
	teamID, err := uuid.Parse(c.Param("team_id"))
	if err != nil {
		responses.BadRequest(c, "Invalid team ID")
		return
	}

	t, err := rc.service.ApproveTeam(teamID)
	if err != nil {
		responses.FromError(c, err)
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Team approved successfully", t)
}

// LockTeam godoc
// @Summary      Lock a team
// @Description  Freezes the roster after checking it against the sport's player bounds. Admin only.
// @Tags         Admin
// @Produce      json
// @Param        team_id  path  string  true  "Team ID"
// @Success      200  {object}  responses.SuccessResponse{data=team.Team}
// @Failure      422  {object}  responses.ErrorResponse "Roster outside the sport's bounds"
// @Security     ApiKeyAuth
// @Router       /admin/teams/{team_id}/lock [post]
func (rc *RegistrationController) LockTeam(c *gin.Context) {
	teamID, err := uuid.Parse(c.Param("team_id"))
	if err != nil {
		responses.BadRequest(c, "Invalid team ID")
		return
	}

	t, err := rc.service.LockTeam(teamID)
	if err != nil {
		responses.FromError(c, err)
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Team locked successfully", t)
}

// GetStats godoc
// @Summary      Registration statistics
// @Description  Aggregate snapshot of players, teams, payments and registrations. Admin only.
// @Tags         Admin
// @Produce      json
// @Success      200  {object}  responses.SuccessResponse{data=Stats}
// @Security     ApiKeyAuth
// @Router       /admin/stats [get]
func (rc *RegistrationController) GetStats(c *gin.Context) {
	st, err := rc.service.GetStats()
	if err != nil {
		responses.FromError(c, err)
		return
	}
	responses.SendSuccess(c, http.StatusOK, "", st)
}
