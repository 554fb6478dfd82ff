package sport

import (
	"errors"
	"net/http"

	"github.com/apogee-dev/firewallz/pkg/responses"
	"github.com/apogee-dev/firewallz/pkg/validator"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SportController handles sport and event HTTP requests
type SportController struct {
	repo SportRepository
}

// NewSportController creates a new sport controller
func NewSportController(repo SportRepository) *SportController {
	return &SportController{repo: repo}
}

// ListSports godoc
// @Summary      List active sports
// @Tags         Sports
// @Produce      json
// @Success      200  {object}  responses.SuccessResponse{data=[]Sport}
// @Router       /sports [get]
func (sc *SportController) ListSports(c *gin.Context) {
	sports, err := sc.repo.ListActiveSports()
	if err != nil {
		responses.InternalServerError(c, "Failed to list sports")
		return
	}
	responses.SendSuccess(c, http.StatusOK, "", sports)
}

// ListEvents godoc
// @Summary      List events for a sport
// @Tags         Sports
// @Produce      json
// @Param        sport_id  path  string  true  "Sport ID"
// @Success      200  {object}  responses.SuccessResponse{data=[]Event}
// @Router       /sports/{sport_id}/events [get]
func (sc *SportController) ListEvents(c *gin.Context) {
	sportID, err := uuid.Parse(c.Param("sport_id"))
	if err != nil {
		responses.BadRequest(c, "Invalid sport ID")
		return
	}
	events, err := sc.repo.ListEventsForSport(sportID)
	if err != nil {
		responses.InternalServerError(c, "Failed to list events")
		return
	}
	responses.SendSuccess(c, http.StatusOK, "", events)
}

// CreateSport godoc
// @Summary      Create a sport
// @Description  Registers a sport with gender category and player bounds. Admin only.
// @Tags         Sports
// @Accept       json
// @Produce      json
// @Param        sport  body  CreateSportRequest  true  "Sport details"
// @Success      201  {object}  responses.SuccessResponse{data=Sport}
// @Failure      409  {object}  responses.ErrorResponse "Sport already exists for this gender"
// @Security     ApiKeyAuth
// @Router       /admin/sports [post]
func (sc *SportController) CreateSport(c *gin.Context) {
	var req CreateSportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"errors": validator.ParseError(err)})
		return
	}

	sport := &Sport{
		Name:         req.Name,
		Gender:       req.Gender,
		MinPlayers:   req.MinPlayers,
		MaxPlayers:   req.MaxPlayers,
		RulebookLink: req.RulebookLink,
		IsActive:     true,
	}
	if err := sc.repo.CreateSport(sport); err != nil {
		responses.SendError(c, http.StatusConflict, "Sport with this name and gender already exists")
		return
	}
	responses.SendSuccess(c, http.StatusCreated, "Sport created successfully", sport)
}

// CreateEvent godoc
// @Summary      Create an event under a sport
// @Tags         Sports
// @Accept       json
// @Produce      json
// @Param        sport_id  path  string  true  "Sport ID"
// @Param        event  body  CreateEventRequest  true  "Event details"
// @Success      201  {object}  responses.SuccessResponse{data=Event}
// @Failure      409  {object}  responses.ErrorResponse "Event name already used in this sport"
// @Security     ApiKeyAuth
// @Router       /admin/sports/{sport_id}/events [post]
func (sc *SportController) CreateEvent(c *gin.Context) {
	sportID, err := uuid.Parse(c.Param("sport_id"))
	if err != nil {
		responses.BadRequest(c, "Invalid sport ID")
		return
	}

	var req CreateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"errors": validator.ParseError(err)})
		return
	}

	if _, err := sc.repo.GetSportByID(sportID); errors.Is(err, gorm.ErrRecordNotFound) {
		responses.NotFound(c, "Sport")
		return
	}

	event := &Event{
		Name:           req.Name,
		SportID:        sportID,
		IsTwoTeamEvent: req.IsTwoTeamEvent,
		IsPlayerwise:   req.IsPlayerwise,
	}
	if err := sc.repo.CreateEvent(event); err != nil {
		responses.SendError(c, http.StatusConflict, "Event with this name already exists for the sport")
		return
	}
	responses.SendSuccess(c, http.StatusCreated, "Event created successfully", event)
}
