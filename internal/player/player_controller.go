package player

import (
	"errors"
	"net/http"

	mw "github.com/apogee-dev/firewallz/internal/middleware"
	"github.com/apogee-dev/firewallz/pkg/responses"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PlayerController handles player profile HTTP requests
type PlayerController struct {
	repo PlayerRepository
}

// NewPlayerController creates a new player controller
func NewPlayerController(repo PlayerRepository) *PlayerController {
	return &PlayerController{repo: repo}
}

// Me godoc
// @Summary      Get own player profile
// @Tags         Players
// @Produce      json
// @Success      200  {object}  responses.SuccessResponse{data=Player}
// @Failure      404  {object}  responses.ErrorResponse "No profile created yet"
// @Security     ApiKeyAuth
// @Router       /players/me [get]
func (pc *PlayerController) Me(c *gin.Context) {
	accountID, err := mw.GetAccountIDFromContext(c)
	if err != nil {
		responses.Unauthorized(c, err.Error())
		return
	}

	player, err := pc.repo.GetByAccountID(accountID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		responses.NotFound(c, "Player profile")
		return
	}
	if err != nil {
		responses.InternalServerError(c, "Failed to load player profile")
		return
	}
	responses.SendSuccess(c, http.StatusOK, "", player)
}

// ListCollegePlayers godoc
// @Summary      List players of a college
// @Description  Non-coach players of a college, ordered by name. Admin only.
// @Tags         Players
// @Produce      json
// @Param        college_id  path  string  true  "College ID"
// @Success      200  {object}  responses.SuccessResponse{data=[]Player}
// @Security     ApiKeyAuth
// @Router       /admin/colleges/{college_id}/players [get]
func (pc *PlayerController) ListCollegePlayers(c *gin.Context) {
	collegeID, err := uuid.Parse(c.Param("college_id"))
	if err != nil {
		responses.BadRequest(c, "Invalid college ID")
		return
	}

	players, err := pc.repo.ListByCollege(collegeID)
	if err != nil {
		responses.InternalServerError(c, "Failed to list players")
		return
	}
	responses.SendSuccess(c, http.StatusOK, "", players)
}
