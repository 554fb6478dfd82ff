package team

import (
	"errors"
	"net/http"

	"github.com/apogee-dev/firewallz/pkg/responses"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TeamController handles team roster HTTP requests
type TeamController struct {
	repo TeamRepository
}

// NewTeamController creates a new team controller
func NewTeamController(repo TeamRepository) *TeamController {
	return &TeamController{repo: repo}
}

// RosterResponse splits a team's members the way the roster page shows
// them: captain first, then the rest.
type RosterResponse struct {
	Team    *Team        `json:"team"`
	Captain *TeamPlayer  `json:"captain"`
	Members []TeamPlayer `json:"members"`
}

// Members godoc
// @Summary      View team members
// @Description  Returns the team with its captain and member rows.
// @Tags         Teams
// @Produce      json
// @Param        team_id  path  string  true  "Team ID"
// @Success      200  {object}  responses.SuccessResponse{data=RosterResponse}
// @Failure      404  {object}  responses.ErrorResponse "Team not found"
// @Security     ApiKeyAuth
// @Router       /teams/{team_id}/members [get]
func (tc *TeamController) Members(c *gin.Context) {
	teamID, err := uuid.Parse(c.Param("team_id"))
	if err != nil {
		responses.BadRequest(c, "Invalid team ID")
		return
	}

	team, err := tc.repo.GetTeamByID(teamID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		responses.NotFound(c, "Team")
		return
	}
	if err != nil {
		responses.InternalServerError(c, "Failed to load team")
		return
	}

	tps, err := tc.repo.ListTeamPlayers(teamID)
	if err != nil {
		responses.InternalServerError(c, "Failed to load team members")
		return
	}

	roster := RosterResponse{Team: team}
	for i := range tps {
		if team.CaptainID != nil && tps[i].PlayerID == *team.CaptainID {
			roster.Captain = &tps[i]
			continue
		}
		roster.Members = append(roster.Members, tps[i])
	}
	responses.SendSuccess(c, http.StatusOK, "", roster)
}
