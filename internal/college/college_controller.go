package college

import (
	"errors"
	"net/http"

	"github.com/apogee-dev/firewallz/pkg/responses"
	"github.com/apogee-dev/firewallz/pkg/validator"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CollegeController handles college and group HTTP requests
type CollegeController struct {
	repo CollegeRepository
}

// NewCollegeController creates a new college controller
func NewCollegeController(repo CollegeRepository) *CollegeController {
	return &CollegeController{repo: repo}
}

// ListColleges godoc
// @Summary      List colleges
// @Description  Returns all registered colleges, ordered by name.
// @Tags         Colleges
// @Produce      json
// @Success      200  {object}  responses.SuccessResponse{data=[]College}
// @Router       /colleges [get]
func (cc *CollegeController) ListColleges(c *gin.Context) {
	colleges, err := cc.repo.List()
	if err != nil {
		responses.InternalServerError(c, "Failed to list colleges")
		return
	}
	responses.SendSuccess(c, http.StatusOK, "", colleges)
}

// CreateCollege godoc
// @Summary      Create a college
// @Description  Registers a new college. Admin only.
// @Tags         Colleges
// @Accept       json
// @Produce      json
// @Param        college  body  CreateCollegeRequest  true  "College details"
// @Success      201  {object}  responses.SuccessResponse{data=College}
// @Failure      409  {object}  responses.ErrorResponse "College already exists"
// @Security     ApiKeyAuth
// @Router       /admin/colleges [post]
func (cc *CollegeController) CreateCollege(c *gin.Context) {
	var req CreateCollegeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"errors": validator.ParseError(err)})
		return
	}

	if _, err := cc.repo.GetByName(req.Name); !errors.Is(err, gorm.ErrRecordNotFound) {
		responses.SendError(c, http.StatusConflict, "College with this name already exists")
		return
	}

	college := &College{
		Name:       req.Name,
		Address:    req.Address,
		City:       req.City,
		State:      req.State,
		LetterCode: req.LetterCode,
		PcrNotes:   req.PcrNotes,
	}
	if err := cc.repo.Create(college); err != nil {
		responses.FromError(c, err)
		return
	}
	responses.SendSuccess(c, http.StatusCreated, "College created successfully", college)
}

// SetRepresentative godoc
// @Summary      Set the college representative
// @Description  Assigns a player as the college representative. The player must belong to the college, must not be a coach, and must not captain a team.
// @Tags         Colleges
// @Accept       json
// @Produce      json
// @Param        college_id  path  string  true  "College ID"
// @Param        body  body  SetRepresentativeRequest  true  "Representative"
// @Success      200  {object}  responses.SuccessResponse{data=College}
// @Failure      422  {object}  responses.ErrorResponse "Invariant violated"
// @Security     ApiKeyAuth
// @Router       /admin/colleges/{college_id}/representative [put]
func (cc *CollegeController) SetRepresentative(c *gin.Context) {
	collegeID, err := uuid.Parse(c.Param("college_id"))
	if err != nil {
		responses.BadRequest(c, "Invalid college ID")
		return
	}

	var req SetRepresentativeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"errors": validator.ParseError(err)})
		return
	}

	var updated *College
	err = cc.repo.WithTransaction(func(repo CollegeRepository) error {
		college, err := repo.GetByID(collegeID)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			responses.NotFound(c, "College")
			return err
		}
		if err != nil {
			return err
		}
		college.RepresentativeID = &req.PlayerID
		if err := repo.Update(college); err != nil {
			return err
		}
		updated = college
		return nil
	})
	if err != nil {
		if !c.Writer.Written() {
			responses.FromError(c, err)
		}
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Representative set successfully", updated)
}

// CreateGroup godoc
// @Summary      Create a player group
// @Description  Creates a college-scoped group used for batched approvals. Admin only.
// @Tags         Groups
// @Accept       json
// @Produce      json
// @Param        group  body  CreateGroupRequest  true  "Group details"
// @Success      201  {object}  responses.SuccessResponse{data=Group}
// @Security     ApiKeyAuth
// @Router       /admin/groups [post]
func (cc *CollegeController) CreateGroup(c *gin.Context) {
	var req CreateGroupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"errors": validator.ParseError(err)})
		return
	}

	if _, err := cc.repo.GetByID(req.CollegeID); errors.Is(err, gorm.ErrRecordNotFound) {
		responses.NotFound(c, "College")
		return
	}

	group := &Group{
		Name:        req.Name,
		Description: req.Description,
		CollegeID:   req.CollegeID,
		MaxSize:     req.MaxSize,
	}
	if err := cc.repo.CreateGroup(group); err != nil {
		responses.SendError(c, http.StatusConflict, "Group with this name already exists")
		return
	}
	responses.SendSuccess(c, http.StatusCreated, "Group created successfully", group)
}

// AddGroupPlayer godoc
// @Summary      Add a player to a group
// @Description  Adds a player; the player must belong to the group's college and the group must be open and below its size cap.
// @Tags         Groups
// @Accept       json
// @Produce      json
// @Param        group_id  path  string  true  "Group ID"
// @Param        body  body  AddGroupPlayerRequest  true  "Player"
// @Success      200  {object}  responses.SuccessResponse
// @Security     ApiKeyAuth
// @Router       /admin/groups/{group_id}/players [post]
func (cc *CollegeController) AddGroupPlayer(c *gin.Context) {
	groupID, err := uuid.Parse(c.Param("group_id"))
	if err != nil {
		responses.BadRequest(c, "Invalid group ID")
		return
	}

	var req AddGroupPlayerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"errors": validator.ParseError(err)})
		return
	}

	err = cc.repo.WithTransaction(func(repo CollegeRepository) error {
		group, err := repo.GetGroupByID(groupID)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			responses.NotFound(c, "Group")
			return err
		}
		if err != nil {
			return err
		}
		return repo.AddPlayerToGroup(group, req.PlayerID)
	})
	if err != nil {
		if !c.Writer.Written() {
			responses.FromError(c, err)
		}
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Player added to group", nil)
}
