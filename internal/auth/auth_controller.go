package auth

import (
	"errors"
	"net/http"
	"strings"

	"github.com/apogee-dev/firewallz/config"
	"github.com/apogee-dev/firewallz/pkg/responses"
	"github.com/apogee-dev/firewallz/pkg/token"
	"github.com/apogee-dev/firewallz/pkg/utils"
	"github.com/apogee-dev/firewallz/pkg/validator"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type AuthController struct {
	repo   AuthRepository
	config *config.Config
}

func NewAuthController(repo AuthRepository, cfg *config.Config) *AuthController {
	return &AuthController{repo: repo, config: cfg}
}

// Register godoc
// @Summary      Register a new account
// @Description  Create a login account with name, email and password.
// @Tags         Auth
// @Accept       json
// @Produce      json
// @Param        account  body  RegisterRequest  true  "Account registration details"
// @Success      201  {object}  responses.SuccessResponse{data=AuthResponse}
// @Failure      400  {object}  responses.ErrorResponse "Validation error or invalid input"
// @Failure      409  {object}  responses.ErrorResponse "Account with this email already exists"
// @Router       /auth/register [post]
func (ac *AuthController) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"errors": validator.ParseError(err)})
		return
	}

	email := strings.ToLower(req.Email)
	if _, err := ac.repo.GetAccountByEmail(email); !errors.Is(err, gorm.ErrRecordNotFound) {
		responses.SendError(c, http.StatusConflict, "Account with this email already exists")
		return
	}

	hashedPassword, err := utils.HashPassword(req.Password)
	if err != nil {
		responses.InternalServerError(c, "Error hashing password")
		return
	}

	account := &Account{
		Name:     req.Name,
		Email:    email,
		Password: hashedPassword,
	}
	if err := ac.repo.CreateAccount(account); err != nil {
		responses.InternalServerError(c, "Failed to create account")
		return
	}

	accessToken, err := token.GenerateJWT(account.ID.String(), account.IsAdmin,
		ac.config.JWT.AccessTokenSecret, ac.config.JWT.AccessTokenExpiryMinutes)
	if err != nil {
		responses.InternalServerError(c, "Failed to generate access token")
		return
	}

	responses.SendSuccess(c, http.StatusCreated, "Account registered successfully", AuthResponse{
		AccessToken: accessToken,
		Account:     toAccountResponse(account),
	})
}

// Login godoc
// @Summary      Log in
// @Description  Exchange email and password for an access token.
// @Tags         Auth
// @Accept       json
// @Produce      json
// @Param        credentials  body  LoginRequest  true  "Login credentials"
// @Success      200  {object}  responses.SuccessResponse{data=AuthResponse}
// @Failure      401  {object}  responses.ErrorResponse "Invalid email or password"
// @Router       /auth/login [post]
func (ac *AuthController) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"errors": validator.ParseError(err)})
		return
	}

	account, err := ac.repo.GetAccountByEmail(strings.ToLower(req.Email))
	if err != nil {
		responses.Unauthorized(c, "Invalid email or password")
		return
	}
	if !utils.CheckPassword(account.Password, req.Password) {
		responses.Unauthorized(c, "Invalid email or password")
		return
	}

	accessToken, err := token.GenerateJWT(account.ID.String(), account.IsAdmin,
		ac.config.JWT.AccessTokenSecret, ac.config.JWT.AccessTokenExpiryMinutes)
	if err != nil {
		responses.InternalServerError(c, "Failed to generate access token")
		return
	}

	responses.SendSuccess(c, http.StatusOK, "Logged in successfully", AuthResponse{
		AccessToken: accessToken,
		Account:     toAccountResponse(account),
	})
}
