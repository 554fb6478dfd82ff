package auth

import (
	"github.com/apogee-dev/firewallz/internal/models"
)

// Account is the login identity. Player profiles hang off it one-to-one;
// tournament admins are accounts with the admin capability flag set.
type Account struct {
	models.Base
	Name     string `json:"name" gorm:"not null"`
	Email    string `json:"email" gorm:"uniqueIndex;not null"`
	Password string `json:"-" gorm:"not null"`
	IsAdmin  bool   `json:"is_admin" gorm:"default:false"`
}

type RegisterRequest struct {
	Name     string `json:"name" binding:"required" example:"Rohan Mehta"`
	Email    string `json:"email" binding:"required,email" example:"rohan@example.com"`
	Password string `json:"password" binding:"required,min=8,max=72" example:"password123"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email" example:"rohan@example.com"`
	Password string `json:"password" binding:"required" example:"password123"`
}

type AuthResponse struct {
	AccessToken string          `json:"access_token"`
	Account     AccountResponse `json:"account"`
}

type AccountResponse struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	IsAdmin bool   `json:"is_admin"`
}

func toAccountResponse(a *Account) AccountResponse {
	return AccountResponse{
		ID:      a.ID.String(),
		Name:    a.Name,
		Email:   a.Email,
		IsAdmin: a.IsAdmin,
	}
}
