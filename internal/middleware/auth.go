package middleware

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/apogee-dev/firewallz/pkg/token"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	AuthAccountIDKey = "auth_account_id"
	AuthIsAdminKey   = "auth_is_admin"
)

func AuthMiddleware(jwtSecret string, db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization header is required"})
			return
		}

		bearerToken := strings.Split(authHeader, " ")
		if len(bearerToken) != 2 || strings.ToLower(bearerToken[0]) != "bearer" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid Authorization header format. Expected: Bearer <token>"})
			return
		}

		claims, err := token.ValidateJWT(bearerToken[1], jwtSecret)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token: " + err.Error()})
			return
		}

		accountID, err := uuid.Parse(claims.AccountID)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid account ID in token"})
			return
		}

		var exists bool
		if err := db.Table("accounts").Select("1").Where("id = ? AND is_deleted = ?", accountID, false).Scan(&exists).Error; err != nil || !exists {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Account not found or inactive"})
			return
		}

		c.Set(AuthAccountIDKey, accountID)
		c.Set(AuthIsAdminKey, claims.IsAdmin)
		c.Next()
	}
}

// AdminMiddleware rejects requests whose token lacks the admin capability.
// The flag is re-checked against the accounts table so a revoked admin loses
// access before the token expires.
func AdminMiddleware(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		accountID, err := GetAccountIDFromContext(c)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized: " + err.Error()})
			return
		}

		var isAdmin bool
		if err := db.Table("accounts").Select("is_admin").Where("id = ? AND is_deleted = ?", accountID, false).Scan(&isAdmin).Error; err != nil {
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Failed to check account capabilities"})
			return
		}
		if !isAdmin {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "You don't have permission to access this resource"})
			return
		}

		c.Next()
	}
}

// GetAccountIDFromContext extracts the authenticated account ID from the context
func GetAccountIDFromContext(c *gin.Context) (uuid.UUID, error) {
	accountID, exists := c.Get(AuthAccountIDKey)
	if !exists {
		return uuid.Nil, errors.New("account ID not found in context")
	}

	id, ok := accountID.(uuid.UUID)
	if !ok {
		return uuid.Nil, fmt.Errorf("account ID has unexpected type: %T", accountID)
	}

	return id, nil
}
