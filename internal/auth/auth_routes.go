package auth

import (
	"github.com/apogee-dev/firewallz/config"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func RegisterAuthRoutes(router *gin.RouterGroup, db *gorm.DB, appConfig *config.Config) {
	repo := NewAuthRepository(db)
	controller := NewAuthController(repo, appConfig)

	router.POST("/register", controller.Register)
	router.POST("/login", controller.Login)
}
