package team

import (
	mw "github.com/apogee-dev/firewallz/internal/middleware"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func RegisterTeamRoutes(router *gin.RouterGroup, db *gorm.DB, jwtSecret string) {
	repo := NewTeamRepository(db)
	controller := NewTeamController(repo)

	authenticated := router.Group("/")
	authenticated.Use(mw.AuthMiddleware(jwtSecret, db))
	{
		authenticated.GET("/teams/:team_id/members", controller.Members)
	}
}
