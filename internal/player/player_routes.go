package player

import (
	mw "github.com/apogee-dev/firewallz/internal/middleware"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func RegisterPlayerRoutes(router *gin.RouterGroup, db *gorm.DB, jwtSecret string) {
	repo := NewPlayerRepository(db)
	controller := NewPlayerController(repo)

	authenticated := router.Group("/")
	authenticated.Use(mw.AuthMiddleware(jwtSecret, db))
	{
		authenticated.GET("/players/me", controller.Me)
	}

	admin := router.Group("/admin")
	admin.Use(mw.AuthMiddleware(jwtSecret, db), mw.AdminMiddleware(db))
	{
		admin.GET("/colleges/:college_id/players", controller.ListCollegePlayers)
	}
}
