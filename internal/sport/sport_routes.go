package sport

import (
	mw "github.com/apogee-dev/firewallz/internal/middleware"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func RegisterSportRoutes(router *gin.RouterGroup, db *gorm.DB, jwtSecret string) {
	repo := NewSportRepository(db)
	controller := NewSportController(repo)

	router.GET("/sports", controller.ListSports)
	router.GET("/sports/:sport_id/events", controller.ListEvents)

	admin := router.Group("/admin")
	admin.Use(mw.AuthMiddleware(jwtSecret, db), mw.AdminMiddleware(db))
	{
		admin.POST("/sports", controller.CreateSport)
		admin.POST("/sports/:sport_id/events", controller.CreateEvent)
	}
}
