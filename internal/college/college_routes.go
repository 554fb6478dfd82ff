package college

import (
	mw "github.com/apogee-dev/firewallz/internal/middleware"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func RegisterCollegeRoutes(router *gin.RouterGroup, db *gorm.DB, jwtSecret string) {
	repo := NewCollegeRepository(db)
	controller := NewCollegeController(repo)

	router.GET("/colleges", controller.ListColleges)

	admin := router.Group("/admin")
	admin.Use(mw.AuthMiddleware(jwtSecret, db), mw.AdminMiddleware(db))
	{
		admin.POST("/colleges", controller.CreateCollege)
		admin.PUT("/colleges/:college_id/representative", controller.SetRepresentative)
		admin.POST("/groups", controller.CreateGroup)
		admin.POST("/groups/:group_id/players", controller.AddGroupPlayer)
	}
}
