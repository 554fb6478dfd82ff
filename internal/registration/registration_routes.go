package registration

import (
	"github.com/apogee-dev/firewallz/config"
	mw "github.com/apogee-dev/firewallz/internal/middleware"
	"github.com/apogee-dev/firewallz/internal/player"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func RegisterRegistrationRoutes(router *gin.RouterGroup, db *gorm.DB, cfg *config.Config) {
	service := NewService(db, cfg)
	controller := NewRegistrationController(service, player.NewPlayerRepository(db))

	authed := router.Group("")
	authed.Use(mw.AuthMiddleware(cfg.JWT.AccessTokenSecret, db))
	{
		authed.POST("/players", controller.CreatePlayer)
		authed.GET("/players/me/dashboard", controller.GetDashboard)
		authed.POST("/payments/base", controller.RecordBasePayment)
		authed.POST("/registrations", controller.RegisterForEvent)
		authed.POST("/payments/sport/:team_player_id", controller.RecordSportPayment)
	}

	admin := router.Group("/admin")
	admin.Use(mw.AuthMiddleware(cfg.JWT.AccessTokenSecret, db), mw.AdminMiddleware(db))
	{
		admin.POST("/teams/:team_id/captain", controller.PromoteToCaptain)
		admin.POST("/teams/:team_id/approve", controller.ApproveTeam)
		admin.POST("/teams/:team_id/lock", controller.LockTeam)
		admin.POST("/players/:player_id/confirm", controller.ConfirmPlayer)
		admin.POST("/players/:player_id/approve", controller.ApprovePlayer)
		admin.POST("/players/:player_id/mark-paid", controller.MarkBasePaid)
		admin.POST("/team-players/:team_player_id/approve", controller.ApproveTeamPlayer)
		admin.GET("/stats", controller.GetStats)
	}
}
