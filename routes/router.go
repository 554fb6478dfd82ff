package routes

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/apogee-dev/firewallz/config"
	"github.com/apogee-dev/firewallz/internal/auth"
	"github.com/apogee-dev/firewallz/internal/college"
	"github.com/apogee-dev/firewallz/internal/player"
	"github.com/apogee-dev/firewallz/internal/registration"
	"github.com/apogee-dev/firewallz/internal/sport"
	"github.com/apogee-dev/firewallz/internal/team"
)

func SetupRoutes(cfg *config.Config) *gin.Engine {
	r := gin.Default()
	r.Use(cors.Default()) // allows all origins, GET/POST/PUT

	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "Firewallz registration API", "docs": "/swagger/index.html"})
	})

	// Swagger route
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// API routes
	api := r.Group("/api")
	authGroup := api.Group("/auth")
	auth.RegisterAuthRoutes(authGroup, config.DB, cfg)

	college.RegisterCollegeRoutes(api, config.DB, cfg.JWT.AccessTokenSecret)
	sport.RegisterSportRoutes(api, config.DB, cfg.JWT.AccessTokenSecret)
	player.RegisterPlayerRoutes(api, config.DB, cfg.JWT.AccessTokenSecret)
	team.RegisterTeamRoutes(api, config.DB, cfg.JWT.AccessTokenSecret)
	registration.RegisterRegistrationRoutes(api, config.DB, cfg)

	return r
}
