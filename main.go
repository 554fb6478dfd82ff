package main

import (
	"log"

	"github.com/apogee-dev/firewallz/config"
	"github.com/apogee-dev/firewallz/internal/auth"
	"github.com/apogee-dev/firewallz/internal/college"
	"github.com/apogee-dev/firewallz/internal/payment"
	"github.com/apogee-dev/firewallz/internal/player"
	"github.com/apogee-dev/firewallz/internal/sport"
	"github.com/apogee-dev/firewallz/internal/team"
	"github.com/apogee-dev/firewallz/routes"
)

// @title Firewallz Registration API
// @version 1.0
// @description Registration and payment tracking for inter-college sports events.
// @host localhost:8088
// @BasePath /api
func main() {
	if err := config.Initialize(); err != nil {
		log.Fatalf("Failed to initialize application: %v", err)
	}

	cfg := config.GetConfig()

	err := config.DB.AutoMigrate(
		&auth.Account{},
		&college.College{}, &college.Group{}, &college.GroupPlayer{},
		&sport.Sport{}, &sport.Event{},
		&player.Player{},
		&team.Team{}, &team.TeamPlayer{},
		&payment.Transaction{}, &payment.BasePayment{}, &payment.SportPayment{},
	)
	if err != nil {
		log.Fatalf("AutoMigrate failed: %v", err)
	}
	log.Println("AutoMigrate successful")

	r := routes.SetupRoutes(cfg)

	// Use port from loaded configuration
	log.Printf("Starting server on port %s in %s mode\n", cfg.App.Port, cfg.App.Env)
	if err := r.Run(":" + cfg.App.Port); err != nil {
		log.Fatalf("Failed to run server: %v", err)
	}
}
