package main

import (
	"log"

	"github.com/gofiber/fiber/v2"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"

	"planilla-api/config"
	"planilla-api/pkg/logger"
	"planilla-api/pkg/token"
	"planilla-api/router"

	_ "planilla-api/docs"
)

// @title Payroll Administration API
// @version 1.0
// @description HTTP API for departments, collaborators, salary assignment, fortnights and payroll reports, backed by database stored procedures.
//
// @host localhost:3000
// @BasePath /
// @schemes http https
//
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the token.
func main() {
	cfg := config.LoadConfig()

	logger.Init(cfg.Environment)

	db, err := config.NewDatabase(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to the database: %v", err)
	}
	defer db.Close()

	maker := token.NewMaker(cfg.TokenSecret, token.DefaultDuration)

	app := fiber.New()

	config.SetupCORS(app)
	app.Use(fiberlogger.New())

	router.SetupRoutes(app, db, maker)

	log.Printf("Server running on port %s", cfg.Port)
	log.Printf("API documentation: http://localhost:%s/docs/index.html", cfg.Port)
	log.Fatal(app.Listen(":" + cfg.Port))
}
