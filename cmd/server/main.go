// Package main is the entry point for the print-shop backend. It loads
// configuration, connects PostgreSQL and Redis, wires the services and
// serves the HTTP API until interrupted.
package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"printdesk/internal/config"
	"printdesk/internal/logger"
	"printdesk/internal/repositories"
	"printdesk/internal/routes"
)

func main() {
	config.LoadEnv()
	logger.Init(config.IsProduction())
	log := logger.Log

	if err := repositories.InitDB(); err != nil {
		log.Fatal().Err(err).Msg("failed to initialize database")
	}
	defer func() {
		if err := repositories.CloseDB(); err != nil {
			log.Warn().Err(err).Msg("failed to close database")
		}
		if repositories.CacheService != nil {
			if err := repositories.CacheService.Close(); err != nil {
				log.Warn().Err(err).Msg("failed to close redis")
			}
		}
	}()

	app := fiber.New(fiber.Config{AppName: "printdesk"})
	app.Use(recover.New())
	app.Use(fiberlogger.New())
	app.Use(cors.New())

	if err := routes.SetupRoutes(app, repositories.DB); err != nil {
		log.Fatal().Err(err).Msg("failed to set up routes")
	}

	go func() {
		addr := ":" + config.GetEnv("PORT", "8080")
		if err := app.Listen(addr); err != nil {
			log.Fatal().Err(err).Msg("server stopped")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down")
	if err := app.Shutdown(); err != nil {
		log.Error().Err(err).Msg("shutdown error")
	}
}
