package main

import (
	"flag"
	"os"

	"supermall/auth"
	"supermall/config"
	"supermall/db"
	"supermall/routes"
	"supermall/seed"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/rs/zerolog"
)

func main() {
	seedFlag := flag.Bool("seed", false, "populate demo data and exit")
	flag.Parse()

	cfg := config.Load()

	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = zerolog.InfoLevel
	}
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(level).With().Timestamp().Logger()

	database, err := db.Init(cfg.DatabasePath)
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to connect to database")
	}

	if *seedFlag {
		if err := seed.Run(database); err != nil {
			logger.Fatal().Err(err).Msg("Seeding failed")
		}
		return
	}

	// Create uploads directory if it doesn't exist
	if _, err := os.Stat("uploads"); os.IsNotExist(err) {
		os.Mkdir("uploads", 0755)
	}

	app := fiber.New()

	app.Use(fiberlogger.New())
	app.Use(cors.New())

	app.Static("/uploads", "./uploads")

	tokens := auth.NewTokenService(cfg.JWTSecret)
	routes.SetupRoutes(app, database, logger, tokens)

	logger.Info().Str("port", cfg.Port).Msg("SuperMall server listening")
	if err := app.Listen(":" + cfg.Port); err != nil {
		logger.Fatal().Err(err).Msg("Server stopped")
	}
}
