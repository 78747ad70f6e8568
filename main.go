// main.go
package main

import (
	"log"

	"flight-booking/cmd"
	"flight-booking/internal/data/repository"
	"flight-booking/internal/integration/identity"
	"flight-booking/internal/integration/verteil"
	"flight-booking/internal/wire"
	"flight-booking/pkg/auth"
	"flight-booking/pkg/database"
	"flight-booking/pkg/utils"

	"go.uber.org/zap"
)

func main() {
	// Load config
	config, err := utils.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	logger, err := utils.InitLogger(config.App.LogPath, config.App.Debug)
	if err != nil {
		log.Printf("Failed to init logger: %v. Using standard log.", err)
		logger, _ = zap.NewProduction()
	}
	defer logger.Sync()

	logger.Info("Starting application",
		zap.String("app", config.App.Name),
		zap.String("port", config.App.Port),
		zap.Bool("debug", config.App.Debug),
		zap.Any("configured", config.Presence()),
	)

	// Connect to database. A missing or bad URL keeps the process up so the
	// health endpoint can report it.
	db, err := database.InitDB(config.Database)
	if err != nil {
		logger.Warn("Database unavailable, serving without it", zap.Error(err))
		db = database.Unconfigured()
	}
	defer db.Close()

	// Initialize all repositories
	repos := repository.NewRepository(db, logger)

	// Session verification. Without a key every session is rejected.
	sessions, err := auth.NewJWTVerifier(config.Identity.JWTPublicKey)
	if err != nil {
		logger.Fatal("Failed to parse session verification key", zap.Error(err))
	}
	if config.Identity.JWTPublicKey == "" {
		logger.Warn("IDENTITY_JWT_PUBLIC_KEY not set, all sessions will be rejected")
	}

	roles := identity.NewClient(config.Identity.APIURL, config.Identity.SecretKey, config.Identity.Timeout, logger)
	backend := verteil.NewClient(config.Verteil.BaseURL, config.Verteil.APIKey, config.Verteil.Timeout, logger)

	// Wire all dependencies
	app := wire.Wiring(wire.Deps{
		Repo:     repos,
		Backend:  backend,
		Sessions: sessions,
		Roles:    roles,
	}, config, logger)

	// Start server
	logger.Info("Starting HTTP server", zap.String("port", config.App.Port))

	if err := cmd.APIServer(app.Router, config.App.Port, logger); err != nil {
		logger.Fatal("Server stopped", zap.Error(err))
	}
}
