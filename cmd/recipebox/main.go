package main

import (
	"context"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/nuzair/recipebox/config"
	"github.com/nuzair/recipebox/internal/catalog"
	"github.com/nuzair/recipebox/internal/cli"
	"github.com/nuzair/recipebox/internal/database"
	"github.com/nuzair/recipebox/internal/repository"
	"github.com/nuzair/recipebox/internal/service"
	"github.com/nuzair/recipebox/internal/tokenstore"
)

func main() {
	// Initialize logger
	logger := logrus.New()
	logger.SetFormatter(&logrus.TextFormatter{})

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		logger.Fatalf("Failed to load config: %v", err)
	}

	logLevel, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		logLevel = logrus.InfoLevel
	}
	logger.SetLevel(logLevel)

	if err := os.MkdirAll(cfg.DataDir, 0o755); err != nil {
		logger.Fatalf("Failed to create data directory: %v", err)
	}

	// Initialize the local store
	db, err := database.Open(cfg.DatabasePath())
	if err != nil {
		logger.Fatalf("Failed to open database: %v", err)
	}

	// Initialize layers
	users := repository.NewGormUsers(db)
	recipes := repository.NewGormRecipes(db)
	tokens := tokenstore.NewKeyring(cfg.KeyringService)

	authService := service.NewAuthService(users, recipes, tokens, logger)
	recipeService := service.NewRecipeService(recipes, catalog.Load(), logger)
	authService.SetRecipeService(recipeService)

	ctx := context.Background()
	authService.CheckForExistingSession(ctx)

	app := cli.NewApp(authService, recipeService)
	app.Run(ctx)
}
