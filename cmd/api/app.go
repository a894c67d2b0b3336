package main

import (
	"log/slog"

	"github.com/JoeLorenzoMontano/shroomie/internal/analysis"
	"github.com/JoeLorenzoMontano/shroomie/internal/config"
	"github.com/JoeLorenzoMontano/shroomie/internal/location"

	"github.com/gin-gonic/gin"

	_ "github.com/JoeLorenzoMontano/shroomie/docs" // Ensure docs are imported
)

// App encapsulates application dependencies
type App struct {
	router          *gin.Engine
	logger          *slog.Logger
	locationService location.Service
	analysisService analysis.Service
	cfg             *config.Config
}

// NewApp creates a new application with injected dependencies
func NewApp(cfg *config.Config, logger *slog.Logger) (*App, error) {
	// Set Gin mode from configuration
	gin.SetMode(cfg.Server.GinMode)

	// Create Gin router
	router := gin.New()

	// Add middleware
	router.Use(gin.Recovery())

	// Initialize analysis service
	analysisSvc, err := analysis.NewService(cfg, logger)
	if err != nil {
		return nil, err
	}

	app := &App{
		router:          router,
		logger:          logger,
		locationService: location.NewService(cfg.NominatimUserAgent(), logger),
		analysisService: analysisSvc,
		cfg:             cfg,
	}

	// Register routes
	app.registerRoutes()

	return app, nil
}

// Run starts the HTTP server
func (app *App) Run(addr string) error {
	return app.router.Run(addr)
}
