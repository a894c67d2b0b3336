package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Server ServerConfig
	Log    LogConfig
	App    AppConfig
	OSM    OSMConfig
	Keys   KeysConfig
}

// ServerConfig holds server-specific configuration
type ServerConfig struct {
	Port    int
	GinMode string // debug, release, test
}

// LogConfig holds logging configuration
type LogConfig struct {
	Level  string // debug, info, warn, error
	Format string // json, text
}

// AppConfig holds application-specific configuration
type AppConfig struct {
	WeatherMonths int     // Months of weather history to summarize
	GridSize      int     // Default grid dimension (N for an NxN grid)
	GridDistance  float64 // Default spacing between grid points in miles
	Concurrency   int     // Max grid points analyzed in parallel
}

// OSMConfig identifies this application per the Nominatim usage policy
type OSMConfig struct {
	UserAgent    string
	ContactURL   string
	ContactEmail string
}

// KeysConfig holds credentials for external data providers
type KeysConfig struct {
	MapboxToken     string
	GFWAPIKey       string
	OpenMeteoAPIKey string
}

// Load reads configuration from .env, config file and environment variables
func Load() (*Config, error) {
	// Optional .env file, same convention as the original deployment
	_ = godotenv.Load()

	// Set config file name and paths
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")
	viper.AddConfigPath("$HOME/.shroomie")

	// Set defaults
	viper.SetDefault("server.port", 8080)
	viper.SetDefault("server.ginmode", "release")
	viper.SetDefault("log.level", "info")
	viper.SetDefault("log.format", "text")
	viper.SetDefault("app.weatherMonths", 3)
	viper.SetDefault("app.gridSize", 3)
	viper.SetDefault("app.gridDistance", 1.0)
	viper.SetDefault("app.concurrency", 4)
	viper.SetDefault("osm.useragent", "ShroomieApp/1.0")
	viper.SetDefault("osm.contacturl", "https://github.com/JoeLorenzoMontano/shroomie")
	viper.SetDefault("osm.contactemail", "contact@example.com")
	viper.SetDefault("keys.mapboxtoken", "")
	viper.SetDefault("keys.gfwapikey", "")
	viper.SetDefault("keys.openmeteoapikey", "")

	// Read from environment variables
	viper.SetEnvPrefix("SHROOMIE")
	viper.AutomaticEnv()

	// The provider credentials keep their original, unprefixed names
	_ = viper.BindEnv("keys.mapboxtoken", "MAPBOX_TOKEN")
	_ = viper.BindEnv("keys.gfwapikey", "GFW_API_KEY")
	_ = viper.BindEnv("keys.openmeteoapikey", "OPENMETEO_API_KEY")
	_ = viper.BindEnv("osm.useragent", "OSM_USER_AGENT")
	_ = viper.BindEnv("osm.contacturl", "OSM_CONTACT_URL")
	_ = viper.BindEnv("osm.contactemail", "OSM_CONTACT_EMAIL")

	// Read config file
	if err := viper.ReadInConfig(); err != nil {
		// It's okay if config file doesn't exist, we have defaults
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if !errors.As(err, &configFileNotFoundError) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	// Unmarshal into config struct
	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &cfg, nil
}

// GetServerAddr returns the server address in the format ":port"
func (c *Config) GetServerAddr() string {
	return fmt.Sprintf(":%d", c.Server.Port)
}

// NominatimUserAgent builds the User-Agent header Nominatim requires
func (c *Config) NominatimUserAgent() string {
	return fmt.Sprintf("%s (%s; %s)", c.OSM.UserAgent, c.OSM.ContactURL, c.OSM.ContactEmail)
}

// NewLogger creates a new slog.Logger based on the configuration
func (c *Config) NewLogger() *slog.Logger {
	// Parse log level
	var level slog.Level
	switch strings.ToLower(c.Log.Level) {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn", "warning":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	// Create handler options
	opts := &slog.HandlerOptions{
		Level: level,
	}

	// Choose handler based on format
	var handler slog.Handler
	switch strings.ToLower(c.Log.Format) {
	case "json":
		handler = slog.NewJSONHandler(os.Stdout, opts)
	default: // "text" or anything else
		handler = slog.NewTextHandler(os.Stdout, opts)
	}

	return slog.New(handler)
}
