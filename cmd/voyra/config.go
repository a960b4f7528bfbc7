package main

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Config drives the console planner: data file locations and logging.
type Config struct {
	AirportsFile string `toml:"airports_file"`
	FlightsFile  string `toml:"flights_file"`
	RoutesFile   string `toml:"routes_file"`
	LogLevel     string `toml:"log_level"`
	LogFile      string `toml:"log_file"`
}

// LoadConfig reads the TOML config file, applies defaults, and lets
// environment variables (optionally from a .env file) override paths.
func LoadConfig(configPath string) (*Config, error) {
	var cfg Config
	if configPath != "" {
		if _, err := os.Stat(configPath); err != nil {
			return nil, fmt.Errorf("config file not found: %s", configPath)
		}
		if _, err := toml.DecodeFile(configPath, &cfg); err != nil {
			return nil, fmt.Errorf("failed to decode config file: %w", err)
		}
	}

	// Defaults for optional fields.
	if cfg.AirportsFile == "" {
		cfg.AirportsFile = "data/airports.csv"
	}
	if cfg.FlightsFile == "" {
		cfg.FlightsFile = "data/flights.csv"
	}
	if cfg.RoutesFile == "" {
		cfg.RoutesFile = "data/routes.csv"
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}
	if cfg.LogFile == "" {
		cfg.LogFile = "logs/voyra.log"
	}

	// Environment overrides; a .env file is optional.
	_ = godotenv.Load()
	cfg.AirportsFile = getEnv("VOYRA_AIRPORTS_FILE", cfg.AirportsFile)
	cfg.FlightsFile = getEnv("VOYRA_FLIGHTS_FILE", cfg.FlightsFile)
	cfg.RoutesFile = getEnv("VOYRA_ROUTES_FILE", cfg.RoutesFile)
	cfg.LogLevel = getEnv("VOYRA_LOG_LEVEL", cfg.LogLevel)

	return &cfg, nil
}

// SetupLogger routes logs to a rotated file so the interactive console stays
// clean.
func SetupLogger(cfg *Config) {
	level, err := log.ParseLevel(cfg.LogLevel)
	if err != nil {
		log.Warnf("Invalid log level '%s', using 'info'", cfg.LogLevel)
		level = log.InfoLevel
	}
	log.SetLevel(level)
	log.SetFormatter(&log.TextFormatter{FullTimestamp: true})

	log.SetOutput(&lumberjack.Logger{
		Filename:   cfg.LogFile,
		MaxSize:    50, // MB per file
		MaxBackups: 5,
		MaxAge:     30, // days
		Compress:   true,
	})
}

// getEnv returns the environment value for key, or fallback when unset.
func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}

	return fallback
}
