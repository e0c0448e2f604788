package config

import (
	"log"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds the full application configuration loaded from environment
// variables or a .env file.
//
// It is composed of smaller structs that represent different concerns of
// the system: the HTTP server and the analysis engine tunables.
//
// Example ENV equivalent:
//
//	SERVER_PORT=8080
//	FEED_TIMEZONE=America/New_York
//	MARTINGALE_WINDOW_SECONDS=60
//	INTERVAL_CEILINGS=1,5,15,30,45,60,120,240,480,960,3600
type Config struct {
	Server   ServerConfig   // HTTP server configuration
	Analysis AnalysisConfig // Engine tunables
}

// ServerConfig holds HTTP server settings such as the port to listen on.
type ServerConfig struct {
	Port string // The TCP port the HTTP server will listen on (e.g., "8080")
}

// AnalysisConfig defines the engine tunables.
//
// Fields:
//   - Timezone: IANA name the feed timestamps are converted into.
//   - Location: resolved *time.Location for Timezone.
//   - MartingaleWindow: max gap between a loss and its reversal trade.
//   - IntervalCeilings: ascending interval band ceilings, in seconds. The
//     observed maximum gap is always appended at analysis time.
type AnalysisConfig struct {
	Timezone         string
	Location         *time.Location
	MartingaleWindow time.Duration
	IntervalCeilings []float64
}

// AppConfig is the globally accessible configuration instance.
//
// It is populated once via LoadConfig() and used throughout the
// application. Services read from AppConfig instead of reloading
// environment variables directly.
var AppConfig Config

// defaultCeilings mirrors the interval table of the upstream analysis:
// ceilings answer "what fraction of trades recur within at most T seconds".
var defaultCeilings = []float64{1, 5, 15, 30, 45, 60, 120, 240, 480, 960, 3600}

// LoadConfig initializes the global AppConfig by reading from a .env file
// or directly from environment variables.
//
// Precedence (from lowest to highest):
//  1. Defaults set in this function.
//  2. Values from .env file (if present).
//  3. Environment variables.
//
// Fatal exit:
//   - If required variables are missing or malformed, validateConfig()
//     terminates the app with a descriptive log message.
func LoadConfig() {
	// Default values
	viper.SetDefault("SERVER_PORT", "8080")
	viper.SetDefault("FEED_TIMEZONE", "America/New_York")
	viper.SetDefault("MARTINGALE_WINDOW_SECONDS", 60)
	viper.SetDefault("INTERVAL_CEILINGS", "")

	// Optionally read from .env if present (common in local dev)
	viper.SetConfigFile(".env")
	_ = viper.ReadInConfig() // ignore error if no .env

	// Read environment variables automatically
	viper.AutomaticEnv()

	AppConfig = Config{
		Server: ServerConfig{
			Port: viper.GetString("SERVER_PORT"),
		},
		Analysis: AnalysisConfig{
			Timezone:         viper.GetString("FEED_TIMEZONE"),
			MartingaleWindow: time.Duration(viper.GetInt("MARTINGALE_WINDOW_SECONDS")) * time.Second,
			IntervalCeilings: parseCeilings(viper.GetString("INTERVAL_CEILINGS")),
		},
	}

	validateConfig()
}

// parseCeilings turns a comma-separated ceiling list into floats. An empty
// value selects the defaults; a malformed entry is reported at validation.
func parseCeilings(s string) []float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return append([]float64(nil), defaultCeilings...)
	}
	var out []float64
	for _, part := range strings.Split(s, ",") {
		v, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
		if err != nil {
			return nil // caught by validateConfig
		}
		out = append(out, v)
	}
	return out
}

// validateConfig ensures required variables are present and well-formed,
// and terminates the application if they are not.
//
// This avoids unexpected runtime failures due to incomplete configuration.
func validateConfig() {
	var missing []string

	if AppConfig.Server.Port == "" {
		missing = append(missing, "SERVER_PORT")
	}
	if AppConfig.Analysis.Timezone == "" {
		missing = append(missing, "FEED_TIMEZONE")
	} else {
		loc, err := time.LoadLocation(AppConfig.Analysis.Timezone)
		if err != nil {
			log.Fatalf("invalid FEED_TIMEZONE %q: %v\n", AppConfig.Analysis.Timezone, err)
		}
		AppConfig.Analysis.Location = loc
	}
	if AppConfig.Analysis.MartingaleWindow <= 0 {
		missing = append(missing, "MARTINGALE_WINDOW_SECONDS")
	}
	if len(AppConfig.Analysis.IntervalCeilings) == 0 {
		missing = append(missing, "INTERVAL_CEILINGS")
	} else {
		for i := 1; i < len(AppConfig.Analysis.IntervalCeilings); i++ {
			if AppConfig.Analysis.IntervalCeilings[i] <= AppConfig.Analysis.IntervalCeilings[i-1] {
				log.Fatalf("INTERVAL_CEILINGS must be strictly ascending, got %v\n", AppConfig.Analysis.IntervalCeilings)
			}
		}
	}

	if len(missing) > 0 {
		log.Fatalf("missing or invalid environment variables: %v\n", missing)
	}
}
