// Package main provides the entry point for the mentor matching CLI and
// HTTP API server.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/jonathan/mentor-match/internal/config"
	"github.com/jonathan/mentor-match/internal/pipeline"
)

var rootCmd = &cobra.Command{
	Use:   "mentor_agent",
	Short: "Mentor matching and portfolio analysis",
	Long:  "Mentor matching canonicalizes portfolio keywords, ranks mentors by topic and stack overlap, and fills recommendation cards through a generator with strict validation.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// loadConfig merges the optional config file with defaults and fills
// credentials from the environment.
func loadConfig(path string) (config.Config, error) {
	cfg := config.Defaults()
	if path != "" {
		fileCfg, err := config.LoadConfig(path)
		if err != nil {
			return config.Config{}, err
		}
		if err := fileCfg.Validate(); err != nil {
			return config.Config{}, err
		}
		cfg = fileCfg.MergeWithDefaults(cfg)
	}

	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	}
	if cfg.APIKey == "" {
		cfg.APIKey = pipeline.APIKeyFromEnv()
	}
	if cfg.KeywordTable == "" {
		cfg.KeywordTable = os.Getenv("KEYWORD_TABLE")
	}
	return cfg, nil
}
