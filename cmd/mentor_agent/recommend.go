package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/jonathan/mentor-match/internal/cards"
	"github.com/jonathan/mentor-match/internal/db"
	"github.com/jonathan/mentor-match/internal/llm"
	"github.com/jonathan/mentor-match/internal/logger"
	"github.com/jonathan/mentor-match/internal/observability"
	"github.com/jonathan/mentor-match/internal/pipeline"
)

var recommendCmd = &cobra.Command{
	Use:   "recommend",
	Short: "Rank mentors against extracted portfolio keywords",
	Long:  "Canonicalize the five keyword sentences, rank mentors by topic/stack overlap and mentoring record, and optionally fill the top five recommendation cards through the generator.",
	RunE:  runRecommend,
}

var (
	recommendKeywordsFile string
	recommendTopN         int
	recommendOutputFile   string
	recommendFillCards    bool
	recommendCardsOut     string
	recommendMergedOut    string
	recommendModel        string
	recommendTimeout      int
	recommendConcurrency  int
	recommendCacheDir     string
	recommendRetry        int
	recommendDatabaseURL  string
	recommendKeywordTable string
	recommendConfigFile   string
	recommendVerbose      bool
)

func init() {
	recommendCmd.Flags().StringVar(&recommendKeywordsFile, "keywords", "result.json", "Path to the 5-sentence keyword JSON array")
	recommendCmd.Flags().IntVar(&recommendTopN, "top-n", 5, "Number of ranked mentors to return")
	recommendCmd.Flags().StringVarP(&recommendOutputFile, "out", "o", "", "Output JSON path (stdout if empty)")
	recommendCmd.Flags().BoolVar(&recommendFillCards, "fill-cards", false, "Call the generator and fill top-5 cards")
	recommendCmd.Flags().StringVar(&recommendCardsOut, "cards-out", "cards.json", "Output path for the filled cards JSON")
	recommendCmd.Flags().StringVar(&recommendMergedOut, "merged-out", "out.json", "Output path for the merged result JSON")
	recommendCmd.Flags().StringVar(&recommendModel, "llm-model", "", "Gemini model name (overrides config)")
	recommendCmd.Flags().IntVar(&recommendTimeout, "llm-timeout", 0, "Generator call timeout in seconds (overrides config)")
	recommendCmd.Flags().IntVar(&recommendConcurrency, "llm-max-concurrency", 0, "Maximum concurrent generator calls (overrides config)")
	recommendCmd.Flags().StringVar(&recommendCacheDir, "llm-cache-dir", "", "Card cache directory (overrides config)")
	recommendCmd.Flags().IntVar(&recommendRetry, "llm-retry", -1, "Extra attempts on generator parse/validation failure (overrides config)")
	recommendCmd.Flags().StringVar(&recommendDatabaseURL, "db-url", "", "PostgreSQL URL (overrides DATABASE_URL env var)")
	recommendCmd.Flags().StringVar(&recommendKeywordTable, "keyword-table", "", "Keyword table name override")
	recommendCmd.Flags().StringVar(&recommendConfigFile, "config", "", "Path to JSON config file")
	recommendCmd.Flags().BoolVarP(&recommendVerbose, "verbose", "v", false, "Print formatted intermediate results")

	rootCmd.AddCommand(recommendCmd)
}

func runRecommend(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig(recommendConfigFile)
	if err != nil {
		return err
	}
	if recommendDatabaseURL != "" {
		cfg.DatabaseURL = recommendDatabaseURL
	}
	if recommendKeywordTable != "" {
		cfg.KeywordTable = recommendKeywordTable
	}
	if recommendModel != "" {
		cfg.Model = recommendModel
	}
	if recommendTimeout > 0 {
		cfg.TimeoutSeconds = recommendTimeout
	}
	if recommendConcurrency > 0 {
		cfg.MaxConcurrency = recommendConcurrency
	}
	if recommendCacheDir != "" {
		cfg.CacheDir = recommendCacheDir
	}
	if recommendRetry >= 0 {
		cfg.Retry = recommendRetry
	}

	keywords, err := loadKeywordSentences(recommendKeywordsFile)
	if err != nil {
		return err
	}

	log, err := logger.New(false, recommendVerbose || cfg.Verbose)
	if err != nil {
		return fmt.Errorf("failed to build logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	ctx := context.Background()
	deps := pipeline.Deps{Logger: log}

	if cfg.DatabaseURL != "" {
		database, err := db.Connect(ctx, cfg.DatabaseURL)
		if err != nil {
			return fmt.Errorf("failed to connect to database: %w", err)
		}
		defer database.Close()
		deps.DB = database
	}

	if recommendFillCards {
		if cfg.APIKey == "" {
			return fmt.Errorf("--fill-cards requires an API key (set GEMINI_API_KEY)")
		}
		llmConfig := llm.DefaultConfig().
			WithModel(cfg.Model).
			WithTimeout(time.Duration(cfg.TimeoutSeconds) * time.Second)
		client, err := llm.NewClient(ctx, llmConfig, cfg.APIKey)
		if err != nil {
			return fmt.Errorf("failed to create generator client: %w", err)
		}
		defer func() { _ = client.Close() }()
		deps.Client = client
	}

	result, err := pipeline.RunRecommend(ctx, deps, pipeline.RecommendOptions{
		Keywords:     keywords,
		TopN:         recommendTopN,
		KeywordTable: cfg.KeywordTable,
		FillCards:    recommendFillCards,
		CardOptions: cards.Options{
			MaxConcurrency: cfg.MaxConcurrency,
			Retry:          cfg.Retry,
			CacheDir:       cfg.CacheDir,
			Logger:         log,
		},
	})
	if err != nil {
		return err
	}

	if recommendVerbose || cfg.Verbose {
		printer := observability.NewPrinter(os.Stderr)
		printer.PrintUserTags(&result.NormalizedUser)
		printer.PrintRanking(result.TopN)
		printer.PrintCards(result.Cards)
	}

	return writeRecommendOutput(result)
}

// loadKeywordSentences reads the analyzer output: a JSON array of exactly
// five sentences.
func loadKeywordSentences(path string) ([]string, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read keywords file: %w", err)
	}
	var sentences []string
	if err := json.Unmarshal(raw, &sentences); err != nil {
		return nil, fmt.Errorf("keywords file must be a JSON array of strings: %w", err)
	}
	if len(sentences) != 5 {
		return nil, fmt.Errorf("keywords file must contain exactly 5 sentences, got %d", len(sentences))
	}
	for i := range sentences {
		sentences[i] = strings.TrimSpace(sentences[i])
	}
	return sentences, nil
}

func writeRecommendOutput(result *pipeline.RecommendResult) error {
	encoded, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode result: %w", err)
	}

	if recommendFillCards {
		cardsEncoded, err := json.MarshalIndent(result.Cards, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to encode cards: %w", err)
		}
		if err := os.WriteFile(recommendCardsOut, cardsEncoded, 0o644); err != nil {
			return fmt.Errorf("failed to write cards file: %w", err)
		}
		if err := os.WriteFile(recommendMergedOut, encoded, 0o644); err != nil {
			return fmt.Errorf("failed to write merged file: %w", err)
		}
		fmt.Println(string(encoded))
		return nil
	}

	if recommendOutputFile != "" {
		if err := os.WriteFile(recommendOutputFile, encoded, 0o644); err != nil {
			return fmt.Errorf("failed to write output file: %w", err)
		}
		return nil
	}

	fmt.Println(string(encoded))
	return nil
}
