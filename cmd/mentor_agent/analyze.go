package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/jonathan/mentor-match/internal/analyzer"
	"github.com/jonathan/mentor-match/internal/llm"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze [input]",
	Short: "Extract five portfolio keywords via the generator",
	Long:  "Extract the five most essential keywords from a portfolio text file (or stdin with '-') and write them as a JSON array. PII is masked before the text leaves the process.",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runAnalyze,
}

var (
	analyzeRole       string
	analyzeModel      string
	analyzeOutputFile string
	analyzeNoMask     bool
	analyzeConfigFile string
	analyzeAPIKey     string
)

func init() {
	analyzeCmd.Flags().StringVar(&analyzeRole, "role", analyzer.DefaultTargetRole, "Target role (Backend/Frontend/Mobile/Data)")
	analyzeCmd.Flags().StringVar(&analyzeModel, "model", "", "Gemini model name (overrides config)")
	analyzeCmd.Flags().StringVarP(&analyzeOutputFile, "out", "o", "result.json", "Output path for the keyword JSON array")
	analyzeCmd.Flags().BoolVar(&analyzeNoMask, "no-mask", false, "Disable PII masking (masking is on by default)")
	analyzeCmd.Flags().StringVar(&analyzeConfigFile, "config", "", "Path to JSON config file")
	analyzeCmd.Flags().StringVar(&analyzeAPIKey, "api-key", "", "Gemini API key (overrides GEMINI_API_KEY env var)")

	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(_ *cobra.Command, args []string) error {
	cfg, err := loadConfig(analyzeConfigFile)
	if err != nil {
		return err
	}
	if analyzeAPIKey != "" {
		cfg.APIKey = analyzeAPIKey
	}
	if cfg.APIKey == "" {
		return fmt.Errorf("API key is required (set GEMINI_API_KEY environment variable or use --api-key)")
	}
	if analyzeModel != "" {
		cfg.Model = analyzeModel
	}

	text, err := readInput(args)
	if err != nil {
		return err
	}
	if strings.TrimSpace(text) == "" {
		return fmt.Errorf("input text is empty")
	}

	ctx := context.Background()
	llmConfig := llm.DefaultConfig().
		WithModel(cfg.Model).
		WithTimeout(time.Duration(cfg.TimeoutSeconds) * time.Second)
	client, err := llm.NewClient(ctx, llmConfig, cfg.APIKey)
	if err != nil {
		return fmt.Errorf("failed to create generator client: %w", err)
	}
	defer func() { _ = client.Close() }()

	keywords, err := analyzer.ExtractKeywords(ctx, client, text, analyzer.Options{
		TargetRole:     analyzeRole,
		DisableMasking: analyzeNoMask,
	})
	if err != nil {
		return err
	}

	encoded, err := json.MarshalIndent(keywords, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode keywords: %w", err)
	}
	if err := os.WriteFile(analyzeOutputFile, encoded, 0o644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}

	fmt.Printf("Saved: %s\n", analyzeOutputFile)
	fmt.Printf("  keywords: %s\n", strings.Join(keywords, ", "))
	return nil
}

// readInput loads the portfolio text from the argument path, or stdin when
// the argument is missing or "-".
func readInput(args []string) (string, error) {
	if len(args) == 0 || args[0] == "-" {
		raw, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("failed to read stdin: %w", err)
		}
		return string(raw), nil
	}
	raw, err := os.ReadFile(args[0])
	if err != nil {
		return "", fmt.Errorf("failed to read input file: %w", err)
	}
	return string(raw), nil
}
