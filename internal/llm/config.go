// Package llm provides the single synchronous adapter to the external
// text-generation provider, plus shared response-processing utilities.
package llm

import "time"

// Provider represents an LLM provider
type Provider string

// Provider constants define supported LLM providers
const (
	// ProviderGemini is the Google Gemini provider
	ProviderGemini Provider = "gemini"
)

// DefaultModel is the generation model used when the caller does not
// override it.
const DefaultModel = "gemini-2.0-flash"

// DefaultTimeout bounds one external generation call. Retries are the
// caller's concern; the client itself makes a single attempt.
const DefaultTimeout = 10 * time.Second

// Config holds the generation configuration for the application
type Config struct {
	Provider Provider
	Model    string
	Timeout  time.Duration
}

// DefaultConfig returns the default configuration (currently Gemini)
func DefaultConfig() *Config {
	return &Config{
		Provider: ProviderGemini,
		Model:    DefaultModel,
		Timeout:  DefaultTimeout,
	}
}

// WithModel returns a copy of the config using a specific model.
func (c *Config) WithModel(model string) *Config {
	out := *c
	if model != "" {
		out.Model = model
	}
	return &out
}

// WithTimeout returns a copy of the config using a specific per-call timeout.
func (c *Config) WithTimeout(timeout time.Duration) *Config {
	out := *c
	if timeout > 0 {
		out.Timeout = timeout
	}
	return &out
}
