package cards

import "fmt"

// ConfigError represents a fatal configuration problem detected before any
// enrichment work is scheduled (missing client, malformed batch shape).
type ConfigError struct {
	Message string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("card pipeline config error: %s", e.Message)
}

// ValidationError represents a card that violates the Card contract or
// asserts facts outside its validator payload. It counts as a retryable
// attempt failure, never a fatal pipeline error.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("card validation error in %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("card validation error: %s", e.Message)
}
