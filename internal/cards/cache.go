package cards

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/jonathan/mentor-match/internal/types"
)

// Fingerprint derives the cache key for a rendered prompt. Identical
// prompts always map to the same key, so identical inputs share one cache
// entry across runs.
func Fingerprint(prompt string) string {
	sum := sha256.Sum256([]byte(prompt))
	return hex.EncodeToString(sum[:])
}

// Cache is a file-per-entry card cache keyed by prompt fingerprint.
// Entries are revalidated on read, so a stale entry written under an older
// contract degrades to a miss instead of poisoning results.
type Cache struct {
	dir string
}

func NewCache(dir string) *Cache {
	return &Cache{dir: dir}
}

func (c *Cache) entryPath(key string) string {
	return filepath.Join(c.dir, key+".json")
}

// Load reads and revalidates a cached card. Any failure along the way
// (missing file, unreadable JSON, contract violation) collapses to a miss.
func (c *Cache) Load(key string, validator types.ValidatorPayload) (types.Card, bool) {
	raw, err := os.ReadFile(c.entryPath(key))
	if err != nil {
		return types.Card{}, false
	}
	card, err := ValidateCard(raw, validator)
	if err != nil {
		return types.Card{}, false
	}
	return card, true
}

// Store persists a card under its fingerprint. The write is a single
// WriteFile call so a concurrent reader sees either the old entry or the
// new one, never an interleaving.
func (c *Cache) Store(key string, card types.Card) error {
	if err := os.MkdirAll(c.dir, 0o755); err != nil {
		return fmt.Errorf("failed to create cache dir: %w", err)
	}
	encoded, err := json.MarshalIndent(card, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode card: %w", err)
	}
	if err := os.WriteFile(c.entryPath(key), encoded, 0o644); err != nil {
		return fmt.Errorf("failed to write cache entry: %w", err)
	}
	return nil
}
