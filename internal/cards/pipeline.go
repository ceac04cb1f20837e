package cards

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/jonathan/mentor-match/internal/llm"
	"github.com/jonathan/mentor-match/internal/types"
)

const (
	defaultMaxConcurrency = 3
	defaultRetry          = 1
	defaultCacheDir       = "cache/cards"
)

// Options configures the enrichment pipeline.
type Options struct {
	// MaxConcurrency bounds the number of in-flight generator calls.
	MaxConcurrency int
	// Retry is the number of additional attempts after the first failure.
	Retry int
	// CacheDir is the root of the file cache.
	CacheDir string
	Logger   *zap.Logger
}

func (o *Options) applyDefaults() {
	if o.MaxConcurrency < 1 {
		o.MaxConcurrency = defaultMaxConcurrency
	}
	if o.Retry < 0 {
		o.Retry = defaultRetry
	}
	if o.CacheDir == "" {
		o.CacheDir = defaultCacheDir
	}
	if o.Logger == nil {
		o.Logger = zap.NewNop()
	}
}

// Filler turns prompt batches into validated cards through a bounded worker
// pool with a shared cache and per-key locking.
type Filler struct {
	client llm.Client
	cache  *Cache
	locks  *lockRegistry
	opts   Options
}

func NewFiller(client llm.Client, opts Options) (*Filler, error) {
	if client == nil {
		return nil, &ConfigError{Message: "generator client is required"}
	}
	opts.applyDefaults()
	return &Filler{
		client: client,
		cache:  NewCache(opts.CacheDir),
		locks:  newLockRegistry(),
		opts:   opts,
	}, nil
}

// FillCards produces exactly one card per prompt, in prompt order. Each
// prompt must have a validator payload for the same mentor at the same
// position. Individual generator failures degrade to fallback cards and
// never abort sibling work.
func (f *Filler) FillCards(ctx context.Context, prompts []types.CardPrompt, validators []types.ValidatorPayload) ([]types.Card, error) {
	if len(prompts) != len(validators) {
		return nil, &ConfigError{
			Message: fmt.Sprintf("got %d prompts but %d validator payloads", len(prompts), len(validators)),
		}
	}
	for i := range prompts {
		if prompts[i].MentorID != validators[i].MentorID {
			return nil, &ConfigError{
				Message: fmt.Sprintf("prompt %d is for mentor %d but validator is for mentor %d",
					i, prompts[i].MentorID, validators[i].MentorID),
			}
		}
	}

	results := make([]types.Card, len(prompts))
	var group errgroup.Group
	group.SetLimit(f.opts.MaxConcurrency)
	for i := range prompts {
		i := i
		group.Go(func() error {
			defer func() {
				// A panicking worker fills its slot with a fallback card
				// instead of taking down the batch.
				if r := recover(); r != nil {
					f.opts.Logger.Error("card worker panicked",
						zap.Int("mentor_id", validators[i].MentorID),
						zap.Any("panic", r))
					card := FallbackCard(validators[i])
					card.Diagnostic = fmt.Sprintf("worker panic: %v", r)
					results[i] = card
				}
			}()
			results[i] = f.fillOne(ctx, prompts[i], validators[i])
			return nil
		})
	}
	// Workers never return errors; failures became fallback cards.
	_ = group.Wait()
	return results, nil
}

// fillOne runs the per-mentor procedure: under the key lock, consult the
// cache, otherwise call the generator up to 1+Retry times, validate, and
// persist. The lock spans the whole sequence so duplicate prompts in one
// batch trigger a single generator call.
func (f *Filler) fillOne(ctx context.Context, prompt types.CardPrompt, validator types.ValidatorPayload) types.Card {
	key := Fingerprint(prompt.Prompt)
	lock := f.locks.get(key)
	lock.Lock()
	defer lock.Unlock()

	if card, ok := f.cache.Load(key, validator); ok {
		f.opts.Logger.Debug("card cache hit",
			zap.Int("mentor_id", validator.MentorID),
			zap.String("key", key))
		return card
	}

	attempts := 1 + f.opts.Retry
	var lastErr error
	for attempt := 1; attempt <= attempts; attempt++ {
		card, err := f.generateOnce(ctx, prompt.Prompt, validator)
		if err != nil {
			lastErr = err
			f.opts.Logger.Warn("card generation attempt failed",
				zap.Int("mentor_id", validator.MentorID),
				zap.Int("attempt", attempt),
				zap.Error(err))
			continue
		}
		if err := f.cache.Store(key, card); err != nil {
			f.opts.Logger.Warn("failed to cache card",
				zap.Int("mentor_id", validator.MentorID),
				zap.Error(err))
		}
		return card
	}

	fallback := FallbackCard(validator)
	if err := f.cache.Store(key, fallback); err != nil {
		f.opts.Logger.Warn("failed to cache fallback card",
			zap.Int("mentor_id", validator.MentorID),
			zap.Error(err))
	}
	// The diagnostic rides only on the returned card, never into the cache,
	// so a later run can retry the generator cleanly.
	if lastErr != nil {
		fallback.Diagnostic = lastErr.Error()
	}
	f.opts.Logger.Info("using fallback card",
		zap.Int("mentor_id", validator.MentorID),
		zap.Error(lastErr))
	return fallback
}

func (f *Filler) generateOnce(ctx context.Context, prompt string, validator types.ValidatorPayload) (types.Card, error) {
	text, err := f.client.GenerateJSON(ctx, prompt)
	if err != nil {
		return types.Card{}, err
	}
	object, err := llm.ExtractJSONObject(text)
	if err != nil {
		return types.Card{}, err
	}
	return ValidateCard([]byte(object), validator)
}
