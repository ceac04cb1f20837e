// Package pipeline orchestrates the recommendation flow: keyword
// canonicalization, mentor retrieval and ranking, and optional card
// enrichment.
package pipeline

import (
	"context"
	"fmt"
	"os"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/jonathan/mentor-match/internal/cards"
	"github.com/jonathan/mentor-match/internal/canonical"
	"github.com/jonathan/mentor-match/internal/db"
	"github.com/jonathan/mentor-match/internal/llm"
	"github.com/jonathan/mentor-match/internal/mentors"
	"github.com/jonathan/mentor-match/internal/ranking"
	"github.com/jonathan/mentor-match/internal/types"
)

// dbMissingFallback explains a degraded response produced without mentor
// data.
const dbMissingFallback = "database not configured; returned normalized user tags only"

// Deps carries the external dependencies the pipeline runs against. DB may
// be nil, which degrades the run to tag normalization only. Client is
// required only when card filling is requested.
type Deps struct {
	DB     *db.DB
	Client llm.Client
	Logger *zap.Logger
}

// RecommendOptions configures one recommendation run.
type RecommendOptions struct {
	Keywords     []string
	TopN         int
	KeywordTable string
	FillCards    bool
	CardOptions  cards.Options
}

// RecommendResult is the full output of a recommendation run. Fallback is
// non-nil only on degraded runs.
type RecommendResult struct {
	NormalizedUser types.CanonicalTagSet    `json:"normalized_user"`
	TopN           []types.RankedCandidate  `json:"top_n"`
	CardPrompts    []types.CardPrompt       `json:"top5_card_prompts"`
	Cards          []types.Card             `json:"cards"`
	Fallback       *string                  `json:"fallback"`
	Payloads       []types.ValidatorPayload `json:"-"`
}

// RunRecommend executes the recommendation flow for a set of keyword
// sentences. Tag extraction and mentor retrieval run in parallel; ranking,
// payload construction, and optional enrichment follow sequentially.
func RunRecommend(ctx context.Context, deps Deps, opts RecommendOptions) (*RecommendResult, error) {
	log := deps.Logger
	if log == nil {
		log = zap.NewNop()
	}

	result := &RecommendResult{
		TopN:        []types.RankedCandidate{},
		CardPrompts: []types.CardPrompt{},
		Cards:       []types.Card{},
	}

	if deps.DB == nil {
		result.NormalizedUser = canonical.ExtractUserTags(opts.Keywords)
		fallback := dbMissingFallback
		result.Fallback = &fallback
		log.Warn("running without a database connection")
		return result, nil
	}

	var pool []types.Mentor
	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		result.NormalizedUser = canonical.ExtractUserTags(opts.Keywords)
		return nil
	})
	g.Go(func() error {
		table, err := deps.DB.ResolveKeywordTable(gCtx, opts.KeywordTable)
		if err != nil {
			return fmt.Errorf("failed to resolve keyword table: %w", err)
		}
		rows, err := deps.DB.FetchMentorRows(gCtx, table)
		if err != nil {
			return fmt.Errorf("failed to fetch mentors: %w", err)
		}
		pool = mentors.Build(rows)
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	log.Debug("loaded mentor pool", zap.Int("mentors", len(pool)))

	result.TopN = ranking.Rank(
		toSet(result.NormalizedUser.Topics),
		toSet(result.NormalizedUser.Stacks),
		pool,
		opts.TopN,
		ranking.DefaultWeights(),
	)

	payloads, err := cards.BuildValidatorPayloads(result.NormalizedUser, result.TopN, pool)
	if err != nil {
		return nil, err
	}
	result.Payloads = payloads

	result.CardPrompts, err = cards.BuildCardPrompts(payloads)
	if err != nil {
		return nil, err
	}

	if opts.FillCards {
		filler, err := cards.NewFiller(deps.Client, opts.CardOptions)
		if err != nil {
			return nil, err
		}
		result.Cards, err = filler.FillCards(ctx, result.CardPrompts, payloads)
		if err != nil {
			return nil, err
		}
	}

	return result, nil
}

// APIKeyFromEnv returns the generator credential, preferring GEMINI_API_KEY
// over GOOGLE_API_KEY.
func APIKeyFromEnv() string {
	if key := os.Getenv("GEMINI_API_KEY"); key != "" {
		return key
	}
	return os.Getenv("GOOGLE_API_KEY")
}

func toSet(tags []string) map[string]bool {
	set := make(map[string]bool, len(tags))
	for _, tag := range tags {
		set[tag] = true
	}
	return set
}
