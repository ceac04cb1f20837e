package server

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/jonathan/mentor-match/internal/analyzer"
	"github.com/jonathan/mentor-match/internal/pipeline"
	"github.com/jonathan/mentor-match/internal/ranking"
	"github.com/jonathan/mentor-match/internal/types"
)

// analyzeRequest is the body of POST /analyze.
type analyzeRequest struct {
	Text       string `json:"text" validate:"required"`
	TargetRole string `json:"target_role"`
}

// recommendRequest is the body of POST /recommend. Keywords must be the
// five analyzer sentences.
type recommendRequest struct {
	Keywords []string `json:"keywords" validate:"required,len=5,dive,required"`
	TopN     int      `json:"top_n" validate:"omitempty,min=1"`
}

// recommendResponse is the simplified shape served over HTTP.
type recommendResponse struct {
	NormalizedUser types.CanonicalTagSet       `json:"normalized_user"`
	Top5           []types.SimplifiedCandidate `json:"top5"`
	Fallback       *string                     `json:"fallback"`
}

// handleAnalyze extracts five portfolio keywords through the generator.
func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	if s.client == nil {
		s.errorResponse(w, http.StatusInternalServerError, "generator API key not configured")
		return
	}

	var req analyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	req.Text = strings.TrimSpace(req.Text)
	if err := s.validate.Struct(req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "text_required")
		return
	}

	keywords, err := analyzer.ExtractKeywords(r.Context(), s.client, req.Text, analyzer.Options{
		TargetRole: req.TargetRole,
	})
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "analysis_failed: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string][]string{"keywords": keywords})
}

// handleRecommend canonicalizes the submitted keywords and serves the top
// five ranked mentors. Without a database it degrades to the normalized
// tags plus a fallback notice.
func (s *Server) handleRecommend(w http.ResponseWriter, r *http.Request) {
	var req recommendRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if err := s.validate.Struct(req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "keywords_must_be_array_of_5")
		return
	}
	for i := range req.Keywords {
		req.Keywords[i] = strings.TrimSpace(req.Keywords[i])
	}

	topN := req.TopN
	if topN == 0 {
		topN = s.cfg.TopN
	}
	if topN == 0 {
		topN = 5
	}

	result, err := pipeline.RunRecommend(r.Context(), pipeline.Deps{
		DB:     s.db,
		Logger: s.logger,
	}, pipeline.RecommendOptions{
		Keywords:     req.Keywords,
		TopN:         topN,
		KeywordTable: s.cfg.KeywordTable,
	})
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "recommend_failed: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, recommendResponse{
		NormalizedUser: result.NormalizedUser,
		Top5:           ranking.Simplify(result.TopN),
		Fallback:       result.Fallback,
	})
}
