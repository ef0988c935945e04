package qa

import (
	"context"
	"log/slog"
	"strings"

	apperrors "github.com/brainsacos-ui/asistente-linux/pkg/errors"
)

// Service answers questions against a fixed corpus.
type Service interface {
	Answer(ctx context.Context, req Request) (Response, error)
	Questions(ctx context.Context) []string
	Trending(ctx context.Context) ([]TrendingQuery, error)
}

type service struct {
	cfg    Config
	corpus []Entry
	store  Store
	logger *slog.Logger
}

// NewService wires up the QA domain. The corpus is owned by the service for
// the lifetime of the process and never mutated after load.
func NewService(cfg Config, corpus []Entry, store Store, logger *slog.Logger) Service {
	if cfg.FuzzyThreshold <= 0 {
		cfg.FuzzyThreshold = DefaultFuzzyThreshold
	}
	return &service{
		cfg:    cfg,
		corpus: corpus,
		store:  store,
		logger: logger.With("component", "qa.service"),
	}
}

// Answer resolves one query. Lookups never fail: an empty question, an empty
// corpus, and a query with no acceptable candidate all produce a defined
// Response carrying the not-found message. Stats failures are logged and do
// not affect the answer.
func (s *service) Answer(ctx context.Context, req Request) (Response, error) {
	question := strings.TrimSpace(req.Question)
	normalized := Normalize(question)

	m := match(s.corpus, question, s.cfg.FuzzyThreshold)

	resp := Response{
		Question: question,
		Match:    m.Kind,
	}
	switch m.Kind {
	case MatchExact, MatchContains:
		resp.Answer = m.Entry.Answer
		resp.MatchedQuestion = m.Entry.Question
	case MatchFuzzy:
		resp.Answer = m.Entry.Answer + ApproxSuffix
		resp.MatchedQuestion = m.Entry.Question
	default:
		resp.Answer = NotFoundMessage
	}

	if normalized != "" {
		if err := s.store.IncrementQuery(ctx, normalized, question); err != nil {
			s.logger.Warn("trending increment failed", "error", err)
		}
	}

	recs, err := s.store.TopQueries(ctx, s.cfg.TopRecommendations)
	if err != nil {
		s.logger.Warn("trending fetch failed", "error", err)
		recs = nil
	}
	resp.Recommendations = recs

	return resp, nil
}

// Questions enumerates the corpus questions in load order.
func (s *service) Questions(_ context.Context) []string {
	questions := make([]string, len(s.corpus))
	for i, entry := range s.corpus {
		questions[i] = entry.Question
	}
	return questions
}

// Trending returns the most frequently asked queries.
func (s *service) Trending(ctx context.Context) ([]TrendingQuery, error) {
	recs, err := s.store.TopQueries(ctx, s.cfg.TopRecommendations)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.CodeStatsError, "failed to load trending queries", err)
	}
	return recs, nil
}
