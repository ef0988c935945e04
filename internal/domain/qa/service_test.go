package qa

import (
	"context"
	"errors"
	"log/slog"
	"testing"
)

type stubStore struct {
	incremented []string
	displays    []string
	top         []TrendingQuery
	incErr      error
	topErr      error
}

func (s *stubStore) IncrementQuery(_ context.Context, canonical, display string) error {
	if s.incErr != nil {
		return s.incErr
	}
	s.incremented = append(s.incremented, canonical)
	s.displays = append(s.displays, display)
	return nil
}

func (s *stubStore) TopQueries(_ context.Context, _ int) ([]TrendingQuery, error) {
	if s.topErr != nil {
		return nil, s.topErr
	}
	return s.top, nil
}

func newTestService(store Store) Service {
	return NewService(Config{TopRecommendations: 5}, diskCorpus, store, slog.Default())
}

func TestServiceAnswerExact(t *testing.T) {
	store := &stubStore{top: []TrendingQuery{{Query: "espacio libre", Count: 3}}}
	svc := newTestService(store)

	resp, err := svc.Answer(context.Background(), Request{Question: "¿Qué comando muestra el espacio libre en disco?"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Answer != "df -h" {
		t.Fatalf("expected verbatim answer, got %q", resp.Answer)
	}
	if resp.Match != MatchExact {
		t.Fatalf("expected exact match kind, got %q", resp.Match)
	}
	if resp.MatchedQuestion != diskCorpus[0].Question {
		t.Fatalf("expected matched question, got %q", resp.MatchedQuestion)
	}
	if len(resp.Recommendations) != 1 {
		t.Fatalf("expected recommendations passthrough, got %v", resp.Recommendations)
	}
	if len(store.incremented) != 1 || store.incremented[0] != "qué comando muestra el espacio libre en disco" {
		t.Fatalf("expected canonical increment, got %v", store.incremented)
	}
}

func TestServiceAnswerNotFound(t *testing.T) {
	svc := newTestService(&stubStore{})

	resp, err := svc.Answer(context.Background(), Request{Question: "xyz totally unrelated gibberish not linux"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Answer != NotFoundMessage {
		t.Fatalf("expected not-found message, got %q", resp.Answer)
	}
	if resp.Match != MatchNone {
		t.Fatalf("expected no match kind, got %q", resp.Match)
	}
	if resp.MatchedQuestion != "" {
		t.Fatalf("matched question must be empty on a miss, got %q", resp.MatchedQuestion)
	}
}

func TestServiceAnswerEmptyQuestion(t *testing.T) {
	store := &stubStore{}
	svc := newTestService(store)

	// An empty question is valid input: it reaches the matcher (and lands on
	// the first entry through containment) and never increments trending.
	resp, err := svc.Answer(context.Background(), Request{Question: "   "})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Answer != "df -h" {
		t.Fatalf("expected first entry answer, got %q", resp.Answer)
	}
	if len(store.incremented) != 0 {
		t.Fatalf("empty canonical must not be counted, got %v", store.incremented)
	}
}

func TestServiceAnswerSwallowsStatsFailures(t *testing.T) {
	store := &stubStore{incErr: errors.New("valkey down"), topErr: errors.New("valkey down")}
	svc := newTestService(store)

	resp, err := svc.Answer(context.Background(), Request{Question: "espacio libre"})
	if err != nil {
		t.Fatalf("stats failures must not fail the lookup: %v", err)
	}
	if resp.Answer != "df -h" {
		t.Fatalf("expected answer despite stats failure, got %q", resp.Answer)
	}
	if resp.Recommendations != nil {
		t.Fatalf("expected no recommendations on stats failure, got %v", resp.Recommendations)
	}
}

func TestServiceQuestionsOrder(t *testing.T) {
	svc := newTestService(&stubStore{})

	questions := svc.Questions(context.Background())
	if len(questions) != len(diskCorpus) {
		t.Fatalf("expected %d questions, got %d", len(diskCorpus), len(questions))
	}
	for i, entry := range diskCorpus {
		if questions[i] != entry.Question {
			t.Fatalf("position %d: expected %q got %q", i, entry.Question, questions[i])
		}
	}
}

func TestServiceTrendingError(t *testing.T) {
	svc := newTestService(&stubStore{topErr: errors.New("boom")})

	if _, err := svc.Trending(context.Background()); err == nil {
		t.Fatal("expected wrapped stats error")
	}
}
