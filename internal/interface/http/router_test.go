package http

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/brainsacos-ui/asistente-linux/internal/domain/qa"
	"github.com/brainsacos-ui/asistente-linux/internal/infra/config"
	apperrors "github.com/brainsacos-ui/asistente-linux/pkg/errors"
)

type stubQA struct {
	answerFn   func(ctx context.Context, req qa.Request) (qa.Response, error)
	questions  []string
	trending   []qa.TrendingQuery
	trendingFn func(ctx context.Context) ([]qa.TrendingQuery, error)
}

func (s *stubQA) Answer(ctx context.Context, req qa.Request) (qa.Response, error) {
	if s.answerFn != nil {
		return s.answerFn(ctx, req)
	}
	return qa.Response{}, nil
}

func (s *stubQA) Questions(context.Context) []string {
	return s.questions
}

func (s *stubQA) Trending(ctx context.Context) ([]qa.TrendingQuery, error) {
	if s.trendingFn != nil {
		return s.trendingFn(ctx)
	}
	return s.trending, nil
}

func newRouterUnderTest(t *testing.T, svc qa.Service) http.Handler {
	t.Helper()
	cfg := &config.Config{
		HTTP: config.HTTPConfig{
			Address:      ":0",
			ReadTimeout:  time.Second,
			WriteTimeout: time.Second,
		},
	}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewRouter(cfg, NewHandler(svc, logger)).Handler
}

func performRequest(method, path, body string, handler http.Handler) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, req)
	return recorder
}

func decodeErrorBody(t *testing.T, payload []byte) map[string]map[string]string {
	t.Helper()
	var body map[string]map[string]string
	require.NoError(t, json.Unmarshal(payload, &body))
	return body
}

func TestRouter_AskSuccess(t *testing.T) {
	resp := qa.Response{
		Question: "espacio libre",
		Answer:   "df -h",
		Match:    qa.MatchContains,
	}
	svc := &stubQA{
		answerFn: func(_ context.Context, req qa.Request) (qa.Response, error) {
			require.Equal(t, "espacio libre", req.Question)
			return resp, nil
		},
	}

	recorder := performRequest(http.MethodPost, "/api/v1/preguntas", `{"question":"espacio libre"}`, newRouterUnderTest(t, svc))
	require.Equal(t, http.StatusOK, recorder.Code)
	require.NotEmpty(t, recorder.Header().Get("X-Request-Id"))

	var got qa.Response
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &got))
	require.Equal(t, resp, got)
}

func TestRouter_AskMissStillOK(t *testing.T) {
	svc := &stubQA{
		answerFn: func(context.Context, qa.Request) (qa.Response, error) {
			return qa.Response{Answer: qa.NotFoundMessage, Match: qa.MatchNone}, nil
		},
	}

	recorder := performRequest(http.MethodPost, "/api/v1/preguntas", `{"question":"sin respuesta"}`, newRouterUnderTest(t, svc))
	require.Equal(t, http.StatusOK, recorder.Code)

	var got qa.Response
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &got))
	require.Equal(t, qa.NotFoundMessage, got.Answer)
	require.Equal(t, qa.MatchNone, got.Match)
}

func TestRouter_AskInvalidJSON(t *testing.T) {
	recorder := performRequest(http.MethodPost, "/api/v1/preguntas", `{"question":123}`, newRouterUnderTest(t, &stubQA{}))
	require.Equal(t, http.StatusBadRequest, recorder.Code)

	errBody := decodeErrorBody(t, recorder.Body.Bytes())
	require.Equal(t, "invalid_request", errBody["error"]["code"])
	require.NotEmpty(t, errBody["error"]["message"])
}

func TestRouter_Questions(t *testing.T) {
	svc := &stubQA{questions: []string{"primera", "segunda"}}

	recorder := performRequest(http.MethodGet, "/api/v1/preguntas", "", newRouterUnderTest(t, svc))
	require.Equal(t, http.StatusOK, recorder.Code)

	var body map[string][]string
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
	require.Equal(t, []string{"primera", "segunda"}, body["questions"])
}

func TestRouter_AskInvalidInput(t *testing.T) {
	svc := &stubQA{
		answerFn: func(context.Context, qa.Request) (qa.Response, error) {
			return qa.Response{}, apperrors.Wrap(apperrors.CodeInvalidInput, "question cannot be processed", nil)
		},
	}

	recorder := performRequest(http.MethodPost, "/api/v1/preguntas", `{"question":"x"}`, newRouterUnderTest(t, svc))
	require.Equal(t, http.StatusBadRequest, recorder.Code)

	errBody := decodeErrorBody(t, recorder.Body.Bytes())
	require.Equal(t, "invalid_request", errBody["error"]["code"])
	require.Equal(t, "question cannot be processed", errBody["error"]["message"])
}

func TestRouter_TrendingFailure(t *testing.T) {
	cause := errors.New("dial tcp 10.0.0.5:6379: connection refused")
	svc := &stubQA{
		trendingFn: func(context.Context) ([]qa.TrendingQuery, error) {
			return nil, apperrors.Wrap(apperrors.CodeStatsError, "stats backend unavailable", cause)
		},
	}

	recorder := performRequest(http.MethodGet, "/api/v1/tendencias", "", newRouterUnderTest(t, svc))
	require.Equal(t, http.StatusInternalServerError, recorder.Code)

	errBody := decodeErrorBody(t, recorder.Body.Bytes())
	require.Equal(t, "stats_error", errBody["error"]["code"])
	require.Equal(t, "stats backend unavailable", errBody["error"]["message"])
	require.NotContains(t, recorder.Body.String(), cause.Error(), "backend detail must stay out of the response")
}

func TestRouter_Health(t *testing.T) {
	recorder := performRequest(http.MethodGet, "/healthz", "", newRouterUnderTest(t, &stubQA{}))
	require.Equal(t, http.StatusOK, recorder.Code)
}
