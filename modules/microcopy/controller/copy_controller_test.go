package controller

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"social-planner/core/logger"
	"social-planner/modules/microcopy/dto"

	"github.com/coder/quartz"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

type envelope struct {
	Status int             `json:"status"`
	Data   json.RawMessage `json:"data"`
}

func setup(t *testing.T, now time.Time) *echo.Echo {
	t.Helper()
	mClock := quartz.NewMock(t)
	mClock.Set(now)

	e := echo.New()
	ctrl := NewCopyController(mClock, time.UTC)
	e.GET("/completion", ctrl.Completion)
	e.GET("/accept", ctrl.Accept)
	e.GET("/dismiss", ctrl.Dismiss)
	e.GET("/deck-hint", ctrl.DeckHint)
	e.POST("/drafts", ctrl.Drafts)
	e.GET("/recency", ctrl.Recency)
	e.GET("/countdown", ctrl.Countdown)
	return e
}

func do(e *echo.Echo, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	var out T
	require.NoError(t, json.Unmarshal(env.Data, &out))
	return out
}

var june1 = time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC)

func TestCompletion(t *testing.T) {
	t.Run("today from clock", func(t *testing.T) {
		e := setup(t, june1)
		got := decode[dto.CompletionResponse](t, do(e, http.MethodGet, "/completion?archetype=reconnect", ""))
		assert.Equal(t, "2024-06-01", got.Date)
		assert.Equal(t, "Good to reconnect", got.Title)
		assert.Equal(t, "We'll remind everyone before it starts.", got.Subtitle)
	})

	t.Run("explicit date wins over clock", func(t *testing.T) {
		e := setup(t, june1.AddDate(0, 1, 0))
		got := decode[dto.CompletionResponse](t, do(e, http.MethodGet, "/completion?archetype=Re-Connect&date=2024-06-01", ""))
		assert.Equal(t, "Good to reconnect", got.Title)
	})

	t.Run("today follows timezone", func(t *testing.T) {
		e := setup(t, time.Date(2024, 5, 31, 20, 0, 0, 0, time.UTC))
		got := decode[dto.CompletionResponse](t, do(e, http.MethodGet, "/completion?timezone=Asia/Tokyo", ""))
		assert.Equal(t, "2024-06-01", got.Date)
		assert.Equal(t, "Plan made", got.Title)
	})

	t.Run("bad input", func(t *testing.T) {
		e := setup(t, june1)
		assert.Equal(t, http.StatusBadRequest, do(e, http.MethodGet, "/completion?date=06/01/2024", "").Code)
		assert.Equal(t, http.StatusBadRequest, do(e, http.MethodGet, "/completion?timezone=Mars/Base", "").Code)
	})
}

func TestAccept(t *testing.T) {
	e := setup(t, june1)

	first := decode[dto.FeedbackResponse](t, do(e, http.MethodGet, "/accept?archetype=reconnect", ""))
	assert.True(t, first.Show)
	assert.Equal(t, "Love that. Old friends are the best friends.", first.Message)

	second := decode[dto.FeedbackResponse](t, do(e, http.MethodGet, "/accept?archetype=reconnect&n=2", ""))
	assert.False(t, second.Show)
	assert.Empty(t, second.Message)

	food := decode[dto.FeedbackResponse](t, do(e, http.MethodGet, "/accept?category=Food&n=4", ""))
	assert.True(t, food.Show)
	assert.Equal(t, "Good food, better company.", food.Message)

	assert.Equal(t, http.StatusBadRequest, do(e, http.MethodGet, "/accept?n=two", "").Code)
}

func TestDismiss(t *testing.T) {
	e := setup(t, june1)

	shown := decode[dto.FeedbackResponse](t, do(e, http.MethodGet, "/dismiss?archetype=reconnect&index=4", ""))
	assert.True(t, shown.Show)
	assert.Equal(t, "Got it, we'll show fewer like this.", shown.Message)

	hidden := decode[dto.FeedbackResponse](t, do(e, http.MethodGet, "/dismiss?archetype=reconnect&index=0", ""))
	assert.False(t, hidden.Show)
}

func TestDeckHint(t *testing.T) {
	e := setup(t, june1)

	got := decode[dto.DeckHintResponse](t, do(e, http.MethodGet, "/deck-hint?remaining=1", ""))
	assert.Equal(t, 1, got.Remaining)
	assert.Equal(t, "One more to go.", got.Message)
}

func TestDrafts(t *testing.T) {
	e := setup(t, june1)

	body := `{"archetype":"reconnect","friend_first_name":"Sam","event_title":"Board game night"}`
	got := decode[dto.DraftsResponse](t, do(e, http.MethodPost, "/drafts", body))
	assert.Equal(t, "2024-06-01", got.Date)
	assert.Equal(t, []string{
		"Hey Sam! Miss hanging out. Free this weekend?",
		"Yo Sam! We need to do Board game night, it's been ages.",
		"Hi Sam! Free sometime soon? Would love to hang.",
	}, got.Variants)

	assert.Equal(t, http.StatusBadRequest, do(e, http.MethodPost, "/drafts", `{"date":"yesterday"}`).Code)
}

func TestRecency(t *testing.T) {
	e := setup(t, june1)

	got := decode[dto.LabelResponse](t, do(e, http.MethodGet, "/recency?days=8", ""))
	assert.True(t, got.Show)
	assert.Equal(t, "Last week", got.Label)

	none := decode[dto.LabelResponse](t, do(e, http.MethodGet, "/recency?days=400", ""))
	assert.False(t, none.Show)

	assert.Equal(t, http.StatusBadRequest, do(e, http.MethodGet, "/recency", "").Code)
	assert.Equal(t, http.StatusBadRequest, do(e, http.MethodGet, "/recency?days=many", "").Code)
}

func TestCountdown(t *testing.T) {
	now := time.Date(2024, 6, 1, 22, 28, 0, 0, time.UTC)

	tests := []struct {
		name      string
		query     string
		label     string
		refreshAt time.Time
	}{
		{name: "default utc", query: "", label: "New ideas in 1h 30m", refreshAt: time.Date(2024, 6, 2, 0, 0, 0, 0, time.UTC)},
		{name: "berlin is past midnight", query: "?timezone=Europe/Berlin", label: "New ideas in 23h 30m", refreshAt: time.Date(2024, 6, 2, 22, 0, 0, 0, time.UTC)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := setup(t, now)
			got := decode[dto.CountdownResponse](t, do(e, http.MethodGet, "/countdown"+tt.query, ""))
			assert.True(t, got.Show)
			assert.Equal(t, tt.label, got.Label)
			assert.True(t, tt.refreshAt.Equal(got.RefreshAt), "refresh_at=%s", got.RefreshAt)
		})
	}
}

func TestUnknownArchetypeIsLogged(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	logger.Replace(zap.New(core))
	t.Cleanup(func() { logger.Replace(zap.NewNop()) })

	e := setup(t, june1)

	tests := []struct {
		name   string
		method string
		path   string
		body   string
		logged bool
	}{
		{name: "known", method: http.MethodGet, path: "/completion?archetype=reconnect"},
		{name: "alias", method: http.MethodGet, path: "/accept?archetype=catch-up"},
		{name: "blank", method: http.MethodGet, path: "/dismiss"},
		{name: "unknown query", method: http.MethodGet, path: "/completion?archetype=Game%20Night", logged: true},
		{name: "unknown body", method: http.MethodPost, path: "/drafts", body: `{"archetype":"road trip"}`, logged: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logs.TakeAll()
			rec := do(e, tt.method, tt.path, tt.body)
			require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

			entries := logs.FilterMessage("CopyController:UnknownArchetype").TakeAll()
			if !tt.logged {
				assert.Empty(t, entries)
				return
			}
			require.Len(t, entries, 1)
			assert.NotEmpty(t, entries[0].ContextMap()["tag"])
		})
	}

	t.Run("unknown tag still gets fallback copy", func(t *testing.T) {
		got := decode[dto.CompletionResponse](t, do(e, http.MethodGet, "/completion?archetype=game-night", ""))
		assert.NotEmpty(t, got.Title)
	})
}
