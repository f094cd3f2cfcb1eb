package service

import (
	"context"
	"testing"
	"time"

	"social-planner/core/errors"
	"social-planner/modules/availability/entity"
	scheduleentity "social-planner/modules/schedule/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixedPreset struct {
	preset scheduleentity.Preset
	loads  int
}

func (f *fixedPreset) LoadPreset(context.Context, uuid.UUID) scheduleentity.Preset {
	f.loads++
	return f.preset
}

func (f *fixedPreset) SavePreset(context.Context, uuid.UUID, scheduleentity.Preset) {}

func mondayRequest() entity.SearchRequest {
	return entity.SearchRequest{
		Members:         []entity.Member{{ID: "ana"}},
		SearchStart:     at(0, 0),
		SearchEnd:       at(0, 0).AddDate(0, 0, 1),
		DurationMinutes: 60,
	}
}

func TestSuggestRanksWithStoredPreset(t *testing.T) {
	presets := &fixedPreset{preset: scheduleentity.PresetNightOwl}
	svc := NewAvailabilityService(presets, 0)

	got, appErr := svc.Suggest(context.Background(), uuid.New(), mondayRequest(), 5)
	require.Nil(t, appErr)
	assert.Equal(t, 1, presets.loads)
	assert.Equal(t, scheduleentity.PresetNightOwl, got.Preset)
	require.Len(t, got.Suggestions, 5)

	wantStarts := []time.Time{at(20, 0), at(20, 30), at(18, 0), at(18, 30), at(19, 0)}
	ids := map[string]bool{}
	for i, s := range got.Suggestions {
		assert.True(t, wantStarts[i].Equal(s.Start), "position %d: %s", i, s.Start)
		assert.NotEmpty(t, s.ID)
		ids[s.ID] = true
		if i > 0 {
			assert.GreaterOrEqual(t, got.Suggestions[i-1].Score, s.Score)
		}
	}
	assert.Len(t, ids, 5)
}

func TestSuggestLimit(t *testing.T) {
	svc := NewAvailabilityService(&fixedPreset{preset: scheduleentity.PresetDefault}, 0)
	assert.Equal(t, defaultSuggestLimit, svc.DefaultLimit)

	got, appErr := svc.Suggest(context.Background(), uuid.New(), mondayRequest(), 0)
	require.Nil(t, appErr)
	assert.Len(t, got.Suggestions, defaultSuggestLimit)

	svc = NewAvailabilityService(&fixedPreset{preset: scheduleentity.PresetDefault}, 3)
	got, appErr = svc.Suggest(context.Background(), uuid.New(), mondayRequest(), -1)
	require.Nil(t, appErr)
	assert.Len(t, got.Suggestions, 3)
}

func TestSuggestKeepsWindow(t *testing.T) {
	svc := NewAvailabilityService(&fixedPreset{preset: scheduleentity.PresetLateLate}, 100)

	got, appErr := svc.Suggest(context.Background(), uuid.New(), mondayRequest(), 0)
	require.Nil(t, appErr)
	// 09:00 through 23:00 starts on a half-hour grid.
	assert.Len(t, got.Suggestions, 29)
	for _, s := range got.Suggestions {
		assert.GreaterOrEqual(t, s.Start.Hour(), 9)
	}
}

func TestSuggestInvalid(t *testing.T) {
	presets := &fixedPreset{preset: scheduleentity.PresetDefault}
	svc := NewAvailabilityService(presets, 0)

	req := mondayRequest()
	req.Members = nil
	got, appErr := svc.Suggest(context.Background(), uuid.New(), req, 0)
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrInvalidInput, appErr.Code)
	assert.Nil(t, got)
	assert.Zero(t, presets.loads)
}
