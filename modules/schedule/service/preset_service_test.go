package service

import (
	"context"
	"errors"
	"testing"

	"social-planner/modules/schedule/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

type stubPresetRepo struct {
	values   map[uuid.UUID]string
	readErr  error
	writeErr error
	writes   int
}

func (s *stubPresetRepo) GetPreset(_ context.Context, userID uuid.UUID) (string, bool, error) {
	if s.readErr != nil {
		return "", false, s.readErr
	}
	v, ok := s.values[userID]
	return v, ok, nil
}

func (s *stubPresetRepo) SetPreset(_ context.Context, userID uuid.UUID, value string) error {
	s.writes++
	if s.writeErr != nil {
		return s.writeErr
	}
	s.values[userID] = value
	return nil
}

func TestLoadPreset(t *testing.T) {
	userID := uuid.New()

	tests := []struct {
		name   string
		repo   *stubPresetRepo
		preset entity.Preset
	}{
		{name: "absent", repo: &stubPresetRepo{values: map[uuid.UUID]string{}}, preset: entity.PresetDefault},
		{name: "stored", repo: &stubPresetRepo{values: map[uuid.UUID]string{userID: "night_owl"}}, preset: entity.PresetNightOwl},
		{name: "garbage", repo: &stubPresetRepo{values: map[uuid.UUID]string{userID: "owl??"}}, preset: entity.PresetDefault},
		{name: "read failure", repo: &stubPresetRepo{readErr: errors.New("unavailable")}, preset: entity.PresetDefault},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewPresetService(tt.repo)
			assert.Equal(t, tt.preset, svc.LoadPreset(context.Background(), userID))
		})
	}
}

func TestSavePreset(t *testing.T) {
	userID := uuid.New()
	repo := &stubPresetRepo{values: map[uuid.UUID]string{}}
	svc := NewPresetService(repo)

	svc.SavePreset(context.Background(), userID, entity.PresetLateLate)
	assert.Equal(t, "late_late", repo.values[userID])
	assert.Equal(t, entity.PresetLateLate, svc.LoadPreset(context.Background(), userID))

	svc.SavePreset(context.Background(), userID, entity.Preset("bogus"))
	assert.Equal(t, "default", repo.values[userID])

	repo.writeErr = errors.New("read-only replica")
	assert.NotPanics(t, func() {
		svc.SavePreset(context.Background(), userID, entity.PresetNightOwl)
	})
	assert.Equal(t, 3, repo.writes)
	assert.Equal(t, "default", repo.values[userID])
}
