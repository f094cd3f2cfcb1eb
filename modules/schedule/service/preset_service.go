package service

import (
	"context"
	"time"

	"social-planner/core/constants"
	"social-planner/core/logger"
	"social-planner/modules/schedule/entity"
	"social-planner/modules/schedule/repository"

	"github.com/google/uuid"
)

// PresetService persists the Suggested-Hours preset. Storage is best effort:
// reads fall back to the default preset and failed writes are dropped.
type PresetService struct {
	repo    repository.PresetRepositoryInterface
	timeout time.Duration
}

type PresetServiceInterface interface {
	LoadPreset(ctx context.Context, userID uuid.UUID) entity.Preset
	SavePreset(ctx context.Context, userID uuid.UUID, preset entity.Preset)
}

func NewPresetService(repo repository.PresetRepositoryInterface) *PresetService {
	return &PresetService{repo: repo, timeout: constants.StorageTimeout}
}

func (s *PresetService) LoadPreset(ctx context.Context, userID uuid.UUID) entity.Preset {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	raw, found, err := s.repo.GetPreset(ctx, userID)
	if err != nil {
		logger.Warn("PresetService:LoadPreset:ReadFailed", "user_id", userID.String(), "error", err)
		return entity.PresetDefault
	}
	if !found {
		return entity.PresetDefault
	}

	p := entity.ParsePreset(raw)
	if string(p) != raw {
		logger.Debug("PresetService:LoadPreset:Normalized", "user_id", userID.String(), "stored", raw, "preset", p)
	}
	return p
}

func (s *PresetService) SavePreset(ctx context.Context, userID uuid.UUID, preset entity.Preset) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	if err := s.repo.SetPreset(ctx, userID, string(entity.ParsePreset(string(preset)))); err != nil {
		logger.Warn("PresetService:SavePreset:WriteFailed", "user_id", userID.String(), "error", err)
	}
}
