package service

import (
	"context"

	"social-planner/core/errors"
	"social-planner/core/logger"
	"social-planner/core/utils"
	"social-planner/modules/availability/entity"
	scheduleentity "social-planner/modules/schedule/entity"
	scheduleservice "social-planner/modules/schedule/service"

	"github.com/google/uuid"
)

const defaultSuggestLimit = 10

type AvailabilityServiceInterface interface {
	Suggest(ctx context.Context, userID uuid.UUID, req entity.SearchRequest, limit int) (*SuggestResult, *errors.AppError)
}

// SuggestResult carries the preset the ranking was done with so the client
// can show the active window.
type SuggestResult struct {
	Preset      scheduleentity.Preset
	Suggestions []entity.Suggestion
}

type AvailabilityService struct {
	PresetService scheduleservice.PresetServiceInterface
	Finder        *SlotFinder
	DefaultLimit  int
}

func NewAvailabilityService(presets scheduleservice.PresetServiceInterface, defaultLimit int) *AvailabilityService {
	if defaultLimit <= 0 {
		defaultLimit = defaultSuggestLimit
	}
	return &AvailabilityService{
		PresetService: presets,
		Finder:        NewSlotFinder(),
		DefaultLimit:  defaultLimit,
	}
}

// Suggest generates candidate slots, ranks them with the caller's stored
// preset and returns at most limit of them. limit <= 0 uses DefaultLimit.
func (s *AvailabilityService) Suggest(ctx context.Context, userID uuid.UUID, req entity.SearchRequest, limit int) (*SuggestResult, *errors.AppError) {
	candidates, appErr := s.Finder.FindCandidateSlots(req)
	if appErr != nil {
		return nil, appErr
	}

	preset := s.PresetService.LoadPreset(ctx, userID)
	ranked := scheduleservice.RankSlotsScored(candidates, preset)

	if limit <= 0 {
		limit = s.DefaultLimit
	}
	if len(ranked) > limit {
		ranked = ranked[:limit]
	}

	suggestions := make([]entity.Suggestion, len(ranked))
	for i, r := range ranked {
		suggestions[i] = entity.Suggestion{ID: utils.GenerateID(), ScoredSlot: r}
	}

	logger.Debug("AvailabilityService:Suggest",
		"user_id", userID,
		"preset", preset,
		"candidates", len(candidates),
		"returned", len(suggestions),
	)
	return &SuggestResult{Preset: preset, Suggestions: suggestions}, nil
}
