package controller

import (
	"time"

	"social-planner/core/controller"
	"social-planner/core/errors"
	"social-planner/core/utils"
	"social-planner/modules/schedule/dto"
	"social-planner/modules/schedule/entity"
	"social-planner/modules/schedule/service"

	"github.com/labstack/echo/v4"
)

// ScheduleController handles Suggested-Hours HTTP requests
type ScheduleController struct {
	controller.BaseController
	PresetService   service.PresetServiceInterface
	DefaultLocation *time.Location
}

func NewScheduleController(svc service.PresetServiceInterface, defaultLoc *time.Location) *ScheduleController {
	if defaultLoc == nil {
		defaultLoc = time.UTC
	}
	return &ScheduleController{
		BaseController:  controller.NewBaseController(),
		PresetService:   svc,
		DefaultLocation: defaultLoc,
	}
}

// ListPresets handles GET /public/schedule/presets
func (c *ScheduleController) ListPresets(ctx echo.Context) error {
	out := make([]dto.PresetResponse, 0, len(entity.Presets))
	for _, p := range entity.Presets {
		out = append(out, dto.ToPresetResponse(p))
	}
	return c.SuccessResponse(ctx, out, "Success")
}

// RankSlots handles POST /public/schedule/rank
func (c *ScheduleController) RankSlots(ctx echo.Context) error {
	var req dto.RankSlotsRequest
	if err := ctx.Bind(&req); err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid request body")
	}

	loc, err := utils.LoadLocationOr(req.Timezone, c.DefaultLocation)
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid timezone")
	}

	slots := dto.ToEntitySlots(req.Slots)
	if appErr := service.ValidateSlots(slots); appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	for i := range slots {
		slots[i] = slots[i].In(loc)
	}

	preset := entity.ParsePreset(req.Preset)
	ranked := service.RankSlotsScored(slots, preset)

	return c.SuccessResponse(ctx, dto.RankSlotsResponse{
		Preset:   string(preset),
		Timezone: loc.String(),
		Window:   preset.Window(),
		Slots:    dto.ToRankedSlotDTOs(ranked),
	}, "Success")
}

// GetPreset handles GET /private/schedule/preset
func (c *ScheduleController) GetPreset(ctx echo.Context) error {
	userID, appErr := controller.UserIDFromContext(ctx)
	if appErr != nil {
		return c.Unauthorized(appErr.Code, appErr.Message)
	}

	preset := c.PresetService.LoadPreset(ctx.Request().Context(), userID)
	return c.SuccessResponse(ctx, dto.ToPresetResponse(preset), "Success")
}

// UpdatePreset handles PUT /private/schedule/preset. Unknown names are
// stored as the default preset; the response carries the effective value.
func (c *ScheduleController) UpdatePreset(ctx echo.Context) error {
	userID, appErr := controller.UserIDFromContext(ctx)
	if appErr != nil {
		return c.Unauthorized(appErr.Code, appErr.Message)
	}

	var req dto.UpdatePresetRequest
	if err := ctx.Bind(&req); err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid request body")
	}

	preset := entity.ParsePreset(req.Preset)
	c.PresetService.SavePreset(ctx.Request().Context(), userID, preset)

	return c.SuccessResponse(ctx, dto.ToPresetResponse(preset), "Preset saved")
}
