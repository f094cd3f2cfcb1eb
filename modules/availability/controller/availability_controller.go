package controller

import (
	"time"

	"social-planner/core/controller"
	"social-planner/core/errors"
	"social-planner/core/utils"
	"social-planner/modules/availability/dto"
	"social-planner/modules/availability/service"

	"github.com/labstack/echo/v4"
)

type AvailabilityController struct {
	controller.BaseController
	AvailabilityService service.AvailabilityServiceInterface
	DefaultLocation     *time.Location
}

func NewAvailabilityController(svc service.AvailabilityServiceInterface, defaultLoc *time.Location) *AvailabilityController {
	if defaultLoc == nil {
		defaultLoc = time.UTC
	}
	return &AvailabilityController{
		BaseController:      controller.NewBaseController(),
		AvailabilityService: svc,
		DefaultLocation:     defaultLoc,
	}
}

// Suggest handles POST /private/availability/suggest
func (c *AvailabilityController) Suggest(ctx echo.Context) error {
	userID, appErr := controller.UserIDFromContext(ctx)
	if appErr != nil {
		return c.Unauthorized(appErr.Code, appErr.Message)
	}

	var req dto.SuggestRequest
	if err := ctx.Bind(&req); err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid request body")
	}

	loc, err := utils.LoadLocationOr(req.Timezone, c.DefaultLocation)
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid timezone")
	}

	result, appErr := c.AvailabilityService.Suggest(ctx.Request().Context(), userID, req.ToEntity(loc), req.Limit)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return c.SuccessResponse(ctx, dto.SuggestResponse{
		Preset:      string(result.Preset),
		Timezone:    loc.String(),
		Window:      result.Preset.Window(),
		Suggestions: dto.ToSuggestionDTOs(result.Suggestions),
	}, "Success")
}
