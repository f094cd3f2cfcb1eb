package controller

import (
	"strconv"
	"strings"
	"time"

	"social-planner/core/constants"
	"social-planner/core/controller"
	"social-planner/core/errors"
	"social-planner/core/logger"
	"social-planner/core/utils"
	"social-planner/modules/microcopy/dto"
	"social-planner/modules/microcopy/entity"
	"social-planner/modules/microcopy/service"

	"github.com/coder/quartz"
	"github.com/labstack/echo/v4"
)

// CopyController serves deterministic UI copy. Seeds come from the calendar
// date, either explicit or "today" in the caller's timezone.
type CopyController struct {
	controller.BaseController
	Clock           quartz.Clock
	DefaultLocation *time.Location
}

func NewCopyController(clock quartz.Clock, defaultLoc *time.Location) *CopyController {
	if clock == nil {
		clock = quartz.NewReal()
	}
	if defaultLoc == nil {
		defaultLoc = time.UTC
	}
	return &CopyController{
		BaseController:  controller.NewBaseController(),
		Clock:           clock,
		DefaultLocation: defaultLoc,
	}
}

// resolveDay returns the calendar day a seed is derived from.
func (c *CopyController) resolveDay(date, timezone string) (time.Time, *errors.AppError) {
	loc, err := utils.LoadLocationOr(timezone, c.DefaultLocation)
	if err != nil {
		return time.Time{}, errors.NewAppError(errors.ErrInvalidInput, "Invalid timezone", err)
	}

	date = strings.TrimSpace(date)
	if date == "" {
		return c.Clock.Now().In(loc), nil
	}
	day, err := time.ParseInLocation(constants.DateLayout, date, loc)
	if err != nil {
		return time.Time{}, errors.NewAppError(errors.ErrInvalidInput, "Invalid date, expected YYYY-MM-DD", err)
	}
	return day, nil
}

func (c *CopyController) dayFromQuery(ctx echo.Context) (time.Time, *errors.AppError) {
	return c.resolveDay(ctx.QueryParam("date"), ctx.QueryParam("timezone"))
}

// parseArchetype normalises a tag. Unknown tags still resolve to the fallback
// pool; they are logged so new client tags show up before copy is written.
func parseArchetype(raw string) entity.Archetype {
	a := entity.ParseArchetype(raw)
	if a != "" && !a.Known() {
		logger.Debug("CopyController:UnknownArchetype", "raw", raw, "tag", string(a))
	}
	return a
}

func intQueryParam(ctx echo.Context, name string, def int) (int, *errors.AppError) {
	raw := strings.TrimSpace(ctx.QueryParam(name))
	if raw == "" {
		return def, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, errors.NewAppError(errors.ErrInvalidInput, "Invalid "+name, err)
	}
	return v, nil
}

// Completion handles GET /public/copy/completion
func (c *CopyController) Completion(ctx echo.Context) error {
	day, appErr := c.dayFromQuery(ctx)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	out := service.GetCompletionCopy(service.CompletionInput{
		Seed:      service.SeedForDate(day),
		Archetype: parseArchetype(ctx.QueryParam("archetype")),
	})
	return c.SuccessResponse(ctx, dto.CompletionResponse{
		Date:     day.Format(constants.DateLayout),
		Title:    out.Title,
		Subtitle: out.Subtitle,
	}, "Success")
}

// Accept handles GET /public/copy/accept. n is the 1-based accept count in
// the current session.
func (c *CopyController) Accept(ctx echo.Context) error {
	day, appErr := c.dayFromQuery(ctx)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	n, appErr := intQueryParam(ctx, "n", 1)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	seed := service.SeedForDate(day)
	resp := dto.FeedbackResponse{Date: day.Format(constants.DateLayout)}
	if service.ShouldShowAcceptFeedback(seed, n) {
		resp.Show = true
		resp.Message = service.GetAcceptFeedback(service.AcceptInput{
			Seed:      seed,
			Archetype: parseArchetype(ctx.QueryParam("archetype")),
			Category:  entity.ParseCategory(ctx.QueryParam("category")),
		})
	}
	return c.SuccessResponse(ctx, resp, "Success")
}

// Dismiss handles GET /public/copy/dismiss
func (c *CopyController) Dismiss(ctx echo.Context) error {
	day, appErr := c.dayFromQuery(ctx)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	index, appErr := intQueryParam(ctx, "index", 0)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	msg, show := service.GetDismissFeedback(service.DismissInput{
		Seed:      service.SeedForDate(day),
		Archetype: parseArchetype(ctx.QueryParam("archetype")),
		Index:     index,
	})
	return c.SuccessResponse(ctx, dto.FeedbackResponse{
		Date:    day.Format(constants.DateLayout),
		Show:    show,
		Message: msg,
	}, "Success")
}

// DeckHint handles GET /public/copy/deck-hint
func (c *CopyController) DeckHint(ctx echo.Context) error {
	day, appErr := c.dayFromQuery(ctx)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	remaining, appErr := intQueryParam(ctx, "remaining", 0)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return c.SuccessResponse(ctx, dto.DeckHintResponse{
		Date:      day.Format(constants.DateLayout),
		Remaining: remaining,
		Message:   service.GetDeckHint(service.DeckHintInput{Seed: service.SeedForDate(day), Remaining: remaining}),
	}, "Success")
}

// Drafts handles POST /public/copy/drafts
func (c *CopyController) Drafts(ctx echo.Context) error {
	var req dto.DraftsRequest
	if err := ctx.Bind(&req); err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid request body")
	}

	day, appErr := c.resolveDay(req.Date, req.Timezone)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	variants := service.GetDraftMessageVariants(service.DraftInput{
		Seed:            service.SeedForDate(day),
		Archetype:       parseArchetype(req.Archetype),
		FriendFirstName: req.FriendFirstName,
		EventTitle:      req.EventTitle,
	})
	return c.SuccessResponse(ctx, dto.DraftsResponse{
		Date:     day.Format(constants.DateLayout),
		Variants: variants,
	}, "Success")
}

// Recency handles GET /public/copy/recency?days=N
func (c *CopyController) Recency(ctx echo.Context) error {
	if strings.TrimSpace(ctx.QueryParam("days")) == "" {
		return c.BadRequest(errors.ErrInvalidInput, "days is required")
	}
	days, appErr := intQueryParam(ctx, "days", 0)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	label, show := service.FormatReconnectRecencyLabel(days)
	return c.SuccessResponse(ctx, dto.LabelResponse{Show: show, Label: label}, "Success")
}

// Countdown handles GET /public/copy/countdown. Ideas refresh at local
// midnight in the caller's timezone.
func (c *CopyController) Countdown(ctx echo.Context) error {
	loc, err := utils.LoadLocationOr(ctx.QueryParam("timezone"), c.DefaultLocation)
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid timezone")
	}

	now := c.Clock.Now().In(loc)
	refreshAt := utils.NextMidnight(now)
	label, show := service.FormatCountdownLabel(refreshAt.Sub(now))
	return c.SuccessResponse(ctx, dto.CountdownResponse{
		LabelResponse: dto.LabelResponse{Show: show, Label: label},
		RefreshAt:     refreshAt,
	}, "Success")
}
