package availability

import (
	"time"

	"social-planner/core/middleware"
	"social-planner/modules/availability/controller"
	"social-planner/modules/availability/router"
	"social-planner/modules/availability/service"
	scheduleservice "social-planner/modules/schedule/service"

	"github.com/labstack/echo/v4"
)

func Init(e *echo.Echo, presets scheduleservice.PresetServiceInterface, mw *middleware.Middleware, defaultLoc *time.Location, limit int) {
	svc := service.NewAvailabilityService(presets, limit)
	ctrl := controller.NewAvailabilityController(svc, defaultLoc)
	router.NewAvailabilityRouter(ctrl).Setup(e, mw)
}
