package schedule

import (
	"time"

	"social-planner/core/middleware"
	"social-planner/modules/schedule/controller"
	"social-planner/modules/schedule/repository"
	"social-planner/modules/schedule/router"
	"social-planner/modules/schedule/service"

	"github.com/labstack/echo/v4"
)

// Init registers the schedule routes and returns the preset service so other
// modules can read the viewer's preset.
func Init(e *echo.Echo, repo repository.PresetRepositoryInterface, mw *middleware.Middleware, defaultLoc *time.Location) service.PresetServiceInterface {
	svc := service.NewPresetService(repo)
	ctrl := controller.NewScheduleController(svc, defaultLoc)
	router.NewScheduleRouter(ctrl).Setup(e, mw)
	return svc
}
