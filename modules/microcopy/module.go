package microcopy

import (
	"time"

	"social-planner/modules/microcopy/controller"
	"social-planner/modules/microcopy/router"

	"github.com/coder/quartz"
	"github.com/labstack/echo/v4"
)

func Init(e *echo.Echo, clock quartz.Clock, defaultLoc *time.Location) {
	ctrl := controller.NewCopyController(clock, defaultLoc)
	router.NewCopyRouter(ctrl).Setup(e)
}
