package router

import (
	"social-planner/core/middleware"
	"social-planner/modules/schedule/controller"

	"github.com/labstack/echo/v4"
)

type ScheduleRouter struct {
	ScheduleController *controller.ScheduleController
}

func NewScheduleRouter(scheduleController *controller.ScheduleController) *ScheduleRouter {
	return &ScheduleRouter{
		ScheduleController: scheduleController,
	}
}

func (r *ScheduleRouter) Setup(e *echo.Echo, mw *middleware.Middleware) {
	v1 := e.Group("/api/v1")

	publicRoutes := v1.Group("/public/schedule")
	publicRoutes.GET("/presets", r.ScheduleController.ListPresets)
	publicRoutes.POST("/rank", r.ScheduleController.RankSlots)

	privateRoutes := v1.Group("/private/schedule", mw.AuthMiddleware())
	privateRoutes.GET("/preset", r.ScheduleController.GetPreset)
	privateRoutes.PUT("/preset", r.ScheduleController.UpdatePreset)
}
