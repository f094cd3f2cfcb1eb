package router

import (
	"social-planner/modules/microcopy/controller"

	"github.com/labstack/echo/v4"
)

type CopyRouter struct {
	CopyController *controller.CopyController
}

func NewCopyRouter(copyController *controller.CopyController) *CopyRouter {
	return &CopyRouter{
		CopyController: copyController,
	}
}

func (r *CopyRouter) Setup(e *echo.Echo) {
	v1 := e.Group("/api/v1")

	publicRoutes := v1.Group("/public/copy")
	publicRoutes.GET("/completion", r.CopyController.Completion)
	publicRoutes.GET("/accept", r.CopyController.Accept)
	publicRoutes.GET("/dismiss", r.CopyController.Dismiss)
	publicRoutes.GET("/deck-hint", r.CopyController.DeckHint)
	publicRoutes.POST("/drafts", r.CopyController.Drafts)
	publicRoutes.GET("/recency", r.CopyController.Recency)
	publicRoutes.GET("/countdown", r.CopyController.Countdown)
}
