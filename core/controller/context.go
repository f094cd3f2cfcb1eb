package controller

import (
	"social-planner/core/constants"
	"social-planner/core/errors"
	"social-planner/core/utils"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// UserIDFromContext extracts the caller's user id set by the auth middleware.
func UserIDFromContext(ctx echo.Context) (uuid.UUID, *errors.AppError) {
	tokenData := ctx.Get(constants.ContextTokenData)
	if tokenData == nil {
		return uuid.Nil, errors.NewAppError(errors.ErrUnauthorized, "User not authenticated", nil)
	}

	claims, ok := tokenData.(*utils.TokenClaims)
	if !ok || claims.UserID == uuid.Nil {
		return uuid.Nil, errors.NewAppError(errors.ErrUnauthorized, "Invalid token data", nil)
	}

	return claims.UserID, nil
}
