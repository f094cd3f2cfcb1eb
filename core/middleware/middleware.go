package middleware

import (
	stderrors "errors"
	"net/http"
	"strings"
	"time"

	"social-planner/core/constants"
	"social-planner/core/controller"
	"social-planner/core/errors"
	"social-planner/core/logger"
	"social-planner/core/utils"

	"github.com/labstack/echo/v4"
)

// TokenValidator parses a bearer token into claims.
type TokenValidator func(token string) (*utils.TokenClaims, error)

type Middleware struct {
	validate TokenValidator
}

func NewMiddleware(validate TokenValidator) *Middleware {
	if validate == nil {
		validate = utils.ValidateAndParseToken
	}
	return &Middleware{validate: validate}
}

// RequestID reuses an inbound X-Request-ID or assigns a new one.
func (m *Middleware) RequestID() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			id := c.Request().Header.Get(constants.HeaderRequestID)
			if id == "" {
				id = utils.GenerateID()
			}
			c.Set(constants.ContextRequestID, id)
			c.Response().Header().Set(constants.HeaderRequestID, id)
			return next(c)
		}
	}
}

func (m *Middleware) RequestLogger() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)
			if err != nil {
				c.Error(err)
			}

			status := c.Response().Status
			kv := []any{
				"method", c.Request().Method,
				"path", c.Path(),
				"status", status,
				"latency", time.Since(start).String(),
				"request_id", c.Get(constants.ContextRequestID),
			}
			if status >= 500 {
				logger.Error("HTTP:Request", kv...)
			} else {
				logger.Info("HTTP:Request", kv...)
			}
			return nil
		}
	}
}

// AuthMiddleware requires a valid access token and stores its claims under
// constants.ContextTokenData.
func (m *Middleware) AuthMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get(constants.HeaderAuthorization)
			if header == "" {
				return controller.NewErrorResponse(http.StatusUnauthorized, errors.ErrMissingAuthorizationHeader, "Missing authorization header")
			}
			if !strings.HasPrefix(header, constants.BearerPrefix) {
				return controller.NewErrorResponse(http.StatusUnauthorized, errors.ErrInvalidTokenFormat, "Invalid token format")
			}

			claims, err := m.validate(strings.TrimPrefix(header, constants.BearerPrefix))
			if err != nil {
				logger.Warn("Middleware:AuthMiddleware:InvalidToken", "error", err)
				if stderrors.Is(err, utils.ErrTokenExpired) {
					return controller.NewErrorResponse(http.StatusUnauthorized, errors.ErrTokenExpired, "Token expired")
				}
				return controller.NewErrorResponse(http.StatusUnauthorized, errors.ErrUnauthorized, "Invalid token")
			}

			c.Set(constants.ContextTokenData, claims)
			return next(c)
		}
	}
}
