package middleware

import (
	"context"

	"beacon/internal/domain/constants"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
)

// RequestID assigns a request ID and mirrors it onto the request context so
// asynchronous work started by a handler can carry it for tracing.
func RequestID() echo.MiddlewareFunc {
	requestID := echomw.RequestID()

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return requestID(func(c echo.Context) error {
			id := c.Response().Header().Get(echo.HeaderXRequestID)
			if id != "" {
				ctx := context.WithValue(c.Request().Context(), constants.ContextKeyRequestID, id)
				c.SetRequest(c.Request().WithContext(ctx))
			}

			return next(c)
		})
	}
}
