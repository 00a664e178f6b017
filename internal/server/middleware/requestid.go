package middleware

import (
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// RequestIDHeader carries the request id in both directions.
const RequestIDHeader = "X-Request-ID"

// RequestIDKey is the echo context key holding the id.
const RequestIDKey = "request_id"

// RequestID reuses the inbound X-Request-ID or generates a UUID, stores it on
// the context and echoes it in the response.
func RequestID() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			rid := c.Request().Header.Get(RequestIDHeader)
			if rid == "" {
				rid = uuid.NewString()
			}
			c.Set(RequestIDKey, rid)
			c.Response().Header().Set(RequestIDHeader, rid)
			return next(c)
		}
	}
}
