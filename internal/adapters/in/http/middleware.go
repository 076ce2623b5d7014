package http

import (
	"errors"
	"net/http"

	"commerce/internal/core/application/usecases/commands"
	"commerce/internal/core/domain/model/kernel"
	"commerce/internal/core/domain/model/order"
	"commerce/internal/core/ports"
	"commerce/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

const (
	// HeaderSessionID carries the caller's shop session identifier.
	HeaderSessionID = "X-Session-Id"

	// HeaderUserID carries the authenticated user's ID. In a full deployment
	// an auth layer would establish this; the API trusts the header here.
	HeaderUserID = "X-User-Id"

	requestContextKey = "requestContext"
)

// RequestContextMiddleware resolves the caller's session and identity into a
// kernel.RequestContext and stashes it on the echo context. Requests without
// a session header proceed sessionless; handlers that need a session reject
// them downstream.
func RequestContextMiddleware(sessions ports.SessionStore, channel kernel.Channel) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			var session *kernel.Session
			if sessionID := c.Request().Header.Get(HeaderSessionID); sessionID != "" {
				loaded, err := sessions.Get(c.Request().Context(), sessionID)
				if err != nil {
					return writeError(c, err)
				}
				session = loaded
			}

			var activeUserID *kernel.UUID
			if rawUserID := c.Request().Header.Get(HeaderUserID); rawUserID != "" {
				userID, err := kernel.UUIDFromString(rawUserID)
				if err != nil {
					return writeError(c, err)
				}
				activeUserID = &userID
			}

			c.Set(requestContextKey, kernel.NewRequestContext(session, channel, activeUserID))
			return next(c)
		}
	}
}

func requestContext(c echo.Context) kernel.RequestContext {
	if rctx, ok := c.Get(requestContextKey).(kernel.RequestContext); ok {
		return rctx
	}
	return kernel.RequestContext{}
}

// writeError maps domain errors onto the API's status codes. Forbidden stays
// a single opaque body regardless of the underlying reason.
func writeError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, errs.ErrForbidden):
		return c.JSON(http.StatusForbidden, ErrorResponse{
			Code:    http.StatusForbidden,
			Message: "forbidden",
		})
	case errors.Is(err, errs.ErrIllegalOrderTransition),
		errors.Is(err, commands.ErrOrderNotModifiable):
		return c.JSON(http.StatusConflict, ErrorResponse{
			Code:    http.StatusConflict,
			Message: err.Error(),
		})
	case errors.Is(err, errs.ErrObjectNotFound),
		errors.Is(err, order.ErrLineNotFound):
		return c.JSON(http.StatusNotFound, ErrorResponse{
			Code:    http.StatusNotFound,
			Message: err.Error(),
		})
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return c.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: err.Error(),
		})
	default:
		return c.JSON(http.StatusInternalServerError, ErrorResponse{
			Code:    http.StatusInternalServerError,
			Message: "internal error",
		})
	}
}
