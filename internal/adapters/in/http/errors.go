package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/jetzoperations-gif/JETZ-Final/internal/adapters/in/http/servers"
	"github.com/jetzoperations-gif/JETZ-Final/internal/core/application/usecases/commands"
	"github.com/jetzoperations-gif/JETZ-Final/internal/core/domain/model/catalog"
	"github.com/jetzoperations-gif/JETZ-Final/internal/core/domain/model/order"
	"github.com/jetzoperations-gif/JETZ-Final/internal/core/domain/model/staff"
	"github.com/jetzoperations-gif/JETZ-Final/internal/core/domain/model/token"
	"github.com/jetzoperations-gif/JETZ-Final/internal/pkg/errs"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/labstack/echo/v4"
)

// statusFor maps an error returned by a use case to an HTTP status. The
// order of the checks matters: a token conflict is also a failed write.
func statusFor(err error) int {
	var (
		httpErr *echo.HTTPError
		rules   validation.Errors
	)

	switch {
	case errors.Is(err, ErrUnauthenticated),
		errors.Is(err, staff.ErrPINMismatch),
		errors.Is(err, staff.ErrPINNotUnique):
		return http.StatusUnauthorized
	case errors.Is(err, staff.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, token.ErrTokenUnavailable),
		errors.Is(err, token.ErrTokenIdle),
		errors.Is(err, catalog.ErrOutOfStock),
		errors.Is(err, order.ErrInvalidTransition),
		errors.Is(err, errs.ErrObjectAlreadyExists):
		return http.StatusConflict
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound
	case errs.IsValidation(err), errors.As(err, &rules):
		return http.StatusBadRequest
	case errors.Is(err, commands.ErrPartialWriteFailure):
		return http.StatusServiceUnavailable
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout
	case errors.As(err, &httpErr):
		return httpErr.Code
	default:
		return http.StatusInternalServerError
	}
}

func messageFor(status int, err error) string {
	switch {
	case status == http.StatusInternalServerError:
		return "internal error"
	case errors.Is(err, token.ErrTokenUnavailable):
		return token.ErrTokenUnavailable.Error()
	case errors.Is(err, token.ErrTokenIdle):
		return token.ErrTokenIdle.Error()
	case errors.Is(err, staff.ErrPINMismatch):
		return "unknown PIN"
	case errors.Is(err, staff.ErrPINNotUnique):
		return "PIN is shared by several staff members, ask an admin to reset it"
	case errors.Is(err, commands.ErrPartialWriteFailure):
		return "the order was not fully saved, retry in a moment"
	}

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		if msg, ok := httpErr.Message.(string); ok {
			return msg
		}
		return http.StatusText(httpErr.Code)
	}
	return err.Error()
}

func writeError(c echo.Context, status int, message string) error {
	return c.JSON(status, servers.Error{
		Code:    status,
		Message: message,
	})
}

// HandleError is the echo error handler. Handlers return use case errors as
// they are and this turns them into the Error body.
func (s *Server) HandleError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	status := statusFor(err)
	if status >= http.StatusInternalServerError {
		s.logger.Error("Request failed",
			"method", c.Request().Method,
			"path", c.Path(),
			"status", status,
			"error", err)
	}

	if c.Request().Method == http.MethodHead {
		err = c.NoContent(status)
	} else {
		err = writeError(c, status, messageFor(status, err))
	}
	if err != nil {
		s.logger.Error("Writing error response failed", "error", err)
	}
}
