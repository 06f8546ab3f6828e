package http

import (
	"errors"
	"net/http"

	"supplychain/internal/pkg/errs"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// Error is the body of every non-2xx response.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// statusOf maps an error category onto an HTTP status and a short outcome
// label used for metrics.
func statusOf(err error) (int, string) {
	var verrs validator.ValidationErrors
	switch {
	case errors.As(err, &verrs), errs.IsValidation(err):
		return http.StatusBadRequest, "invalid"
	case errors.Is(err, errs.ErrAccessDenied):
		return http.StatusForbidden, "forbidden"
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound, "not_found"
	case errors.Is(err, errs.ErrObjectAlreadyExist):
		return http.StatusConflict, "conflict"
	case errors.Is(err, errs.ErrStateIsInvalid):
		return http.StatusUnprocessableEntity, "invalid_state"
	default:
		return http.StatusInternalServerError, "error"
	}
}

// fail writes the error response for a rejected invocation. Rejections are
// expected traffic and logged at Debug; internal failures at Error.
func (s *Server) fail(c echo.Context, op string, err error) error {
	status, outcome := statusOf(err)
	s.metrics.ObserveInvocation(op, outcome)

	message := err.Error()
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		message = validationMessage(verrs)
	}

	fields := []zap.Field{zap.String("operation", op), zap.Int("status", status), zap.Error(err)}
	if status == http.StatusInternalServerError {
		s.logger.Error("invocation failed", fields...)
		message = http.StatusText(status)
	} else {
		s.logger.Debug("invocation rejected", fields...)
	}

	return c.JSON(status, Error{Code: status, Message: message})
}

func (s *Server) ok(c echo.Context, op string, status int, body any) error {
	s.metrics.ObserveInvocation(op, "ok")
	if body == nil {
		return c.NoContent(status)
	}
	return c.JSON(status, body)
}
