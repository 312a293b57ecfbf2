package http

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"tours/internal/generated/servers"
	"tours/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// ErrUnauthorized is returned by the access gate for a missing or invalid
// bearer token.
var ErrUnauthorized = errors.New("unauthorized")

// NewErrorHandler renders every error returned by a handler or middleware as
// a servers.Error body. 5xx responses are logged.
func NewErrorHandler(logger *slog.Logger) echo.HTTPErrorHandler {
	return func(err error, ctx echo.Context) {
		if ctx.Response().Committed {
			return
		}

		status, body := errorResponse(err)
		if status >= http.StatusInternalServerError {
			logger.ErrorContext(ctx.Request().Context(), "request failed",
				"method", ctx.Request().Method,
				"path", ctx.Request().URL.Path,
				"error", err,
			)
		}

		if ctx.Request().Method == http.MethodHead {
			err = ctx.NoContent(status)
		} else {
			err = ctx.JSON(status, body)
		}
		if err != nil {
			logger.ErrorContext(ctx.Request().Context(), "failed to write error response", "error", err)
		}
	}
}

func errorResponse(err error) (int, servers.Error) {
	var (
		consistencyErr *errs.ConsistencyError
		validationErr  *errs.ValidationError
		httpErr        *echo.HTTPError
	)

	switch {
	case errors.As(err, &consistencyErr):
		return newError(http.StatusInternalServerError, consistencyErr.Error(), nil)
	case errors.As(err, &validationErr):
		return newError(http.StatusBadRequest, validationErr.Message, validationErr.Fields)
	case errs.IsValidation(err):
		return newError(http.StatusBadRequest, err.Error(), fieldReasons(err))
	case errors.Is(err, ErrUnauthorized):
		return newError(http.StatusUnauthorized, "Unauthorized", nil)
	case errors.Is(err, errs.ErrObjectNotFound):
		return newError(http.StatusNotFound, err.Error(), nil)
	case errors.Is(err, errs.ErrVersionIsInvalid):
		return newError(http.StatusConflict, err.Error(), nil)
	case errors.As(err, &httpErr):
		return newError(httpErr.Code, fmt.Sprint(httpErr.Message), nil)
	default:
		return newError(http.StatusInternalServerError, "Internal server error", nil)
	}
}

func newError(status int, message string, details map[string]string) (int, servers.Error) {
	body := servers.Error{Code: status, Message: message}
	if len(details) > 0 {
		body.Details = &details
	}
	return status, body
}

// fieldReasons collects a reason per parameter from a tree of domain
// validation errors.
func fieldReasons(err error) map[string]string {
	reasons := map[string]string{}
	collectReasons(err, reasons)
	return reasons
}

func collectReasons(err error, reasons map[string]string) {
	if err == nil {
		return
	}

	switch e := err.(type) {
	case *errs.ValueIsRequiredError:
		reasons[e.ParamName] = "is required"
	case *errs.ValueIsInvalidError:
		reasons[e.ParamName] = "is invalid"
	case *errs.ValueIsOutOfRangeError:
		reasons[e.ParamName] = fmt.Sprintf("must be between %v and %v", e.Min, e.Max)
	case interface{ Unwrap() []error }:
		for _, inner := range e.Unwrap() {
			collectReasons(inner, reasons)
		}
	default:
		collectReasons(errors.Unwrap(err), reasons)
	}
}
