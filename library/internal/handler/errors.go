package handler

import (
	"fmt"
	"net/http"

	"github.com/Astemirdum/library-management/library/internal/errs"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

var statuses = map[errs.Kind]int{
	errs.KindNotFound:           http.StatusNotFound,
	errs.KindUnauthorized:       http.StatusUnauthorized,
	errs.KindForbidden:          http.StatusForbidden,
	errs.KindLimitExceeded:      http.StatusForbidden,
	errs.KindInvalidArgument:    http.StatusBadRequest,
	errs.KindConflict:           http.StatusBadRequest,
	errs.KindPreconditionFailed: http.StatusBadRequest,
}

// toHTTPError maps a service error onto its status. Internal failures are
// logged and their details hidden from the caller.
func (h *Handler) toHTTPError(err error) *echo.HTTPError {
	kind := errs.KindOf(err)
	code, ok := statuses[kind]
	if !ok {
		h.log.Error("internal error", zap.Error(err))
		return echo.NewHTTPError(http.StatusInternalServerError,
			errs.Response{Kind: errs.KindInternal, Message: http.StatusText(http.StatusInternalServerError)})
	}
	return echo.NewHTTPError(code, errs.Response{Kind: kind, Message: err.Error()})
}

func badRequest(err error) *echo.HTTPError {
	return echo.NewHTTPError(http.StatusBadRequest,
		errs.Response{Kind: errs.KindInvalidArgument, Message: err.Error()})
}

func kindOfStatus(code int) errs.Kind {
	switch {
	case code == http.StatusNotFound || code == http.StatusMethodNotAllowed:
		return errs.KindNotFound
	case code == http.StatusUnauthorized:
		return errs.KindUnauthorized
	case code == http.StatusForbidden:
		return errs.KindForbidden
	case code == http.StatusTooManyRequests:
		return errs.KindLimitExceeded
	case code >= http.StatusInternalServerError:
		return errs.KindInternal
	}
	return errs.KindInvalidArgument
}

// ErrorHandler renders every error, including those raised by echo and
// its middleware, as {kind, message}.
func (h *Handler) ErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}
	var he *echo.HTTPError
	if !errors.As(err, &he) {
		he = h.toHTTPError(err)
	}
	body, ok := he.Message.(errs.Response)
	if !ok {
		body = errs.Response{Kind: kindOfStatus(he.Code), Message: fmt.Sprint(he.Message)}
	}

	if c.Request().Method == http.MethodHead {
		err = c.NoContent(he.Code)
	} else {
		err = c.JSON(he.Code, body)
	}
	if err != nil {
		h.log.Error("write error response", zap.Error(err))
	}
}
