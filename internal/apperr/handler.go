package apperr

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"
)

// ErrorResponse is the JSON body of every failed request.
type ErrorResponse struct {
	Error string `json:"error"`
	Title string `json:"title,omitempty"`
}

// GlobalErrorHandler maps the error taxonomy onto HTTP statuses.
// Store failures are hidden behind a generic message.
func GlobalErrorHandler() echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code, body := Classify(err)
		if code >= http.StatusInternalServerError {
			slog.ErrorContext(c.Request().Context(), "Request failed",
				"method", c.Request().Method,
				"uri", c.Request().RequestURI,
				"error", err)
		}
		_ = c.JSON(code, body)
	}
}

// Classify returns the status code and response body for err.
func Classify(err error) (int, ErrorResponse) {
	var (
		ve *ValidationError
		nf *NotFoundError
		cs *CatalogSyncError
		qe *QueryExecutionError
		he *echo.HTTPError
	)

	switch {
	case errors.As(err, &ve):
		return http.StatusBadRequest, ErrorResponse{Error: ve.Error(), Title: "validation error"}
	case errors.As(err, &nf):
		return http.StatusNotFound, ErrorResponse{Error: nf.Error(), Title: "not found"}
	case errors.As(err, &cs):
		return http.StatusUnprocessableEntity, ErrorResponse{Error: cs.Error(), Title: "catalog sync error"}
	case errors.As(err, &qe):
		return http.StatusServiceUnavailable, ErrorResponse{Error: "store unavailable", Title: "query error"}
	case errors.As(err, &he):
		return he.Code, ErrorResponse{Error: fmt.Sprintf("%v", he.Message)}
	default:
		return http.StatusInternalServerError, ErrorResponse{Error: "internal server error"}
	}
}
