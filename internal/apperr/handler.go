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
	Status int    `json:"status"`
	Title  string `json:"title"`
	Error  string `json:"error"`
}

// GlobalErrorHandler maps typed errors to status codes. Unknown errors become
// 500 and their details stay in the log.
func GlobalErrorHandler() echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		resp := toResponse(err)
		if resp.Status >= http.StatusInternalServerError {
			slog.Error("Request failed", "path", c.Path(), "status", resp.Status, "error", err)
		}

		if c.Request().Method == http.MethodHead {
			_ = c.NoContent(resp.Status)
			return
		}
		_ = c.JSON(resp.Status, resp)
	}
}

func toResponse(err error) ErrorResponse {
	var (
		ve *ValidationError
		nf *NotFoundError
		he *echo.HTTPError
	)

	switch {
	case errors.As(err, &ve):
		return ErrorResponse{Status: http.StatusBadRequest, Title: "validation error", Error: ve.Error()}
	case errors.As(err, &nf):
		return ErrorResponse{Status: http.StatusNotFound, Title: "not found", Error: nf.Error()}
	case errors.As(err, &he):
		return ErrorResponse{Status: he.Code, Title: http.StatusText(he.Code), Error: fmt.Sprint(he.Message)}
	default:
		return ErrorResponse{
			Status: http.StatusInternalServerError,
			Title:  http.StatusText(http.StatusInternalServerError),
			Error:  "internal server error",
		}
	}
}
