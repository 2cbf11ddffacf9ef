package store

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
)

// HTTPError maps a repository error onto the transport boundary: malformed
// identifiers are the client's fault, missing documents are 404, anything
// else means the store itself failed.
func HTTPError(err error, notFoundMsg string) *echo.HTTPError {
	switch {
	case errors.Is(err, ErrInvalidID):
		return echo.NewHTTPError(http.StatusBadRequest, ErrInvalidID.Error())
	case errors.Is(err, ErrNotFound):
		return echo.NewHTTPError(http.StatusNotFound, notFoundMsg)
	default:
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
}
