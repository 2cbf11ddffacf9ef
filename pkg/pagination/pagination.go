package pagination

import (
	"strconv"

	"github.com/labstack/echo/v4"
)

const (
	DefaultLimit = 50
	MaxLimit     = 500
)

// Params holds list-window parameters extracted from a request.
// A Limit of zero means the query is unbounded.
type Params struct {
	Limit  int
	Offset int
}

// FromContext extracts bounded pagination parameters from the echo context.
func FromContext(c echo.Context) Params {
	p := Unbounded(c)
	if p.Limit <= 0 {
		p.Limit = DefaultLimit
	}
	if p.Limit > MaxLimit {
		p.Limit = MaxLimit
	}
	return p
}

// Unbounded extracts pagination parameters without applying a default limit:
// when the caller does not ask for a window, the whole collection is returned.
func Unbounded(c echo.Context) Params {
	limit, _ := strconv.Atoi(c.QueryParam("limit"))
	if limit < 0 {
		limit = 0
	}

	offset, _ := strconv.Atoi(c.QueryParam("offset"))
	if offset < 0 {
		offset = 0
	}

	return Params{Limit: limit, Offset: offset}
}
