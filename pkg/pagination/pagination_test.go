package pagination

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
)

func newContext(target string) echo.Context {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec)
}

func TestFromContext_Defaults(t *testing.T) {
	p := FromContext(newContext("/"))
	if p.Limit != DefaultLimit {
		t.Errorf("expected default limit %d, got %d", DefaultLimit, p.Limit)
	}
	if p.Offset != 0 {
		t.Errorf("expected offset 0, got %d", p.Offset)
	}
}

func TestFromContext_ParsesParams(t *testing.T) {
	p := FromContext(newContext("/?limit=10&offset=30"))
	if p.Limit != 10 {
		t.Errorf("expected limit 10, got %d", p.Limit)
	}
	if p.Offset != 30 {
		t.Errorf("expected offset 30, got %d", p.Offset)
	}
}

func TestFromContext_CapsLimit(t *testing.T) {
	p := FromContext(newContext("/?limit=99999"))
	if p.Limit != MaxLimit {
		t.Errorf("expected capped limit %d, got %d", MaxLimit, p.Limit)
	}
}

func TestUnbounded_NoDefault(t *testing.T) {
	p := Unbounded(newContext("/"))
	if p.Limit != 0 {
		t.Errorf("expected unbounded limit 0, got %d", p.Limit)
	}
}

func TestUnbounded_NegativeValues(t *testing.T) {
	p := Unbounded(newContext("/?limit=-5&offset=-3"))
	if p.Limit != 0 || p.Offset != 0 {
		t.Errorf("expected negatives clamped to 0, got limit=%d offset=%d", p.Limit, p.Offset)
	}
}
