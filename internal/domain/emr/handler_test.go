package emr

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
)

func newTestHandler() (*Handler, *echo.Echo) {
	h := NewHandler(newTestService())
	e := echo.New()
	return h, e
}

func TestHandler_CreateEMR(t *testing.T) {
	h, e := newTestHandler()

	body := `{"doctor_id":"d1","patient_id":"p1","chief_complaint":"cough"}`
	req := httptest.NewRequest(http.MethodPost, "/emrs", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.CreateEMR(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Errorf("expected 201, got %d", rec.Code)
	}
}

func TestHandler_CreateEMR_MissingPatient(t *testing.T) {
	h, e := newTestHandler()

	body := `{"doctor_id":"d1"}`
	req := httptest.NewRequest(http.MethodPost, "/emrs", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := h.CreateEMR(c)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %v", err)
	}
}

func TestHandler_ListByPatient(t *testing.T) {
	h, e := newTestHandler()

	h.svc.CreateEMR(nil, &EMR{DoctorID: "d1", PatientID: "p1"})
	h.svc.CreateEMR(nil, &EMR{DoctorID: "d1", PatientID: "p2"})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("patient_id")
	c.SetParamValues("p1")

	if err := h.ListByPatient(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var records []EMR
	json.Unmarshal(rec.Body.Bytes(), &records)
	if len(records) != 1 {
		t.Errorf("expected 1 record, got %d", len(records))
	}
}

func TestHandler_GenerateNote(t *testing.T) {
	h, e := newTestHandler()

	body := `{"transcript":"Chief Complaint: cough\nPlan: rest","style":"soap"}`
	req := httptest.NewRequest(http.MethodPost, "/emr/generate", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.GenerateNote(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", rec.Code)
	}

	var note Note
	json.Unmarshal(rec.Body.Bytes(), &note)
	if note.ChiefComplaint != "cough" || note.Plan != "rest" {
		t.Errorf("unexpected note: %+v", note)
	}
	if note.Summary == "" {
		t.Error("summary must always be present")
	}
}

func TestHandler_GenerateNote_EmptyTranscript(t *testing.T) {
	h, e := newTestHandler()

	body := `{"transcript":"   "}`
	req := httptest.NewRequest(http.MethodPost, "/emr/generate", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := h.GenerateNote(c)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %v", err)
	}
}
