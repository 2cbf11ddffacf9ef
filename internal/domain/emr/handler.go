package emr

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/clinicdesk/clinicdesk/pkg/pagination"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(e *echo.Echo) {
	e.POST("/emrs", h.CreateEMR)
	e.GET("/emrs/:patient_id", h.ListByPatient)
	e.POST("/emr/generate", h.GenerateNote)
}

func (h *Handler) CreateEMR(c echo.Context) error {
	var record EMR
	if err := c.Bind(&record); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := h.svc.CreateEMR(c.Request().Context(), &record); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return c.JSON(http.StatusCreated, map[string]string{"id": record.ID.Hex()})
}

func (h *Handler) ListByPatient(c echo.Context) error {
	records, err := h.svc.ListByPatient(
		c.Request().Context(),
		c.Param("patient_id"),
		c.QueryParam("tenant_id"),
		pagination.FromContext(c),
	)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, records)
}

type generateRequest struct {
	Transcript string `json:"transcript"`
	Style      string `json:"style"`
}

func (h *Handler) GenerateNote(c echo.Context) error {
	var req generateRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	note, err := h.svc.GenerateNote(req.Transcript, req.Style)
	if err != nil {
		if errors.Is(err, ErrEmptyTranscript) {
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, note)
}
