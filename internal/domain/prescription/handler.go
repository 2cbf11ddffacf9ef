package prescription

import (
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
	e.POST("/prescriptions", h.CreatePrescription)
	e.GET("/prescriptions", h.ListPrescriptions)
	e.POST("/prescription/preview", h.PreviewPrescription)
}

func (h *Handler) CreatePrescription(c echo.Context) error {
	var p Prescription
	if err := c.Bind(&p); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := h.svc.CreatePrescription(c.Request().Context(), &p); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return c.JSON(http.StatusCreated, map[string]string{"id": p.ID.Hex()})
}

func (h *Handler) ListPrescriptions(c echo.Context) error {
	prescriptions, err := h.svc.ListPrescriptions(
		c.Request().Context(),
		c.QueryParam("patient_id"),
		c.QueryParam("doctor_id"),
		c.QueryParam("tenant_id"),
		pagination.FromContext(c),
	)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, prescriptions)
}

type previewRequest struct {
	Medications []Medication `json:"medications"`
	Notes       string       `json:"notes"`
}

func (h *Handler) PreviewPrescription(c echo.Context) error {
	var req previewRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	preview, count := Preview(req.Medications)
	return c.JSON(http.StatusOK, map[string]interface{}{
		"preview": preview,
		"count":   count,
	})
}
