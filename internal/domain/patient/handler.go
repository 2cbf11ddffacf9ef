package patient

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/clinicdesk/clinicdesk/internal/platform/store"
	"github.com/clinicdesk/clinicdesk/pkg/pagination"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(e *echo.Echo) {
	e.POST("/patients", h.CreatePatient)
	e.GET("/patients", h.ListPatients)
	e.GET("/patients/:id", h.GetPatient)
}

func (h *Handler) CreatePatient(c echo.Context) error {
	var p Patient
	if err := c.Bind(&p); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := h.svc.CreatePatient(c.Request().Context(), &p); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return c.JSON(http.StatusCreated, map[string]string{"id": p.ID.Hex()})
}

func (h *Handler) ListPatients(c echo.Context) error {
	// Patient listing is unbounded unless the caller asks for a window.
	patients, err := h.svc.ListPatients(
		c.Request().Context(),
		c.QueryParam("tenant_id"),
		c.QueryParam("search"),
		pagination.Unbounded(c),
	)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, patients)
}

func (h *Handler) GetPatient(c echo.Context) error {
	p, err := h.svc.GetPatient(c.Request().Context(), c.Param("id"))
	if err != nil {
		return store.HTTPError(err, "patient not found")
	}
	return c.JSON(http.StatusOK, p)
}
