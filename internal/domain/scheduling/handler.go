package scheduling

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
	e.POST("/appointments", h.CreateAppointment)
	e.GET("/appointments", h.ListAppointments)
	e.GET("/appointments/:id", h.GetAppointment)
	e.GET("/metrics", h.Metrics)
}

func (h *Handler) CreateAppointment(c echo.Context) error {
	var a Appointment
	if err := c.Bind(&a); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := h.svc.CreateAppointment(c.Request().Context(), &a); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return c.JSON(http.StatusCreated, map[string]string{"id": a.ID.Hex()})
}

func (h *Handler) ListAppointments(c echo.Context) error {
	appointments, err := h.svc.ListAppointments(
		c.Request().Context(),
		c.QueryParam("doctor_id"),
		c.QueryParam("tenant_id"),
		c.QueryParam("status"),
		pagination.FromContext(c),
	)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, appointments)
}

func (h *Handler) GetAppointment(c echo.Context) error {
	a, err := h.svc.GetAppointment(c.Request().Context(), c.Param("id"))
	if err != nil {
		return store.HTTPError(err, "appointment not found")
	}
	return c.JSON(http.StatusOK, a)
}

func (h *Handler) Metrics(c echo.Context) error {
	dash, err := h.svc.Metrics(c.Request().Context(), c.QueryParam("doctor_id"), c.QueryParam("tenant_id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, dash)
}
