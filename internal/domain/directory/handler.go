package directory

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
	e.POST("/doctors", h.CreateDoctor)
	e.GET("/doctors", h.ListDoctors)
	e.PATCH("/doctors/:id", h.UpdateDoctor)
	e.POST("/facilities", h.CreateFacility)
	e.GET("/facilities", h.ListFacilities)
}

func (h *Handler) CreateDoctor(c echo.Context) error {
	var d Doctor
	if err := c.Bind(&d); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := h.svc.CreateDoctor(c.Request().Context(), &d); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return c.JSON(http.StatusCreated, map[string]string{"id": d.ID.Hex()})
}

func (h *Handler) ListDoctors(c echo.Context) error {
	doctors, err := h.svc.ListDoctors(c.Request().Context(), c.QueryParam("tenant_id"), pagination.FromContext(c))
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, doctors)
}

func (h *Handler) UpdateDoctor(c echo.Context) error {
	var u DoctorUpdate
	if err := c.Bind(&u); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	d, updated, err := h.svc.UpdateDoctor(c.Request().Context(), c.Param("id"), &u)
	if err != nil {
		return store.HTTPError(err, "doctor not found")
	}
	if !updated {
		return c.JSON(http.StatusOK, map[string]bool{"updated": false})
	}
	return c.JSON(http.StatusOK, d)
}

func (h *Handler) CreateFacility(c echo.Context) error {
	var f Facility
	if err := c.Bind(&f); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := h.svc.CreateFacility(c.Request().Context(), &f); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return c.JSON(http.StatusCreated, map[string]string{"id": f.ID.Hex()})
}

func (h *Handler) ListFacilities(c echo.Context) error {
	facilities, err := h.svc.ListFacilities(c.Request().Context(), c.QueryParam("tenant_id"), pagination.FromContext(c))
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, facilities)
}
