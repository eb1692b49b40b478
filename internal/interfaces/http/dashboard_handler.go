package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	appanalytics "github.com/jhoicas/cazuela-chapina-api/internal/application/analytics"
)

const rankingDefaultDays = 30

// DashboardHandler maneja los endpoints del módulo de Dashboard.
type DashboardHandler struct {
	uc  *appanalytics.DashboardUseCase
	loc *time.Location
}

// NewDashboardHandler construye el handler. loc interpreta desde/hasta del ranking.
func NewDashboardHandler(uc *appanalytics.DashboardUseCase, loc *time.Location) *DashboardHandler {
	if loc == nil {
		loc = time.UTC
	}
	return &DashboardHandler{uc: uc, loc: loc}
}

// GetDashboard godoc
// @Summary      Métricas del negocio
// @Description  Ventas del día y del mes, utilidad, ticket promedio, top tamales, bebidas por hora,
//
//	utilidad por línea, proporción picante y serie diaria de 7 días.
//
// @Tags         dashboard
// @Security     Bearer
// @Produce      json
// @Param        rango        query  string  false  "today | week | month (default today)"
// @Param        sucursal_id  query  string  false  "Vacío = todas las sucursales"
// @Success      200  {object}  dto.DashboardDTO
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      503  {object}  dto.ErrorResponse
// @Router       /api/v1/dashboard [get]
func (h *DashboardHandler) GetDashboard(c *fiber.Ctx) error {
	out, err := h.uc.GetDashboard(c.Context(), c.Query("sucursal_id"), c.Query("rango"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Ranking godoc
// @Summary      Ranking Pareto de productos por ingreso
// @Tags         dashboard
// @Security     Bearer
// @Produce      json
// @Param        desde        query  string  false  "YYYY-MM-DD (default: hace 30 días)"
// @Param        hasta        query  string  false  "YYYY-MM-DD inclusive (default: hoy)"
// @Param        sucursal_id  query  string  false  "Vacío = todas las sucursales"
// @Success      200  {object}  dto.RankingDTO
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/v1/dashboard/ranking [get]
func (h *DashboardHandler) Ranking(c *fiber.Ctx) error {
	start, end, err := parseDateRange(c, h.loc, time.Now(), rankingDefaultDays)
	if err != nil {
		return respondError(c, err)
	}
	out, err := h.uc.Ranking(c.Context(), c.Query("sucursal_id"), start, end)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
