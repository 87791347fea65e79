package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/supplysight-api/internal/application/analytics"
	"github.com/jhoicas/supplysight-api/internal/application/dto"
)

// DashboardHandler maneja el endpoint de agregados del dashboard.
type DashboardHandler struct {
	uc *analytics.DashboardUseCase
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(uc *analytics.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// GetSummary godoc
// @Summary      Agregados del dashboard (stock, demanda, fill rate)
// @Description  Calcula total_stock, total_demand, total_fulfilled y
//               fill_rate sobre el conjunto filtrado por bodega y búsqueda.
//               El filtro de estado no aplica a los agregados.
// @Tags         dashboard
// @Produce      json
// @Param        search     query  string  false  "Substring sobre name, sku o id"
// @Param        warehouse  query  string  false  "Código de bodega o all"
// @Success      200  {object}  dto.DashboardSummaryDTO
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/dashboard/summary [get]
func (h *DashboardHandler) GetSummary(c *fiber.Ctx) error {
	var in dto.DashboardQueryRequest
	if err := c.QueryParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_PARAMS", Message: "parámetros de consulta inválidos"})
	}
	return c.JSON(h.uc.GetSummary(in))
}
