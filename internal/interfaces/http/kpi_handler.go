package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/supplysight-api/internal/application/usecase"
)

// KPIHandler maneja los endpoints de series de tendencia.
type KPIHandler struct {
	uc *usecase.KPIUseCase
}

// NewKPIHandler construye el handler.
func NewKPIHandler(uc *usecase.KPIUseCase) *KPIHandler {
	return &KPIHandler{uc: uc}
}

// Series godoc
// @Summary      Serie KPI de stock/demanda por rango
// @Description  Devuelve la serie precomputada, un punto por día calendario
//               terminando hoy, ascendente por fecha. Un rango desconocido
//               no es un error: responde la serie de 7 días.
// @Tags         kpis
// @Produce      json
// @Param        range  query  string  false  "7d|14d|30d"  default(7d)
// @Success      200  {object}  dto.KPISeriesResponse
// @Router       /api/kpis [get]
func (h *KPIHandler) Series(c *fiber.Ctx) error {
	return c.JSON(h.uc.Series(c.Query("range", "7d")))
}
