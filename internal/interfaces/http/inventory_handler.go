package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/supplysight-api/internal/application/dto"
	appinventory "github.com/jhoicas/supplysight-api/internal/application/inventory"
)

// InventoryHandler maneja la consulta de la bitácora de movimientos.
type InventoryHandler struct {
	uc *appinventory.MovementUseCase
}

// NewInventoryHandler construye el handler.
func NewInventoryHandler(uc *appinventory.MovementUseCase) *InventoryHandler {
	return &InventoryHandler{uc: uc}
}

// ListMovements godoc
// @Summary      Bitácora de movimientos de inventario
// @Description  Movimientos del más reciente al más antiguo. Para TRANSFER
//               la entrada registra la bodega destino solo como auditoría.
// @Tags         inventory
// @Produce      json
// @Param        product  query  string  false  "Filtrar por ID de producto"
// @Success      200  {object}  dto.MovementListResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/inventory/movements [get]
func (h *InventoryHandler) ListMovements(c *fiber.Ctx) error {
	var in dto.MovementQueryRequest
	if err := c.QueryParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_PARAMS", Message: "parámetros de consulta inválidos"})
	}
	return c.JSON(h.uc.ListMovements(in))
}
