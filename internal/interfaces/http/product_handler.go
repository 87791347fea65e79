package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/supplysight-api/internal/application/dto"
	appinventory "github.com/jhoicas/supplysight-api/internal/application/inventory"
	"github.com/jhoicas/supplysight-api/internal/application/usecase"
	"github.com/jhoicas/supplysight-api/internal/domain"
)

// ProductHandler maneja las peticiones HTTP para Product: el listado
// filtrado y las dos mutaciones (demanda y transferencia).
type ProductHandler struct {
	uc        *usecase.ProductUseCase
	movements *appinventory.MovementUseCase
}

// NewProductHandler construye el handler.
func NewProductHandler(uc *usecase.ProductUseCase, movements *appinventory.MovementUseCase) *ProductHandler {
	return &ProductHandler{uc: uc, movements: movements}
}

// List godoc
// @Summary      Listar productos con filtros conjuntivos
// @Description  Filtra por bodega, búsqueda (substring case-insensitive en
//               name, sku o id) y estado derivado. Sin `page` devuelve todas
//               las coincidencias; con `page` aplica páginas de 10.
// @Tags         products
// @Produce      json
// @Param        search     query  string  false  "Substring sobre name, sku o id"
// @Param        status     query  string  false  "healthy|low|critical|all"
// @Param        warehouse  query  string  false  "Código de bodega o all"
// @Param        page       query  int     false  "Página 1-indexada (tamaño 10)"
// @Success      200  {object}  dto.ProductListResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/products [get]
func (h *ProductHandler) List(c *fiber.Ctx) error {
	var in dto.ProductQueryRequest
	if err := c.QueryParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_PARAMS", Message: "parámetros de consulta inválidos"})
	}
	return c.JSON(h.uc.List(in))
}

// UpdateDemand godoc
// @Summary      Actualizar la demanda de un producto
// @Description  Reemplaza solo el campo demand; el stock no se toca.
// @Tags         products
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del producto"
// @Param        body  body  dto.UpdateDemandRequest  true  "Nueva demanda"
// @Success      200   {object}  dto.ProductResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/products/{id}/demand [put]
func (h *ProductHandler) UpdateDemand(c *fiber.Ctx) error {
	id := c.Params("id")
	var in dto.UpdateDemandRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.movements.UpdateDemand(id, in)
	if err != nil {
		return mutationError(c, err)
	}
	return c.JSON(out)
}

// TransferStock godoc
// @Summary      Transferir stock desde la bodega origen
// @Description  Descuenta qty del stock si el producto está en `from` y el
//               stock alcanza. La bodega destino `to` solo queda en la
//               bitácora: el lado destino no se acredita.
// @Tags         products
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del producto"
// @Param        body  body  dto.TransferStockRequest  true  "Transferencia"
// @Success      200   {object}  dto.ProductResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/products/{id}/transfer [post]
func (h *ProductHandler) TransferStock(c *fiber.Ctx) error {
	id := c.Params("id")
	var in dto.TransferStockRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.movements.TransferStock(id, in)
	if err != nil {
		return mutationError(c, err)
	}
	return c.JSON(out)
}

// mutationError traduce los errores de negocio a códigos HTTP. Los tres son
// rechazos síncronos con mensaje descriptivo; ninguno se reintenta ni tumba
// el proceso.
func mutationError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: err.Error()})
	case errors.Is(err, domain.ErrWrongSource):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "WRONG_SOURCE", Message: err.Error()})
	case errors.Is(err, domain.ErrInsufficientStock):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "INSUFFICIENT_STOCK", Message: err.Error()})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
}
