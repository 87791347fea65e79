// Package inventory contiene los casos de uso que mutan el inventario:
// actualización de demanda y transferencia de stock, más la consulta de la
// bitácora de movimientos.
package inventory

import (
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/supplysight-api/internal/application/dto"
	"github.com/jhoicas/supplysight-api/internal/domain/entity"
	"github.com/jhoicas/supplysight-api/internal/domain/inventory"
	"github.com/jhoicas/supplysight-api/internal/domain/repository"
)

// MovementUseCase aplica las dos mutaciones del inventario y deja rastro en
// la bitácora. La atomicidad read-modify-write la garantiza el repositorio
// de productos; aquí solo se orquesta.
type MovementUseCase struct {
	productRepo  repository.ProductRepository
	movementRepo repository.MovementRepository
}

// NewMovementUseCase construye el caso de uso.
func NewMovementUseCase(
	productRepo repository.ProductRepository,
	movementRepo repository.MovementRepository,
) *MovementUseCase {
	return &MovementUseCase{productRepo: productRepo, movementRepo: movementRepo}
}

// UpdateDemand reemplaza solo la demanda del producto y devuelve el registro
// actualizado. Falla con domain.ErrNotFound si el id no existe. El valor no
// se revalida en el servidor (paridad con el cliente de referencia).
func (uc *MovementUseCase) UpdateDemand(id string, in dto.UpdateDemandRequest) (*dto.ProductResponse, error) {
	p, err := uc.productRepo.UpdateDemand(id, in.Demand)
	if err != nil {
		return nil, err
	}
	uc.record(&entity.StockMovement{
		Type:      entity.MovementTypeDemandUpdate,
		ProductID: p.ID,
		Quantity:  in.Demand,
	})
	return toProductResponse(p), nil
}

// TransferStock descuenta qty del stock del producto si está en la bodega
// `from` y alcanza el stock. Devuelve el registro actualizado (solo el lado
// origen). El destino `to` queda únicamente en la bitácora: ningún registro
// de producto se acredita en la bodega de llegada.
func (uc *MovementUseCase) TransferStock(id string, in dto.TransferStockRequest) (*dto.ProductResponse, error) {
	p, err := uc.productRepo.Transfer(id, in.From, in.Qty)
	if err != nil {
		return nil, err
	}
	uc.record(&entity.StockMovement{
		Type:          entity.MovementTypeTransfer,
		ProductID:     p.ID,
		FromWarehouse: in.From,
		ToWarehouse:   in.To,
		Quantity:      in.Qty,
	})
	return toProductResponse(p), nil
}

// ListMovements devuelve la bitácora del más reciente al más antiguo.
func (uc *MovementUseCase) ListMovements(in dto.MovementQueryRequest) *dto.MovementListResponse {
	list := uc.movementRepo.List(in.Product)
	items := make([]dto.MovementResponse, 0, len(list))
	for _, m := range list {
		items = append(items, dto.MovementResponse{
			ID:        m.ID,
			Type:      m.Type,
			ProductID: m.ProductID,
			From:      m.FromWarehouse,
			To:        m.ToWarehouse,
			Qty:       m.Quantity,
			CreatedAt: m.CreatedAt,
		})
	}
	return &dto.MovementListResponse{Items: items}
}

func (uc *MovementUseCase) record(m *entity.StockMovement) {
	m.ID = uuid.New().String()
	m.CreatedAt = time.Now()
	// La bitácora en memoria no falla; si algún día persiste, el movimiento
	// no debe tumbar la mutación ya aplicada.
	_ = uc.movementRepo.Append(m)
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	return &dto.ProductResponse{
		ID:        p.ID,
		Name:      p.Name,
		SKU:       p.SKU,
		Warehouse: p.Warehouse,
		Stock:     p.Stock,
		Demand:    p.Demand,
		Status:    string(inventory.Classify(p.Stock, p.Demand)),
	}
}
