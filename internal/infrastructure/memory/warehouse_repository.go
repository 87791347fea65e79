package memory

import (
	"github.com/jhoicas/supplysight-api/internal/domain/entity"
	"github.com/jhoicas/supplysight-api/internal/domain/repository"
)

// WarehouseRepository almacén de bodegas en memoria. Las bodegas son
// inmutables después de la siembra, así que no necesita mutex.
type WarehouseRepository struct {
	warehouses []entity.Warehouse
	byCode     map[string]int
}

var _ repository.WarehouseRepository = (*WarehouseRepository)(nil)

// NewWarehouseRepository construye el almacén con las bodegas semilla.
func NewWarehouseRepository(seed []entity.Warehouse) *WarehouseRepository {
	r := &WarehouseRepository{
		warehouses: make([]entity.Warehouse, len(seed)),
		byCode:     make(map[string]int, len(seed)),
	}
	copy(r.warehouses, seed)
	for i, w := range r.warehouses {
		r.byCode[w.Code] = i
	}
	return r
}

// List devuelve todas las bodegas en orden de inserción.
func (r *WarehouseRepository) List() []entity.Warehouse {
	out := make([]entity.Warehouse, len(r.warehouses))
	copy(out, r.warehouses)
	return out
}

// GetByCode devuelve la bodega con ese código, o nil si no existe.
func (r *WarehouseRepository) GetByCode(code string) *entity.Warehouse {
	i, ok := r.byCode[code]
	if !ok {
		return nil
	}
	w := r.warehouses[i]
	return &w
}
