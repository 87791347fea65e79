package repository

import "github.com/jhoicas/supplysight-api/internal/domain/entity"

// WarehouseRepository define el puerto de lectura para Warehouse (DIP).
// Las bodegas son data de referencia: solo lectura.
type WarehouseRepository interface {
	// List devuelve todas las bodegas en orden de inserción.
	List() []entity.Warehouse
	// GetByCode devuelve la bodega con ese código, o nil si no existe.
	GetByCode(code string) *entity.Warehouse
}
