package repository

import (
	"github.com/jhoicas/supplysight-api/internal/domain/entity"
	"github.com/jhoicas/supplysight-api/internal/domain/inventory"
)

// ProductFilter criterios conjuntivos para listar productos.
// Warehouse vacío o "all" no filtra; Search vacío no filtra; Status
// inventory.StatusAll no filtra. Search es substring case-insensitive
// sobre Name, SKU o ID (basta con que uno coincida).
type ProductFilter struct {
	Search    string
	Status    inventory.Status
	Warehouse string
}

// ProductRepository define el puerto de persistencia para Product (DIP).
// Las mutaciones son read-modify-write atómicas: la implementación debe
// garantizar exclusión mutua sobre la colección (§ modelo de concurrencia).
type ProductRepository interface {
	// List devuelve una instantánea (copias) de los productos que cumplen
	// todos los filtros, en el orden del almacén subyacente, sin paginar.
	List(filter ProductFilter) []entity.Product
	// GetByID devuelve una copia del producto, o error ErrNotFound.
	GetByID(id string) (*entity.Product, error)
	// UpdateDemand reemplaza solo el campo Demand del producto y devuelve el
	// registro actualizado. No valida el valor numérico: esa responsabilidad
	// es del caller.
	UpdateDemand(id string, demand int) (*entity.Product, error)
	// Transfer descuenta qty del stock del producto si está en la bodega
	// `from` y tiene stock suficiente. El destino no se acredita en ningún
	// registro: la transferencia es solo-débito.
	Transfer(id, from string, qty int) (*entity.Product, error)
}
