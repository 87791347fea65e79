package memory

import (
	"fmt"
	"strings"
	"sync"

	"github.com/jhoicas/supplysight-api/internal/domain"
	"github.com/jhoicas/supplysight-api/internal/domain/entity"
	"github.com/jhoicas/supplysight-api/internal/domain/inventory"
	"github.com/jhoicas/supplysight-api/internal/domain/repository"
)

// ProductRepository almacén de productos en memoria.
// Un solo mutex guarda la colección completa: los handlers HTTP corren en
// goroutines concurrentes y las mutaciones son read-modify-write, así que la
// atomicidad se garantiza aquí, en el borde del almacén.
type ProductRepository struct {
	mu       sync.RWMutex
	products []entity.Product // orden de inserción, nunca se reordena
	index    map[string]int   // id → posición en products
}

var _ repository.ProductRepository = (*ProductRepository)(nil)

// NewProductRepository construye el almacén con el catálogo semilla.
func NewProductRepository(seed []entity.Product) *ProductRepository {
	r := &ProductRepository{
		products: make([]entity.Product, len(seed)),
		index:    make(map[string]int, len(seed)),
	}
	copy(r.products, seed)
	for i, p := range r.products {
		r.index[p.ID] = i
	}
	return r
}

// List devuelve una instantánea de los productos que cumplen todos los
// filtros, en el orden del almacén. Los filtros son conjuntivos y se aplican
// bodega → búsqueda → estado.
func (r *ProductRepository) List(filter repository.ProductFilter) []entity.Product {
	r.mu.RLock()
	defer r.mu.RUnlock()

	search := strings.ToLower(filter.Search)
	out := make([]entity.Product, 0, len(r.products))
	for _, p := range r.products {
		if filter.Warehouse != "" && filter.Warehouse != "all" && p.Warehouse != filter.Warehouse {
			continue
		}
		if search != "" && !matchesSearch(p, search) {
			continue
		}
		if filter.Status != "" && filter.Status != inventory.StatusAll &&
			inventory.Classify(p.Stock, p.Demand) != filter.Status {
			continue
		}
		out = append(out, p)
	}
	return out
}

// matchesSearch coincide si name, sku o id contienen el término (ya en minúsculas).
func matchesSearch(p entity.Product, search string) bool {
	return strings.Contains(strings.ToLower(p.Name), search) ||
		strings.Contains(strings.ToLower(p.SKU), search) ||
		strings.Contains(strings.ToLower(p.ID), search)
}

// GetByID devuelve una copia del producto.
func (r *ProductRepository) GetByID(id string) (*entity.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	i, ok := r.index[id]
	if !ok {
		return nil, fmt.Errorf("producto con ID %s: %w", id, domain.ErrNotFound)
	}
	p := r.products[i]
	return &p, nil
}

// UpdateDemand reemplaza solo Demand y devuelve el registro actualizado.
// El valor numérico no se revalida: el caller ya lo aceptó.
func (r *ProductRepository) UpdateDemand(id string, demand int) (*entity.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	i, ok := r.index[id]
	if !ok {
		return nil, fmt.Errorf("producto con ID %s: %w", id, domain.ErrNotFound)
	}
	r.products[i].Demand = demand
	p := r.products[i]
	return &p, nil
}

// Transfer descuenta qty del stock del producto. Valida, en orden: que el
// producto exista, que esté en la bodega `from` y que qty no exceda el stock.
// El destino no se acredita: no se crea ni actualiza ningún registro en la
// bodega de llegada.
func (r *ProductRepository) Transfer(id, from string, qty int) (*entity.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	i, ok := r.index[id]
	if !ok {
		return nil, fmt.Errorf("producto con ID %s: %w", id, domain.ErrNotFound)
	}
	p := &r.products[i]
	if p.Warehouse != from {
		return nil, fmt.Errorf("el producto no está en la bodega %s: %w", from, domain.ErrWrongSource)
	}
	if p.Stock < qty {
		return nil, fmt.Errorf("disponible %d, solicitado %d: %w", p.Stock, qty, domain.ErrInsufficientStock)
	}
	p.Stock -= qty
	out := *p
	return &out, nil
}
