package repository

import "github.com/jhoicas/supplysight-api/internal/domain/entity"

// MovementRepository define el puerto de la bitácora de movimientos.
type MovementRepository interface {
	// Append registra un movimiento; las entradas son inmutables.
	Append(m *entity.StockMovement) error
	// List devuelve los movimientos del más reciente al más antiguo.
	// productID vacío devuelve todos.
	List(productID string) []entity.StockMovement
}
