package memory

import (
	"sync"

	"github.com/jhoicas/supplysight-api/internal/domain/entity"
	"github.com/jhoicas/supplysight-api/internal/domain/repository"
)

// MovementRepository bitácora de movimientos en memoria (append-only).
type MovementRepository struct {
	mu        sync.RWMutex
	movements []entity.StockMovement
}

var _ repository.MovementRepository = (*MovementRepository)(nil)

// NewMovementRepository construye una bitácora vacía.
func NewMovementRepository() *MovementRepository {
	return &MovementRepository{}
}

// Append registra un movimiento.
func (r *MovementRepository) Append(m *entity.StockMovement) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.movements = append(r.movements, *m)
	return nil
}

// List devuelve los movimientos del más reciente al más antiguo,
// opcionalmente filtrados por producto.
func (r *MovementRepository) List(productID string) []entity.StockMovement {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]entity.StockMovement, 0, len(r.movements))
	for i := len(r.movements) - 1; i >= 0; i-- {
		m := r.movements[i]
		if productID != "" && m.ProductID != productID {
			continue
		}
		out = append(out, m)
	}
	return out
}
