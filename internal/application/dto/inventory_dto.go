package dto

import "time"

// MovementQueryRequest parámetros de GET /api/inventory/movements.
type MovementQueryRequest struct {
	Product string `query:"product"` // filtra por ID de producto; vacío = todos
}

// MovementResponse una entrada de la bitácora de movimientos.
// Para TRANSFER, qty es la cantidad transferida y from/to las bodegas;
// para DEMAND_UPDATE, qty es el nuevo valor de demanda.
type MovementResponse struct {
	ID        string    `json:"id"`
	Type      string    `json:"type"` // DEMAND_UPDATE | TRANSFER
	ProductID string    `json:"product_id"`
	From      string    `json:"from,omitempty"`
	To        string    `json:"to,omitempty"`
	Qty       int       `json:"qty"`
	CreatedAt time.Time `json:"created_at"`
}

// MovementListResponse lista de movimientos, del más reciente al más antiguo.
type MovementListResponse struct {
	Items []MovementResponse `json:"items"`
}
