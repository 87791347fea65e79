package entity

import "time"

// Tipos de movimiento registrados en la bitácora de inventario.
const (
	MovementTypeDemandUpdate = "DEMAND_UPDATE"
	MovementTypeTransfer     = "TRANSFER"
)

// StockMovement es una entrada inmutable de la bitácora de movimientos.
// Para TRANSFER, FromWarehouse/ToWarehouse son las bodegas origen/destino y
// Quantity la cantidad transferida; la bitácora registra el destino solo como
// auditoría (el stock destino no se acredita). Para DEMAND_UPDATE, Quantity
// es el nuevo valor de demanda y las bodegas quedan vacías.
type StockMovement struct {
	ID            string
	Type          string
	ProductID     string
	FromWarehouse string
	ToWarehouse   string
	Quantity      int
	CreatedAt     time.Time
}
