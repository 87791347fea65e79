package entity

// Warehouse representa una bodega física donde se almacena inventario.
// Es data de referencia inmutable: se crea al inicio del proceso y nunca
// se modifica ni se elimina. Code es el identificador estable (ej. "BLR-A").
type Warehouse struct {
	Code    string
	Name    string
	City    string
	Country string
}
