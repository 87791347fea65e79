package entity

// Product representa un producto (SKU) del inventario.
// Stock y Demand se mutan in-place vía los casos de uso de movimientos;
// los productos nunca se eliminan. Warehouse referencia Warehouse.Code.
type Product struct {
	ID        string
	Name      string
	SKU       string
	Warehouse string
	Stock     int
	Demand    int
}
