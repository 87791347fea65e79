package dto

// ProductQueryRequest parámetros de GET /api/products.
// Los tres filtros son conjuntivos; vacío o "all" desactiva el filtro.
// Page es opcional: 0 (ausente) devuelve todas las coincidencias sin paginar.
type ProductQueryRequest struct {
	Search    string `query:"search"`    // substring case-insensitive sobre name, sku o id
	Status    string `query:"status"`    // healthy|low|critical|all (cualquier capitalización)
	Warehouse string `query:"warehouse"` // código de bodega o "all"
	Page      int    `query:"page"`      // 1-indexado, tamaño fijo 10
}

// ProductResponse salida de un producto. Status se deriva en cada lectura
// del par (stock, demand), nunca se persiste.
type ProductResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	SKU       string `json:"sku"`
	Warehouse string `json:"warehouse"`
	Stock     int    `json:"stock"`
	Demand    int    `json:"demand"`
	Status    string `json:"status"` // healthy | low | critical
}

// ProductListResponse lista de productos; Page solo se incluye cuando el
// caller pidió paginación.
type ProductListResponse struct {
	Items []ProductResponse `json:"items"`
	Page  *PageResponse     `json:"page,omitempty"`
}

// UpdateDemandRequest entrada de PUT /api/products/{id}/demand.
// El valor no se revalida en el servidor: el cliente rechaza negativos y
// no-numéricos antes de llamar (decisión de compatibilidad).
type UpdateDemandRequest struct {
	Demand int `json:"demand"`
}

// TransferStockRequest entrada de POST /api/products/{id}/transfer.
// To se registra en la bitácora pero no acredita stock en el destino.
type TransferStockRequest struct {
	From string `json:"from"`
	To   string `json:"to"`
	Qty  int    `json:"qty"`
}
