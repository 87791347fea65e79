package dto

// WarehouseResponse salida de una bodega.
type WarehouseResponse struct {
	Code    string `json:"code"`
	Name    string `json:"name"`
	City    string `json:"city"`
	Country string `json:"country"`
}

// WarehouseListResponse lista completa de bodegas (data de referencia, sin paginar).
type WarehouseListResponse struct {
	Items []WarehouseResponse `json:"items"`
}
