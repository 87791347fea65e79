package dto

import "github.com/shopspring/decimal"

// DashboardQueryRequest parámetros de GET /api/dashboard/summary.
// Los agregados se calculan sobre el conjunto filtrado por bodega y búsqueda;
// el filtro de estado no aplica aquí (las tarjetas no cambian al alternar
// pestañas de estado).
type DashboardQueryRequest struct {
	Search    string `query:"search"`
	Warehouse string `query:"warehouse"`
}

// DashboardSummaryDTO respuesta de GET /api/dashboard/summary.
type DashboardSummaryDTO struct {
	TotalStock     int `json:"total_stock"`
	TotalDemand    int `json:"total_demand"`
	TotalFulfilled int `json:"total_fulfilled"` // sum(min(stock, demand))

	// Porcentaje de demanda cubierta por el stock actual, a 1 decimal.
	// 0 exacto cuando TotalDemand es 0.
	FillRate decimal.Decimal `json:"fill_rate"`
}
