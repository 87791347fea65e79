package dto

// KPIQueryRequest parámetros de GET /api/kpis.
type KPIQueryRequest struct {
	Range string `query:"range"` // 7d | 14d | 30d; desconocido cae a 7d
}

// KPIPointResponse un punto de la serie de tendencia.
type KPIPointResponse struct {
	Date   string `json:"date"` // YYYY-MM-DD
	Stock  int    `json:"stock"`
	Demand int    `json:"demand"`
}

// KPISeriesResponse serie completa del rango pedido, ascendente por fecha.
type KPISeriesResponse struct {
	Range string             `json:"range"` // rango efectivamente servido
	Items []KPIPointResponse `json:"items"`
}
