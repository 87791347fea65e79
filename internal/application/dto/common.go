package dto

// PageSize tamaño de página fijo para listados paginados.
const PageSize = 10

// PageResponse metadatos de página en respuestas paginadas.
// Page es 1-indexado; pedir más allá de la última página devuelve una
// página vacía, no un error.
type PageResponse struct {
	Page       int `json:"page"`
	PageSize   int `json:"page_size"`
	TotalPages int `json:"total_pages"`
	Total      int `json:"total"`
}

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
