package analytics

import "github.com/jhoicas/supplysight-api/internal/application/dto"

// PaginateProducts corta la página pedida de un listado ya filtrado.
// page es 1-indexado y el tamaño de página es fijo (dto.PageSize).
// totalPages = ceil(len(items) / PageSize); una página más allá de la última
// devuelve un corte vacío, no un error.
func PaginateProducts(items []dto.ProductResponse, page int) (pageItems []dto.ProductResponse, totalPages int) {
	totalPages = (len(items) + dto.PageSize - 1) / dto.PageSize

	start := (page - 1) * dto.PageSize
	if start >= len(items) {
		return []dto.ProductResponse{}, totalPages
	}
	end := start + dto.PageSize
	if end > len(items) {
		end = len(items)
	}
	return items[start:end], totalPages
}
