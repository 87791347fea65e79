package usecase

import (
	"github.com/jhoicas/supplysight-api/internal/application/analytics"
	"github.com/jhoicas/supplysight-api/internal/application/dto"
	"github.com/jhoicas/supplysight-api/internal/domain/entity"
	"github.com/jhoicas/supplysight-api/internal/domain/inventory"
	"github.com/jhoicas/supplysight-api/internal/domain/repository"
)

// ProductUseCase casos de uso de lectura para productos: filtrado conjuntivo
// y paginación opcional. El estado de cada producto se deriva en la lectura.
type ProductUseCase struct {
	repo repository.ProductRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository) *ProductUseCase {
	return &ProductUseCase{repo: repo}
}

// List devuelve los productos que cumplen los filtros, en el orden del
// almacén. Sin in.Page devuelve todas las coincidencias; con in.Page >= 1
// aplica el corte de página de tamaño fijo (página fuera de rango → vacía).
func (uc *ProductUseCase) List(in dto.ProductQueryRequest) *dto.ProductListResponse {
	list := uc.repo.List(repository.ProductFilter{
		Search:    in.Search,
		Status:    inventory.NormalizeStatus(in.Status),
		Warehouse: in.Warehouse,
	})
	items := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		items = append(items, toProductResponse(p))
	}
	if in.Page <= 0 {
		return &dto.ProductListResponse{Items: items}
	}

	pageItems, totalPages := analytics.PaginateProducts(items, in.Page)
	return &dto.ProductListResponse{
		Items: pageItems,
		Page: &dto.PageResponse{
			Page:       in.Page,
			PageSize:   dto.PageSize,
			TotalPages: totalPages,
			Total:      len(items),
		},
	}
}

func toProductResponse(p entity.Product) dto.ProductResponse {
	return dto.ProductResponse{
		ID:        p.ID,
		Name:      p.Name,
		SKU:       p.SKU,
		Warehouse: p.Warehouse,
		Stock:     p.Stock,
		Demand:    p.Demand,
		Status:    string(inventory.Classify(p.Stock, p.Demand)),
	}
}
