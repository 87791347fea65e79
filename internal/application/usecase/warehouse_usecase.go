package usecase

import (
	"github.com/jhoicas/supplysight-api/internal/application/dto"
	"github.com/jhoicas/supplysight-api/internal/domain/entity"
	"github.com/jhoicas/supplysight-api/internal/domain/repository"
)

// WarehouseUseCase casos de uso de lectura para bodegas (data de referencia).
type WarehouseUseCase struct {
	repo repository.WarehouseRepository
}

// NewWarehouseUseCase construye el caso de uso.
func NewWarehouseUseCase(repo repository.WarehouseRepository) *WarehouseUseCase {
	return &WarehouseUseCase{repo: repo}
}

// List devuelve el set de referencia completo en orden de inserción.
func (uc *WarehouseUseCase) List() *dto.WarehouseListResponse {
	list := uc.repo.List()
	items := make([]dto.WarehouseResponse, 0, len(list))
	for _, w := range list {
		items = append(items, toWarehouseResponse(w))
	}
	return &dto.WarehouseListResponse{Items: items}
}

func toWarehouseResponse(w entity.Warehouse) dto.WarehouseResponse {
	return dto.WarehouseResponse{
		Code:    w.Code,
		Name:    w.Name,
		City:    w.City,
		Country: w.Country,
	}
}
