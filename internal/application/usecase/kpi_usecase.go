package usecase

import (
	"github.com/jhoicas/supplysight-api/internal/application/dto"
	"github.com/jhoicas/supplysight-api/internal/domain/repository"
)

// KPIUseCase sirve las series de tendencia precomputadas.
type KPIUseCase struct {
	repo repository.KPIRepository
}

// NewKPIUseCase construye el caso de uso.
func NewKPIUseCase(repo repository.KPIRepository) *KPIUseCase {
	return &KPIUseCase{repo: repo}
}

// Series devuelve la serie del rango pedido tal cual. Un rango desconocido
// no es un error: degrada en silencio a la serie de 7 días (decisión de
// compatibilidad). La respuesta indica el rango efectivamente servido.
func (uc *KPIUseCase) Series(rangeKey string) *dto.KPISeriesResponse {
	points, ok := uc.repo.Series(rangeKey)
	if !ok {
		rangeKey = repository.KPIRange7d
		points, _ = uc.repo.Series(rangeKey)
	}
	items := make([]dto.KPIPointResponse, 0, len(points))
	for _, p := range points {
		items = append(items, dto.KPIPointResponse{Date: p.Date, Stock: p.Stock, Demand: p.Demand})
	}
	return &dto.KPISeriesResponse{Range: rangeKey, Items: items}
}
