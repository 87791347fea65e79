// Package analytics contiene la capa de agregación del dashboard: KPIs
// derivados del conjunto de productos en vista y el corte de paginación.
package analytics

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/supplysight-api/internal/application/dto"
	"github.com/jhoicas/supplysight-api/internal/domain/inventory"
	"github.com/jhoicas/supplysight-api/internal/domain/repository"
)

// DashboardUseCase calcula los agregados del dashboard sobre el conjunto de
// productos actualmente en vista.
//
// Los agregados aplican los filtros de bodega y búsqueda pero NO el de
// estado: las tarjetas y el gráfico se mantienen estables mientras el
// usuario alterna pestañas de estado en la tabla.
type DashboardUseCase struct {
	productRepo repository.ProductRepository
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(productRepo repository.ProductRepository) *DashboardUseCase {
	return &DashboardUseCase{productRepo: productRepo}
}

// GetSummary construye el DashboardSummaryDTO para los filtros indicados.
//
//	totalStock     = Σ stock
//	totalDemand    = Σ demand
//	totalFulfilled = Σ min(stock, demand)
//	fillRate       = totalFulfilled / totalDemand * 100, a 1 decimal
//	                 (0 exacto si totalDemand es 0)
func (uc *DashboardUseCase) GetSummary(in dto.DashboardQueryRequest) *dto.DashboardSummaryDTO {
	products := uc.productRepo.List(repository.ProductFilter{
		Search:    in.Search,
		Status:    inventory.StatusAll,
		Warehouse: in.Warehouse,
	})

	var totalStock, totalDemand, totalFulfilled int
	for _, p := range products {
		totalStock += p.Stock
		totalDemand += p.Demand
		totalFulfilled += min(p.Stock, p.Demand)
	}

	return &dto.DashboardSummaryDTO{
		TotalStock:     totalStock,
		TotalDemand:    totalDemand,
		TotalFulfilled: totalFulfilled,
		FillRate:       fillRate(totalFulfilled, totalDemand),
	}
}

// fillRate porcentaje de demanda cubierta, redondeado a 1 decimal.
func fillRate(fulfilled, demand int) decimal.Decimal {
	if demand <= 0 {
		return decimal.Zero
	}
	return decimal.NewFromInt(int64(fulfilled)).
		Div(decimal.NewFromInt(int64(demand))).
		Mul(decimal.NewFromInt(100)).
		Round(1)
}
