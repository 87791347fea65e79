package memory

import (
	"math"
	"math/rand"
	"time"

	"github.com/jhoicas/supplysight-api/internal/domain/entity"
	"github.com/jhoicas/supplysight-api/internal/domain/repository"
)

// Parámetros de la simulación de series KPI: tendencia senoidal sobre una
// base fija más ruido uniforme.
const (
	kpiBaseStock  = 850
	kpiBaseDemand = 700
)

// KPIRepository series KPI precomputadas en memoria, una por rango soportado.
// Se generan una sola vez al construir el repositorio y son inmutables, así
// que no necesita mutex.
type KPIRepository struct {
	series map[string][]entity.KPIPoint
}

var _ repository.KPIRepository = (*KPIRepository)(nil)

// NewKPIRepository genera las series de 7, 14 y 30 días que terminan en el
// día de now. rng permite fijar la semilla en tests.
func NewKPIRepository(now time.Time, rng *rand.Rand) *KPIRepository {
	return &KPIRepository{
		series: map[string][]entity.KPIPoint{
			repository.KPIRange7d:  generateSeries(7, now, rng),
			repository.KPIRange14d: generateSeries(14, now, rng),
			repository.KPIRange30d: generateSeries(30, now, rng),
		},
	}
}

// Series devuelve la serie del rango tal cual. ok es false si el rango no
// existe; el fallback lo decide el caso de uso.
func (r *KPIRepository) Series(rangeKey string) ([]entity.KPIPoint, bool) {
	s, ok := r.series[rangeKey]
	if !ok {
		return nil, false
	}
	out := make([]entity.KPIPoint, len(s))
	copy(out, s)
	return out, true
}

// generateSeries simula stock/demanda por día: un punto por día calendario,
// del más antiguo al más reciente, terminando hoy. La demanda sigue la misma
// curva que el stock con factores 0.8 (variación) y 0.7 (ruido).
func generateSeries(days int, now time.Time, rng *rand.Rand) []entity.KPIPoint {
	points := make([]entity.KPIPoint, 0, days)
	for i := days - 1; i >= 0; i-- {
		date := now.AddDate(0, 0, -i).Format("2006-01-02")
		variation := math.Sin(float64(i)/5) * 100
		noise := (rng.Float64() - 0.5) * 50
		points = append(points, entity.KPIPoint{
			Date:   date,
			Stock:  int(math.Round(kpiBaseStock + variation + noise)),
			Demand: int(math.Round(kpiBaseDemand + variation*0.8 + noise*0.7)),
		})
	}
	return points
}
