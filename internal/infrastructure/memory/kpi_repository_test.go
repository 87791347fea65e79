package memory_test

import (
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/supplysight-api/internal/domain/repository"
	"github.com/jhoicas/supplysight-api/internal/infrastructure/memory"
)

func newKPIRepo(now time.Time) *memory.KPIRepository {
	return memory.NewKPIRepository(now, rand.New(rand.NewSource(1)))
}

// Cada serie tiene un punto por día calendario, ascendente, terminando en now.
func TestKPISeries_LongitudYOrden(t *testing.T) {
	now := time.Date(2026, 8, 31, 15, 4, 5, 0, time.UTC)
	r := newKPIRepo(now)

	for rangeKey, days := range map[string]int{
		repository.KPIRange7d:  7,
		repository.KPIRange14d: 14,
		repository.KPIRange30d: 30,
	} {
		points, ok := r.Series(rangeKey)
		require.True(t, ok, "rango %s debe existir", rangeKey)
		require.Len(t, points, days)

		assert.Equal(t, "2026-08-31", points[days-1].Date, "la serie termina hoy")
		first := now.AddDate(0, 0, -(days - 1)).Format("2006-01-02")
		assert.Equal(t, first, points[0].Date, "la serie empieza hace days-1 días")

		for i := 1; i < len(points); i++ {
			assert.Less(t, points[i-1].Date, points[i].Date,
				"fechas estrictamente ascendentes en %s", rangeKey)
		}
	}
}

// Los valores simulados se mueven alrededor de las bases (850/700) dentro de
// la banda senoidal ± ruido.
func TestKPISeries_RangoDeValores(t *testing.T) {
	r := newKPIRepo(time.Now())
	points, ok := r.Series(repository.KPIRange30d)
	require.True(t, ok)

	for _, p := range points {
		assert.InDelta(t, 850, p.Stock, 130, "stock dentro de base±(100+25)")
		assert.InDelta(t, 700, p.Demand, 100, "demanda dentro de base±(80+17.5)")
	}
}

// Un rango desconocido no existe en el repositorio; el fallback a 7d es
// responsabilidad del caso de uso.
func TestKPISeries_RangoDesconocido(t *testing.T) {
	r := newKPIRepo(time.Now())
	points, ok := r.Series("bogus")
	assert.False(t, ok)
	assert.Nil(t, points)
}

// Las series son inmutables: mutar lo devuelto no afecta lecturas siguientes.
func TestKPISeries_DevuelveCopias(t *testing.T) {
	r := newKPIRepo(time.Now())
	a, _ := r.Series(repository.KPIRange7d)
	a[0].Stock = -1
	b, _ := r.Series(repository.KPIRange7d)
	assert.NotEqual(t, -1, b[0].Stock)
}
