package inventory_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/supplysight-api/internal/domain/inventory"
)

// Classify debe cumplir: stock > demand → healthy; stock == demand → low;
// stock < demand → critical. El empate es el caso fácil de invertir.
func TestClassify(t *testing.T) {
	cases := []struct {
		name   string
		stock  int
		demand int
		want   inventory.Status
	}{
		{"stock mayor que demanda", 180, 120, inventory.StatusHealthy},
		{"stock menor que demanda", 50, 80, inventory.StatusCritical},
		{"empate exacto es low, no healthy", 80, 80, inventory.StatusLow},
		{"empate en cero", 0, 0, inventory.StatusLow},
		{"stock cero con demanda", 0, 1, inventory.StatusCritical},
		{"demanda cero con stock", 1, 0, inventory.StatusHealthy},
		{"diferencia mínima hacia arriba", 101, 100, inventory.StatusHealthy},
		{"diferencia mínima hacia abajo", 99, 100, inventory.StatusCritical},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, inventory.Classify(tc.stock, tc.demand))
		})
	}
}

// Barrido exhaustivo alrededor de la frontera de igualdad: la clasificación
// debe derivarse solo del signo de stock-demand.
func TestClassify_FronteraExhaustiva(t *testing.T) {
	for stock := 0; stock <= 10; stock++ {
		for demand := 0; demand <= 10; demand++ {
			got := inventory.Classify(stock, demand)
			switch {
			case stock > demand:
				assert.Equal(t, inventory.StatusHealthy, got, "stock=%d demand=%d", stock, demand)
			case stock == demand:
				assert.Equal(t, inventory.StatusLow, got, "stock=%d demand=%d", stock, demand)
			default:
				assert.Equal(t, inventory.StatusCritical, got, "stock=%d demand=%d", stock, demand)
			}
		}
	}
}

func TestNormalizeStatus(t *testing.T) {
	assert.Equal(t, inventory.StatusAll, inventory.NormalizeStatus(""))
	assert.Equal(t, inventory.StatusAll, inventory.NormalizeStatus("all"))
	assert.Equal(t, inventory.StatusCritical, inventory.NormalizeStatus("Critical"))
	assert.Equal(t, inventory.StatusHealthy, inventory.NormalizeStatus("HEALTHY"))
}
