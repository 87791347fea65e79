package usecase_test

import (
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/supplysight-api/internal/application/usecase"
	"github.com/jhoicas/supplysight-api/internal/infrastructure/memory"
)

func newKPIUseCase() *usecase.KPIUseCase {
	repo := memory.NewKPIRepository(time.Now(), rand.New(rand.NewSource(7)))
	return usecase.NewKPIUseCase(repo)
}

func TestKPISeries_RangosConocidos(t *testing.T) {
	uc := newKPIUseCase()

	out := uc.Series("14d")
	assert.Equal(t, "14d", out.Range)
	require.Len(t, out.Items, 14)
	assert.Equal(t, time.Now().Format("2006-01-02"), out.Items[13].Date,
		"la serie de 14 días termina en la fecha actual")
}

// Un rango desconocido degrada en silencio a la serie de 7 días: misma serie,
// no un error.
func TestKPISeries_FallbackSilencioso(t *testing.T) {
	uc := newKPIUseCase()

	bogus := uc.Series("bogus")
	sevenDays := uc.Series("7d")

	assert.Equal(t, "7d", bogus.Range, "la respuesta declara el rango servido")
	assert.Equal(t, sevenDays.Items, bogus.Items, "misma serie que 7d, punto por punto")
}
