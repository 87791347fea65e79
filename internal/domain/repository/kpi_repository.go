package repository

import "github.com/jhoicas/supplysight-api/internal/domain/entity"

// Claves de rango soportadas por las series KPI precomputadas.
const (
	KPIRange7d  = "7d"
	KPIRange14d = "14d"
	KPIRange30d = "30d"
)

// KPIRepository define el puerto de lectura para las series KPI.
// Las series se generan una sola vez al inicio del proceso y son inmutables.
type KPIRepository interface {
	// Series devuelve la serie precomputada del rango indicado tal cual
	// (orden ascendente por fecha). ok es false si el rango no existe;
	// el fallback al rango de 7 días lo decide el caso de uso.
	Series(rangeKey string) (points []entity.KPIPoint, ok bool)
}
