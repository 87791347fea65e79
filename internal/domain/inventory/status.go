// Package inventory contiene los servicios puros de dominio del inventario.
package inventory

import "strings"

// Status clasificación derivada de un producto según su stock vs demanda.
// Nunca se persiste: se calcula en cada lectura, así siempre refleja la
// última mutación.
type Status string

const (
	StatusHealthy  Status = "healthy"
	StatusLow      Status = "low"
	StatusCritical Status = "critical"

	// StatusAll no es un estado de producto: es el valor de filtro que
	// desactiva el filtrado por estado.
	StatusAll Status = "all"
)

// Classify implementa la clasificación de salud de un producto (servicio de dominio).
// stock > demand → healthy; stock == demand → low; stock < demand → critical.
// La igualdad es "low", no "healthy": el stock apenas cubre la demanda.
// Función total sobre cualquier par de enteros no negativos, sin errores.
func Classify(stock, demand int) Status {
	switch {
	case stock > demand:
		return StatusHealthy
	case stock == demand:
		return StatusLow
	default:
		return StatusCritical
	}
}

// NormalizeStatus normaliza un filtro de estado recibido por query param.
// Acepta cualquier capitalización ("Critical" == "critical"); vacío equivale
// a "all".
func NormalizeStatus(s string) Status {
	if s == "" {
		return StatusAll
	}
	return Status(strings.ToLower(s))
}
