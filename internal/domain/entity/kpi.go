package entity

// KPIPoint es una foto agregada de stock/demanda para un día calendario.
// Date es una fecha ISO-8601 (YYYY-MM-DD). Las series son inmutables una vez
// generadas: una por rango soportado (7/14/30 días), ordenadas de la más
// antigua a la más reciente y terminando en el día actual.
type KPIPoint struct {
	Date   string
	Stock  int
	Demand int
}
