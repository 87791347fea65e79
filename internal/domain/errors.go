package domain

import "errors"

// Errores de dominio (sin dependencias externas).
// Ninguno es fatal ni reintentable: se devuelven al caller como operación
// rechazada con un mensaje descriptivo.
var (
	ErrNotFound          = errors.New("producto no encontrado")
	ErrWrongSource       = errors.New("el producto no está en la bodega origen")
	ErrInsufficientStock = errors.New("stock insuficiente")
)
