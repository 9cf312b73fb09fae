package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound          = errors.New("recurso no encontrado")
	ErrInvalidInput      = errors.New("entrada inválida")
	ErrDuplicate         = errors.New("recurso duplicado")
	ErrUnauthorized      = errors.New("no autorizado")
	ErrForbidden         = errors.New("acceso denegado")
	ErrUserNotFound      = errors.New("usuario no encontrado")
	ErrEmailAlreadyExists = errors.New("el email ya está registrado")

	// Errores del registro de ventas con descuento de stock.
	ErrSizeNotFound      = errors.New("talla no encontrada para el producto")
	ErrInsufficientStock = errors.New("stock insuficiente")
	ErrStockConflict     = errors.New("no se pudo actualizar el stock")
	ErrSaleInsert        = errors.New("no se pudo registrar la venta")
	ErrSaleDelete        = errors.New("no se pudo eliminar la venta")
)
