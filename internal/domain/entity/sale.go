package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Sale registro inmutable de una venta completada. ProductID es nullable porque
// el producto puede eliminarse después; ProductName queda como snapshot.
// Eliminar una venta NO repone stock (política explícita del negocio: la
// corrección de inventario tras una venta errónea es manual).
type Sale struct {
	ID          string
	ProductID   *string
	ProductName string
	Size        string
	Quantity    int
	UnitPrice   decimal.Decimal
	TotalAmount decimal.Decimal // unit_price * quantity, sin redondeo
	CustomerID  *string
	SaleDate    time.Time
	CreatedAt   time.Time
}
