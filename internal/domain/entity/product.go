package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Categorías de producto de la tienda (ropa de niño / niña).
const (
	CategoryNino = "nino"
	CategoryNina = "nina"
)

// ValidCategory indica si la categoría es una de las dos permitidas.
func ValidCategory(c string) bool {
	return c == CategoryNino || c == CategoryNina
}

// Product representa una prenda del catálogo. El stock se maneja por talla en ProductSize.
type Product struct {
	ID          string
	Name        string
	Description string
	Price       decimal.Decimal // precio de venta en USD
	Cost        decimal.Decimal // costo unitario en USD
	Category    string          // nino | nina
	ImageURL    string
	IsActive    bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// ProductSize stock de una talla concreta de un producto.
// Invariante: a lo sumo una fila por (product_id, size); stock nunca negativo.
type ProductSize struct {
	ID        string
	ProductID string
	Size      string // etiqueta libre: "2", "6", "M", ...
	Stock     int
	CreatedAt time.Time
}

// ProductWithSizes producto con todas sus tallas, tal como lo consume el catálogo.
type ProductWithSizes struct {
	Product
	Sizes []ProductSize
}

// HasStock indica si alguna talla tiene unidades disponibles.
func (p *ProductWithSizes) HasStock() bool {
	for _, s := range p.Sizes {
		if s.Stock > 0 {
			return true
		}
	}
	return false
}
