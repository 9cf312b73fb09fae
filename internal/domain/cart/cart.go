// Package cart implementa el carrito de compra en memoria: una colección
// mutable de líneas (producto, talla, cantidad) con totales derivados.
// No consulta stock: la disponibilidad se verifica al renderizar el catálogo,
// no al agregar (no hay reserva de stock antes del checkout).
package cart

import (
	"github.com/shopspring/decimal"
	"github.com/jhoicas/boutique-api/internal/domain/entity"
)

// Line una línea del carrito: snapshot del producto, talla y cantidad.
// Invariante: a lo sumo una línea por (producto, talla); Quantity >= 1.
type Line struct {
	Product  entity.ProductWithSizes
	Size     string
	Quantity int
}

// Cart colección de líneas de una sesión de compra. No es segura para uso
// concurrente; cada sesión tiene su propio carrito (ver application/cart.Store).
type Cart struct {
	lines []Line
}

// New crea un carrito vacío.
func New() *Cart {
	return &Cart{}
}

// AddItem agrega una unidad del producto en la talla indicada. Si ya existe
// una línea para (producto, talla) incrementa su cantidad en 1.
func (c *Cart) AddItem(product entity.ProductWithSizes, size string) {
	for i := range c.lines {
		if c.lines[i].Product.ID == product.ID && c.lines[i].Size == size {
			c.lines[i].Quantity++
			return
		}
	}
	c.lines = append(c.lines, Line{Product: product, Size: size, Quantity: 1})
}

// RemoveItem elimina la línea (producto, talla) si existe; si no, no hace nada.
func (c *Cart) RemoveItem(productID, size string) {
	for i := range c.lines {
		if c.lines[i].Product.ID == productID && c.lines[i].Size == size {
			c.lines = append(c.lines[:i], c.lines[i+1:]...)
			return
		}
	}
}

// UpdateQuantity fija la cantidad exacta de la línea. Cantidad <= 0 equivale
// a RemoveItem.
func (c *Cart) UpdateQuantity(productID, size string, quantity int) {
	if quantity <= 0 {
		c.RemoveItem(productID, size)
		return
	}
	for i := range c.lines {
		if c.lines[i].Product.ID == productID && c.lines[i].Size == size {
			c.lines[i].Quantity = quantity
			return
		}
	}
}

// Clear vacía el carrito.
func (c *Cart) Clear() {
	c.lines = nil
}

// Lines devuelve una copia de las líneas actuales.
func (c *Cart) Lines() []Line {
	out := make([]Line, len(c.lines))
	copy(out, c.lines)
	return out
}

// TotalItems suma de cantidades de todas las líneas.
func (c *Cart) TotalItems() int {
	total := 0
	for _, l := range c.lines {
		total += l.Quantity
	}
	return total
}

// TotalAmount suma de price * quantity por línea, en USD, sin redondeo.
func (c *Cart) TotalAmount() decimal.Decimal {
	total := decimal.Zero
	for _, l := range c.lines {
		total = total.Add(l.Product.Price.Mul(decimal.NewFromInt(int64(l.Quantity))))
	}
	return total
}
