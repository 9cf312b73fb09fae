package cart

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/boutique-api/internal/domain/entity"
)

func producto(id, name string, price string) entity.ProductWithSizes {
	return entity.ProductWithSizes{
		Product: entity.Product{
			ID:    id,
			Name:  name,
			Price: decimal.RequireFromString(price),
		},
	}
}

// Agregar varias veces el mismo (producto, talla) debe dejar una sola línea
// cuya cantidad es el número de llamadas.
func TestAddItem_MismaTallaIncrementaCantidad(t *testing.T) {
	c := New()
	p := producto("p1", "Camisa Azul", "12.50")

	c.AddItem(p, "M")
	c.AddItem(p, "M")
	c.AddItem(p, "M")

	lines := c.Lines()
	require.Len(t, lines, 1)
	assert.Equal(t, 3, lines[0].Quantity)
	assert.Equal(t, 3, c.TotalItems())
}

func TestAddItem_TallasDistintasSonLineasDistintas(t *testing.T) {
	c := New()
	p := producto("p1", "Camisa Azul", "12.50")

	c.AddItem(p, "M")
	c.AddItem(p, "L")

	assert.Len(t, c.Lines(), 2)
	assert.Equal(t, 2, c.TotalItems())
}

func TestRemoveItem_NoExisteEsNoOp(t *testing.T) {
	c := New()
	c.AddItem(producto("p1", "Camisa", "10"), "M")

	c.RemoveItem("p1", "L")
	c.RemoveItem("otro", "M")

	assert.Len(t, c.Lines(), 1)
}

// UpdateQuantity con 0 (o negativo) equivale a RemoveItem.
func TestUpdateQuantity_CeroEliminaLinea(t *testing.T) {
	c := New()
	p := producto("p1", "Camisa", "10")
	c.AddItem(p, "M")
	c.AddItem(p, "L")

	c.UpdateQuantity("p1", "M", 0)
	assert.Len(t, c.Lines(), 1)

	c.UpdateQuantity("p1", "L", -2)
	assert.Empty(t, c.Lines())
}

func TestUpdateQuantity_FijaCantidadExacta(t *testing.T) {
	c := New()
	p := producto("p1", "Camisa", "10")
	c.AddItem(p, "M")
	c.AddItem(p, "M")

	c.UpdateQuantity("p1", "M", 5)

	lines := c.Lines()
	require.Len(t, lines, 1)
	assert.Equal(t, 5, lines[0].Quantity)
}

func TestClear_VaciaElCarrito(t *testing.T) {
	c := New()
	c.AddItem(producto("p1", "Camisa", "10"), "M")
	c.AddItem(producto("p2", "Vestido", "20"), "6")

	c.Clear()

	assert.Empty(t, c.Lines())
	assert.Equal(t, 0, c.TotalItems())
	assert.True(t, c.TotalAmount().IsZero())
}

func TestTotalAmount_SumaPrecioPorCantidad(t *testing.T) {
	c := New()
	c.AddItem(producto("p1", "Camisa", "12.50"), "M")
	c.AddItem(producto("p1", "Camisa", "12.50"), "M")
	c.AddItem(producto("p2", "Vestido", "20.00"), "6")

	// 2 * 12.50 + 1 * 20.00 = 45.00
	assert.True(t, c.TotalAmount().Equal(decimal.RequireFromString("45.00")),
		"total esperado 45.00, obtenido %s", c.TotalAmount())
}

// La conversión a bolívares es amount * rate exacto, sin redondeo oculto.
func TestToLocalCurrency_SinRedondeo(t *testing.T) {
	amount := decimal.RequireFromString("19.99")
	rate := decimal.RequireFromString("36.123")

	got := ToLocalCurrency(amount, rate)

	assert.True(t, got.Equal(decimal.RequireFromString("722.09877")),
		"esperado 722.09877, obtenido %s", got)
}

func TestToLocalCurrency_MontoCero(t *testing.T) {
	got := ToLocalCurrency(decimal.Zero, decimal.RequireFromString("50"))
	assert.True(t, got.IsZero())
}
