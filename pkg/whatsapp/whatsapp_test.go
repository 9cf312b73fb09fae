package whatsapp

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildCartMessage_Vacio(t *testing.T) {
	assert.Equal(t, "", BuildCartMessage(nil))
	assert.Equal(t, "", BuildCartMessage([]Line{}))
}

func TestBuildCartMessage_VariasLineas(t *testing.T) {
	msg := BuildCartMessage([]Line{
		{ProductName: "Vestido Flores", Size: "6", Quantity: 2},
		{ProductName: "Camisa Azul", Size: "M", Quantity: 1},
	})

	assert.Contains(t, msg, "¡Hola! Quiero comprar:")
	assert.Contains(t, msg, "• Vestido Flores - Talla: 6 (x2)")
	assert.Contains(t, msg, "• Camisa Azul - Talla: M (x1)")
}

func TestBuildProductMessage(t *testing.T) {
	msg := BuildProductMessage("Vestido Flores", "8")
	assert.Equal(t, "¡Hola! Quiero comprar: Vestido Flores - Talla: 8", msg)
}

func TestLink_EscapaElTexto(t *testing.T) {
	link := Link("584140257059", "¡Hola! Quiero comprar: Vestido")

	assert.Contains(t, link, "https://wa.me/584140257059?text=")
	// El texto no debe viajar sin escapar
	assert.NotContains(t, link, " ")
	assert.Contains(t, link, "text=%C2%A1Hola%21")
}
