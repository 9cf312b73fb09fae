// Package whatsapp arma el mensaje de compra y el enlace wa.me usado en el
// checkout de la tienda. No llama a ninguna API: el cliente abre el enlace.
package whatsapp

import (
	"fmt"
	"net/url"
	"strings"
)

// Line una línea del pedido para el mensaje (nombre, talla, cantidad).
type Line struct {
	ProductName string
	Size        string
	Quantity    int
}

// BuildCartMessage genera el texto "¡Hola! Quiero comprar:" con una viñeta por línea.
// Devuelve cadena vacía si no hay líneas.
func BuildCartMessage(lines []Line) string {
	if len(lines) == 0 {
		return ""
	}
	items := make([]string, 0, len(lines))
	for _, l := range lines {
		items = append(items, fmt.Sprintf("• %s - Talla: %s (x%d)", l.ProductName, l.Size, l.Quantity))
	}
	return "¡Hola! Quiero comprar:\n\n" + strings.Join(items, "\n")
}

// BuildProductMessage genera el mensaje para un solo producto (botón "comprar ahora").
func BuildProductMessage(productName, size string) string {
	return fmt.Sprintf("¡Hola! Quiero comprar: %s - Talla: %s", productName, size)
}

// Link construye la URL https://wa.me/<número>?text=<mensaje> con el texto escapado.
func Link(number, message string) string {
	u := url.URL{
		Scheme:   "https",
		Host:     "wa.me",
		Path:     "/" + number,
		RawQuery: "text=" + url.QueryEscape(message),
	}
	return u.String()
}
