package entity

import "time"

// Customer cliente de la tienda. Se crea desde el admin o se resuelve por
// nombre (case-insensitive) al registrar una venta.
type Customer struct {
	ID        string
	Name      string
	Phone     string
	Email     string
	Address   string
	Notes     string
	CreatedAt time.Time
	UpdatedAt time.Time
}
