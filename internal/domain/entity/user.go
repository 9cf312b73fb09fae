package entity

import "time"

// Roles de usuario del panel. El registro público siempre crea vendedores;
// la promoción a admin se hace desde la base de datos (seed inicial).
const (
	RoleAdmin    = "admin"
	RoleVendedor = "vendedor"
)

// User usuario del panel de administración. La contraseña se guarda como hash
// bcrypt; reemplaza a la clave compartida en memoria de la versión anterior.
type User struct {
	ID           string
	Email        string
	PasswordHash string
	Name         string
	Role         string
	Status       string // active | disabled
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
