package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// SettingTasaDolar clave de la tasa de cambio Bs/USD en la tabla configuracion.
const SettingTasaDolar = "tasa_dolar"

// Setting valor de configuración con nombre (tabla configuracion).
// Hoy solo existe la tasa de cambio; el esquema admite más claves.
type Setting struct {
	ID        string
	Key       string
	Value     decimal.Decimal
	CreatedAt time.Time
	UpdatedAt time.Time
}
