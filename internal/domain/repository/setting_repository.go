package repository

import (
	"github.com/shopspring/decimal"
	"github.com/jhoicas/boutique-api/internal/domain/entity"
)

// SettingRepository puerto para la tabla configuracion (valores con nombre).
type SettingRepository interface {
	// Get devuelve el valor para la clave; nil si no existe.
	Get(key string) (*entity.Setting, error)
	// Upsert crea o actualiza el valor de la clave.
	Upsert(key string, value decimal.Decimal) (*entity.Setting, error)
}
