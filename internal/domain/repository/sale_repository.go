package repository

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/jhoicas/boutique-api/internal/domain/entity"
)

// SaleRepository puerto de persistencia para ventas. Las ventas son inmutables:
// solo se insertan, listan y eliminan (nunca se actualizan).
type SaleRepository interface {
	Create(sale *entity.Sale) error
	GetByID(id string) (*entity.Sale, error)
	// List devuelve ventas ordenadas por fecha descendente, con filtros
	// opcionales de rango (nil = sin límite).
	List(from, to *time.Time) ([]*entity.Sale, error)
	// TotalRevenue suma total_amount de todas las ventas.
	TotalRevenue() (decimal.Decimal, error)
	Delete(id string) error
}
