package repository

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/jhoicas/boutique-api/internal/domain/entity"
)

// ExpenseRepository puerto de persistencia para gastos.
type ExpenseRepository interface {
	Create(expense *entity.Expense) error
	GetByID(id string) (*entity.Expense, error)
	// List devuelve gastos ordenados por fecha descendente, con rango opcional.
	List(from, to *time.Time) ([]*entity.Expense, error)
	// TotalsByType suma amount agrupado por tipo de gasto.
	TotalsByType() (map[string]decimal.Decimal, error)
	Update(expense *entity.Expense) error
	Delete(id string) error
}
