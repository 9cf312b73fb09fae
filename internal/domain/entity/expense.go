package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de gasto.
const (
	ExpenseMercancia = "mercancia"
	ExpenseOperativo = "operativo"
	ExpenseFijo      = "fijo"
)

// ValidExpenseType indica si el tipo es uno de los tres permitidos.
func ValidExpenseType(t string) bool {
	return t == ExpenseMercancia || t == ExpenseOperativo || t == ExpenseFijo
}

// Expense gasto del negocio (compra de mercancía, operativo o fijo).
type Expense struct {
	ID          string
	Description string
	Amount      decimal.Decimal // USD
	Type        string          // mercancia | operativo | fijo
	ExpenseDate time.Time
	CreatedAt   time.Time
}
