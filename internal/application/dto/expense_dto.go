package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateExpenseRequest body para POST /api/admin/expenses.
type CreateExpenseRequest struct {
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	Type        string          `json:"expense_type"` // mercancia | operativo | fijo
	ExpenseDate string          `json:"expense_date"` // RFC 3339; vacío = ahora
}

// UpdateExpenseRequest body para PUT /api/admin/expenses/:id.
type UpdateExpenseRequest struct {
	Description *string          `json:"description,omitempty"`
	Amount      *decimal.Decimal `json:"amount,omitempty"`
	Type        *string          `json:"expense_type,omitempty"`
	ExpenseDate *string          `json:"expense_date,omitempty"`
}

// ExpenseResponse un gasto.
type ExpenseResponse struct {
	ID          string          `json:"id"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	Type        string          `json:"expense_type"`
	ExpenseDate time.Time       `json:"expense_date"`
}

// ExpenseTotalsResponse suma de gastos por tipo.
type ExpenseTotalsResponse struct {
	Totals map[string]decimal.Decimal `json:"totals"`
}
