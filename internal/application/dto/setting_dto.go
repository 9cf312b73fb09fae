package dto

import "github.com/shopspring/decimal"

// UpdateRateRequest body para PUT /api/admin/exchange-rate.
type UpdateRateRequest struct {
	Rate decimal.Decimal `json:"rate"`
}

// ExchangeRateResponse tasa vigente. Fallback indica que no hay valor en
// configuracion y se está usando la tasa de respaldo.
type ExchangeRateResponse struct {
	Rate     decimal.Decimal `json:"rate"`
	Fallback bool            `json:"fallback"`
}
