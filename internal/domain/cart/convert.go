package cart

import "github.com/shopspring/decimal"

// ToLocalCurrency convierte un monto USD a bolívares: amount * rate, exacto,
// sin redondeo. El redondeo a 2 decimales es asunto de presentación.
func ToLocalCurrency(amount, rate decimal.Decimal) decimal.Decimal {
	return amount.Mul(rate)
}
