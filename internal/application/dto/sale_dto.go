package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// RecordSaleRequest body para POST /api/admin/sales. Si CustomerID viene vacío
// y CustomerName no, el cliente se resuelve por nombre o se crea.
type RecordSaleRequest struct {
	ProductID     string `json:"product_id"`
	Size          string `json:"size"`
	Quantity      int    `json:"quantity"`
	CustomerID    string `json:"customer_id,omitempty"`
	CustomerName  string `json:"customer_name,omitempty"`
	CustomerPhone string `json:"customer_phone,omitempty"`
	CustomerEmail string `json:"customer_email,omitempty"`
}

// SaleResponse una venta registrada.
type SaleResponse struct {
	ID          string          `json:"id"`
	ProductID   *string         `json:"product_id,omitempty"`
	ProductName string          `json:"product_name"`
	Size        string          `json:"size"`
	Quantity    int             `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	TotalAmount decimal.Decimal `json:"total_amount"`
	CustomerID  *string         `json:"customer_id,omitempty"`
	SaleDate    time.Time       `json:"sale_date"`
}

// SalesSummaryResponse total de ingresos por ventas.
type SalesSummaryResponse struct {
	TotalRevenue decimal.Decimal `json:"total_revenue"`
}
