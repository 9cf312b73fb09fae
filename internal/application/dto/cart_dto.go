package dto

import "github.com/shopspring/decimal"

// AddCartItemRequest body para POST /api/cart/items.
type AddCartItemRequest struct {
	ProductID string `json:"product_id"`
	Size      string `json:"size"`
}

// UpdateCartItemRequest body para PUT /api/cart/items.
type UpdateCartItemRequest struct {
	ProductID string `json:"product_id"`
	Size      string `json:"size"`
	Quantity  int    `json:"quantity"` // <= 0 elimina la línea
}

// CartLineResponse una línea del carrito.
type CartLineResponse struct {
	ProductID   string          `json:"product_id"`
	ProductName string          `json:"product_name"`
	Size        string          `json:"size"`
	Quantity    int             `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	ImageURL    string          `json:"image_url,omitempty"`
}

// CartResponse estado del carrito con totales en USD y bolívares.
type CartResponse struct {
	SessionID   string             `json:"session_id"`
	Lines       []CartLineResponse `json:"lines"`
	TotalItems  int                `json:"total_items"`
	TotalUSD    decimal.Decimal    `json:"total_usd"`
	TotalBs     decimal.Decimal    `json:"total_bs"`
	Rate        decimal.Decimal    `json:"rate"`
}

// CheckoutResponse mensaje de WhatsApp y enlace wa.me para cerrar la compra.
type CheckoutResponse struct {
	Message string `json:"message"`
	Link    string `json:"link"`
}
