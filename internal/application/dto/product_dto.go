package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest body para POST /api/admin/products.
type CreateProductRequest struct {
	Name        string          `json:"name"`
	Description string          `json:"description,omitempty"`
	Price       decimal.Decimal `json:"price"`
	Cost        decimal.Decimal `json:"cost"`
	Category    string          `json:"category"` // nino | nina
	ImageURL    string          `json:"image_url,omitempty"`
	IsActive    *bool           `json:"is_active,omitempty"` // default true
}

// UpdateProductRequest body para PUT /api/admin/products/:id. Campos nil no se tocan.
type UpdateProductRequest struct {
	Name        *string          `json:"name,omitempty"`
	Description *string          `json:"description,omitempty"`
	Price       *decimal.Decimal `json:"price,omitempty"`
	Cost        *decimal.Decimal `json:"cost,omitempty"`
	Category    *string          `json:"category,omitempty"`
	ImageURL    *string          `json:"image_url,omitempty"`
	IsActive    *bool            `json:"is_active,omitempty"`
}

// SizeResponse una talla con su stock.
type SizeResponse struct {
	ID        string `json:"id"`
	ProductID string `json:"product_id"`
	Size      string `json:"size"`
	Stock     int    `json:"stock"`
}

// ProductResponse producto con sus tallas. InStock indica si alguna talla
// tiene unidades: la vitrina decide con esto si muestra "agotado".
type ProductResponse struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description,omitempty"`
	Price       decimal.Decimal `json:"price"`
	Cost        decimal.Decimal `json:"cost,omitempty"`
	Category    string          `json:"category"`
	ImageURL    string          `json:"image_url,omitempty"`
	IsActive    bool            `json:"is_active"`
	InStock     bool            `json:"in_stock"`
	Sizes       []SizeResponse  `json:"sizes"`
	CreatedAt   time.Time       `json:"created_at"`
}

// AddSizeRequest body para POST /api/admin/products/:id/sizes.
type AddSizeRequest struct {
	Size  string `json:"size"`
	Stock int    `json:"stock"`
}

// UpdateStockRequest body para PUT /api/admin/sizes/:id/stock.
type UpdateStockRequest struct {
	Stock int `json:"stock"`
}
