package sales

import (
	"context"

	"github.com/shopspring/decimal"
	"github.com/jhoicas/boutique-api/internal/domain/entity"
	"github.com/jhoicas/boutique-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Garantiza que el descuento de stock y el
// insert de la venta sean atómicos: si el insert falla, el stock no cambia.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		sizeRepo repository.SizeRepository,
		saleRepo repository.SaleRepository,
		customerRepo repository.CustomerRepository,
	) error) error
}

// ReceiptPDFGenerator genera la representación PDF del recibo de una venta.
type ReceiptPDFGenerator interface {
	GenerateReceiptPDF(
		ctx context.Context,
		sale *entity.Sale,
		customer *entity.Customer, // nil si la venta no tiene cliente
		storeName string,
		rate decimal.Decimal, // tasa Bs/USD para el total en bolívares
	) ([]byte, error)
}
