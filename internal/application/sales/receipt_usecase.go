package sales

import (
	"context"

	"github.com/jhoicas/boutique-api/internal/application/usecase"
	"github.com/jhoicas/boutique-api/internal/domain"
	"github.com/jhoicas/boutique-api/internal/domain/entity"
	"github.com/jhoicas/boutique-api/internal/domain/repository"
)

// ReceiptUseCase genera el PDF del recibo de una venta, con el total en USD
// y su equivalente en bolívares a la tasa vigente.
type ReceiptUseCase struct {
	saleRepo     repository.SaleRepository
	customerRepo repository.CustomerRepository
	rateUC       *usecase.ExchangeRateUseCase
	generator    ReceiptPDFGenerator
	storeName    string
}

// NewReceiptUseCase construye el caso de uso.
func NewReceiptUseCase(
	saleRepo repository.SaleRepository,
	customerRepo repository.CustomerRepository,
	rateUC *usecase.ExchangeRateUseCase,
	generator ReceiptPDFGenerator,
	storeName string,
) *ReceiptUseCase {
	return &ReceiptUseCase{
		saleRepo:     saleRepo,
		customerRepo: customerRepo,
		rateUC:       rateUC,
		generator:    generator,
		storeName:    storeName,
	}
}

// Generate arma el PDF del recibo para la venta indicada.
func (uc *ReceiptUseCase) Generate(ctx context.Context, saleID string) ([]byte, error) {
	sale, err := uc.saleRepo.GetByID(saleID)
	if err != nil {
		return nil, err
	}
	if sale == nil {
		return nil, domain.ErrNotFound
	}

	customer, err := uc.customerFor(sale.CustomerID)
	if err != nil {
		return nil, err
	}

	// Sin tasa no hay recibo: un total en Bs calculado a tasa cero es peor
	// que un error.
	current, err := uc.rateUC.Current()
	if err != nil {
		return nil, err
	}

	return uc.generator.GenerateReceiptPDF(ctx, sale, customer, uc.storeName, current.Rate)
}

func (uc *ReceiptUseCase) customerFor(id *string) (*entity.Customer, error) {
	if id == nil {
		return nil, nil
	}
	return uc.customerRepo.GetByID(*id)
}
