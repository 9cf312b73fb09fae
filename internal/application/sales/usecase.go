package sales

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/jhoicas/boutique-api/internal/application/dto"
	"github.com/jhoicas/boutique-api/internal/domain"
	"github.com/jhoicas/boutique-api/internal/domain/entity"
	"github.com/jhoicas/boutique-api/internal/domain/repository"
)

// UseCase registra ventas descontando stock por talla de forma transaccional,
// y expone listado, totales y eliminación de ventas.
type UseCase struct {
	txRunner     TxRunner
	productRepo  repository.ProductRepository
	saleRepo     repository.SaleRepository
	customerRepo repository.CustomerRepository
}

// NewUseCase construye el caso de uso de ventas.
func NewUseCase(
	txRunner TxRunner,
	productRepo repository.ProductRepository,
	saleRepo repository.SaleRepository,
	customerRepo repository.CustomerRepository,
) *UseCase {
	return &UseCase{
		txRunner:     txRunner,
		productRepo:  productRepo,
		saleRepo:     saleRepo,
		customerRepo: customerRepo,
	}
}

// RecordSale registra una venta de (producto, talla, cantidad):
//
//  1. Resuelve el cliente por ID, por nombre (case-insensitive) o lo crea.
//  2. Descuenta el stock con un UPDATE condicional (stock >= cantidad); cero
//     filas afectadas distingue talla inexistente de stock insuficiente.
//  3. Inserta la venta con total = precio_unitario * cantidad.
//
// Los pasos 2 y 3 comparten transacción: ningún fallo deja stock descontado
// sin venta registrada ni al revés.
func (uc *UseCase) RecordSale(ctx context.Context, in dto.RecordSaleRequest) (*dto.SaleResponse, error) {
	if in.ProductID == "" || in.Size == "" || in.Quantity <= 0 {
		return nil, domain.ErrInvalidInput
	}

	product, err := uc.productRepo.GetByID(in.ProductID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}

	now := time.Now()
	sale := &entity.Sale{
		ID:          uuid.New().String(),
		ProductID:   &product.ID,
		ProductName: product.Name,
		Size:        in.Size,
		Quantity:    in.Quantity,
		UnitPrice:   product.Price,
		TotalAmount: product.Price.Mul(decimal.NewFromInt(int64(in.Quantity))),
		SaleDate:    now,
		CreatedAt:   now,
	}

	err = uc.txRunner.Run(ctx, func(
		sizeRepo repository.SizeRepository,
		saleRepo repository.SaleRepository,
		customerRepo repository.CustomerRepository,
	) error {
		customerID, err := uc.resolveCustomer(customerRepo, in, now)
		if err != nil {
			return err
		}
		if customerID != "" {
			sale.CustomerID = &customerID
		}

		affected, err := sizeRepo.DecrementStock(in.ProductID, in.Size, in.Quantity)
		if err != nil {
			return domain.ErrStockConflict
		}
		if affected == 0 {
			// Distinguir talla inexistente de stock insuficiente
			row, getErr := sizeRepo.Get(in.ProductID, in.Size)
			if getErr != nil {
				return getErr
			}
			if row == nil {
				return domain.ErrSizeNotFound
			}
			return domain.ErrInsufficientStock
		}

		if err := saleRepo.Create(sale); err != nil {
			return domain.ErrSaleInsert
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return toSaleResponse(sale), nil
}

// resolveCustomer devuelve el ID del cliente de la venta: el recibido, el de
// la coincidencia por nombre, o el de un cliente nuevo. Vacío = venta sin cliente.
func (uc *UseCase) resolveCustomer(customerRepo repository.CustomerRepository, in dto.RecordSaleRequest, now time.Time) (string, error) {
	if in.CustomerID != "" {
		return in.CustomerID, nil
	}
	name := strings.TrimSpace(in.CustomerName)
	if name == "" {
		return "", nil
	}
	existing, err := customerRepo.FindByName(name)
	if err != nil {
		return "", err
	}
	if existing != nil {
		return existing.ID, nil
	}
	customer := &entity.Customer{
		ID:        uuid.New().String(),
		Name:      name,
		Phone:     in.CustomerPhone,
		Email:     in.CustomerEmail,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := customerRepo.Create(customer); err != nil {
		return "", err
	}
	return customer.ID, nil
}

// DeleteSale elimina el registro de la venta. El stock descontado NO se
// repone: tras borrar una venta errónea la corrección de inventario es manual
// (política explícita del negocio).
func (uc *UseCase) DeleteSale(ctx context.Context, id string) error {
	sale, err := uc.saleRepo.GetByID(id)
	if err != nil {
		return err
	}
	if sale == nil {
		return domain.ErrNotFound
	}
	if err := uc.saleRepo.Delete(id); err != nil {
		return domain.ErrSaleDelete
	}
	return nil
}

// List devuelve ventas con filtros opcionales de fecha (nil = sin límite).
func (uc *UseCase) List(from, to *time.Time) ([]*dto.SaleResponse, error) {
	sales, err := uc.saleRepo.List(from, to)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.SaleResponse, 0, len(sales))
	for _, s := range sales {
		out = append(out, toSaleResponse(s))
	}
	return out, nil
}

// TotalRevenue suma de total_amount de todas las ventas.
func (uc *UseCase) TotalRevenue() (*dto.SalesSummaryResponse, error) {
	total, err := uc.saleRepo.TotalRevenue()
	if err != nil {
		return nil, err
	}
	return &dto.SalesSummaryResponse{TotalRevenue: total}, nil
}

func toSaleResponse(s *entity.Sale) *dto.SaleResponse {
	return &dto.SaleResponse{
		ID:          s.ID,
		ProductID:   s.ProductID,
		ProductName: s.ProductName,
		Size:        s.Size,
		Quantity:    s.Quantity,
		UnitPrice:   s.UnitPrice,
		TotalAmount: s.TotalAmount,
		CustomerID:  s.CustomerID,
		SaleDate:    s.SaleDate,
	}
}
