package sales

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/boutique-api/internal/application/dto"
	"github.com/jhoicas/boutique-api/internal/domain"
	"github.com/jhoicas/boutique-api/internal/domain/entity"
	"github.com/jhoicas/boutique-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
// ──────────────────────────────────────────────────────────────────────────────

type fakeProductRepo struct {
	products map[string]*entity.Product
}

func (f *fakeProductRepo) Create(p *entity.Product) error { f.products[p.ID] = p; return nil }
func (f *fakeProductRepo) GetByID(id string) (*entity.Product, error) {
	return f.products[id], nil
}
func (f *fakeProductRepo) GetWithSizes(id string) (*entity.ProductWithSizes, error) {
	p := f.products[id]
	if p == nil {
		return nil, nil
	}
	return &entity.ProductWithSizes{Product: *p}, nil
}
func (f *fakeProductRepo) List(bool, string) ([]*entity.ProductWithSizes, error) { return nil, nil }
func (f *fakeProductRepo) Update(*entity.Product) error                          { return nil }
func (f *fakeProductRepo) Delete(string) error                                   { return nil }

type fakeSizeRepo struct {
	// stock por "productID|size"
	stock map[string]int
}

func sizeKey(productID, size string) string { return productID + "|" + size }

func (f *fakeSizeRepo) Create(s *entity.ProductSize) error {
	f.stock[sizeKey(s.ProductID, s.Size)] = s.Stock
	return nil
}
func (f *fakeSizeRepo) Get(productID, size string) (*entity.ProductSize, error) {
	st, ok := f.stock[sizeKey(productID, size)]
	if !ok {
		return nil, nil
	}
	return &entity.ProductSize{ProductID: productID, Size: size, Stock: st}, nil
}
func (f *fakeSizeRepo) ListByProduct(string) ([]entity.ProductSize, error) { return nil, nil }
func (f *fakeSizeRepo) SetStock(string, int) error                         { return nil }
func (f *fakeSizeRepo) Delete(string) error                                { return nil }

// DecrementStock emula el UPDATE condicional: 0 filas si no existe o no alcanza.
func (f *fakeSizeRepo) DecrementStock(productID, size string, quantity int) (int64, error) {
	key := sizeKey(productID, size)
	st, ok := f.stock[key]
	if !ok || st < quantity {
		return 0, nil
	}
	f.stock[key] = st - quantity
	return 1, nil
}

type fakeSaleRepo struct {
	sales     map[string]*entity.Sale
	createErr error
}

func (f *fakeSaleRepo) Create(s *entity.Sale) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.sales[s.ID] = s
	return nil
}
func (f *fakeSaleRepo) GetByID(id string) (*entity.Sale, error) { return f.sales[id], nil }
func (f *fakeSaleRepo) List(*time.Time, *time.Time) ([]*entity.Sale, error) {
	var out []*entity.Sale
	for _, s := range f.sales {
		out = append(out, s)
	}
	return out, nil
}
func (f *fakeSaleRepo) TotalRevenue() (decimal.Decimal, error) {
	total := decimal.Zero
	for _, s := range f.sales {
		total = total.Add(s.TotalAmount)
	}
	return total, nil
}
func (f *fakeSaleRepo) Delete(id string) error { delete(f.sales, id); return nil }

type fakeCustomerRepo struct {
	customers map[string]*entity.Customer
}

func (f *fakeCustomerRepo) Create(c *entity.Customer) error { f.customers[c.ID] = c; return nil }
func (f *fakeCustomerRepo) GetByID(id string) (*entity.Customer, error) {
	return f.customers[id], nil
}
func (f *fakeCustomerRepo) FindByName(name string) (*entity.Customer, error) {
	for _, c := range f.customers {
		if strings.EqualFold(c.Name, name) {
			return c, nil
		}
	}
	return nil, nil
}
func (f *fakeCustomerRepo) List() ([]*entity.Customer, error) { return nil, nil }
func (f *fakeCustomerRepo) Update(*entity.Customer) error     { return nil }
func (f *fakeCustomerRepo) Delete(string) error               { return nil }

// fakeTxRunner emula Commit/Rollback: si fn falla, restaura el stock previo.
type fakeTxRunner struct {
	sizeRepo     *fakeSizeRepo
	saleRepo     *fakeSaleRepo
	customerRepo *fakeCustomerRepo
}

func (r *fakeTxRunner) Run(_ context.Context, fn func(
	sizeRepo repository.SizeRepository,
	saleRepo repository.SaleRepository,
	customerRepo repository.CustomerRepository,
) error) error {
	snapshot := make(map[string]int, len(r.sizeRepo.stock))
	for k, v := range r.sizeRepo.stock {
		snapshot[k] = v
	}
	if err := fn(r.sizeRepo, r.saleRepo, r.customerRepo); err != nil {
		r.sizeRepo.stock = snapshot // rollback
		return err
	}
	return nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Setup
// ──────────────────────────────────────────────────────────────────────────────

type fixture struct {
	uc        *UseCase
	sizes     *fakeSizeRepo
	sales     *fakeSaleRepo
	customers *fakeCustomerRepo
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	products := &fakeProductRepo{products: map[string]*entity.Product{
		"prod-1": {
			ID:    "prod-1",
			Name:  "Vestido A",
			Price: decimal.RequireFromString("10.00"),
		},
	}}
	sizes := &fakeSizeRepo{stock: map[string]int{sizeKey("prod-1", "6"): 3}}
	sales := &fakeSaleRepo{sales: map[string]*entity.Sale{}}
	customers := &fakeCustomerRepo{customers: map[string]*entity.Customer{}}
	tx := &fakeTxRunner{sizeRepo: sizes, saleRepo: sales, customerRepo: customers}
	return &fixture{
		uc:        NewUseCase(tx, products, sales, customers),
		sizes:     sizes,
		sales:     sales,
		customers: customers,
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// RecordSale
// ──────────────────────────────────────────────────────────────────────────────

// Escenario del negocio: stock 3 de la talla "6", venta de 2 → stock 1 y total
// 20.00; la segunda venta de 2 falla por stock y el stock queda en 1.
func TestRecordSale_DescuentaStockYCalculaTotal(t *testing.T) {
	f := newFixture(t)

	sale, err := f.uc.RecordSale(context.Background(), dto.RecordSaleRequest{
		ProductID: "prod-1", Size: "6", Quantity: 2,
	})
	require.NoError(t, err)

	assert.Equal(t, "Vestido A", sale.ProductName)
	assert.Equal(t, 2, sale.Quantity)
	assert.True(t, sale.TotalAmount.Equal(decimal.RequireFromString("20.00")),
		"total esperado 20.00, obtenido %s", sale.TotalAmount)
	assert.Equal(t, 1, f.sizes.stock[sizeKey("prod-1", "6")])

	// Segunda venta de 2: solo queda 1
	_, err = f.uc.RecordSale(context.Background(), dto.RecordSaleRequest{
		ProductID: "prod-1", Size: "6", Quantity: 2,
	})
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)
	assert.Equal(t, 1, f.sizes.stock[sizeKey("prod-1", "6")], "el stock no debe cambiar al fallar")
}

func TestRecordSale_StockInsuficienteNoMuta(t *testing.T) {
	f := newFixture(t)

	_, err := f.uc.RecordSale(context.Background(), dto.RecordSaleRequest{
		ProductID: "prod-1", Size: "6", Quantity: 4,
	})

	assert.ErrorIs(t, err, domain.ErrInsufficientStock)
	assert.Equal(t, 3, f.sizes.stock[sizeKey("prod-1", "6")])
	assert.Empty(t, f.sales.sales, "no debe registrarse ninguna venta")
}

func TestRecordSale_TallaInexistente(t *testing.T) {
	f := newFixture(t)

	_, err := f.uc.RecordSale(context.Background(), dto.RecordSaleRequest{
		ProductID: "prod-1", Size: "XL", Quantity: 1,
	})

	assert.ErrorIs(t, err, domain.ErrSizeNotFound)
	assert.Empty(t, f.sales.sales)
}

func TestRecordSale_ProductoInexistente(t *testing.T) {
	f := newFixture(t)

	_, err := f.uc.RecordSale(context.Background(), dto.RecordSaleRequest{
		ProductID: "no-existe", Size: "6", Quantity: 1,
	})

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestRecordSale_CantidadInvalida(t *testing.T) {
	f := newFixture(t)

	for _, q := range []int{0, -1} {
		_, err := f.uc.RecordSale(context.Background(), dto.RecordSaleRequest{
			ProductID: "prod-1", Size: "6", Quantity: q,
		})
		assert.ErrorIs(t, err, domain.ErrInvalidInput, "cantidad %d", q)
	}
	assert.Equal(t, 3, f.sizes.stock[sizeKey("prod-1", "6")])
}

// Si el insert de la venta falla, la transacción revierte el descuento.
func TestRecordSale_FalloDeInsertRevierteStock(t *testing.T) {
	f := newFixture(t)
	f.sales.createErr = errors.New("insert roto")

	_, err := f.uc.RecordSale(context.Background(), dto.RecordSaleRequest{
		ProductID: "prod-1", Size: "6", Quantity: 2,
	})

	assert.ErrorIs(t, err, domain.ErrSaleInsert)
	assert.Equal(t, 3, f.sizes.stock[sizeKey("prod-1", "6")], "el rollback debe restaurar el stock")
}

// ──────────────────────────────────────────────────────────────────────────────
// Resolución de cliente
// ──────────────────────────────────────────────────────────────────────────────

func TestRecordSale_ResuelveClientePorNombreSinMayusculas(t *testing.T) {
	f := newFixture(t)
	f.customers.customers["c1"] = &entity.Customer{ID: "c1", Name: "María Pérez"}

	sale, err := f.uc.RecordSale(context.Background(), dto.RecordSaleRequest{
		ProductID: "prod-1", Size: "6", Quantity: 1,
		CustomerName: "maría pérez",
	})

	require.NoError(t, err)
	require.NotNil(t, sale.CustomerID)
	assert.Equal(t, "c1", *sale.CustomerID)
	assert.Len(t, f.customers.customers, 1, "no debe crearse un cliente duplicado")
}

func TestRecordSale_CreaClienteNuevoSiNoExiste(t *testing.T) {
	f := newFixture(t)

	sale, err := f.uc.RecordSale(context.Background(), dto.RecordSaleRequest{
		ProductID: "prod-1", Size: "6", Quantity: 1,
		CustomerName: "Ana Gómez", CustomerPhone: "0414-1234567",
	})

	require.NoError(t, err)
	require.NotNil(t, sale.CustomerID)
	created := f.customers.customers[*sale.CustomerID]
	require.NotNil(t, created)
	assert.Equal(t, "Ana Gómez", created.Name)
	assert.Equal(t, "0414-1234567", created.Phone)
}

func TestRecordSale_SinClienteEsValido(t *testing.T) {
	f := newFixture(t)

	sale, err := f.uc.RecordSale(context.Background(), dto.RecordSaleRequest{
		ProductID: "prod-1", Size: "6", Quantity: 1,
	})

	require.NoError(t, err)
	assert.Nil(t, sale.CustomerID)
}

// ──────────────────────────────────────────────────────────────────────────────
// DeleteSale
// ──────────────────────────────────────────────────────────────────────────────

// Eliminar una venta nunca repone stock: es una política explícita del negocio.
func TestDeleteSale_NoReponeStock(t *testing.T) {
	f := newFixture(t)

	sale, err := f.uc.RecordSale(context.Background(), dto.RecordSaleRequest{
		ProductID: "prod-1", Size: "6", Quantity: 2,
	})
	require.NoError(t, err)
	require.Equal(t, 1, f.sizes.stock[sizeKey("prod-1", "6")])

	require.NoError(t, f.uc.DeleteSale(context.Background(), sale.ID))

	assert.Empty(t, f.sales.sales)
	assert.Equal(t, 1, f.sizes.stock[sizeKey("prod-1", "6")], "el stock no debe cambiar al eliminar")
}

func TestDeleteSale_NoExiste(t *testing.T) {
	f := newFixture(t)
	err := f.uc.DeleteSale(context.Background(), "no-existe")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// Totales
// ──────────────────────────────────────────────────────────────────────────────

func TestTotalRevenue_SumaTodasLasVentas(t *testing.T) {
	f := newFixture(t)

	_, err := f.uc.RecordSale(context.Background(), dto.RecordSaleRequest{
		ProductID: "prod-1", Size: "6", Quantity: 2,
	})
	require.NoError(t, err)
	_, err = f.uc.RecordSale(context.Background(), dto.RecordSaleRequest{
		ProductID: "prod-1", Size: "6", Quantity: 1,
	})
	require.NoError(t, err)

	summary, err := f.uc.TotalRevenue()
	require.NoError(t, err)
	assert.True(t, summary.TotalRevenue.Equal(decimal.RequireFromString("30.00")),
		"esperado 30.00, obtenido %s", summary.TotalRevenue)
}
