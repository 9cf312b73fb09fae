package sales

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/boutique-api/internal/application/usecase"
	"github.com/jhoicas/boutique-api/internal/domain"
	"github.com/jhoicas/boutique-api/internal/domain/entity"
)

type fakeSettingRepo struct {
	rate   *decimal.Decimal
	getErr error
}

func (f *fakeSettingRepo) Get(string) (*entity.Setting, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	if f.rate == nil {
		return nil, nil
	}
	return &entity.Setting{Key: entity.SettingTasaDolar, Value: *f.rate}, nil
}

func (f *fakeSettingRepo) Upsert(key string, value decimal.Decimal) (*entity.Setting, error) {
	f.rate = &value
	return &entity.Setting{Key: key, Value: value}, nil
}

// fakeReceiptGenerator captura los argumentos con los que se pidió el PDF.
type fakeReceiptGenerator struct {
	rate      decimal.Decimal
	storeName string
	called    bool
}

func (g *fakeReceiptGenerator) GenerateReceiptPDF(
	_ context.Context,
	_ *entity.Sale,
	_ *entity.Customer,
	storeName string,
	rate decimal.Decimal,
) ([]byte, error) {
	g.called = true
	g.storeName = storeName
	g.rate = rate
	return []byte("%PDF-"), nil
}

func newReceiptFixture(settings *fakeSettingRepo) (*ReceiptUseCase, *fakeReceiptGenerator) {
	sales := &fakeSaleRepo{sales: map[string]*entity.Sale{
		"venta-1": {
			ID:          "venta-1",
			ProductName: "Vestido A",
			Size:        "6",
			Quantity:    2,
			UnitPrice:   decimal.RequireFromString("10.00"),
			TotalAmount: decimal.RequireFromString("20.00"),
		},
	}}
	customers := &fakeCustomerRepo{customers: map[string]*entity.Customer{}}
	rateUC := usecase.NewExchangeRateUseCase(settings, decimal.RequireFromString("50"))
	generator := &fakeReceiptGenerator{}
	return NewReceiptUseCase(sales, customers, rateUC, generator, "Boutique Candy"), generator
}

func TestReceipt_UsaLaTasaGuardada(t *testing.T) {
	stored := decimal.RequireFromString("36.50")
	uc, generator := newReceiptFixture(&fakeSettingRepo{rate: &stored})

	pdf, err := uc.Generate(context.Background(), "venta-1")

	require.NoError(t, err)
	assert.NotEmpty(t, pdf)
	assert.True(t, generator.rate.Equal(stored),
		"tasa esperada %s, obtenida %s", stored, generator.rate)
	assert.Equal(t, "Boutique Candy", generator.storeName)
}

func TestReceipt_SinTasaGuardadaUsaRespaldo(t *testing.T) {
	uc, generator := newReceiptFixture(&fakeSettingRepo{})

	_, err := uc.Generate(context.Background(), "venta-1")

	require.NoError(t, err)
	assert.True(t, generator.rate.Equal(decimal.RequireFromString("50")),
		"sin valor guardado el recibo usa la tasa de respaldo")
}

// Si la tasa no se puede leer, el recibo no se genera: un total en Bs a tasa
// cero sería un recibo incorrecto.
func TestReceipt_FallaSiNoHayTasa(t *testing.T) {
	uc, generator := newReceiptFixture(&fakeSettingRepo{getErr: errors.New("bd caída")})

	_, err := uc.Generate(context.Background(), "venta-1")

	require.Error(t, err)
	assert.False(t, generator.called, "no debe generarse un PDF sin tasa")
}

func TestReceipt_VentaInexistente(t *testing.T) {
	uc, _ := newReceiptFixture(&fakeSettingRepo{})

	_, err := uc.Generate(context.Background(), "no-existe")

	assert.ErrorIs(t, err, domain.ErrNotFound)
}
