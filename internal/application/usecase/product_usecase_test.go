package usecase

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/boutique-api/internal/application/dto"
	"github.com/jhoicas/boutique-api/internal/domain"
	"github.com/jhoicas/boutique-api/internal/domain/entity"
)

type fakeProductRepo struct {
	products map[string]*entity.ProductWithSizes
}

func (f *fakeProductRepo) Create(p *entity.Product) error {
	f.products[p.ID] = &entity.ProductWithSizes{Product: *p}
	return nil
}
func (f *fakeProductRepo) GetByID(id string) (*entity.Product, error) {
	p := f.products[id]
	if p == nil {
		return nil, nil
	}
	return &p.Product, nil
}
func (f *fakeProductRepo) GetWithSizes(id string) (*entity.ProductWithSizes, error) {
	return f.products[id], nil
}
func (f *fakeProductRepo) List(onlyActive bool, category string) ([]*entity.ProductWithSizes, error) {
	var out []*entity.ProductWithSizes
	for _, p := range f.products {
		if onlyActive && !p.IsActive {
			continue
		}
		if category != "" && p.Category != category {
			continue
		}
		out = append(out, p)
	}
	return out, nil
}
func (f *fakeProductRepo) Update(p *entity.Product) error {
	if existing := f.products[p.ID]; existing != nil {
		existing.Product = *p
	}
	return nil
}
func (f *fakeProductRepo) Delete(id string) error { delete(f.products, id); return nil }

type fakeSizeRepo struct {
	sizes map[string]*entity.ProductSize
}

func (f *fakeSizeRepo) Create(s *entity.ProductSize) error { f.sizes[s.ID] = s; return nil }
func (f *fakeSizeRepo) Get(string, string) (*entity.ProductSize, error) {
	return nil, nil
}
func (f *fakeSizeRepo) ListByProduct(string) ([]entity.ProductSize, error) { return nil, nil }
func (f *fakeSizeRepo) SetStock(id string, stock int) error {
	s := f.sizes[id]
	if s == nil {
		return domain.ErrNotFound
	}
	s.Stock = stock
	return nil
}
func (f *fakeSizeRepo) Delete(id string) error { delete(f.sizes, id); return nil }
func (f *fakeSizeRepo) DecrementStock(string, string, int) (int64, error) {
	return 0, nil
}

func newProductFixture() (*ProductUseCase, *fakeProductRepo) {
	products := &fakeProductRepo{products: map[string]*entity.ProductWithSizes{}}
	sizes := &fakeSizeRepo{sizes: map[string]*entity.ProductSize{}}
	return NewProductUseCase(products, sizes), products
}

// La vitrina marca "agotado" con in_stock: true si alguna talla tiene
// unidades, false si todas están en cero.
func TestCatalog_MarcaDisponibilidadPorTallas(t *testing.T) {
	uc, repo := newProductFixture()
	repo.products["con-stock"] = &entity.ProductWithSizes{
		Product: entity.Product{ID: "con-stock", Name: "Vestido A", Category: entity.CategoryNina, IsActive: true},
		Sizes: []entity.ProductSize{
			{ID: "s1", ProductID: "con-stock", Size: "4", Stock: 0},
			{ID: "s2", ProductID: "con-stock", Size: "6", Stock: 2},
		},
	}
	repo.products["agotado"] = &entity.ProductWithSizes{
		Product: entity.Product{ID: "agotado", Name: "Vestido B", Category: entity.CategoryNina, IsActive: true},
		Sizes: []entity.ProductSize{
			{ID: "s3", ProductID: "agotado", Size: "6", Stock: 0},
		},
	}

	out, err := uc.Catalog("")
	require.NoError(t, err)
	require.Len(t, out, 2)

	byID := map[string]*dto.ProductResponse{}
	for _, p := range out {
		byID[p.ID] = p
	}
	assert.True(t, byID["con-stock"].InStock, "con una talla con unidades debe marcar in_stock")
	assert.False(t, byID["agotado"].InStock, "con todas las tallas en cero debe marcar agotado")
}

func TestCatalog_FiltraInactivosYCategoria(t *testing.T) {
	uc, repo := newProductFixture()
	repo.products["activo-nina"] = &entity.ProductWithSizes{
		Product: entity.Product{ID: "activo-nina", Category: entity.CategoryNina, IsActive: true},
	}
	repo.products["activo-nino"] = &entity.ProductWithSizes{
		Product: entity.Product{ID: "activo-nino", Category: entity.CategoryNino, IsActive: true},
	}
	repo.products["inactivo"] = &entity.ProductWithSizes{
		Product: entity.Product{ID: "inactivo", Category: entity.CategoryNina, IsActive: false},
	}

	out, err := uc.Catalog(entity.CategoryNina)
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "activo-nina", out[0].ID)

	_, err = uc.Catalog("bebes")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestCreateProduct_ValidaCategoria(t *testing.T) {
	uc, _ := newProductFixture()

	_, err := uc.Create(dto.CreateProductRequest{
		Name: "Camisa", Price: decimal.RequireFromString("8.00"), Category: "adultos",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	out, err := uc.Create(dto.CreateProductRequest{
		Name: "Camisa", Price: decimal.RequireFromString("8.00"), Category: entity.CategoryNino,
	})
	require.NoError(t, err)
	assert.True(t, out.IsActive, "is_active por defecto debe ser true")
	assert.False(t, out.InStock, "sin tallas aún no hay stock")
}
