package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/boutique-api/internal/application/dto"
	"github.com/jhoicas/boutique-api/internal/domain"
	"github.com/jhoicas/boutique-api/internal/domain/entity"
	"github.com/jhoicas/boutique-api/internal/domain/repository"
)

// ProductUseCase casos de uso del catálogo: CRUD de productos y de sus tallas.
type ProductUseCase struct {
	productRepo repository.ProductRepository
	sizeRepo    repository.SizeRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(productRepo repository.ProductRepository, sizeRepo repository.SizeRepository) *ProductUseCase {
	return &ProductUseCase{productRepo: productRepo, sizeRepo: sizeRepo}
}

// Create crea un producto nuevo (sin tallas; se agregan aparte).
func (uc *ProductUseCase) Create(in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	if in.Name == "" || !entity.ValidCategory(in.Category) {
		return nil, domain.ErrInvalidInput
	}
	if in.Price.IsNegative() || in.Cost.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	active := true
	if in.IsActive != nil {
		active = *in.IsActive
	}
	now := time.Now()
	product := &entity.Product{
		ID:          uuid.New().String(),
		Name:        in.Name,
		Description: in.Description,
		Price:       in.Price,
		Cost:        in.Cost,
		Category:    in.Category,
		ImageURL:    in.ImageURL,
		IsActive:    active,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.productRepo.Create(product); err != nil {
		return nil, err
	}
	return toProductResponse(&entity.ProductWithSizes{Product: *product}), nil
}

// GetByID devuelve el producto con sus tallas; nil si no existe.
func (uc *ProductUseCase) GetByID(id string) (*dto.ProductResponse, error) {
	p, err := uc.productRepo.GetWithSizes(id)
	if err != nil || p == nil {
		return nil, err
	}
	return toProductResponse(p), nil
}

// Catalog lista los productos activos para la tienda pública; category vacío = todas.
func (uc *ProductUseCase) Catalog(category string) ([]*dto.ProductResponse, error) {
	if category != "" && !entity.ValidCategory(category) {
		return nil, domain.ErrInvalidInput
	}
	return uc.list(true, category)
}

// ListAll lista todos los productos (activos e inactivos) para el admin.
func (uc *ProductUseCase) ListAll() ([]*dto.ProductResponse, error) {
	return uc.list(false, "")
}

func (uc *ProductUseCase) list(onlyActive bool, category string) ([]*dto.ProductResponse, error) {
	products, err := uc.productRepo.List(onlyActive, category)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.ProductResponse, 0, len(products))
	for _, p := range products {
		out = append(out, toProductResponse(p))
	}
	return out, nil
}

// Update aplica los campos no nulos del request; nil si el producto no existe.
func (uc *ProductUseCase) Update(id string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	product, err := uc.productRepo.GetByID(id)
	if err != nil || product == nil {
		return nil, err
	}
	if in.Name != nil {
		product.Name = *in.Name
	}
	if in.Description != nil {
		product.Description = *in.Description
	}
	if in.Price != nil {
		if in.Price.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
		product.Price = *in.Price
	}
	if in.Cost != nil {
		if in.Cost.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
		product.Cost = *in.Cost
	}
	if in.Category != nil {
		if !entity.ValidCategory(*in.Category) {
			return nil, domain.ErrInvalidInput
		}
		product.Category = *in.Category
	}
	if in.ImageURL != nil {
		product.ImageURL = *in.ImageURL
	}
	if in.IsActive != nil {
		product.IsActive = *in.IsActive
	}
	product.UpdatedAt = time.Now()
	if err := uc.productRepo.Update(product); err != nil {
		return nil, err
	}
	return uc.GetByID(id)
}

// Delete elimina el producto y sus tallas. Las ventas existentes conservan
// el snapshot del nombre.
func (uc *ProductUseCase) Delete(id string) error {
	product, err := uc.productRepo.GetByID(id)
	if err != nil {
		return err
	}
	if product == nil {
		return domain.ErrNotFound
	}
	return uc.productRepo.Delete(id)
}

// AddSize agrega una talla al producto. Falla con ErrDuplicate si la pareja
// (producto, talla) ya existe.
func (uc *ProductUseCase) AddSize(productID string, in dto.AddSizeRequest) (*dto.SizeResponse, error) {
	if in.Size == "" || in.Stock < 0 {
		return nil, domain.ErrInvalidInput
	}
	product, err := uc.productRepo.GetByID(productID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	size := &entity.ProductSize{
		ID:        uuid.New().String(),
		ProductID: productID,
		Size:      in.Size,
		Stock:     in.Stock,
		CreatedAt: time.Now(),
	}
	if err := uc.sizeRepo.Create(size); err != nil {
		return nil, err
	}
	return &dto.SizeResponse{ID: size.ID, ProductID: size.ProductID, Size: size.Size, Stock: size.Stock}, nil
}

// SetStock fija el stock exacto de una talla (corrección manual del admin).
func (uc *ProductUseCase) SetStock(sizeID string, stock int) error {
	if stock < 0 {
		return domain.ErrInvalidInput
	}
	return uc.sizeRepo.SetStock(sizeID, stock)
}

// DeleteSize elimina una fila de talla.
func (uc *ProductUseCase) DeleteSize(sizeID string) error {
	return uc.sizeRepo.Delete(sizeID)
}

func toProductResponse(p *entity.ProductWithSizes) *dto.ProductResponse {
	sizes := make([]dto.SizeResponse, 0, len(p.Sizes))
	for _, s := range p.Sizes {
		sizes = append(sizes, dto.SizeResponse{ID: s.ID, ProductID: s.ProductID, Size: s.Size, Stock: s.Stock})
	}
	return &dto.ProductResponse{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price,
		Cost:        p.Cost,
		Category:    p.Category,
		ImageURL:    p.ImageURL,
		IsActive:    p.IsActive,
		InStock:     p.HasStock(),
		Sizes:       sizes,
		CreatedAt:   p.CreatedAt,
	}
}
