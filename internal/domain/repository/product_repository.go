package repository

import "github.com/jhoicas/boutique-api/internal/domain/entity"

// ProductRepository puerto de persistencia para productos del catálogo.
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id string) (*entity.Product, error)
	// GetWithSizes devuelve el producto con sus tallas; nil si no existe.
	GetWithSizes(id string) (*entity.ProductWithSizes, error)
	// List devuelve productos con sus tallas. onlyActive filtra is_active;
	// category vacío = todas las categorías.
	List(onlyActive bool, category string) ([]*entity.ProductWithSizes, error)
	Update(product *entity.Product) error
	Delete(id string) error
}
