package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/boutique-api/internal/domain"
	"github.com/jhoicas/boutique-api/internal/domain/entity"
	"github.com/jhoicas/boutique-api/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implementación del puerto ProductRepository sobre PostgreSQL (usable con pool o tx).
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador de persistencia para productos. Pasar pool o tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

// Create persiste un nuevo producto.
func (r *ProductRepo) Create(product *entity.Product) error {
	query := `
		INSERT INTO products (id, name, description, price, cost, category, image_url, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(context.Background(), query,
		product.ID, product.Name, product.Description, product.Price, product.Cost,
		product.Category, product.ImageURL, product.IsActive, product.CreatedAt, product.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert product: %w", err)
	}
	return nil
}

// GetByID obtiene un producto por ID; nil si no existe.
func (r *ProductRepo) GetByID(id string) (*entity.Product, error) {
	query := `
		SELECT id, name, description, price, cost, category, image_url, is_active, created_at, updated_at
		FROM products WHERE id = $1`
	var p entity.Product
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&p.ID, &p.Name, &p.Description, &p.Price, &p.Cost, &p.Category,
		&p.ImageURL, &p.IsActive, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product: %w", err)
	}
	return &p, nil
}

// GetWithSizes obtiene un producto con sus tallas; nil si no existe.
func (r *ProductRepo) GetWithSizes(id string) (*entity.ProductWithSizes, error) {
	p, err := r.GetByID(id)
	if err != nil || p == nil {
		return nil, err
	}
	sizes, err := r.sizesFor(id)
	if err != nil {
		return nil, err
	}
	return &entity.ProductWithSizes{Product: *p, Sizes: sizes}, nil
}

// List devuelve productos con sus tallas, más recientes primero.
// onlyActive filtra is_active; category vacío = todas.
func (r *ProductRepo) List(onlyActive bool, category string) ([]*entity.ProductWithSizes, error) {
	query := `
		SELECT id, name, description, price, cost, category, image_url, is_active, created_at, updated_at
		FROM products WHERE ($1 = false OR is_active = true) AND ($2 = '' OR category = $2)
		ORDER BY created_at DESC`
	rows, err := r.q.Query(context.Background(), query, onlyActive, category)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()

	var list []*entity.ProductWithSizes
	for rows.Next() {
		var p entity.Product
		if err := rows.Scan(&p.ID, &p.Name, &p.Description, &p.Price, &p.Cost, &p.Category,
			&p.ImageURL, &p.IsActive, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		list = append(list, &entity.ProductWithSizes{Product: p})
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	// Cargar tallas por producto. El catálogo es pequeño (una tienda), así que
	// una consulta por producto es suficiente.
	for _, p := range list {
		sizes, err := r.sizesFor(p.ID)
		if err != nil {
			return nil, err
		}
		p.Sizes = sizes
	}
	return list, nil
}

func (r *ProductRepo) sizesFor(productID string) ([]entity.ProductSize, error) {
	query := `
		SELECT id, product_id, size, stock, created_at
		FROM product_sizes WHERE product_id = $1 ORDER BY size`
	rows, err := r.q.Query(context.Background(), query, productID)
	if err != nil {
		return nil, fmt.Errorf("list sizes: %w", err)
	}
	defer rows.Close()
	var sizes []entity.ProductSize
	for rows.Next() {
		var s entity.ProductSize
		if err := rows.Scan(&s.ID, &s.ProductID, &s.Size, &s.Stock, &s.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan size: %w", err)
		}
		sizes = append(sizes, s)
	}
	return sizes, rows.Err()
}

// Update actualiza los campos editables del producto.
func (r *ProductRepo) Update(product *entity.Product) error {
	query := `
		UPDATE products
		SET name = $2, description = $3, price = $4, cost = $5, category = $6,
		    image_url = $7, is_active = $8, updated_at = $9
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		product.ID, product.Name, product.Description, product.Price, product.Cost,
		product.Category, product.ImageURL, product.IsActive, product.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update product: %w", err)
	}
	return nil
}

// Delete elimina el producto. Las tallas caen por ON DELETE CASCADE; las
// ventas conservan el snapshot del nombre (product_id queda NULL).
func (r *ProductRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	return nil
}
