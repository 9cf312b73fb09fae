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

var _ repository.SizeRepository = (*SizeRepo)(nil)

// SizeRepo implementación de SizeRepository sobre PostgreSQL (usable con pool o tx).
type SizeRepo struct {
	q Querier
}

// NewSizeRepository construye el adaptador de tallas. Pasar pool o tx (Querier).
func NewSizeRepository(q Querier) *SizeRepo {
	return &SizeRepo{q: q}
}

// Create inserta una fila de talla. La constraint UNIQUE (product_id, size)
// garantiza a lo sumo una fila por par.
func (r *SizeRepo) Create(size *entity.ProductSize) error {
	query := `
		INSERT INTO product_sizes (id, product_id, size, stock, created_at)
		VALUES ($1, $2, $3, $4, $5)`
	_, err := r.q.Exec(context.Background(), query,
		size.ID, size.ProductID, size.Size, size.Stock, size.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert size: %w", err)
	}
	return nil
}

// Get obtiene la fila (producto, talla); nil si no existe.
func (r *SizeRepo) Get(productID, size string) (*entity.ProductSize, error) {
	query := `
		SELECT id, product_id, size, stock, created_at
		FROM product_sizes WHERE product_id = $1 AND size = $2`
	var s entity.ProductSize
	err := r.q.QueryRow(context.Background(), query, productID, size).Scan(
		&s.ID, &s.ProductID, &s.Size, &s.Stock, &s.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get size: %w", err)
	}
	return &s, nil
}

// ListByProduct devuelve las tallas de un producto ordenadas por etiqueta.
func (r *SizeRepo) ListByProduct(productID string) ([]entity.ProductSize, error) {
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

// SetStock fija el stock exacto de una fila (edición manual desde el admin).
func (r *SizeRepo) SetStock(id string, stock int) error {
	if stock < 0 {
		return domain.ErrInvalidInput
	}
	tag, err := r.q.Exec(context.Background(),
		`UPDATE product_sizes SET stock = $2 WHERE id = $1`, id, stock)
	if err != nil {
		return fmt.Errorf("set stock: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina la fila de talla.
func (r *SizeRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM product_sizes WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete size: %w", err)
	}
	return nil
}

// DecrementStock descuenta quantity de forma condicional y atómica. El WHERE
// stock >= quantity cierra la ventana de carrera entre leer y escribir: dos
// ventas simultáneas de las últimas unidades no pueden dejar stock negativo.
func (r *SizeRepo) DecrementStock(productID, size string, quantity int) (int64, error) {
	query := `
		UPDATE product_sizes SET stock = stock - $3
		WHERE product_id = $1 AND size = $2 AND stock >= $3`
	tag, err := r.q.Exec(context.Background(), query, productID, size, quantity)
	if err != nil {
		return 0, fmt.Errorf("decrement stock: %w", err)
	}
	return tag.RowsAffected(), nil
}
