package repository

import "github.com/jhoicas/boutique-api/internal/domain/entity"

// SizeRepository puerto para las filas de stock por talla (product_sizes).
// Usado dentro de transacciones para garantizar consistencia al vender.
type SizeRepository interface {
	Create(size *entity.ProductSize) error
	Get(productID, size string) (*entity.ProductSize, error)
	ListByProduct(productID string) ([]entity.ProductSize, error)
	// SetStock fija el stock exacto de una fila (edición manual desde el admin).
	SetStock(id string, stock int) error
	Delete(id string) error
	// DecrementStock resta quantity de forma condicional y atómica:
	//   UPDATE ... SET stock = stock - q WHERE product_id=$1 AND size=$2 AND stock >= q
	// Devuelve el número de filas afectadas: 0 significa que la fila no existe
	// o que el stock era insuficiente; el caller distingue con Get.
	DecrementStock(productID, size string, quantity int) (int64, error)
}
