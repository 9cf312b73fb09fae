package repository

import "github.com/jhoicas/boutique-api/internal/domain/entity"

// CustomerRepository puerto de persistencia para clientes.
type CustomerRepository interface {
	Create(customer *entity.Customer) error
	GetByID(id string) (*entity.Customer, error)
	// FindByName busca por nombre exacto ignorando mayúsculas/minúsculas;
	// nil si no hay coincidencia. Usado al resolver el cliente de una venta.
	FindByName(name string) (*entity.Customer, error)
	List() ([]*entity.Customer, error)
	Update(customer *entity.Customer) error
	Delete(id string) error
}
