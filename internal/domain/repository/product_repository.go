package repository

import "github.com/invorya/inventario/internal/domain/entity"

// ProductRepository define el puerto de persistencia para Product (DIP).
type ProductRepository interface {
	// Create persiste el producto y asigna su ID serial.
	Create(product *entity.Product) error
	GetByID(id int64) (*entity.Product, error)
	// GetForUpdate bloquea la fila del producto (SELECT FOR UPDATE) dentro de
	// una transacción; fuera de una tx se comporta como GetByID.
	GetForUpdate(id int64) (*entity.Product, error)
	// UpdateStock fija el contador materializado de stock.
	UpdateStock(id int64, stock int64) error
	// List devuelve el catálogo completo ordenado por ID ascendente (sin paginación).
	List() ([]*entity.Product, error)
	Delete(id int64) error
}
