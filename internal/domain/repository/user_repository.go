package repository

import "github.com/invorya/inventario/internal/domain/entity"

// UserRepository define el puerto de persistencia para User (DIP).
// Convención: (nil, nil) cuando no hay fila; error solo si el almacén falla.
// Esa distinción separa credenciales inválidas de fallo de conexión en auth.
type UserRepository interface {
	Create(user *entity.User) error
	GetByID(id string) (*entity.User, error)
	FindByEmail(email string) (*entity.User, error)
	Update(user *entity.User) error
	List() ([]*entity.User, error)
	Delete(id string) error
	Count() (int, error)
}
