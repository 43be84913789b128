package repository

import "github.com/invorya/inventario/internal/domain/entity"

// LedgerTotals agregados del ledger: suma de cantidades por tipo.
type LedgerTotals struct {
	Entradas int64
	Salidas  int64
}

// MovementRepository define el puerto del ledger de movimientos (DIP).
// El ledger es append-only: no existe Update ni Delete de movimientos.
type MovementRepository interface {
	// Create apende un movimiento inmutable y asigna su ID serial.
	// Devuelve domain.ErrDuplicate si la clave de idempotencia ya fue usada.
	Create(movement *entity.Movement) error
	// ListJoined devuelve todos los movimientos con el nombre del producto
	// (nil si fue eliminado), ordenados por fecha de creación descendente.
	ListJoined() ([]*entity.MovementWithProduct, error)
	// TotalsByProduct suma las cantidades ENTRADA y SALIDA de un producto.
	TotalsByProduct(productID int64) (LedgerTotals, error)
}
