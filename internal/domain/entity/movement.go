package entity

import "time"

// Tipos de movimiento del ledger.
const (
	MovementTypeEntrada = "ENTRADA" // entrada (compra / reabastecimiento)
	MovementTypeSalida  = "SALIDA"  // salida (venta / uso)
)

// ValidMovementType verifica que el tipo sea ENTRADA o SALIDA.
func ValidMovementType(t string) bool {
	return t == MovementTypeEntrada || t == MovementTypeSalida
}

// Movement es una entrada inmutable del ledger de inventario: una vez creada
// no existe update ni delete. El ledger es la fuente de verdad del stock.
type Movement struct {
	ID             int64
	ProductID      int64
	Type           string // ENTRADA | SALIDA
	Quantity       int64  // siempre positivo; el signo lo da Type
	UserEmail      string // quién lo registró (desnormalizado para auditoría)
	IdempotencyKey string // opcional, suministrado por el cliente contra doble envío
	CreatedAt      time.Time
}

// Delta devuelve el efecto del movimiento sobre el stock (+qty o −qty).
func (m *Movement) Delta() int64 {
	if m.Type == MovementTypeSalida {
		return -m.Quantity
	}
	return m.Quantity
}

// MovementWithProduct es la vista de listado: movimiento más el nombre del
// producto (nil si el producto fue eliminado después).
type MovementWithProduct struct {
	Movement
	ProductName *string
}
