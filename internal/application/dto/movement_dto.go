package dto

import "time"

// RegisterMovementRequest entrada para registrar un movimiento del ledger.
// IdempotencyKey es opcional: un reenvío con la misma clave no duplica el movimiento.
type RegisterMovementRequest struct {
	ProductID      int64  `json:"product_id" validate:"required"`
	Type           string `json:"type" validate:"required,oneof=ENTRADA SALIDA"`
	Quantity       int64  `json:"quantity" validate:"required,gt=0"`
	IdempotencyKey string `json:"idempotency_key" validate:"omitempty,max=100"`
}

// MovementResponse una fila del historial de movimientos.
// ProductName degrada a "Producto eliminado" si el producto ya no existe.
type MovementResponse struct {
	ID          int64     `json:"id"`
	ProductID   int64     `json:"product_id"`
	ProductName string    `json:"product_name"`
	Type        string    `json:"type"`
	Quantity    int64     `json:"quantity"`
	UserEmail   string    `json:"user_email"`
	CreatedAt   time.Time `json:"created_at"`
}
