package postgres

import (
	"context"
	"fmt"

	"github.com/invorya/inventario/internal/domain"
	"github.com/invorya/inventario/internal/domain/entity"
	"github.com/invorya/inventario/internal/domain/repository"
)

var _ repository.MovementRepository = (*MovementRepo)(nil)

// MovementRepo implementación del ledger sobre PostgreSQL (usable con pool o tx).
// La tabla movements es append-only: no hay UPDATE ni DELETE.
type MovementRepo struct {
	q Querier
}

// NewMovementRepository construye el adaptador del ledger. Pasar pool o tx (Querier).
func NewMovementRepository(q Querier) *MovementRepo {
	return &MovementRepo{q: q}
}

// Create apende un movimiento y asigna el ID serial generado por la DB.
// Una clave de idempotencia repetida viola el índice único parcial y se
// traduce a domain.ErrDuplicate.
func (r *MovementRepo) Create(movement *entity.Movement) error {
	query := `
		INSERT INTO movements (product_id, type, quantity, user_email, idempotency_key, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`
	idemKey := (*string)(nil)
	if movement.IdempotencyKey != "" {
		idemKey = &movement.IdempotencyKey
	}
	err := r.q.QueryRow(context.Background(), query,
		movement.ProductID, movement.Type, movement.Quantity,
		movement.UserEmail, idemKey, movement.CreatedAt,
	).Scan(&movement.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert movement: %w", err)
	}
	return nil
}

// ListJoined devuelve todos los movimientos con el nombre del producto vía
// LEFT JOIN (NULL si fue eliminado), más recientes primero.
func (r *MovementRepo) ListJoined() ([]*entity.MovementWithProduct, error) {
	query := `
		SELECT m.id, m.product_id, m.type, m.quantity, m.user_email, m.created_at, p.name
		FROM movements m
		LEFT JOIN products p ON p.id = m.product_id
		ORDER BY m.created_at DESC, m.id DESC`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list movements: %w", err)
	}
	defer rows.Close()
	var list []*entity.MovementWithProduct
	for rows.Next() {
		var m entity.MovementWithProduct
		if err := rows.Scan(&m.ID, &m.ProductID, &m.Type, &m.Quantity, &m.UserEmail, &m.CreatedAt, &m.ProductName); err != nil {
			return nil, fmt.Errorf("scan movement: %w", err)
		}
		list = append(list, &m)
	}
	return list, rows.Err()
}

// TotalsByProduct suma las cantidades ENTRADA y SALIDA de un producto.
func (r *MovementRepo) TotalsByProduct(productID int64) (repository.LedgerTotals, error) {
	query := `
		SELECT
			COALESCE(SUM(quantity) FILTER (WHERE type = 'ENTRADA'), 0),
			COALESCE(SUM(quantity) FILTER (WHERE type = 'SALIDA'), 0)
		FROM movements WHERE product_id = $1`
	var t repository.LedgerTotals
	err := r.q.QueryRow(context.Background(), query, productID).Scan(&t.Entradas, &t.Salidas)
	if err != nil {
		return repository.LedgerTotals{}, fmt.Errorf("totals by product: %w", err)
	}
	return t, nil
}
