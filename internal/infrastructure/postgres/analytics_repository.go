package postgres

import (
	"context"
	"fmt"

	"github.com/invorya/inventario/internal/domain/repository"
	"github.com/jackc/pgx/v5/pgxpool"
)

var _ repository.AnalyticsRepository = (*AnalyticsRepo)(nil)

// AnalyticsRepo consultas de solo lectura para el dashboard.
type AnalyticsRepo struct {
	pool *pgxpool.Pool
}

// NewAnalyticsRepository construye el adaptador de analítica.
func NewAnalyticsRepository(pool *pgxpool.Pool) *AnalyticsRepo {
	return &AnalyticsRepo{pool: pool}
}

// CountProducts devuelve el total de productos del catálogo.
func (r *AnalyticsRepo) CountProducts(ctx context.Context) (int, error) {
	var n int
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM products`).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("analytics.CountProducts: %w", err)
	}
	return n, nil
}

// CountLowStock devuelve cuántos productos tienen stock bajo el umbral.
func (r *AnalyticsRepo) CountLowStock(ctx context.Context, threshold int64) (int, error) {
	var n int
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM products WHERE stock < $1`, threshold).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("analytics.CountLowStock: %w", err)
	}
	return n, nil
}

// CountUsers devuelve el total de cuentas. El use case solo lo invoca para ADMIN.
func (r *AnalyticsRepo) CountUsers(ctx context.Context) (int, error) {
	var n int
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM users`).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("analytics.CountUsers: %w", err)
	}
	return n, nil
}

// MovementTotals suma las cantidades ENTRADA y SALIDA de todo el ledger.
// Usa COALESCE para devolver cero si el ledger está vacío.
func (r *AnalyticsRepo) MovementTotals(ctx context.Context) (repository.LedgerTotals, error) {
	const query = `
	SELECT
	    COALESCE(SUM(quantity) FILTER (WHERE type = 'ENTRADA'), 0) AS entradas,
	    COALESCE(SUM(quantity) FILTER (WHERE type = 'SALIDA'), 0)  AS salidas
	FROM movements`
	var t repository.LedgerTotals
	err := r.pool.QueryRow(ctx, query).Scan(&t.Entradas, &t.Salidas)
	if err != nil {
		return repository.LedgerTotals{}, fmt.Errorf("analytics.MovementTotals: %w", err)
	}
	return t, nil
}
