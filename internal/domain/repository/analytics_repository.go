package repository

import "context"

// AnalyticsRepository define las consultas de lectura para el dashboard.
// Las implementaciones son read-only (no modifican datos).
type AnalyticsRepository interface {
	// CountProducts devuelve el total de productos del catálogo.
	CountProducts(ctx context.Context) (int, error)
	// CountLowStock devuelve cuántos productos tienen stock bajo el umbral.
	CountLowStock(ctx context.Context, threshold int64) (int, error)
	// CountUsers devuelve el total de cuentas de usuario.
	CountUsers(ctx context.Context) (int, error)
	// MovementTotals suma las cantidades ENTRADA y SALIDA de todo el ledger.
	MovementTotals(ctx context.Context) (LedgerTotals, error)
}
