package entity

import "time"

// Umbral de stock bajo para alertas del dashboard y el catálogo.
const LowStockThreshold = 5

// Product representa un producto del catálogo maestro.
// InitialStock se fija en la creación y nunca cambia; Stock es el contador
// materializado que el motor de ledger mantiene transaccionalmente y debe
// cumplir siempre: Stock = InitialStock + Σ entradas − Σ salidas.
type Product struct {
	ID           int64
	Name         string
	Code         string // código de referencia, opcional, puede repetirse
	InitialStock int64
	Stock        int64
	CreatedAt    time.Time
}

// LowStock indica si el producto está por debajo del umbral de alerta.
func (p *Product) LowStock() bool {
	return p.Stock < LowStockThreshold
}
