// Package analytics contiene el caso de uso del Panel de Control: agregados
// de solo lectura recalculados bajo demanda sobre catálogo, cuentas y ledger.
package analytics

import (
	"context"
	"fmt"

	"github.com/invorya/inventario/internal/application/dto"
	"github.com/invorya/inventario/internal/domain"
	"github.com/invorya/inventario/internal/domain/entity"
	"github.com/invorya/inventario/internal/domain/policy"
	"github.com/invorya/inventario/internal/domain/repository"
)

// DashboardUseCase genera el resumen del panel: conteos del catálogo, alerta
// de stock bajo, total de usuarios (solo ADMIN) y balance Entradas/Salidas.
type DashboardUseCase struct {
	analyticsRepo repository.AnalyticsRepository
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(analyticsRepo repository.AnalyticsRepository) *DashboardUseCase {
	return &DashboardUseCase{analyticsRepo: analyticsRepo}
}

// GetSummary construye el DashboardSummaryDTO para el rol indicado.
//
// Las consultas se lanzan en paralelo:
//  1. CountProducts              → TotalProducts
//  2. CountLowStock(umbral 5)    → LowStock
//  3. MovementTotals             → series "Entradas" y "Salidas"
//  4. CountUsers                 → TotalUsers — SOLO si el rol es ADMIN;
//     para USER la consulta se omite por completo, no se filtra el resultado.
func (uc *DashboardUseCase) GetSummary(ctx context.Context, role string) (*dto.DashboardSummaryDTO, error) {
	if !policy.Allowed(role, policy.ActionViewDashboard) {
		return nil, domain.ErrForbidden
	}

	type countResult struct {
		n   int
		err error
	}
	type totalsResult struct {
		totals repository.LedgerTotals
		err    error
	}

	productsCh := make(chan countResult, 1)
	lowStockCh := make(chan countResult, 1)
	movementsCh := make(chan totalsResult, 1)
	usersCh := make(chan countResult, 1)

	go func() {
		n, err := uc.analyticsRepo.CountProducts(ctx)
		productsCh <- countResult{n, err}
	}()
	go func() {
		n, err := uc.analyticsRepo.CountLowStock(ctx, entity.LowStockThreshold)
		lowStockCh <- countResult{n, err}
	}()
	go func() {
		t, err := uc.analyticsRepo.MovementTotals(ctx)
		movementsCh <- totalsResult{t, err}
	}()

	isAdmin := role == entity.RoleAdmin
	if isAdmin {
		go func() {
			n, err := uc.analyticsRepo.CountUsers(ctx)
			usersCh <- countResult{n, err}
		}()
	}

	products := <-productsCh
	lowStock := <-lowStockCh
	movements := <-movementsCh

	if products.err != nil {
		return nil, fmt.Errorf("dashboard: total productos: %w", products.err)
	}
	if lowStock.err != nil {
		return nil, fmt.Errorf("dashboard: stock bajo: %w", lowStock.err)
	}
	if movements.err != nil {
		return nil, fmt.Errorf("dashboard: balance de movimientos: %w", movements.err)
	}

	summary := &dto.DashboardSummaryDTO{
		TotalProducts: products.n,
		LowStock:      lowStock.n,
		Movements: []dto.ChartSeries{
			{Name: "Entradas", Quantity: movements.totals.Entradas},
			{Name: "Salidas", Quantity: movements.totals.Salidas},
		},
	}

	if isAdmin {
		users := <-usersCh
		if users.err != nil {
			return nil, fmt.Errorf("dashboard: total usuarios: %w", users.err)
		}
		summary.TotalUsers = &users.n
	}

	return summary, nil
}
