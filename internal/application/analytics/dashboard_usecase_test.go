package analytics_test

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/invorya/inventario/internal/application/analytics"
	"github.com/invorya/inventario/internal/domain"
	"github.com/invorya/inventario/internal/domain/entity"
	"github.com/invorya/inventario/internal/domain/repository"
)

// fakeAnalyticsRepo respuestas fijas + contador de llamadas a CountUsers.
type fakeAnalyticsRepo struct {
	products  int
	lowStock  int
	users     int
	totals    repository.LedgerTotals
	failUsers error

	countUsersCalls int32
}

func (r *fakeAnalyticsRepo) CountProducts(context.Context) (int, error) { return r.products, nil }
func (r *fakeAnalyticsRepo) CountLowStock(_ context.Context, threshold int64) (int, error) {
	if threshold != entity.LowStockThreshold {
		return 0, errors.New("umbral inesperado")
	}
	return r.lowStock, nil
}
func (r *fakeAnalyticsRepo) CountUsers(context.Context) (int, error) {
	atomic.AddInt32(&r.countUsersCalls, 1)
	if r.failUsers != nil {
		return 0, r.failUsers
	}
	return r.users, nil
}
func (r *fakeAnalyticsRepo) MovementTotals(context.Context) (repository.LedgerTotals, error) {
	return r.totals, nil
}

func TestGetSummary_Admin_IncluyeTotalUsuarios(t *testing.T) {
	repo := &fakeAnalyticsRepo{
		products: 12, lowStock: 3, users: 4,
		totals: repository.LedgerTotals{Entradas: 100, Salidas: 40},
	}
	uc := analytics.NewDashboardUseCase(repo)

	out, err := uc.GetSummary(context.Background(), entity.RoleAdmin)
	require.NoError(t, err)

	assert.Equal(t, 12, out.TotalProducts)
	assert.Equal(t, 3, out.LowStock)
	require.NotNil(t, out.TotalUsers)
	assert.Equal(t, 4, *out.TotalUsers)

	require.Len(t, out.Movements, 2, "exactamente dos series para la gráfica")
	assert.Equal(t, "Entradas", out.Movements[0].Name)
	assert.Equal(t, int64(100), out.Movements[0].Quantity)
	assert.Equal(t, "Salidas", out.Movements[1].Name)
	assert.Equal(t, int64(40), out.Movements[1].Quantity)
}

// Para USER la consulta de usuarios se omite por completo: no se ejecuta y se
// filtra, se salta. El resto del resumen llega igual.
func TestGetSummary_User_OmiteConsultaDeUsuarios(t *testing.T) {
	repo := &fakeAnalyticsRepo{
		products: 7, lowStock: 1, users: 99,
		totals: repository.LedgerTotals{Entradas: 10, Salidas: 2},
		// Si la consulta llegara a ejecutarse para USER, fallaría el resumen.
		failUsers: errors.New("no debería consultarse"),
	}
	uc := analytics.NewDashboardUseCase(repo)

	out, err := uc.GetSummary(context.Background(), entity.RoleUser)
	require.NoError(t, err)

	assert.Nil(t, out.TotalUsers, "USER no recibe el total de usuarios")
	assert.Equal(t, int32(0), atomic.LoadInt32(&repo.countUsersCalls),
		"la consulta se omite, no se filtra el resultado")
	assert.Equal(t, 7, out.TotalProducts)
	require.Len(t, out.Movements, 2)
}

func TestGetSummary_RolDesconocido_Denegado(t *testing.T) {
	uc := analytics.NewDashboardUseCase(&fakeAnalyticsRepo{})

	_, err := uc.GetSummary(context.Background(), "AUDITOR")
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestGetSummary_LedgerVacio_SeriesEnCero(t *testing.T) {
	repo := &fakeAnalyticsRepo{}
	uc := analytics.NewDashboardUseCase(repo)

	out, err := uc.GetSummary(context.Background(), entity.RoleUser)
	require.NoError(t, err)

	require.Len(t, out.Movements, 2)
	assert.Equal(t, int64(0), out.Movements[0].Quantity)
	assert.Equal(t, int64(0), out.Movements[1].Quantity)
}
