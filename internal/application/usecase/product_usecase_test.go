package usecase_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/invorya/inventario/internal/application/auth"
	"github.com/invorya/inventario/internal/application/dto"
	"github.com/invorya/inventario/internal/application/usecase"
	"github.com/invorya/inventario/internal/domain"
	"github.com/invorya/inventario/internal/domain/entity"
)

// fakeProductRepo almacén en memoria que respeta el orden de inserción.
type fakeProductRepo struct {
	items  []*entity.Product
	nextID int64
}

func (r *fakeProductRepo) Create(p *entity.Product) error {
	r.nextID++
	p.ID = r.nextID
	cp := *p
	r.items = append(r.items, &cp)
	return nil
}

func (r *fakeProductRepo) GetByID(id int64) (*entity.Product, error) {
	for _, p := range r.items {
		if p.ID == id {
			cp := *p
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeProductRepo) GetForUpdate(id int64) (*entity.Product, error) { return r.GetByID(id) }

func (r *fakeProductRepo) UpdateStock(id int64, stock int64) error {
	for _, p := range r.items {
		if p.ID == id {
			p.Stock = stock
		}
	}
	return nil
}

func (r *fakeProductRepo) List() ([]*entity.Product, error) {
	out := make([]*entity.Product, 0, len(r.items))
	for _, p := range r.items {
		cp := *p
		out = append(out, &cp)
	}
	return out, nil
}

func (r *fakeProductRepo) Delete(id int64) error {
	for i, p := range r.items {
		if p.ID == id {
			r.items = append(r.items[:i], r.items[i+1:]...)
			return nil
		}
	}
	return nil
}

func (r *fakeProductRepo) seed(name string, stock int64) {
	r.nextID++
	r.items = append(r.items, &entity.Product{
		ID: r.nextID, Name: name, InitialStock: stock, Stock: stock, CreatedAt: time.Now(),
	})
}

// ──────────────────────────────────────────────────────────────────────────────
// Create
// ──────────────────────────────────────────────────────────────────────────────

func TestProductUseCase_Create_StockInicialFijaAmbosCampos(t *testing.T) {
	repo := &fakeProductRepo{}
	uc := usecase.NewProductUseCase(repo)

	out, err := uc.Create(adminActor, dto.CreateProductRequest{
		Name: "Martillo", Code: "MART-01", InitialStock: 10,
	})
	require.NoError(t, err)
	assert.NotZero(t, out.ID)
	assert.Equal(t, int64(10), out.Stock)

	stored, _ := repo.GetByID(out.ID)
	assert.Equal(t, int64(10), stored.InitialStock,
		"el stock inicial queda congelado para derivar el stock desde el ledger")
}

func TestProductUseCase_Create_SoloAdmin(t *testing.T) {
	uc := usecase.NewProductUseCase(&fakeProductRepo{})

	_, err := uc.Create(userActor, dto.CreateProductRequest{Name: "Llave", InitialStock: 1})
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestProductUseCase_Create_Validaciones(t *testing.T) {
	uc := usecase.NewProductUseCase(&fakeProductRepo{})

	_, err := uc.Create(adminActor, dto.CreateProductRequest{Name: "   ", InitialStock: 1})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "nombre en blanco")

	_, err = uc.Create(adminActor, dto.CreateProductRequest{Name: "Pala", InitialStock: -1})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "stock inicial negativo")
}

// ──────────────────────────────────────────────────────────────────────────────
// List
// ──────────────────────────────────────────────────────────────────────────────

func TestProductUseCase_List_MarcaStockBajo(t *testing.T) {
	repo := &fakeProductRepo{}
	repo.seed("Escaso", 2)   // bajo el umbral de 5
	repo.seed("Sobrado", 50) // por encima
	uc := usecase.NewProductUseCase(repo)

	out, err := uc.List(userActor)
	require.NoError(t, err)
	require.Len(t, out, 2)

	assert.Equal(t, "Escaso", out[0].Name, "orden de inserción (ID ascendente)")
	assert.True(t, out[0].LowStock)
	assert.False(t, out[1].LowStock)
}

func TestProductUseCase_List_RolDesconocidoDenegado(t *testing.T) {
	uc := usecase.NewProductUseCase(&fakeProductRepo{})

	_, err := uc.List(auth.Actor{ID: "v", Email: "v@inventario.local", Role: "VISITANTE"})
	assert.ErrorIs(t, err, domain.ErrForbidden)
}
