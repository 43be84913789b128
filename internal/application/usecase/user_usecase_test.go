package usecase_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/invorya/inventario/internal/application/auth"
	"github.com/invorya/inventario/internal/application/dto"
	"github.com/invorya/inventario/internal/application/usecase"
	"github.com/invorya/inventario/internal/domain"
	"github.com/invorya/inventario/internal/domain/entity"
)

// fakeUserRepo almacén en memoria para los tests de administración de cuentas.
type fakeUserRepo struct {
	byID map[string]*entity.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{byID: make(map[string]*entity.User)}
}

func (r *fakeUserRepo) Create(u *entity.User) error {
	for _, e := range r.byID {
		if e.Email == u.Email {
			return domain.ErrEmailAlreadyExists
		}
	}
	cp := *u
	r.byID[u.ID] = &cp
	return nil
}

func (r *fakeUserRepo) GetByID(id string) (*entity.User, error) {
	u, ok := r.byID[id]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

func (r *fakeUserRepo) FindByEmail(email string) (*entity.User, error) {
	for _, u := range r.byID {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) Update(u *entity.User) error {
	cp := *u
	r.byID[u.ID] = &cp
	return nil
}

func (r *fakeUserRepo) List() ([]*entity.User, error) {
	out := make([]*entity.User, 0, len(r.byID))
	for _, u := range r.byID {
		cp := *u
		out = append(out, &cp)
	}
	return out, nil
}

func (r *fakeUserRepo) Delete(id string) error {
	delete(r.byID, id)
	return nil
}

func (r *fakeUserRepo) Count() (int, error) { return len(r.byID), nil }

func (r *fakeUserRepo) seed(id, email, role string) *entity.User {
	u := &entity.User{
		ID: id, Email: email, Name: email, Role: role,
		PasswordHash: "x", CreatedAt: time.Now(), UpdatedAt: time.Now(),
	}
	r.byID[id] = u
	return u
}

var (
	adminActor = auth.Actor{ID: "admin-1", Email: "admin@inventario.local", Role: entity.RoleAdmin}
	userActor  = auth.Actor{ID: "user-1", Email: "user@inventario.local", Role: entity.RoleUser}
)

// ──────────────────────────────────────────────────────────────────────────────
// Autorización: solo ADMIN administra cuentas
// ──────────────────────────────────────────────────────────────────────────────

func TestUserUseCase_UserNoAdministraCuentas(t *testing.T) {
	repo := newFakeUserRepo()
	repo.seed("otro", "otro@inventario.local", entity.RoleUser)
	uc := usecase.NewUserUseCase(repo)

	_, err := uc.List(userActor)
	assert.ErrorIs(t, err, domain.ErrForbidden)

	_, err = uc.Create(userActor, dto.CreateUserRequest{Name: "X", Email: "x@inventario.local", Password: "p"})
	assert.ErrorIs(t, err, domain.ErrForbidden)

	_, err = uc.Update(userActor, "otro", dto.UpdateUserRequest{})
	assert.ErrorIs(t, err, domain.ErrForbidden)

	err = uc.Delete(userActor, "otro")
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

// ──────────────────────────────────────────────────────────────────────────────
// Create
// ──────────────────────────────────────────────────────────────────────────────

func TestUserUseCase_Create_HasheaPasswordYDefaultRole(t *testing.T) {
	repo := newFakeUserRepo()
	uc := usecase.NewUserUseCase(repo)

	out, err := uc.Create(adminActor, dto.CreateUserRequest{
		Name: "Carlos", Email: "carlos@inventario.local", Password: "secreto123",
	})
	require.NoError(t, err)
	assert.Equal(t, entity.RoleUser, out.Role, "sin rol explícito la cuenta nace USER")

	stored, err := repo.FindByEmail("carlos@inventario.local")
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.NotEqual(t, "secreto123", stored.PasswordHash, "el password nunca se guarda plano")
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("secreto123")))
}

func TestUserUseCase_Create_EmailRepetido(t *testing.T) {
	repo := newFakeUserRepo()
	repo.seed("u1", "carlos@inventario.local", entity.RoleUser)
	uc := usecase.NewUserUseCase(repo)

	_, err := uc.Create(adminActor, dto.CreateUserRequest{
		Name: "Carlos 2", Email: "carlos@inventario.local", Password: "otro",
	})
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
}

func TestUserUseCase_Create_Validaciones(t *testing.T) {
	repo := newFakeUserRepo()
	uc := usecase.NewUserUseCase(repo)

	cases := []struct {
		name string
		in   dto.CreateUserRequest
	}{
		{"sin nombre", dto.CreateUserRequest{Email: "a@b.c", Password: "p"}},
		{"sin email", dto.CreateUserRequest{Name: "A", Password: "p"}},
		{"sin password", dto.CreateUserRequest{Name: "A", Email: "a@b.c"}},
		{"rol desconocido", dto.CreateUserRequest{Name: "A", Email: "a@b.c", Password: "p", Role: "ROOT"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := uc.Create(adminActor, tc.in)
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
		})
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Update
// ──────────────────────────────────────────────────────────────────────────────

func TestUserUseCase_Update_PasswordVacioNoCambia(t *testing.T) {
	repo := newFakeUserRepo()
	seeded := repo.seed("u1", "ana@inventario.local", entity.RoleUser)
	hashAntes := seeded.PasswordHash
	uc := usecase.NewUserUseCase(repo)

	nuevoNombre := "Ana María"
	vacio := ""
	out, err := uc.Update(adminActor, "u1", dto.UpdateUserRequest{
		Name: &nuevoNombre, Password: &vacio,
	})
	require.NoError(t, err)
	assert.Equal(t, "Ana María", out.Name)

	stored, _ := repo.GetByID("u1")
	assert.Equal(t, hashAntes, stored.PasswordHash, "password vacío significa no cambiar")
}

func TestUserUseCase_Update_NoEncontrado(t *testing.T) {
	uc := usecase.NewUserUseCase(newFakeUserRepo())

	_, err := uc.Update(adminActor, "no-existe", dto.UpdateUserRequest{})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// Delete — la auto-eliminación se bloquea antes que cualquier otra regla
// ──────────────────────────────────────────────────────────────────────────────

func TestUserUseCase_Delete_PropiaCuentaBloqueada(t *testing.T) {
	repo := newFakeUserRepo()
	repo.seed(adminActor.ID, adminActor.Email, entity.RoleAdmin)
	uc := usecase.NewUserUseCase(repo)

	err := uc.Delete(adminActor, adminActor.ID)
	assert.ErrorIs(t, err, domain.ErrSelfDelete)

	still, _ := repo.GetByID(adminActor.ID)
	assert.NotNil(t, still, "la cuenta sigue existiendo")
}

// Incluso sin permiso de administración, intentar borrarse a sí mismo devuelve
// el error específico, no el genérico de autorización.
func TestUserUseCase_Delete_PropiaCuenta_ErrorEspecificoParaUSER(t *testing.T) {
	repo := newFakeUserRepo()
	repo.seed(userActor.ID, userActor.Email, entity.RoleUser)
	uc := usecase.NewUserUseCase(repo)

	err := uc.Delete(userActor, userActor.ID)
	assert.ErrorIs(t, err, domain.ErrSelfDelete)
}

func TestUserUseCase_Delete_OtraCuenta(t *testing.T) {
	repo := newFakeUserRepo()
	repo.seed("u2", "bye@inventario.local", entity.RoleUser)
	uc := usecase.NewUserUseCase(repo)

	require.NoError(t, uc.Delete(adminActor, "u2"))
	gone, _ := repo.GetByID("u2")
	assert.Nil(t, gone)
}

func TestUserUseCase_Delete_NoEncontrado(t *testing.T) {
	uc := usecase.NewUserUseCase(newFakeUserRepo())

	err := uc.Delete(adminActor, "fantasma")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
