package usecase

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/invorya/inventario/internal/application/auth"
	"github.com/invorya/inventario/internal/application/dto"
	"github.com/invorya/inventario/internal/domain"
	"github.com/invorya/inventario/internal/domain/entity"
	"github.com/invorya/inventario/internal/domain/policy"
	"github.com/invorya/inventario/internal/domain/repository"
	"golang.org/x/crypto/bcrypt"
)

// UserUseCase administración de cuentas (solo ADMIN vía policy.ActionManageUsers).
type UserUseCase struct {
	repo repository.UserRepository
}

// NewUserUseCase construye el caso de uso con el puerto de persistencia.
func NewUserUseCase(repo repository.UserRepository) *UserUseCase {
	return &UserUseCase{repo: repo}
}

// List devuelve todas las cuentas, orden de creación ascendente.
func (uc *UserUseCase) List(actor auth.Actor) ([]dto.UserResponse, error) {
	if !policy.Allowed(actor.Role, policy.ActionManageUsers) {
		return nil, domain.ErrForbidden
	}
	users, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	out := make([]dto.UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, *auth.ToUserResponse(u))
	}
	return out, nil
}

// Create crea una cuenta: valida campos, chequea email best-effort, hashea con
// bcrypt y persiste. El constraint único de la DB cubre la carrera del chequeo.
func (uc *UserUseCase) Create(actor auth.Actor, in dto.CreateUserRequest) (*dto.UserResponse, error) {
	if !policy.Allowed(actor.Role, policy.ActionManageUsers) {
		return nil, domain.ErrForbidden
	}
	if strings.TrimSpace(in.Name) == "" || strings.TrimSpace(in.Email) == "" || in.Password == "" {
		return nil, domain.ErrInvalidInput
	}
	role := in.Role
	if role == "" {
		role = entity.RoleUser
	}
	if role != entity.RoleAdmin && role != entity.RoleUser {
		return nil, domain.ErrInvalidInput
	}
	existing, err := uc.repo.FindByEmail(in.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrEmailAlreadyExists
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	user := &entity.User{
		ID:           uuid.New().String(),
		Email:        in.Email,
		PasswordHash: string(hash),
		Name:         in.Name,
		Role:         role,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.repo.Create(user); err != nil {
		return nil, err
	}
	return auth.ToUserResponse(user), nil
}

// Update edita nombre, email y rol; el password solo cambia si llega no vacío.
func (uc *UserUseCase) Update(actor auth.Actor, id string, in dto.UpdateUserRequest) (*dto.UserResponse, error) {
	if !policy.Allowed(actor.Role, policy.ActionManageUsers) {
		return nil, domain.ErrForbidden
	}
	user, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrNotFound
	}
	if in.Name != nil {
		if strings.TrimSpace(*in.Name) == "" {
			return nil, domain.ErrInvalidInput
		}
		user.Name = *in.Name
	}
	if in.Email != nil {
		if strings.TrimSpace(*in.Email) == "" {
			return nil, domain.ErrInvalidInput
		}
		user.Email = *in.Email
	}
	if in.Role != nil {
		if *in.Role != entity.RoleAdmin && *in.Role != entity.RoleUser {
			return nil, domain.ErrInvalidInput
		}
		user.Role = *in.Role
	}
	if in.Password != nil && strings.TrimSpace(*in.Password) != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(*in.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		user.PasswordHash = string(hash)
	}
	user.UpdatedAt = time.Now()
	if err := uc.repo.Update(user); err != nil {
		return nil, err
	}
	return auth.ToUserResponse(user), nil
}

// Delete elimina una cuenta. El actor nunca puede eliminarse a sí mismo,
// sin importar su rol; ese chequeo va antes que el de autorización para que
// el error sea específico.
func (uc *UserUseCase) Delete(actor auth.Actor, id string) error {
	if id == actor.ID {
		return domain.ErrSelfDelete
	}
	if !policy.Allowed(actor.Role, policy.ActionManageUsers) {
		return domain.ErrForbidden
	}
	user, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if user == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(id)
}
