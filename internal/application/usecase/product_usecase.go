package usecase

import (
	"strings"
	"time"

	"github.com/invorya/inventario/internal/application/auth"
	"github.com/invorya/inventario/internal/application/dto"
	"github.com/invorya/inventario/internal/domain"
	"github.com/invorya/inventario/internal/domain/entity"
	"github.com/invorya/inventario/internal/domain/policy"
	"github.com/invorya/inventario/internal/domain/repository"
)

// ProductUseCase catálogo maestro de productos. El stock posterior a la
// creación solo cambia vía movimientos del ledger, nunca por edición directa.
type ProductUseCase struct {
	repo repository.ProductRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository) *ProductUseCase {
	return &ProductUseCase{repo: repo}
}

// Create crea un producto con su stock inicial. Solo ADMIN. Nombre requerido;
// stock inicial negativo se rechaza.
func (uc *ProductUseCase) Create(actor auth.Actor, in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	if !policy.Allowed(actor.Role, policy.ActionCreateProduct) {
		return nil, domain.ErrForbidden
	}
	if strings.TrimSpace(in.Name) == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.InitialStock < 0 {
		return nil, domain.ErrInvalidInput
	}
	product := &entity.Product{
		Name:         in.Name,
		Code:         in.Code,
		InitialStock: in.InitialStock,
		Stock:        in.InitialStock,
		CreatedAt:    time.Now(),
	}
	if err := uc.repo.Create(product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// List devuelve el catálogo completo ordenado por ID ascendente (sin paginación).
func (uc *ProductUseCase) List(actor auth.Actor) ([]dto.ProductResponse, error) {
	if !policy.Allowed(actor.Role, policy.ActionViewCatalog) {
		return nil, domain.ErrForbidden
	}
	list, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toProductResponse(p))
	}
	return items, nil
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	if p == nil {
		return nil
	}
	return &dto.ProductResponse{
		ID:        p.ID,
		Name:      p.Name,
		Code:      p.Code,
		Stock:     p.Stock,
		LowStock:  p.LowStock(),
		CreatedAt: p.CreatedAt,
	}
}
