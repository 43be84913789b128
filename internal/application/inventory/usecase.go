package inventory

import (
	"context"
	"time"

	"github.com/invorya/inventario/internal/application/auth"
	"github.com/invorya/inventario/internal/application/dto"
	"github.com/invorya/inventario/internal/domain"
	"github.com/invorya/inventario/internal/domain/entity"
	"github.com/invorya/inventario/internal/domain/policy"
	"github.com/invorya/inventario/internal/domain/repository"
)

// Nombre mostrado cuando el producto de un movimiento ya no existe.
const deletedProductPlaceholder = "Producto eliminado"

// LedgerUseCase motor del ledger de inventario: registra movimientos de forma
// transaccional (append + ajuste del contador con bloqueo de fila) y deriva el
// stock plegando el log de movimientos.
type LedgerUseCase struct {
	txRunner    TxRunner
	productRepo repository.ProductRepository
	movRepo     repository.MovementRepository
}

// NewLedgerUseCase construye el caso de uso.
func NewLedgerUseCase(txRunner TxRunner, productRepo repository.ProductRepository, movRepo repository.MovementRepository) *LedgerUseCase {
	return &LedgerUseCase{txRunner: txRunner, productRepo: productRepo, movRepo: movRepo}
}

// RegisterMovement valida y registra un movimiento en una sola transacción:
// bloquea la fila del producto (SELECT FOR UPDATE), apende el movimiento
// inmutable firmado con el email del actor y ajusta el contador de stock.
// Una SALIDA mayor al stock disponible se rechaza con ErrInsufficientStock;
// en cualquier fallo no se apende nada (Rollback).
func (uc *LedgerUseCase) RegisterMovement(ctx context.Context, actor auth.Actor, in dto.RegisterMovementRequest) error {
	if !policy.Allowed(actor.Role, policy.ActionCreateMovement) {
		return domain.ErrForbidden
	}
	if !entity.ValidMovementType(in.Type) || in.Quantity <= 0 {
		return domain.ErrInvalidInput
	}

	// Validar que el producto exista antes de abrir la transacción
	product, err := uc.productRepo.GetByID(in.ProductID)
	if err != nil {
		return err
	}
	if product == nil {
		return domain.ErrNotFound
	}

	now := time.Now()

	return uc.txRunner.Run(ctx, func(
		movRepo repository.MovementRepository,
		productRepo repository.ProductRepository,
	) error {
		// Bloquea la fila del producto para evitar carreras entre sesiones
		locked, err := productRepo.GetForUpdate(in.ProductID)
		if err != nil {
			return err
		}
		if locked == nil {
			return domain.ErrNotFound
		}

		newStock := locked.Stock + in.Quantity
		if in.Type == entity.MovementTypeSalida {
			if locked.Stock < in.Quantity {
				return domain.ErrInsufficientStock
			}
			newStock = locked.Stock - in.Quantity
		}

		mov := &entity.Movement{
			ProductID:      in.ProductID,
			Type:           in.Type,
			Quantity:       in.Quantity,
			UserEmail:      actor.Email,
			IdempotencyKey: in.IdempotencyKey,
			CreatedAt:      now,
		}
		// Create devuelve ErrDuplicate si la clave de idempotencia ya se usó;
		// el rollback deja el contador intacto.
		if err := movRepo.Create(mov); err != nil {
			return err
		}
		return productRepo.UpdateStock(in.ProductID, newStock)
	})
}

// ListMovements devuelve el historial completo, más reciente primero. Si el
// producto referenciado fue eliminado, el nombre degrada al placeholder en vez
// de romper el listado.
func (uc *LedgerUseCase) ListMovements(actor auth.Actor) ([]dto.MovementResponse, error) {
	if !policy.Allowed(actor.Role, policy.ActionViewMovements) {
		return nil, domain.ErrForbidden
	}
	rows, err := uc.movRepo.ListJoined()
	if err != nil {
		return nil, err
	}
	out := make([]dto.MovementResponse, 0, len(rows))
	for _, r := range rows {
		name := deletedProductPlaceholder
		if r.ProductName != nil {
			name = *r.ProductName
		}
		out = append(out, dto.MovementResponse{
			ID:          r.ID,
			ProductID:   r.ProductID,
			ProductName: name,
			Type:        r.Type,
			Quantity:    r.Quantity,
			UserEmail:   r.UserEmail,
			CreatedAt:   r.CreatedAt,
		})
	}
	return out, nil
}

// CurrentStock deriva el stock desde el ledger: stock inicial más entradas
// menos salidas. El contador materializado del producto debe coincidir siempre
// con este pliegue; el ledger es la fuente de verdad.
func (uc *LedgerUseCase) CurrentStock(actor auth.Actor, productID int64) (int64, error) {
	if !policy.Allowed(actor.Role, policy.ActionViewCatalog) {
		return 0, domain.ErrForbidden
	}
	product, err := uc.productRepo.GetByID(productID)
	if err != nil {
		return 0, err
	}
	if product == nil {
		return 0, domain.ErrNotFound
	}
	totals, err := uc.movRepo.TotalsByProduct(productID)
	if err != nil {
		return 0, err
	}
	return product.InitialStock + totals.Entradas - totals.Salidas, nil
}
