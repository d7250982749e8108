package ledger

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/gestion-comercial/internal/domain"
	"github.com/jhoicas/gestion-comercial/internal/domain/entity"
	"github.com/jhoicas/gestion-comercial/internal/domain/repository"
)

// ManualMovementUseCase registra movimientos de inventario iniciados por un
// operario (entrada, salida o ajuste), sin documento de por medio. A
// diferencia de los flujos de documento, una salida manual sí se rechaza si
// no hay stock: el operario está pidiendo explícitamente sacar mercancía.
type ManualMovementUseCase struct {
	tx          TxRunner
	stockLedger *StockLedger
	products    repository.ProductRepository
}

// NewManualMovementUseCase construye el caso de uso.
func NewManualMovementUseCase(tx TxRunner, stockLedger *StockLedger, products repository.ProductRepository) *ManualMovementUseCase {
	return &ManualMovementUseCase{tx: tx, stockLedger: stockLedger, products: products}
}

// ManualMovementInput entrada del movimiento manual. Quantity sin signo para
// in/out; con signo para adjustment.
type ManualMovementInput struct {
	ProductID   string
	WarehouseID string
	Kind        string // in, out, adjustment
	Quantity    decimal.Decimal
	Description string
}

// Register valida y aplica el movimiento dentro de una transacción.
func (uc *ManualMovementUseCase) Register(ctx context.Context, in ManualMovementInput) error {
	switch in.Kind {
	case entity.MovementKindIn, entity.MovementKindOut:
		if !in.Quantity.GreaterThan(decimal.Zero) {
			return domain.ErrInvalidInput
		}
	case entity.MovementKindAdjustment:
		if in.Quantity.IsZero() {
			return domain.ErrInvalidInput
		}
	default:
		return domain.ErrInvalidInput
	}
	if in.ProductID == "" {
		return domain.ErrInvalidInput
	}

	product, err := uc.products.GetByID(in.ProductID)
	if err != nil {
		return err
	}
	if product == nil {
		return domain.ErrNotFound
	}

	signed := in.Quantity
	if in.Kind == entity.MovementKindOut {
		if product.Stock.LessThan(in.Quantity) {
			return domain.ErrInsufficientStock
		}
		signed = in.Quantity.Neg()
	}

	return uc.tx.Run(ctx, func(r Repos) error {
		return uc.stockLedger.Apply(r, MovementInput{
			ProductID:   in.ProductID,
			WarehouseID: in.WarehouseID,
			Quantity:    signed,
			Kind:        in.Kind,
			Description: in.Description,
		})
	})
}
