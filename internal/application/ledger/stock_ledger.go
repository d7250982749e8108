// Package ledger implementa los libros del núcleo: inventario y tesorería,
// más la derivación de pagos. Todas las operaciones corren sobre un juego de
// repositorios atados a la transacción del caller (ver Repos).
package ledger

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/gestion-comercial/internal/application/notify"
	"github.com/jhoicas/gestion-comercial/internal/domain"
	"github.com/jhoicas/gestion-comercial/internal/domain/entity"
	"github.com/jhoicas/gestion-comercial/internal/domain/stock"
)

// MovementInput describe un efecto de stock a aplicar. Quantity lleva signo:
// positivo entra, negativo sale. El movimiento se registra sin signo con Kind
// como dirección.
type MovementInput struct {
	ProductID    string
	WarehouseID  string // vacío = sin efecto por bodega
	Quantity     decimal.Decimal
	Kind         string
	DocumentType string
	DocumentID   string
	Description  string
}

// StockLedger es el libro de inventario: muta el stock total del producto,
// el stock por bodega y anexa el movimiento, todo dentro de la transacción
// del caller.
type StockLedger struct {
	lowStock *notify.LowStockEmitter
}

// NewStockLedger construye el libro. lowStock puede ser nil (sin alertas).
func NewStockLedger(lowStock *notify.LowStockEmitter) *StockLedger {
	return &StockLedger{lowStock: lowStock}
}

// Apply ejecuta los tres efectos juntos:
//  1. bloquea la fila del producto, suma Quantity al stock total y recalcula
//     el estado derivado;
//  2. si hay bodega, upsert del stock por bodega sumando Quantity;
//  3. anexa el movimiento con cantidad sin signo y Kind.
//
// El stock puede quedar negativo: se tolera como señal de error, no se
// rechaza. Si el estado resultante es low_stock se emite la alerta
// (best-effort, con debounce; nunca falla la operación).
func (l *StockLedger) Apply(r Repos, in MovementInput) error {
	if in.ProductID == "" || in.Quantity.IsZero() || in.Kind == "" {
		return domain.ErrInvalidInput
	}
	product, err := r.Products.GetForUpdate(in.ProductID)
	if err != nil {
		return err
	}
	if product == nil {
		return domain.ErrNotFound
	}

	now := time.Now()
	newStock := product.Stock.Add(in.Quantity)
	status := stock.DeriveStatus(newStock, product.MinStock)
	if err := r.Products.UpdateStock(product.ID, newStock, status); err != nil {
		return err
	}

	if in.WarehouseID != "" {
		ws, err := r.Stocks.GetForUpdate(in.ProductID, in.WarehouseID)
		if err != nil {
			return err
		}
		ws.Quantity = ws.Quantity.Add(in.Quantity)
		ws.UpdatedAt = now
		if err := r.Stocks.Upsert(ws); err != nil {
			return err
		}
	}

	mov := &entity.StockMovement{
		ID:           uuid.New().String(),
		ProductID:    in.ProductID,
		WarehouseID:  in.WarehouseID,
		Kind:         in.Kind,
		Quantity:     in.Quantity.Abs(),
		DocumentType: in.DocumentType,
		DocumentID:   in.DocumentID,
		Description:  in.Description,
		CreatedAt:    now,
	}
	if err := r.Movements.Create(mov); err != nil {
		return err
	}

	if stock.IsLowStock(newStock, product.MinStock) {
		l.lowStock.Emit(product.ID, product.SKU, newStock)
	}
	return nil
}

// Revert es el inverso algebraico de Apply: misma llamada con -Quantity y
// tipo correction. Aplicar y revertir deja el stock del producto y de la
// bodega intactos, pero el libro de movimientos conserva AMBOS anexos como
// hechos de auditoría distintos.
func (l *StockLedger) Revert(r Repos, in MovementInput) error {
	rev := in
	rev.Quantity = in.Quantity.Neg()
	rev.Kind = entity.MovementKindCorrection
	if in.Description != "" {
		rev.Description = "reverso: " + in.Description
	} else {
		rev.Description = "reverso"
	}
	return l.Apply(r, rev)
}
