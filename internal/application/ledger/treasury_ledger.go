package ledger

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/gestion-comercial/internal/domain"
	"github.com/jhoicas/gestion-comercial/internal/domain/entity"
)

// TreasuryLedger es el libro de tesorería: saldos de cuentas bancarias y
// cajas de bodega. Solo los pagos cleared mueven un saldo.
type TreasuryLedger struct{}

// NewTreasuryLedger construye el libro.
func NewTreasuryLedger() *TreasuryLedger {
	return &TreasuryLedger{}
}

// SignedAmount devuelve el monto aplicado al saldo por un pago: un pago de
// venta suma (entra dinero) y uno de compra resta (sale dinero).
func SignedAmount(p *entity.TreasuryPayment) decimal.Decimal {
	if p.Type == entity.PaymentTypePurchase {
		return p.Amount.Neg()
	}
	return p.Amount
}

// Apply incrementa el saldo destino del pago con su monto firmado. Exige
// exactamente un destino (cuenta bancaria o caja de bodega) y que el pago
// esté cleared; un pago in_hand o pending_bank jamás toca un saldo.
func (l *TreasuryLedger) Apply(r Repos, p *entity.TreasuryPayment) error {
	if p.Status != entity.PaymentStatusCleared {
		return nil
	}
	return l.addToTarget(r, p, SignedAmount(p))
}

// Revert deshace el efecto aplicado negando lo que se sumó: el signo se
// invierte respecto a lo APLICADO, no respecto al tipo del pago. Borrar un
// pago de venta siempre resta lo sumado; borrar uno de compra siempre
// devuelve lo restado.
func (l *TreasuryLedger) Revert(r Repos, p *entity.TreasuryPayment) error {
	if p.Status != entity.PaymentStatusCleared {
		return nil
	}
	return l.addToTarget(r, p, SignedAmount(p).Neg())
}

// ClearPayment es el punto de extensión para la transición in_hand /
// pending_bank → cleared (ej. un cheque que se consigna después): aplica el
// efecto diferido y persiste el pago como cleared, de modo que una recarga
// posterior revierte o reconsigna sobre el estado real. Debe ejecutarse
// dentro de la unidad de trabajo del llamador. Ninguna operación de
// documento lo invoca; queda a disposición de la capa externa.
func (l *TreasuryLedger) ClearPayment(r Repos, p *entity.TreasuryPayment) error {
	if p.Status == entity.PaymentStatusCleared {
		return nil
	}
	if err := l.addToTarget(r, p, SignedAmount(p)); err != nil {
		return err
	}
	if err := r.Payments.UpdateStatus(p.ID, entity.PaymentStatusCleared); err != nil {
		return err
	}
	p.Status = entity.PaymentStatusCleared
	return nil
}

func (l *TreasuryLedger) addToTarget(r Repos, p *entity.TreasuryPayment, delta decimal.Decimal) error {
	switch {
	case p.BankAccountID != "" && p.CashWarehouseID == "":
		return r.BankAccounts.AddToBalance(p.BankAccountID, delta)
	case p.CashWarehouseID != "" && p.BankAccountID == "":
		return r.Warehouses.AddToCashBalance(p.CashWarehouseID, delta)
	}
	return domain.ErrInvalidInput
}
