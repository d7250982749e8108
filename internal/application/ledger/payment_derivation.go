package ledger

import (
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/gestion-comercial/internal/domain"
	"github.com/jhoicas/gestion-comercial/internal/domain/entity"
	"github.com/jhoicas/gestion-comercial/internal/domain/repository"
)

// PaymentDerivation decide, a partir del método de pago de un documento de
// venta o compra liquidado, si el pago resultante queda cleared (afecta el
// saldo ya) o in_hand (lo afecta después), y crea a lo sumo un pago por
// documento.
type PaymentDerivation struct {
	treasury *TreasuryLedger
	contacts repository.ContactRepository // solo para la etiqueta del pago
}

// NewPaymentDerivation construye el derivador. contacts puede ser nil.
func NewPaymentDerivation(treasury *TreasuryLedger, contacts repository.ContactRepository) *PaymentDerivation {
	return &PaymentDerivation{treasury: treasury, contacts: contacts}
}

// ResolveStatus resuelve el estado inicial del pago según el método:
// cleared para cash y bank_transfer (el dinero ya está); in_hand para check.
func ResolveStatus(method string) string {
	switch method {
	case entity.PaymentMethodCash, entity.PaymentMethodBankTransfer:
		return entity.PaymentStatusCleared
	}
	return entity.PaymentStatusInHand
}

// DeriveAndCreate crea el pago del documento y, si resolvió cleared, aplica
// de inmediato el cambio de saldo. Reinvocar sobre un documento que ya tiene
// pago es un no-op que devuelve el existente — eso evita el doble conteo en
// llamadas repetidas de cambio de estado. El chequeo de existencia está
// respaldado por el constraint único sobre document_id, así que la carrera
// chequear-luego-insertar tampoco duplica.
func (d *PaymentDerivation) DeriveAndCreate(r Repos, doc *entity.Document) (*entity.TreasuryPayment, error) {
	paymentType := paymentTypeFor(doc.Type)
	if paymentType == "" {
		return nil, nil // el documento no mueve tesorería
	}
	existing, err := r.Payments.GetByDocument(doc.ID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return existing, nil
	}

	if doc.PaymentMethod == "" {
		return nil, domain.ErrInvalidInput
	}
	// La caja de bodega solo recibe pagos de venta.
	if doc.CashWarehouseID != "" && paymentType != entity.PaymentTypeSales {
		return nil, domain.ErrInvalidInput
	}
	// Dos destinos nunca son válidos. Un pago que resuelve cleared exige
	// exactamente uno antes de persistir; uno diferido (cheque) puede quedar
	// sin destino hasta consignarse.
	if doc.BankAccountID != "" && doc.CashWarehouseID != "" {
		return nil, domain.ErrInvalidInput
	}
	status := ResolveStatus(doc.PaymentMethod)
	if status == entity.PaymentStatusCleared && doc.BankAccountID == "" && doc.CashWarehouseID == "" {
		return nil, domain.ErrInvalidInput
	}

	p := &entity.TreasuryPayment{
		ID:              uuid.New().String(),
		DocumentID:      doc.ID,
		DocumentType:    doc.Type,
		Amount:          doc.Subtotal.Abs(),
		Method:          doc.PaymentMethod,
		Status:          status,
		Type:            paymentType,
		BankAccountID:   doc.BankAccountID,
		CashWarehouseID: doc.CashWarehouseID,
		Label:           d.label(doc),
		CreatedAt:       time.Now(),
	}

	if err := r.Payments.Create(p); err != nil {
		// Carrera perdida contra otra creación concurrente: el pago ya existe.
		if errors.Is(err, domain.ErrDuplicate) {
			return r.Payments.GetByDocument(doc.ID)
		}
		return nil, err
	}
	if err := d.treasury.Apply(r, p); err != nil {
		return nil, err
	}
	return p, nil
}

// DeleteWithReversal revierte el efecto de saldo del pago (si estaba
// cleared) y lo borra. Se usa al eliminar el documento origen.
func (d *PaymentDerivation) DeleteWithReversal(r Repos, p *entity.TreasuryPayment) error {
	if err := d.treasury.Revert(r, p); err != nil {
		return err
	}
	return r.Payments.Delete(p.ID)
}

// label busca el nombre del tercero del documento para mostrarlo junto al
// pago. Un fallo aquí no es fatal: la etiqueta no afecta la matemática.
func (d *PaymentDerivation) label(doc *entity.Document) string {
	if d.contacts == nil {
		return ""
	}
	contactID := doc.ClientID
	if contactID == "" {
		contactID = doc.SupplierID
	}
	if contactID == "" {
		return ""
	}
	c, err := d.contacts.GetByID(contactID)
	if err != nil || c == nil {
		return ""
	}
	return c.Name
}

func paymentTypeFor(docType string) string {
	switch docType {
	case entity.DocTypeSalesInvoice:
		return entity.PaymentTypeSales
	case entity.DocTypePurchaseInvoice:
		return entity.PaymentTypePurchase
	}
	return ""
}
