// Package document implementa el coordinador transaccional de documentos:
// el punto de entrada de crear/editar/eliminar/transicionar que secuencia
// numeración, efectos de stock, derivación de pagos y persistencia dentro de
// una sola unidad de trabajo atómica.
package document

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/gestion-comercial/internal/application/dto"
	"github.com/jhoicas/gestion-comercial/internal/application/ledger"
	"github.com/jhoicas/gestion-comercial/internal/domain"
	domdoc "github.com/jhoicas/gestion-comercial/internal/domain/document"
	"github.com/jhoicas/gestion-comercial/internal/domain/entity"
	"github.com/jhoicas/gestion-comercial/internal/domain/numbering"
	"github.com/jhoicas/gestion-comercial/internal/domain/repository"
	"github.com/jhoicas/gestion-comercial/pkg/logger"
)

// Coordinator secuencia las mutaciones de documento. Las validaciones de
// solo-lectura corren fuera de la transacción; todos los efectos de libro y
// las escrituras corren adentro, todo-o-nada.
type Coordinator struct {
	tx       ledger.TxRunner
	stock    *ledger.StockLedger
	payments *ledger.PaymentDerivation

	products   repository.ProductRepository
	warehouses repository.WarehouseRepository
	contacts   repository.ContactRepository
	documents  repository.DocumentRepository

	log *logger.Logger
}

// NewCoordinator construye el coordinador.
func NewCoordinator(
	tx ledger.TxRunner,
	stock *ledger.StockLedger,
	payments *ledger.PaymentDerivation,
	products repository.ProductRepository,
	warehouses repository.WarehouseRepository,
	contacts repository.ContactRepository,
	documents repository.DocumentRepository,
	log *logger.Logger,
) *Coordinator {
	return &Coordinator{
		tx:         tx,
		stock:      stock,
		payments:   payments,
		products:   products,
		warehouses: warehouses,
		contacts:   contacts,
		documents:  documents,
		log:        log,
	}
}

// allocateNumber calcula el siguiente número del ámbito (prefijo, mes, año)
// leyendo el máximo consecutivo existente. Corre dentro de la misma
// transacción que el insert de la cabecera; un choque de unicidad posterior
// se trata como conflicto reintentable, no como corrupción.
func (c *Coordinator) allocateNumber(r ledger.Repos, docType, subtype string, date time.Time) (string, error) {
	prefix, err := numbering.Prefix(docType, subtype)
	if err != nil {
		return "", err
	}
	max, err := r.Documents.MaxSerial(docType, subtype, numbering.ScopePattern(prefix, date), date)
	if err != nil {
		return "", err
	}
	return numbering.Next(prefix, date, max), nil
}

// insertWithRetry inserta la cabecera; si el número choca con el constraint
// único (dos creaciones concurrentes calcularon el mismo consecutivo),
// reasigna y reintenta exactamente una vez. Un segundo choque se reporta
// como ErrConflict.
func (c *Coordinator) insertWithRetry(r ledger.Repos, doc *entity.Document) error {
	err := r.Documents.Create(doc)
	if err == nil {
		return nil
	}
	if !errors.Is(err, domain.ErrDuplicate) {
		return err
	}
	number, allocErr := c.allocateNumber(r, doc.Type, doc.Subtype, doc.Date)
	if allocErr != nil {
		return allocErr
	}
	doc.Number = number
	if err := r.Documents.Create(doc); err != nil {
		if errors.Is(err, domain.ErrDuplicate) {
			return domain.ErrConflict
		}
		return err
	}
	return nil
}

// movementKind resuelve el tipo de movimiento según la dirección y el tipo
// de documento: salida siempre "out"; entrada "purchase_received" para
// recepciones de orden de compra, "in" para el resto.
func movementKind(docType, direction string) string {
	if direction == entity.DirectionOut {
		return entity.MovementKindOut
	}
	if docType == entity.DocTypePurchaseOrder {
		return entity.MovementKindPurchaseReceived
	}
	return entity.MovementKindIn
}

// signedQuantity aplica la convención de signo de la dirección.
func signedQuantity(direction string, q decimal.Decimal) decimal.Decimal {
	if direction == entity.DirectionOut {
		return q.Abs().Neg()
	}
	return q.Abs()
}

// applyLineEffects aplica el efecto de stock de cada línea con la dirección
// dada. La dirección viene SIEMPRE de la cabecera vigente para ese paso:
// la almacenada pre-edición para revertir, la recién derivada para aplicar.
func (c *Coordinator) applyLineEffects(r ledger.Repos, doc *entity.Document, lines []*entity.DocumentLine, direction string) error {
	kind := movementKind(doc.Type, direction)
	for _, line := range lines {
		in := ledger.MovementInput{
			ProductID:    line.ProductID,
			WarehouseID:  doc.WarehouseID,
			Quantity:     signedQuantity(direction, line.Quantity),
			Kind:         kind,
			DocumentType: doc.Type,
			DocumentID:   doc.ID,
			Description:  doc.Number,
		}
		if err := c.stock.Apply(r, in); err != nil {
			return err
		}
	}
	return nil
}

// revertLineEffects deshace el efecto de stock de cada línea tal como fue
// aplicado con la dirección dada.
func (c *Coordinator) revertLineEffects(r ledger.Repos, doc *entity.Document, lines []*entity.DocumentLine, direction string) error {
	kind := movementKind(doc.Type, direction)
	for _, line := range lines {
		in := ledger.MovementInput{
			ProductID:    line.ProductID,
			WarehouseID:  doc.WarehouseID,
			Quantity:     signedQuantity(direction, line.Quantity),
			Kind:         kind,
			DocumentType: doc.Type,
			DocumentID:   doc.ID,
			Description:  doc.Number,
		}
		if err := c.stock.Revert(r, in); err != nil {
			return err
		}
	}
	return nil
}

// buildLines valida los ítems, completa el precio desde el producto cuando
// viene en cero y construye las líneas con sus totales.
func (c *Coordinator) buildLines(documentID string, items []dto.DocumentItemRequest) ([]*entity.DocumentLine, error) {
	lines := make([]*entity.DocumentLine, 0, len(items))
	for _, item := range items {
		if item.ProductID == "" || !item.Quantity.GreaterThan(decimal.Zero) {
			return nil, domain.ErrInvalidInput
		}
		if item.UnitPrice.LessThan(decimal.Zero) {
			return nil, domain.ErrInvalidInput
		}
		unitPrice := item.UnitPrice
		if unitPrice.IsZero() {
			product, err := c.products.GetByID(item.ProductID)
			if err != nil || product == nil {
				return nil, domain.ErrNotFound
			}
			unitPrice = product.Price
		}
		lines = append(lines, &entity.DocumentLine{
			ID:         uuid.New().String(),
			DocumentID: documentID,
			ProductID:  item.ProductID,
			Quantity:   item.Quantity,
			UnitPrice:  unitPrice,
			Total:      domdoc.LineTotal(item.Quantity, unitPrice),
		})
	}
	return lines, nil
}

// validateParties exige cliente XOR proveedor (o ninguno) y que existan.
func (c *Coordinator) validateParties(clientID, supplierID string) error {
	if clientID != "" && supplierID != "" {
		return domain.ErrInvalidInput
	}
	if clientID != "" {
		contact, err := c.contacts.GetByID(clientID)
		if err != nil || contact == nil {
			return domain.ErrNotFound
		}
	}
	if supplierID != "" {
		contact, err := c.contacts.GetByID(supplierID)
		if err != nil || contact == nil {
			return domain.ErrNotFound
		}
	}
	return nil
}

func toResponse(doc *entity.Document, lines []*entity.DocumentLine) *dto.DocumentResponse {
	resp := &dto.DocumentResponse{
		ID:              doc.ID,
		Type:            doc.Type,
		Subtype:         doc.Subtype,
		Number:          doc.Number,
		ClientID:        doc.ClientID,
		SupplierID:      doc.SupplierID,
		WarehouseID:     doc.WarehouseID,
		Date:            doc.Date.Format("2006-01-02"),
		Status:          doc.Status,
		Direction:       doc.Direction,
		PaymentMethod:   doc.PaymentMethod,
		BankAccountID:   doc.BankAccountID,
		CashWarehouseID: doc.CashWarehouseID,
		Subtotal:        doc.Subtotal,
		Notes:           doc.Notes,
		Items:           make([]dto.DocumentLineResponse, 0, len(lines)),
	}
	for _, l := range lines {
		resp.Items = append(resp.Items, dto.DocumentLineResponse{
			ID:        l.ID,
			ProductID: l.ProductID,
			Quantity:  l.Quantity,
			UnitPrice: l.UnitPrice,
			Total:     l.Total,
		})
	}
	return resp
}
