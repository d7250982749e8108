package document

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/gestion-comercial/internal/application/dto"
	"github.com/jhoicas/gestion-comercial/internal/application/ledger"
	"github.com/jhoicas/gestion-comercial/internal/domain"
	domdoc "github.com/jhoicas/gestion-comercial/internal/domain/document"
	"github.com/jhoicas/gestion-comercial/internal/domain/entity"
	"github.com/jhoicas/gestion-comercial/internal/domain/numbering"
)

// Create crea un documento: asigna número, persiste cabecera (con la
// dirección derivada) y líneas y, si nace directamente en un estado
// liquidado, aplica efectos de stock y deriva el pago — todo en una
// transacción.
func (c *Coordinator) Create(ctx context.Context, in dto.CreateDocumentRequest) (*dto.DocumentResponse, error) {
	// Tipo desconocido es un error de configuración: no se continúa.
	if _, err := numbering.Prefix(in.Type, in.Subtype); err != nil {
		return nil, err
	}
	if in.Subtype == entity.SubtypeMisc && in.Type != entity.DocTypeDeliveryNote {
		return nil, domain.ErrInvalidInput
	}
	if err := c.validateParties(in.ClientID, in.SupplierID); err != nil {
		return nil, err
	}

	status := in.Status
	if status == "" {
		status = entity.StatusDraft
	}
	if status != entity.StatusDraft && status != entity.StatusSent &&
		status != domdoc.SettledStatus(in.Type) {
		return nil, domain.ErrInvalidInput
	}

	stockMoving := domdoc.IsStockMoving(in.Type)
	if stockMoving {
		if len(in.Items) == 0 {
			return nil, domain.ErrInvalidInput
		}
		if in.WarehouseID == "" {
			return nil, domain.ErrInvalidInput
		}
		if wh, err := c.warehouses.GetByID(in.WarehouseID); err != nil || wh == nil {
			return nil, domain.ErrNotFound
		}
	}

	date := in.Date
	if date.IsZero() {
		date = time.Now()
	}

	doc := &entity.Document{
		ID:              uuid.New().String(),
		Type:            in.Type,
		Subtype:         in.Subtype,
		ClientID:        in.ClientID,
		SupplierID:      in.SupplierID,
		WarehouseID:     in.WarehouseID,
		Date:            date,
		Status:          status,
		PaymentMethod:   in.PaymentMethod,
		BankAccountID:   in.BankAccountID,
		CashWarehouseID: in.CashWarehouseID,
		Notes:           in.Notes,
		CreatedAt:       time.Now(),
		UpdatedAt:       time.Now(),
	}
	// La dirección se deriva una vez y se persiste en la cabecera; los
	// reversos posteriores usan el valor almacenado, no una re-inferencia.
	doc.Direction = domdoc.DeriveDirection(doc)

	lines, err := c.buildLines(doc.ID, in.Items)
	if err != nil {
		return nil, err
	}
	doc.Subtotal = domdoc.Subtotal(lines)

	err = c.tx.Run(ctx, func(r ledger.Repos) error {
		number, err := c.allocateNumber(r, doc.Type, doc.Subtype, doc.Date)
		if err != nil {
			return err
		}
		doc.Number = number
		if err := c.insertWithRetry(r, doc); err != nil {
			return err
		}
		for _, line := range lines {
			if err := r.Documents.CreateLine(line); err != nil {
				return err
			}
		}
		if domdoc.EffectsApplied(doc.Type, doc.Status) {
			if stockMoving {
				if err := c.applyLineEffects(r, doc, lines, doc.Direction); err != nil {
					return err
				}
			}
			if domdoc.IsCashMoving(doc.Type) {
				if _, err := c.payments.DeriveAndCreate(r, doc); err != nil {
					return err
				}
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	c.log.Info().
		Str("document_id", doc.ID).
		Str("number", doc.Number).
		Str("type", doc.Type).
		Str("status", doc.Status).
		Msg("documento creado")
	return toResponse(doc, lines), nil
}
