package document

import (
	"context"
	"time"

	"github.com/jhoicas/gestion-comercial/internal/application/dto"
	"github.com/jhoicas/gestion-comercial/internal/application/ledger"
	"github.com/jhoicas/gestion-comercial/internal/domain"
	domdoc "github.com/jhoicas/gestion-comercial/internal/domain/document"
	"github.com/jhoicas/gestion-comercial/internal/domain/entity"
)

// Update edita cabecera y líneas de un documento. Contrato crítico: el
// reverso usa la dirección ALMACENADA pre-edición; la aplicación usa la
// dirección re-derivada de la cabecera post-edición. Son dos cálculos
// independientes: si la edición mueve el documento de proveedor a cliente,
// el reverso entra stock (deshace la entrada) y la aplicación lo saca.
//
// La edición NO recalcula el pago derivado: su monto quedó fijado al
// liquidarse el documento. Para re-derivarlo, borrar y recrear el documento.
func (c *Coordinator) Update(ctx context.Context, id string, in dto.UpdateDocumentRequest) (*dto.DocumentResponse, error) {
	if err := c.validateParties(in.ClientID, in.SupplierID); err != nil {
		return nil, err
	}

	var doc *entity.Document
	var newLines []*entity.DocumentLine

	err := c.tx.Run(ctx, func(r ledger.Repos) error {
		var err error
		doc, err = r.Documents.GetForUpdate(id)
		if err != nil {
			return err
		}
		if doc == nil {
			return domain.ErrNotFound
		}
		if doc.Status == entity.StatusCancelled {
			return domain.ErrConflict
		}

		oldLines, err := r.Documents.GetLines(id)
		if err != nil {
			return err
		}

		stockMoving := domdoc.IsStockMoving(doc.Type)
		applied := domdoc.EffectsApplied(doc.Type, doc.Status)

		// 1) Revertir el efecto viejo con el estado persistido tal como
		// estaba antes de la edición (bodega y dirección almacenadas).
		if applied && stockMoving {
			if err := c.revertLineEffects(r, doc, oldLines, doc.Direction); err != nil {
				return err
			}
		}

		// 2) Borrar líneas viejas, mutar cabecera.
		if err := r.Documents.DeleteLines(id); err != nil {
			return err
		}
		doc.ClientID = in.ClientID
		doc.SupplierID = in.SupplierID
		if in.WarehouseID != "" {
			doc.WarehouseID = in.WarehouseID
		}
		if !in.Date.IsZero() {
			doc.Date = in.Date
		}
		doc.PaymentMethod = in.PaymentMethod
		doc.BankAccountID = in.BankAccountID
		doc.CashWarehouseID = in.CashWarehouseID
		doc.Notes = in.Notes
		doc.UpdatedAt = time.Now()

		// 3) Re-derivar y persistir la dirección de la cabecera ya editada.
		doc.Direction = domdoc.DeriveDirection(doc)

		if stockMoving && len(in.Items) == 0 {
			return domain.ErrInvalidInput
		}
		newLines, err = c.buildLines(id, in.Items)
		if err != nil {
			return err
		}
		doc.Subtotal = domdoc.Subtotal(newLines)
		if err := r.Documents.Update(doc); err != nil {
			return err
		}
		for _, line := range newLines {
			if err := r.Documents.CreateLine(line); err != nil {
				return err
			}
		}

		// 4) Aplicar el efecto nuevo con la dirección recién derivada.
		if applied && stockMoving {
			if err := c.applyLineEffects(r, doc, newLines, doc.Direction); err != nil {
				return err
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
		Str("direction", doc.Direction).
		Msg("documento actualizado")
	return toResponse(doc, newLines), nil
}
