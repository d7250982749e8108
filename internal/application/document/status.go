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

// Transition cambia el estado del documento. Solo la transición HACIA un
// estado liquidado (paid, received, delivered) aplica efectos de stock y
// deriva el pago; salir de un estado liquidado (cancelación) los revierte.
func (c *Coordinator) Transition(ctx context.Context, id, newStatus string) (*dto.DocumentResponse, error) {
	var doc *entity.Document
	var lines []*entity.DocumentLine

	err := c.tx.Run(ctx, func(r ledger.Repos) error {
		var err error
		doc, err = r.Documents.GetForUpdate(id)
		if err != nil {
			return err
		}
		if doc == nil {
			return domain.ErrNotFound
		}
		if !domdoc.CanTransition(doc.Type, doc.Status, newStatus) {
			return domain.ErrInvalidTransition
		}

		lines, err = r.Documents.GetLines(id)
		if err != nil {
			return err
		}

		wasApplied := domdoc.EffectsApplied(doc.Type, doc.Status)
		willApply := domdoc.EffectsApplied(doc.Type, newStatus)
		stockMoving := domdoc.IsStockMoving(doc.Type)

		switch {
		case !wasApplied && willApply:
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
		case wasApplied && !willApply:
			if stockMoving {
				if err := c.revertLineEffects(r, doc, lines, doc.Direction); err != nil {
					return err
				}
			}
			if domdoc.IsCashMoving(doc.Type) {
				payment, err := r.Payments.GetByDocument(id)
				if err != nil {
					return err
				}
				if payment != nil {
					if err := c.payments.DeleteWithReversal(r, payment); err != nil {
						return err
					}
				}
			}
		}

		doc.Status = newStatus
		doc.UpdatedAt = time.Now()
		return r.Documents.Update(doc)
	})
	if err != nil {
		return nil, err
	}

	c.log.Info().
		Str("document_id", doc.ID).
		Str("number", doc.Number).
		Str("status", newStatus).
		Msg("transición de estado aplicada")
	return toResponse(doc, lines), nil
}
