package document

import (
	"context"

	"github.com/jhoicas/gestion-comercial/internal/application/ledger"
	"github.com/jhoicas/gestion-comercial/internal/domain"
	domdoc "github.com/jhoicas/gestion-comercial/internal/domain/document"
)

// Delete elimina un documento revirtiendo por completo sus efectos antes de
// borrarlo: cada línea con la dirección pre-borrado almacenada y, para
// facturas, el pago asociado (reverso de saldo si estaba cleared, luego
// borrado del pago). Todo en una transacción.
func (c *Coordinator) Delete(ctx context.Context, id string) error {
	err := c.tx.Run(ctx, func(r ledger.Repos) error {
		doc, err := r.Documents.GetForUpdate(id)
		if err != nil {
			return err
		}
		if doc == nil {
			return domain.ErrNotFound
		}

		lines, err := r.Documents.GetLines(id)
		if err != nil {
			return err
		}

		if domdoc.EffectsApplied(doc.Type, doc.Status) && domdoc.IsStockMoving(doc.Type) {
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

		if err := r.Documents.DeleteLines(id); err != nil {
			return err
		}
		return r.Documents.Delete(id)
	})
	if err != nil {
		return err
	}

	c.log.Info().Str("document_id", id).Msg("documento eliminado con reverso completo")
	return nil
}
