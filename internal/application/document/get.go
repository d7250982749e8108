package document

import (
	"context"

	"github.com/jhoicas/gestion-comercial/internal/application/dto"
	"github.com/jhoicas/gestion-comercial/internal/domain"
)

// Get devuelve un documento persistido con sus líneas.
func (c *Coordinator) Get(ctx context.Context, id string) (*dto.DocumentResponse, error) {
	doc, err := c.documents.GetByID(id)
	if err != nil {
		return nil, err
	}
	if doc == nil {
		return nil, domain.ErrNotFound
	}
	lines, err := c.documents.GetLines(id)
	if err != nil {
		return nil, err
	}
	return toResponse(doc, lines), nil
}
