package repository

import "github.com/jhoicas/gestion-comercial/internal/domain/entity"

// StockMovementRepository libro de movimientos, solo-anexar: no hay Update
// ni Delete a propósito.
type StockMovementRepository interface {
	Create(m *entity.StockMovement) error
	ListByProduct(productID string, limit, offset int) ([]*entity.StockMovement, error)
	ListByDocument(documentID string) ([]*entity.StockMovement, error)
}
