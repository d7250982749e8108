package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/gestion-comercial/internal/domain/entity"
	"github.com/jhoicas/gestion-comercial/internal/domain/repository"
)

var _ repository.StockMovementRepository = (*StockMovementRepo)(nil)

// StockMovementRepo implementación sobre PostgreSQL. El libro es
// solo-anexar: no hay UPDATE ni DELETE.
type StockMovementRepo struct {
	q Querier
}

// NewStockMovementRepository construye el adaptador. Pasar pool o tx.
func NewStockMovementRepository(q Querier) *StockMovementRepo {
	return &StockMovementRepo{q: q}
}

// Create anexa un movimiento al libro.
func (r *StockMovementRepo) Create(m *entity.StockMovement) error {
	if m.ID == "" {
		m.ID = uuid.New().String()
	}
	warehouseID := (*string)(nil)
	if m.WarehouseID != "" {
		warehouseID = &m.WarehouseID
	}
	query := `
		INSERT INTO stock_movements (id, product_id, warehouse_id, kind, quantity, document_type, document_id, description, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(context.Background(), query,
		m.ID, m.ProductID, warehouseID, m.Kind, m.Quantity,
		m.DocumentType, m.DocumentID, m.Description, m.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("create stock movement: %w", err)
	}
	return nil
}

const movementColumns = `id, product_id, warehouse_id, kind, quantity, document_type, document_id, description, created_at`

// ListByProduct lista movimientos de un producto, los más recientes primero.
func (r *StockMovementRepo) ListByProduct(productID string, limit, offset int) ([]*entity.StockMovement, error) {
	query := `
		SELECT ` + movementColumns + `
		FROM stock_movements WHERE product_id = $1
		ORDER BY created_at DESC LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, productID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list movements by product: %w", err)
	}
	defer rows.Close()
	return scanMovements(rows)
}

// ListByDocument lista los movimientos originados por un documento.
func (r *StockMovementRepo) ListByDocument(documentID string) ([]*entity.StockMovement, error) {
	query := `
		SELECT ` + movementColumns + `
		FROM stock_movements WHERE document_id = $1
		ORDER BY created_at`
	rows, err := r.q.Query(context.Background(), query, documentID)
	if err != nil {
		return nil, fmt.Errorf("list movements by document: %w", err)
	}
	defer rows.Close()
	return scanMovements(rows)
}

func scanMovements(rows pgx.Rows) ([]*entity.StockMovement, error) {
	var list []*entity.StockMovement
	for rows.Next() {
		var m entity.StockMovement
		var warehouseID *string
		if err := rows.Scan(&m.ID, &m.ProductID, &warehouseID, &m.Kind, &m.Quantity,
			&m.DocumentType, &m.DocumentID, &m.Description, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan stock movement: %w", err)
		}
		if warehouseID != nil {
			m.WarehouseID = *warehouseID
		}
		list = append(list, &m)
	}
	return list, rows.Err()
}
