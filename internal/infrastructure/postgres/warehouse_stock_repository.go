package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/gestion-comercial/internal/domain/entity"
	"github.com/jhoicas/gestion-comercial/internal/domain/repository"
)

var _ repository.WarehouseStockRepository = (*WarehouseStockRepo)(nil)

// WarehouseStockRepo implementación sobre PostgreSQL (usable con pool o tx).
type WarehouseStockRepo struct {
	q Querier
}

// NewWarehouseStockRepository construye el adaptador. Pasar pool o tx.
func NewWarehouseStockRepository(q Querier) *WarehouseStockRepo {
	return &WarehouseStockRepo{q: q}
}

// Get obtiene el stock de un producto en una bodega; una fila en cero si el
// par todavía no existe.
func (r *WarehouseStockRepo) Get(productID, warehouseID string) (*entity.WarehouseStock, error) {
	query := `
		SELECT product_id, warehouse_id, quantity, updated_at
		FROM warehouse_stock WHERE product_id = $1 AND warehouse_id = $2`
	var ws entity.WarehouseStock
	err := r.q.QueryRow(context.Background(), query, productID, warehouseID).Scan(
		&ws.ProductID, &ws.WarehouseID, &ws.Quantity, &ws.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return &entity.WarehouseStock{ProductID: productID, WarehouseID: warehouseID, Quantity: decimal.Zero}, nil
		}
		return nil, fmt.Errorf("get warehouse stock: %w", err)
	}
	return &ws, nil
}

// GetForUpdate obtiene el stock bloqueando la fila (SELECT FOR UPDATE).
func (r *WarehouseStockRepo) GetForUpdate(productID, warehouseID string) (*entity.WarehouseStock, error) {
	query := `
		SELECT product_id, warehouse_id, quantity, updated_at
		FROM warehouse_stock WHERE product_id = $1 AND warehouse_id = $2
		FOR UPDATE`
	var ws entity.WarehouseStock
	err := r.q.QueryRow(context.Background(), query, productID, warehouseID).Scan(
		&ws.ProductID, &ws.WarehouseID, &ws.Quantity, &ws.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return &entity.WarehouseStock{ProductID: productID, WarehouseID: warehouseID, Quantity: decimal.Zero}, nil
		}
		return nil, fmt.Errorf("get warehouse stock for update: %w", err)
	}
	return &ws, nil
}

// Upsert inserta o actualiza la cantidad (por producto y bodega).
func (r *WarehouseStockRepo) Upsert(ws *entity.WarehouseStock) error {
	query := `
		INSERT INTO warehouse_stock (product_id, warehouse_id, quantity, updated_at)
		VALUES ($1, $2, $3, now())
		ON CONFLICT (product_id, warehouse_id)
		DO UPDATE SET quantity = EXCLUDED.quantity, updated_at = now()`
	_, err := r.q.Exec(context.Background(), query, ws.ProductID, ws.WarehouseID, ws.Quantity)
	if err != nil {
		return fmt.Errorf("upsert warehouse stock: %w", err)
	}
	return nil
}

// ListByProduct lista el stock del producto por bodega.
func (r *WarehouseStockRepo) ListByProduct(productID string) ([]*entity.WarehouseStock, error) {
	query := `
		SELECT product_id, warehouse_id, quantity, updated_at
		FROM warehouse_stock WHERE product_id = $1
		ORDER BY warehouse_id`
	rows, err := r.q.Query(context.Background(), query, productID)
	if err != nil {
		return nil, fmt.Errorf("list warehouse stock: %w", err)
	}
	defer rows.Close()
	var list []*entity.WarehouseStock
	for rows.Next() {
		var ws entity.WarehouseStock
		if err := rows.Scan(&ws.ProductID, &ws.WarehouseID, &ws.Quantity, &ws.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan warehouse stock: %w", err)
		}
		list = append(list, &ws)
	}
	return list, rows.Err()
}

// SumByProduct suma el stock del producto entre todas las bodegas. Solo
// auditoría de deriva frente a products.stock; no reconcilia.
func (r *WarehouseStockRepo) SumByProduct(productID string) (decimal.Decimal, error) {
	query := `SELECT COALESCE(SUM(quantity), 0) FROM warehouse_stock WHERE product_id = $1`
	var sum decimal.Decimal
	if err := r.q.QueryRow(context.Background(), query, productID).Scan(&sum); err != nil {
		return decimal.Zero, fmt.Errorf("sum warehouse stock: %w", err)
	}
	return sum, nil
}
