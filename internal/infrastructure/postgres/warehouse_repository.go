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

var _ repository.WarehouseRepository = (*WarehouseRepo)(nil)

// WarehouseRepo implementación sobre PostgreSQL (usable con pool o tx).
type WarehouseRepo struct {
	q Querier
}

// NewWarehouseRepository construye el adaptador. Pasar pool o tx.
func NewWarehouseRepository(q Querier) *WarehouseRepo {
	return &WarehouseRepo{q: q}
}

func (r *WarehouseRepo) GetByID(id string) (*entity.Warehouse, error) {
	query := `SELECT id, name, address, cash_balance, created_at, updated_at FROM warehouses WHERE id = $1`
	var wh entity.Warehouse
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&wh.ID, &wh.Name, &wh.Address, &wh.CashBalance, &wh.CreatedAt, &wh.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get warehouse: %w", err)
	}
	return &wh, nil
}

// AddToCashBalance suma delta (con signo) a la caja de la bodega.
func (r *WarehouseRepo) AddToCashBalance(id string, delta decimal.Decimal) error {
	query := `UPDATE warehouses SET cash_balance = cash_balance + $2, updated_at = now() WHERE id = $1`
	tag, err := r.q.Exec(context.Background(), query, id, delta)
	if err != nil {
		return fmt.Errorf("add to warehouse cash: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("add to warehouse cash: bodega %s no existe", id)
	}
	return nil
}
