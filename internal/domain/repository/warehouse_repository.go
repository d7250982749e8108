package repository

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/gestion-comercial/internal/domain/entity"
)

// WarehouseRepository acceso a bodegas y a su caja física.
type WarehouseRepository interface {
	GetByID(id string) (*entity.Warehouse, error)
	// AddToCashBalance suma delta (con signo) a la caja de la bodega.
	AddToCashBalance(id string, delta decimal.Decimal) error
}
