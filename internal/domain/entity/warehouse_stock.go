package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// WarehouseStock representa el stock de un producto en una bodega concreta.
// Se crea con el primer movimiento hacia la bodega (upsert). La suma entre
// bodegas debería coincidir con Product.Stock pero no se reconcilia de forma
// automática; ver StockRepository.SumByProduct para auditar la deriva.
type WarehouseStock struct {
	ProductID   string
	WarehouseID string
	Quantity    decimal.Decimal
	UpdatedAt   time.Time
}
