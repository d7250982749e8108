package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Warehouse representa una bodega. CashBalance es la caja física de la bodega,
// destino alternativo de los pagos de venta en efectivo.
type Warehouse struct {
	ID          string
	Name        string
	Address     string
	CashBalance decimal.Decimal
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
