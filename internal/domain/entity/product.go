package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto o SKU del catálogo comercial.
// Stock es la cantidad total en mano (suma esperada de todas las bodegas);
// Status se deriva siempre de (Stock, MinStock) — nunca se asigna a mano.
type Product struct {
	ID          string
	SKU         string // código único
	Name        string
	Description string
	Price       decimal.Decimal // precio de venta
	Stock       decimal.Decimal // total en mano; puede quedar negativo (señal de error, no se rechaza)
	MinStock    decimal.Decimal // umbral de reposición; 0 = sin umbral
	Status      string          // ver internal/domain/stock: in_stock, low_stock, out_of_stock
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
