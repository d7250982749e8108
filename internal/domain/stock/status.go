// Package stock contiene la lógica pura de estado de inventario.
package stock

import "github.com/shopspring/decimal"

// Estados derivados de un producto.
const (
	StatusInStock    = "in_stock"
	StatusLowStock   = "low_stock"
	StatusOutOfStock = "out_of_stock"
)

// DeriveStatus calcula el estado de un producto como función pura de
// (stock, minStock): out_of_stock si stock <= 0; si no, low_stock cuando
// minStock > 0 y stock <= minStock; en otro caso in_stock.
func DeriveStatus(stock, minStock decimal.Decimal) string {
	if stock.LessThanOrEqual(decimal.Zero) {
		return StatusOutOfStock
	}
	if minStock.GreaterThan(decimal.Zero) && stock.LessThanOrEqual(minStock) {
		return StatusLowStock
	}
	return StatusInStock
}

// IsLowStock indica si el estado amerita alerta de reposición.
func IsLowStock(stock, minStock decimal.Decimal) bool {
	return DeriveStatus(stock, minStock) == StatusLowStock
}
