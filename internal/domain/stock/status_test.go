package stock_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/gestion-comercial/internal/domain/stock"
)

func TestDeriveStatus(t *testing.T) {
	cases := []struct {
		name     string
		stock    string
		minStock string
		want     string
	}{
		{"stock positivo sin umbral", "10", "0", stock.StatusInStock},
		{"stock por encima del umbral", "10", "5", stock.StatusInStock},
		{"stock igual al umbral", "5", "5", stock.StatusLowStock},
		{"stock bajo el umbral", "3", "5", stock.StatusLowStock},
		{"stock cero", "0", "5", stock.StatusOutOfStock},
		{"stock negativo", "-2", "5", stock.StatusOutOfStock},
		{"stock cero sin umbral", "0", "0", stock.StatusOutOfStock},
		// out_of_stock gana sobre low_stock: stock <= 0 se evalúa primero.
		{"negativo con umbral alto", "-1", "100", stock.StatusOutOfStock},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := stock.DeriveStatus(decimal.RequireFromString(tc.stock), decimal.RequireFromString(tc.minStock))
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestIsLowStock(t *testing.T) {
	assert.True(t, stock.IsLowStock(decimal.NewFromInt(5), decimal.NewFromInt(5)),
		"stock en el umbral debe alertar reposición")
	assert.False(t, stock.IsLowStock(decimal.NewFromInt(5), decimal.Zero),
		"sin umbral no hay alerta")
	assert.False(t, stock.IsLowStock(decimal.Zero, decimal.NewFromInt(5)),
		"stock en cero es out_of_stock, no low_stock")
}
