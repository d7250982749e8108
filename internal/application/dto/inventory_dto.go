package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// ManualMovementRequest movimiento de inventario iniciado por un operario.
type ManualMovementRequest struct {
	ProductID   string          `json:"product_id" validate:"required,uuid4"`
	WarehouseID string          `json:"warehouse_id" validate:"omitempty,uuid4"`
	Kind        string          `json:"kind" validate:"required,oneof=in out adjustment"`
	Quantity    decimal.Decimal `json:"quantity"`
	Description string          `json:"description"`
}

// WarehouseStockResponse stock de un producto en una bodega.
type WarehouseStockResponse struct {
	WarehouseID string          `json:"warehouse_id"`
	Quantity    decimal.Decimal `json:"quantity"`
}

// ProductStockResponse vista de stock de un producto: total, desglose por
// bodega y la suma de bodegas para auditar deriva.
type ProductStockResponse struct {
	ProductID     string                   `json:"product_id"`
	SKU           string                   `json:"sku"`
	Stock         decimal.Decimal          `json:"stock"`
	MinStock      decimal.Decimal          `json:"min_stock"`
	Status        string                   `json:"status"`
	Warehouses    []WarehouseStockResponse `json:"warehouses"`
	WarehouseSum  decimal.Decimal          `json:"warehouse_sum"`
}

// StockMovementResponse entrada del libro de movimientos.
type StockMovementResponse struct {
	ID           string          `json:"id"`
	ProductID    string          `json:"product_id"`
	WarehouseID  string          `json:"warehouse_id,omitempty"`
	Kind         string          `json:"kind"`
	Quantity     decimal.Decimal `json:"quantity"`
	DocumentType string          `json:"document_type,omitempty"`
	DocumentID   string          `json:"document_id,omitempty"`
	Description  string          `json:"description,omitempty"`
	CreatedAt    time.Time       `json:"created_at"`
}

// PaymentResponse pago de tesorería de un documento.
type PaymentResponse struct {
	ID              string          `json:"id"`
	DocumentID      string          `json:"document_id"`
	Amount          decimal.Decimal `json:"amount"`
	Method          string          `json:"method"`
	Status          string          `json:"status"`
	Type            string          `json:"type"`
	BankAccountID   string          `json:"bank_account_id,omitempty"`
	CashWarehouseID string          `json:"cash_warehouse_id,omitempty"`
	Label           string          `json:"label,omitempty"`
}

// BankAccountResponse saldo de una cuenta bancaria.
type BankAccountResponse struct {
	ID      string          `json:"id"`
	Name    string          `json:"name"`
	Balance decimal.Decimal `json:"balance"`
}
