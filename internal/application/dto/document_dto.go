package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// DocumentItemRequest línea de un documento. UnitPrice en cero toma el
// precio del producto.
type DocumentItemRequest struct {
	ProductID string          `json:"product_id" validate:"required,uuid4"`
	Quantity  decimal.Decimal `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
}

// CreateDocumentRequest creación de un documento comercial.
// ClientID y SupplierID son excluyentes (puede no venir ninguno).
type CreateDocumentRequest struct {
	Type            string                `json:"type" validate:"required"`
	Subtype         string                `json:"subtype" validate:"omitempty,eq=diversa"`
	ClientID        string                `json:"client_id" validate:"omitempty,uuid4"`
	SupplierID      string                `json:"supplier_id" validate:"omitempty,uuid4"`
	WarehouseID     string                `json:"warehouse_id" validate:"omitempty,uuid4"`
	Date            time.Time             `json:"date"`
	Status          string                `json:"status" validate:"omitempty,oneof=draft sent paid received delivered"`
	PaymentMethod   string                `json:"payment_method" validate:"omitempty,oneof=cash check bank_transfer"`
	BankAccountID   string                `json:"bank_account_id" validate:"omitempty,uuid4"`
	CashWarehouseID string                `json:"cash_warehouse_id" validate:"omitempty,uuid4"`
	Notes           string                `json:"notes"`
	Items           []DocumentItemRequest `json:"items" validate:"dive"`
}

// UpdateDocumentRequest edición de cabecera y líneas. El estado no se cambia
// aquí: para eso está la transición de estado.
type UpdateDocumentRequest struct {
	ClientID        string                `json:"client_id" validate:"omitempty,uuid4"`
	SupplierID      string                `json:"supplier_id" validate:"omitempty,uuid4"`
	WarehouseID     string                `json:"warehouse_id" validate:"omitempty,uuid4"`
	Date            time.Time             `json:"date"`
	PaymentMethod   string                `json:"payment_method" validate:"omitempty,oneof=cash check bank_transfer"`
	BankAccountID   string                `json:"bank_account_id" validate:"omitempty,uuid4"`
	CashWarehouseID string                `json:"cash_warehouse_id" validate:"omitempty,uuid4"`
	Notes           string                `json:"notes"`
	Items           []DocumentItemRequest `json:"items" validate:"dive"`
}

// TransitionRequest cambio de estado de un documento.
type TransitionRequest struct {
	Status string `json:"status" validate:"required,oneof=sent paid received delivered cancelled"`
}

// DocumentLineResponse línea persistida.
type DocumentLineResponse struct {
	ID        string          `json:"id"`
	ProductID string          `json:"product_id"`
	Quantity  decimal.Decimal `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Total     decimal.Decimal `json:"total"`
}

// DocumentResponse documento persistido con sus líneas.
type DocumentResponse struct {
	ID              string                 `json:"id"`
	Type            string                 `json:"type"`
	Subtype         string                 `json:"subtype,omitempty"`
	Number          string                 `json:"number"`
	ClientID        string                 `json:"client_id,omitempty"`
	SupplierID      string                 `json:"supplier_id,omitempty"`
	WarehouseID     string                 `json:"warehouse_id,omitempty"`
	Date            string                 `json:"date"`
	Status          string                 `json:"status"`
	Direction       string                 `json:"direction"`
	PaymentMethod   string                 `json:"payment_method,omitempty"`
	BankAccountID   string                 `json:"bank_account_id,omitempty"`
	CashWarehouseID string                 `json:"cash_warehouse_id,omitempty"`
	Subtotal        decimal.Decimal        `json:"subtotal"`
	Notes           string                 `json:"notes,omitempty"`
	Items           []DocumentLineResponse `json:"items"`
}
