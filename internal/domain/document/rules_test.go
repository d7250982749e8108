package document_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/gestion-comercial/internal/domain/document"
	"github.com/jhoicas/gestion-comercial/internal/domain/entity"
)

func TestDeriveDirection(t *testing.T) {
	cases := []struct {
		name string
		doc  entity.Document
		want string
	}{
		{"con cliente sale", entity.Document{Type: entity.DocTypeDeliveryNote, ClientID: "c1"}, entity.DirectionOut},
		{"con proveedor entra", entity.Document{Type: entity.DocTypeDeliveryNote, SupplierID: "s1"}, entity.DirectionIn},
		{"sin tercero entra", entity.Document{Type: entity.DocTypePurchaseOrder}, entity.DirectionIn},
		{"remisión diversa siempre sale", entity.Document{Type: entity.DocTypeDeliveryNote, Subtype: entity.SubtypeMisc}, entity.DirectionOut},
		{"diversa con proveedor también sale", entity.Document{Type: entity.DocTypeDeliveryNote, Subtype: entity.SubtypeMisc, SupplierID: "s1"}, entity.DirectionOut},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			doc := tc.doc
			assert.Equal(t, tc.want, document.DeriveDirection(&doc))
		})
	}
}

func TestStockYCashMoving(t *testing.T) {
	assert.True(t, document.IsStockMoving(entity.DocTypeDeliveryNote))
	assert.True(t, document.IsStockMoving(entity.DocTypePurchaseOrder))
	assert.False(t, document.IsStockMoving(entity.DocTypeSalesInvoice),
		"una factura de venta no mueve inventario, solo tesorería")
	assert.False(t, document.IsStockMoving(entity.DocTypeEstimate))

	assert.True(t, document.IsCashMoving(entity.DocTypeSalesInvoice))
	assert.True(t, document.IsCashMoving(entity.DocTypePurchaseInvoice))
	assert.False(t, document.IsCashMoving(entity.DocTypeDeliveryNote))
	assert.False(t, document.IsCashMoving(entity.DocTypePurchaseOrder),
		"la orden de compra mueve stock al recibirse, nunca tesorería")
}

func TestSettledStatus(t *testing.T) {
	assert.Equal(t, entity.StatusPaid, document.SettledStatus(entity.DocTypeSalesInvoice))
	assert.Equal(t, entity.StatusReceived, document.SettledStatus(entity.DocTypePurchaseInvoice))
	assert.Equal(t, entity.StatusReceived, document.SettledStatus(entity.DocTypePurchaseOrder))
	assert.Equal(t, entity.StatusDelivered, document.SettledStatus(entity.DocTypeDeliveryNote))
	assert.Empty(t, document.SettledStatus(entity.DocTypeEstimate),
		"una cotización nunca aplica efectos de libro")
}

func TestCanTransition(t *testing.T) {
	cases := []struct {
		name     string
		docType  string
		from, to string
		want     bool
	}{
		{"draft a sent", entity.DocTypeSalesInvoice, entity.StatusDraft, entity.StatusSent, true},
		{"draft directo a paid", entity.DocTypeSalesInvoice, entity.StatusDraft, entity.StatusPaid, true},
		{"sent a paid", entity.DocTypeSalesInvoice, entity.StatusSent, entity.StatusPaid, true},
		{"paid a cancelled", entity.DocTypeSalesInvoice, entity.StatusPaid, entity.StatusCancelled, true},
		{"paid a sent retrocede", entity.DocTypeSalesInvoice, entity.StatusPaid, entity.StatusSent, false},
		{"cancelled es terminal", entity.DocTypeSalesInvoice, entity.StatusCancelled, entity.StatusDraft, false},
		{"mismo estado no transiciona", entity.DocTypeSalesInvoice, entity.StatusSent, entity.StatusSent, false},
		{"remisión draft a delivered", entity.DocTypeDeliveryNote, entity.StatusDraft, entity.StatusDelivered, true},
		{"remisión no llega a paid", entity.DocTypeDeliveryNote, entity.StatusDraft, entity.StatusPaid, false},
		{"compra sent a received", entity.DocTypePurchaseOrder, entity.StatusSent, entity.StatusReceived, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, document.CanTransition(tc.docType, tc.from, tc.to))
		})
	}
}

func TestTotales(t *testing.T) {
	lines := []*entity.DocumentLine{
		{Quantity: decimal.NewFromInt(3), UnitPrice: decimal.NewFromInt(20), Total: document.LineTotal(decimal.NewFromInt(3), decimal.NewFromInt(20))},
		{Quantity: decimal.NewFromInt(2), UnitPrice: decimal.RequireFromString("10.50"), Total: document.LineTotal(decimal.NewFromInt(2), decimal.RequireFromString("10.50"))},
	}
	assert.True(t, decimal.NewFromInt(60).Equal(lines[0].Total))
	assert.True(t, decimal.NewFromInt(81).Equal(document.Subtotal(lines)),
		"el subtotal debe ser la suma exacta de los totales de línea")
}
