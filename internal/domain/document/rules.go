// Package document contiene las reglas puras de los documentos comerciales:
// dirección del efecto de stock, máquina de estados y totales.
package document

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/gestion-comercial/internal/domain/entity"
)

// DeriveDirection calcula la dirección del efecto de stock de una cabecera:
// sale si el documento tiene cliente o es una remisión diversa; entra en
// cualquier otro caso (ligado a proveedor o recepción de compra).
// Es función pura de la cabecera: para una edición se llama una vez contra la
// cabecera pre-edición (reverso) y otra contra la post-edición (aplicación),
// nunca se reutiliza un resultado para ambos pasos.
func DeriveDirection(doc *entity.Document) string {
	if doc.ClientID != "" || doc.Subtype == entity.SubtypeMisc {
		return entity.DirectionOut
	}
	return entity.DirectionIn
}

// IsStockMoving indica si las líneas del documento mueven inventario.
func IsStockMoving(docType string) bool {
	switch docType {
	case entity.DocTypeDeliveryNote, entity.DocTypePurchaseOrder:
		return true
	}
	return false
}

// IsCashMoving indica si la liquidación del documento puede mover tesorería.
func IsCashMoving(docType string) bool {
	switch docType {
	case entity.DocTypeSalesInvoice, entity.DocTypePurchaseInvoice:
		return true
	}
	return false
}

// SettledStatus devuelve el estado que marca "el dinero/stock ya se movió"
// para el tipo de documento, o "" si el tipo no aplica efectos.
func SettledStatus(docType string) string {
	switch docType {
	case entity.DocTypeSalesInvoice:
		return entity.StatusPaid
	case entity.DocTypePurchaseInvoice, entity.DocTypePurchaseOrder:
		return entity.StatusReceived
	case entity.DocTypeDeliveryNote:
		return entity.StatusDelivered
	}
	return ""
}

// EffectsApplied indica si un documento en el estado dado ya tiene efectos
// de libro aplicados (stock o tesorería).
func EffectsApplied(docType, status string) bool {
	settled := SettledStatus(docType)
	return settled != "" && status == settled
}

// CanTransition valida la máquina de estados por tipo:
// draft → sent → paid|received y luego cancelled; remisiones
// draft → delivered → cancelled. sent es opcional (draft puede liquidarse
// directo).
func CanTransition(docType, from, to string) bool {
	if from == to {
		return false
	}
	settled := SettledStatus(docType)
	switch from {
	case entity.StatusDraft:
		return to == entity.StatusSent || to == settled || to == entity.StatusCancelled
	case entity.StatusSent:
		return to == settled || to == entity.StatusCancelled
	case settled:
		return to == entity.StatusCancelled
	}
	return false
}

// LineTotal calcula el total de una línea.
func LineTotal(quantity, unitPrice decimal.Decimal) decimal.Decimal {
	return quantity.Mul(unitPrice)
}

// Subtotal suma los totales de las líneas.
func Subtotal(lines []*entity.DocumentLine) decimal.Decimal {
	total := decimal.Zero
	for _, l := range lines {
		total = total.Add(l.Total)
	}
	return total
}
