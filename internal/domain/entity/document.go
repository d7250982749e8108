package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de documento comercial.
const (
	DocTypeSalesInvoice    = "sales_invoice"    // factura de venta (FV)
	DocTypeEstimate        = "estimate"         // cotización (CT)
	DocTypePurchaseOrder   = "purchase_order"   // orden de compra (OC)
	DocTypeDeliveryNote    = "delivery_note"    // remisión (RM); con SubtypeMisc es remisión diversa (RD)
	DocTypeCreditNote      = "credit_note"      // nota crédito (NC)
	DocTypePurchaseInvoice = "purchase_invoice" // factura de compra (FC)
	DocTypeStatement       = "statement"        // extracto (EX)
	DocTypeWithdrawal      = "withdrawal"       // retiro (RT)
)

// SubtypeMisc marca una remisión "diversa": comparte tabla con las remisiones
// normales pero siempre es salida y numera en su propio consecutivo.
const SubtypeMisc = "diversa"

// Estados del ciclo de vida de un documento.
const (
	StatusDraft     = "draft"
	StatusSent      = "sent"
	StatusPaid      = "paid"      // facturas de venta
	StatusReceived  = "received"  // órdenes / facturas de compra
	StatusDelivered = "delivered" // remisiones
	StatusCancelled = "cancelled"
)

// Dirección del efecto de stock de un documento. Se deriva con
// document.DeriveDirection y se PERSISTE en la cabecera al crear; cualquier
// edición de cabecera que pueda cambiarla la vuelve a derivar y guardar.
const (
	DirectionIn  = "in"
	DirectionOut = "out"
)

// Métodos de pago.
const (
	PaymentMethodCash         = "cash"
	PaymentMethodCheck        = "check"
	PaymentMethodBankTransfer = "bank_transfer"
)

// Document es la cabecera de un documento comercial (venta, compra, remisión...).
// ClientID y SupplierID son excluyentes; ambos vacíos también es válido.
type Document struct {
	ID            string
	Type          string
	Subtype       string // vacío o SubtypeMisc
	Number        string // PREFIX-MM/YY/NNNN, asignado al crear
	ClientID      string
	SupplierID    string
	WarehouseID   string
	Date          time.Time
	Status        string
	Direction     string // in/out, persistida (ver DeriveDirection)
	PaymentMethod string
	BankAccountID string // destino del pago; excluyente con CashWarehouseID
	CashWarehouseID string // caja de bodega destino del pago (solo ventas)
	Subtotal      decimal.Decimal
	Notes         string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// DocumentLine es una línea de detalle de un documento.
type DocumentLine struct {
	ID         string
	DocumentID string
	ProductID  string
	Quantity   decimal.Decimal
	UnitPrice  decimal.Decimal
	Total      decimal.Decimal // Quantity * UnitPrice
}
