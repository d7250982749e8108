package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de movimiento de stock.
const (
	MovementKindIn                = "in"                // entrada
	MovementKindOut               = "out"               // salida
	MovementKindAdjustment        = "adjustment"        // ajuste manual
	MovementKindCorrection        = "correction"        // reverso de un efecto ya aplicado
	MovementKindPurchaseReceived  = "purchase_received" // recepción de orden de compra
)

// StockMovement es un hecho inmutable del libro de movimientos: nunca se
// actualiza ni se borra. Quantity siempre es positiva; la dirección la da Kind.
// Es el único registro durable de POR QUÉ cambió el stock.
type StockMovement struct {
	ID           string
	ProductID    string
	WarehouseID  string // vacío si el movimiento no está atado a bodega
	Kind         string
	Quantity     decimal.Decimal // sin signo
	DocumentType string          // tipo del documento origen
	DocumentID   string          // documento origen
	Description  string
	CreatedAt    time.Time
}
