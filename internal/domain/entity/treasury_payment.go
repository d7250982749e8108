package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de un pago de tesorería.
const (
	PaymentStatusCleared     = "cleared"      // su efecto sobre el saldo ya fue aplicado
	PaymentStatusInHand      = "in_hand"      // cheque en mano, sin efecto sobre saldo
	PaymentStatusPendingBank = "pending_bank" // pendiente de consignación
)

// Sentido económico del pago.
const (
	PaymentTypeSales    = "sales"    // entra dinero
	PaymentTypePurchase = "purchase" // sale dinero
)

// TreasuryPayment registra el pago derivado de un documento de venta o compra.
// Existe a lo sumo uno por documento (constraint único sobre DocumentID).
// Solo los pagos cleared tocan un saldo; el reverso niega lo aplicado.
type TreasuryPayment struct {
	ID              string
	DocumentID      string
	DocumentType    string
	Amount          decimal.Decimal // siempre positivo; el signo lo da Type
	Method          string          // cash, check, bank_transfer
	Status          string
	Type            string // sales, purchase
	BankAccountID   string // excluyente con CashWarehouseID
	CashWarehouseID string // caja de bodega (solo ventas)
	Label           string // anotación para mostrar (nombre del tercero); no afecta el cálculo
	CreatedAt       time.Time
}
