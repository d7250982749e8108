package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// BankAccount representa una cuenta bancaria de la empresa. Balance solo se
// mueve como resultado directo de que un TreasuryPayment pase a (o deje de
// estar) cleared.
type BankAccount struct {
	ID        string
	Name      string
	Bank      string
	AccountNo string
	Balance   decimal.Decimal // con signo
	UpdatedAt time.Time
}
