package repository

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/gestion-comercial/internal/domain/entity"
)

// BankAccountRepository acceso a cuentas bancarias.
type BankAccountRepository interface {
	GetByID(id string) (*entity.BankAccount, error)
	GetForUpdate(id string) (*entity.BankAccount, error)
	// AddToBalance suma delta (con signo) al saldo en una sola sentencia.
	AddToBalance(id string, delta decimal.Decimal) error
}
