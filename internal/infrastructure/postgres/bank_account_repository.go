package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/gestion-comercial/internal/domain/entity"
	"github.com/jhoicas/gestion-comercial/internal/domain/repository"
)

var _ repository.BankAccountRepository = (*BankAccountRepo)(nil)

// BankAccountRepo implementación sobre PostgreSQL (usable con pool o tx).
type BankAccountRepo struct {
	q Querier
}

// NewBankAccountRepository construye el adaptador. Pasar pool o tx.
func NewBankAccountRepository(q Querier) *BankAccountRepo {
	return &BankAccountRepo{q: q}
}

func (r *BankAccountRepo) GetByID(id string) (*entity.BankAccount, error) {
	return r.get(id, "")
}

func (r *BankAccountRepo) GetForUpdate(id string) (*entity.BankAccount, error) {
	return r.get(id, " FOR UPDATE")
}

func (r *BankAccountRepo) get(id, suffix string) (*entity.BankAccount, error) {
	query := `SELECT id, name, bank, account_no, balance, updated_at FROM bank_accounts WHERE id = $1` + suffix
	var acc entity.BankAccount
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&acc.ID, &acc.Name, &acc.Bank, &acc.AccountNo, &acc.Balance, &acc.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get bank account: %w", err)
	}
	return &acc, nil
}

// AddToBalance suma delta (con signo) al saldo en una sola sentencia, sin
// leer-calcular-escribir: el incremento relativo es seguro bajo concurrencia.
func (r *BankAccountRepo) AddToBalance(id string, delta decimal.Decimal) error {
	query := `UPDATE bank_accounts SET balance = balance + $2, updated_at = now() WHERE id = $1`
	tag, err := r.q.Exec(context.Background(), query, id, delta)
	if err != nil {
		return fmt.Errorf("add to bank balance: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("add to bank balance: cuenta %s no existe", id)
	}
	return nil
}
