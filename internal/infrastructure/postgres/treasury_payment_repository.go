package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/gestion-comercial/internal/domain"
	"github.com/jhoicas/gestion-comercial/internal/domain/entity"
	"github.com/jhoicas/gestion-comercial/internal/domain/repository"
)

var _ repository.TreasuryPaymentRepository = (*TreasuryPaymentRepo)(nil)

// TreasuryPaymentRepo implementación sobre PostgreSQL. El constraint único
// sobre document_id respalda el invariante de a lo sumo un pago por
// documento.
type TreasuryPaymentRepo struct {
	q Querier
}

// NewTreasuryPaymentRepository construye el adaptador. Pasar pool o tx.
func NewTreasuryPaymentRepository(q Querier) *TreasuryPaymentRepo {
	return &TreasuryPaymentRepo{q: q}
}

// Create persiste el pago; domain.ErrDuplicate si el documento ya tiene uno.
func (r *TreasuryPaymentRepo) Create(p *entity.TreasuryPayment) error {
	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	query := `
		INSERT INTO treasury_payments (id, document_id, document_type, amount, method, status, type, bank_account_id, cash_warehouse_id, label, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.q.Exec(context.Background(), query,
		p.ID, p.DocumentID, p.DocumentType, p.Amount, p.Method, p.Status, p.Type,
		nullable(p.BankAccountID), nullable(p.CashWarehouseID), p.Label, p.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("create treasury payment: %w", err)
	}
	return nil
}

// GetByDocument obtiene el pago del documento; nil si no existe.
func (r *TreasuryPaymentRepo) GetByDocument(documentID string) (*entity.TreasuryPayment, error) {
	query := `
		SELECT id, document_id, document_type, amount, method, status, type, bank_account_id, cash_warehouse_id, label, created_at
		FROM treasury_payments WHERE document_id = $1`
	var p entity.TreasuryPayment
	var bankID, cashWhID *string
	err := r.q.QueryRow(context.Background(), query, documentID).Scan(
		&p.ID, &p.DocumentID, &p.DocumentType, &p.Amount, &p.Method, &p.Status, &p.Type,
		&bankID, &cashWhID, &p.Label, &p.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get payment by document: %w", err)
	}
	p.BankAccountID = deref(bankID)
	p.CashWarehouseID = deref(cashWhID)
	return &p, nil
}

// UpdateStatus persiste la transición de estado del pago.
func (r *TreasuryPaymentRepo) UpdateStatus(id, status string) error {
	tag, err := r.q.Exec(context.Background(),
		`UPDATE treasury_payments SET status = $1 WHERE id = $2`, status, id)
	if err != nil {
		return fmt.Errorf("update treasury payment status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete borra el pago (su efecto de saldo ya debe estar revertido).
func (r *TreasuryPaymentRepo) Delete(id string) error {
	tag, err := r.q.Exec(context.Background(), `DELETE FROM treasury_payments WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete treasury payment: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
